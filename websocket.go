// Copyright 2026 The httpwire Authors.
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file.

package httpwire

import "github.com/intuitivelabs/bytescase"

// WSExtT identifies a well-known Sec-WebSocket-Extensions token (teacher's
// parse_ws_ext.go WSExtResolve).
type WSExtT uint8

const (
	WSExtOther WSExtT = iota
	WSExtPermessageDeflate
)

// WSExtResolve maps a raw extension token to its known flag.
func WSExtResolve(buf []byte, name Span) WSExtT {
	n := name.Get(buf)
	if len(n) == len("permessage-deflate") && bytescase.CmpEq(n, []byte("permessage-deflate")) {
		return WSExtPermessageDeflate
	}
	return WSExtOther
}

// WebSocketExtension is one token parsed out of a Sec-WebSocket-Extensions
// header value, together with any ";"-separated parameters.
type WebSocketExtension struct {
	Name   Span
	Ext    WSExtT
	Params []Span
}

// ParseWebSocketExtensions is an opt-in sideband parser (SPEC_FULL.md §11),
// merging the teacher's parse_ws_ext.go into the same post-hoc shape as
// ParseUpgradeProtocols: it runs only after the caller chooses to interpret
// a buffered Sec-WebSocket-Extensions value, never during streaming.
func ParseWebSocketExtensions(buf []byte, region Span) []WebSocketExtension {
	toks := SplitTokens(buf, region)
	out := make([]WebSocketExtension, len(toks))
	for i, t := range toks {
		params := SplitParams(buf, t)
		name := t
		var rest []Span
		if len(params) > 0 {
			name = params[0]
			rest = params[1:]
		}
		out[i] = WebSocketExtension{Name: name, Ext: WSExtResolve(buf, name), Params: rest}
	}
	return out
}

// WSProtoT identifies a well-known Sec-WebSocket-Protocol sub-protocol
// token (teacher's parse_ws_proto.go WSProtoResolve).
type WSProtoT uint8

const (
	WSProtoOther WSProtoT = iota
	WSProtoSIP
	WSProtoXMPP
	WSProtoMSRP
)

// WSProtoResolve maps a raw sub-protocol token to its known flag.
func WSProtoResolve(buf []byte, name Span) WSProtoT {
	n := name.Get(buf)
	switch len(n) {
	case 3:
		if bytescase.CmpEq(n, []byte("sip")) {
			return WSProtoSIP
		}
	case 4:
		if bytescase.CmpEq(n, []byte("xmpp")) {
			return WSProtoXMPP
		}
		if bytescase.CmpEq(n, []byte("msrp")) {
			return WSProtoMSRP
		}
	}
	return WSProtoOther
}

// WebSocketProtocol is one token parsed out of a Sec-WebSocket-Protocol
// header value.
type WebSocketProtocol struct {
	Name  Span
	Proto WSProtoT
}

// ParseWebSocketProtocols is the Sec-WebSocket-Protocol counterpart of
// ParseWebSocketExtensions.
func ParseWebSocketProtocols(buf []byte, region Span) []WebSocketProtocol {
	toks := SplitTokens(buf, region)
	out := make([]WebSocketProtocol, len(toks))
	for i, t := range toks {
		out[i] = WebSocketProtocol{Name: t, Proto: WSProtoResolve(buf, t)}
	}
	return out
}
