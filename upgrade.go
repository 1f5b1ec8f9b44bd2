// Copyright 2026 The httpwire Authors.
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file.

package httpwire

import "github.com/intuitivelabs/bytescase"

// UpgProtoT identifies a well-known Upgrade protocol token, resolved from
// the IANA HTTP Upgrade Token Registry subset the teacher recognized
// (parse_upgrade.go's UpgProtoResolve).
type UpgProtoT uint8

const (
	UProtoOther UpgProtoT = iota
	UProtoWebSocket
	UProtoHTTP2
)

// UpgradeProtocol is one token parsed out of an Upgrade header's value.
type UpgradeProtocol struct {
	Name  Span
	Proto UpgProtoT
}

// UpgProtoResolve maps a raw Upgrade protocol token to its known flag.
func UpgProtoResolve(buf []byte, name Span) UpgProtoT {
	n := name.Get(buf)
	switch {
	case len(n) == len("websocket") && bytescase.CmpEq(n, []byte("websocket")):
		return UProtoWebSocket
	case len(n) == len("h2c") && bytescase.CmpEq(n, []byte("h2c")):
		return UProtoHTTP2
	case len(n) == len("http/2.0") && bytescase.CmpEq(n, []byte("http/2.0")):
		return UProtoHTTP2
	}
	return UProtoOther
}

// ParseUpgradeProtocols is an opt-in sideband parser (SPEC_FULL.md §11):
// once Execute reports Upgrade() == true, the caller may hand it the raw
// Upgrade header value(s) it collected via the on_header_value callback to
// get back the individual negotiated protocol tokens. The core parser
// itself never buffers or interprets this value while streaming.
func ParseUpgradeProtocols(buf []byte, region Span) []UpgradeProtocol {
	toks := SplitTokens(buf, region)
	out := make([]UpgradeProtocol, len(toks))
	for i, t := range toks {
		out[i] = UpgradeProtocol{Name: t, Proto: UpgProtoResolve(buf, t)}
	}
	return out
}
