// Copyright 2026 The httpwire Authors.
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file.

package httpwire

import (
	"math/bits"

	"github.com/intuitivelabs/bytescase"
)

// HdrT identifies the small set of framing-relevant header names the core
// recognizes by streaming prefix match (spec's §4.4). Every other header
// name is HdrOther -- the core never buffers it, it only tracks the
// header-field span for the caller's on_header_field callback.
type HdrT uint8

const (
	HdrOther HdrT = iota
	HdrConnection
	HdrContentLength
	HdrTransferEncoding
	HdrUpgrade
)

func lowerByte(c byte) byte {
	return bytescase.ByteToLower(c)
}

// nameCandidate is one literal the header-name recognizer streams against.
// Grounded on the teacher's hdrName2Type table (parse_headers.go), extended
// with proxy-connection as an explicit alias of connection per spec's
// §4.4 note.
type nameCandidate struct {
	name []byte
	typ  HdrT
}

var nameCandidates = [...]nameCandidate{
	{[]byte("connection"), HdrConnection},
	{[]byte("proxy-connection"), HdrConnection},
	{[]byte("content-length"), HdrContentLength},
	{[]byte("transfer-encoding"), HdrTransferEncoding},
	{[]byte("upgrade"), HdrUpgrade},
}

// nameMatcher runs concurrently with the HEADER_FIELD DFA state, streaming
// a prefix match against nameCandidates without ever buffering the field
// name (spec §4.4).
type nameMatcher struct {
	mask       uint8 // bit i set => nameCandidates[i] still possible
	idx        int
	collapsed  bool
	matchedIdx int // -1 until exactly one candidate matches in full
}

func (nm *nameMatcher) reset() {
	nm.mask = (1 << len(nameCandidates)) - 1
	nm.idx = 0
	nm.collapsed = false
	nm.matchedIdx = -1
}

// step feeds the next byte of the header field name.
func (nm *nameMatcher) step(c byte) {
	if nm.collapsed {
		return
	}
	if nm.matchedIdx >= 0 {
		// spec §4.4: trailing spaces after a matched name keep the match;
		// any other byte (besides the colon, handled by the caller before
		// it ever reaches here) collapses the match.
		if c != ' ' {
			nm.collapsed = true
			nm.matchedIdx = -1
		}
		return
	}
	lc := lowerByte(c)
	var newMask uint8
	for i := range nameCandidates {
		if nm.mask&(1<<uint(i)) == 0 {
			continue
		}
		cand := nameCandidates[i].name
		if nm.idx < len(cand) && cand[nm.idx] == lc {
			newMask |= 1 << uint(i)
		}
	}
	nm.idx++
	nm.mask = newMask
	if newMask == 0 {
		nm.collapsed = true
		return
	}
	if bits.OnesCount8(newMask) == 1 {
		i := bits.TrailingZeros8(newMask)
		if len(nameCandidates[i].name) == nm.idx {
			nm.matchedIdx = i
		}
	}
}

// hdrType returns the recognized header type, or HdrOther if the name
// never matched (or stopped matching) one of nameCandidates.
func (nm *nameMatcher) hdrType() HdrT {
	if nm.matchedIdx >= 0 {
		return nameCandidates[nm.matchedIdx].typ
	}
	return HdrOther
}

// --- Connection / Upgrade header value recognizer (spec §4.5) ---
// Whole-value match only: "Connection: close, Upgrade" is deliberately not
// recognized (spec §9's documented limitation), because comma anywhere in
// the value breaks the literal match below.

var keepAliveLit = []byte("keep-alive")
var closeLit = []byte("close")

type connToken uint8

const (
	connTokNone connToken = iota
	connTokKeepAlive
	connTokClose
)

// connValueMatcher streams a whole-value match of the Connection header
// against "keep-alive" / "close".
type connValueMatcher struct {
	started bool
	kind    connToken
	pos     int // -1 once the match has failed
}

func (m *connValueMatcher) reset() { *m = connValueMatcher{} }

func (m *connValueMatcher) step(c byte) {
	lc := lowerByte(c)
	if !m.started {
		m.started = true
		switch lc {
		case 'k':
			m.kind = connTokKeepAlive
			m.pos = 1
		case 'c':
			m.kind = connTokClose
			m.pos = 1
		default:
			m.pos = -1
		}
		return
	}
	if m.pos < 0 {
		return
	}
	lit := m.literal()
	if m.pos < len(lit) && lit[m.pos] == lc {
		m.pos++
	} else {
		m.pos = -1
	}
}

func (m *connValueMatcher) literal() []byte {
	switch m.kind {
	case connTokKeepAlive:
		return keepAliveLit
	case connTokClose:
		return closeLit
	}
	return nil
}

// result reports the fully-matched token, if any, once the value ends.
func (m *connValueMatcher) result() connToken {
	lit := m.literal()
	if lit != nil && m.pos == len(lit) {
		return m.kind
	}
	return connTokNone
}

// --- Transfer-Encoding header value recognizer (spec §4.5, §4.1) ---
// The body-framing decision needs to know whether "chunked" is the *last*
// encoding in a (possibly comma-separated) Transfer-Encoding value, so
// unlike Connection this tracks token boundaries rather than a single
// whole-value match (see SPEC_FULL.md §4, grounded on parse_tr_enc.go's
// ParseAllTrEncValues/TrEncResolve last-value tracking).
var chunkedLit = []byte("chunked")

type teValueMatcher struct {
	pos            int // progress into chunkedLit for the current token, -1 on mismatch
	sawTokenChar   bool
	frozen         bool // inside a ";param" tail of the current token
	lastWasChunked bool
}

func (t *teValueMatcher) reset() { *t = teValueMatcher{} }

func (t *teValueMatcher) step(c byte) {
	switch {
	case c == ' ' || c == '\t':
		return
	case c == ',':
		t.endToken()
		t.pos, t.sawTokenChar, t.frozen = 0, false, false
	case c == ';':
		t.frozen = true
	default:
		if t.frozen {
			return
		}
		t.sawTokenChar = true
		lc := lowerByte(c)
		if t.pos >= 0 && t.pos < len(chunkedLit) && chunkedLit[t.pos] == lc {
			t.pos++
		} else {
			t.pos = -1
		}
	}
}

func (t *teValueMatcher) endToken() {
	t.lastWasChunked = t.sawTokenChar && t.pos == len(chunkedLit)
}

// done finalizes matching at the end of the header value (an implicit
// token boundary) and reports whether "chunked" was the last encoding.
func (t *teValueMatcher) done() bool {
	t.endToken()
	return t.lastWasChunked
}

// --- Content-Length value accumulator (spec §4.5, §9 overflow guard) ---

// addContentLengthDigit folds one decimal digit into cur, detecting
// overflow (the Open Question in spec §9 resolved by adding this guard).
func addContentLengthDigit(cur int64, c byte) (int64, ErrorCode) {
	if c < '0' || c > '9' {
		return cur, ErrInvalidContentLength
	}
	d := int64(c - '0')
	const maxOK = (1<<63 - 1 - 9) / 10
	if cur > maxOK {
		return cur, ErrInvalidContentLength
	}
	return cur*10 + d, ErrOK
}
