// Copyright 2026 The httpwire Authors.
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file.

package httpwire

// Span identifies a contiguous byte range [Offs, Offs+Len) inside a
// caller-supplied buffer (the sideband helpers in tok.go, upgrade.go and
// websocket.go return Spans into the buffer they were given). It never
// copies or retains data;
// callers that need to keep a span past the current callback must copy it
// themselves (see spec's data-callback contract).
type Span struct {
	Offs int
	Len  int
}

// Set points s at [start, end).
func (s *Span) Set(start, end int) {
	s.Offs = start
	s.Len = end - start
}

// Reset clears s to the empty span.
func (s *Span) Reset() {
	s.Offs = 0
	s.Len = 0
}

// Extend grows s so that it ends at newEnd (its start is unchanged).
func (s *Span) Extend(newEnd int) {
	s.Len = newEnd - s.Offs
}

// Empty reports whether s has zero length.
func (s Span) Empty() bool {
	return s.Len == 0
}

// EndOffs returns the offset immediately after the span.
func (s Span) EndOffs() int {
	return s.Offs + s.Len
}

// Get returns the slice of buf denoted by s.
func (s Span) Get(buf []byte) []byte {
	return buf[s.Offs : s.Offs+s.Len]
}

// MessageKind selects what grammar Execute expects to parse.
type MessageKind uint8

const (
	// Either lets each message's start line pick Request or Response: a
	// leading "HT" selects Response, anything else Request. Leading
	// whitespace is not skipped; it is rejected as an invalid method.
	Either MessageKind = iota
	Request
	Response
)

func (k MessageKind) String() string {
	switch k {
	case Request:
		return "request"
	case Response:
		return "response"
	default:
		return "either"
	}
}
