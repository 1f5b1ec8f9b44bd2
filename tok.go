// Copyright 2026 The httpwire Authors.
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file.

package httpwire

// Token-list helpers used by the buffered, opt-in sideband parsers
// (Upgrade/WebSocket negotiation -- see SPEC_FULL.md §11).
// Grounded on the teacher's parse_tok.go token/param splitting, adapted to
// operate on Span rather than PField since these run post-hoc over an
// already-delimited slice instead of a live byte stream.

func isOWS(c byte) bool { return c == ' ' || c == '\t' }

func trimOWS(buf []byte, s Span) Span {
	start, end := s.Offs, s.EndOffs()
	for start < end && isOWS(buf[start]) {
		start++
	}
	for end > start && isOWS(buf[end-1]) {
		end--
	}
	return Span{Offs: start, Len: end - start}
}

// splitOn splits buf[region] on sep, trimming OWS from each piece and
// dropping empty pieces (consecutive separators, leading/trailing OWS).
func splitOn(buf []byte, region Span, sep byte) []Span {
	var out []Span
	start := region.Offs
	end := region.EndOffs()
	for i := start; i <= end; i++ {
		if i == end || buf[i] == sep {
			piece := trimOWS(buf, Span{Offs: start, Len: i - start})
			if !piece.Empty() {
				out = append(out, piece)
			}
			start = i + 1
		}
	}
	return out
}

// SplitTokens splits a comma-separated list (e.g. a Transfer-Encoding or
// Upgrade header value) into its non-empty, trimmed tokens.
func SplitTokens(buf []byte, region Span) []Span {
	return splitOn(buf, region, ',')
}

// SplitParams splits a single token's ";"-separated parameter tail (e.g.
// "chunked;foo=bar") into its non-empty, trimmed pieces, the first of
// which is the bare token name.
func SplitParams(buf []byte, region Span) []Span {
	return splitOn(buf, region, ';')
}

// SplitParam splits one "name=value" (or bare "name") parameter piece on
// its first '='.
func SplitParam(buf []byte, piece Span) (name, value Span, hasValue bool) {
	end := piece.EndOffs()
	for i := piece.Offs; i < end; i++ {
		if buf[i] == '=' {
			name = trimOWS(buf, Span{Offs: piece.Offs, Len: i - piece.Offs})
			value = trimOWS(buf, Span{Offs: i + 1, Len: end - i - 1})
			return name, value, true
		}
	}
	return trimOWS(buf, piece), Span{}, false
}
