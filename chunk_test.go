// Copyright 2026 The httpwire Authors.
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file.

package httpwire

import "testing"

// from https://en.wikipedia.org/wiki/Chunked_transfer_encoding
var chunkSizeTests = []struct {
	line string
	want int64
}{
	{"4\r\n", 4},
	{"6\r\n", 6},
	{"E\r\n", 0xE},
	{"000e\r\n", 0xe},
	{"0\r\n", 0},
	{"0000\r\n", 0},
	{"1a;foo=bar\r\n", 0x1a},
}

func TestChunkSizeLine(t *testing.T) {
	for _, c := range chunkSizeTests {
		var cp chunkParser
		cp.initSize()
		done := false
		for i := 0; i < len(c.line); i++ {
			d, errc := cp.stepSize(c.line[i])
			if errc != ErrOK {
				t.Fatalf("%q: unexpected error at byte %d: %v", c.line, i, errc)
			}
			if d {
				done = true
				if i != len(c.line)-1 {
					t.Fatalf("%q: done early at byte %d", c.line, i)
				}
			}
		}
		if !done {
			t.Fatalf("%q: never finished", c.line)
		}
		if cp.remaining != c.want {
			t.Fatalf("%q: remaining = %d, want %d", c.line, cp.remaining, c.want)
		}
	}
}

func TestChunkSizeRejectsBadHex(t *testing.T) {
	var cp chunkParser
	cp.initSize()
	if _, errc := cp.stepSize('g'); errc != ErrInvalidChunkSize {
		t.Fatalf("expected ErrInvalidChunkSize, got %v", errc)
	}
}

func TestChunkDataEndStrict(t *testing.T) {
	var cp chunkParser
	cp.strict = true
	cp.initDataEnd()
	if d, errc := cp.stepDataEnd('\n'); errc != ErrLFExpected || d {
		t.Fatalf("strict mode should reject bare LF after chunk data, got done=%v err=%v", d, errc)
	}
}

func TestChunkDataEndLenient(t *testing.T) {
	var cp chunkParser
	cp.initDataEnd()
	if d, errc := cp.stepDataEnd('\n'); errc != ErrOK || !d {
		t.Fatalf("lenient mode should accept bare LF after chunk data, got done=%v err=%v", d, errc)
	}
}
