// Copyright 2026 The httpwire Authors.
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file.

package httpwire

import "testing"

func matchName(name string) HdrT {
	var nm nameMatcher
	nm.reset()
	for i := 0; i < len(name); i++ {
		nm.step(name[i])
	}
	return nm.hdrType()
}

func TestNameMatcherRecognizesFramingHeaders(t *testing.T) {
	cases := map[string]HdrT{
		"connection":        HdrConnection,
		"Connection":         HdrConnection,
		"proxy-connection":   HdrConnection,
		"Proxy-Connection":   HdrConnection,
		"content-length":     HdrContentLength,
		"Content-Length":     HdrContentLength,
		"transfer-encoding":  HdrTransferEncoding,
		"Transfer-Encoding":  HdrTransferEncoding,
		"upgrade":            HdrUpgrade,
		"Upgrade":            HdrUpgrade,
		"x-custom-header":    HdrOther,
		"content-length-foo": HdrOther,
		"conte":              HdrOther,
	}
	for name, want := range cases {
		if got := matchName(name); got != want {
			t.Errorf("matchName(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestNameMatcherTrailingSpaceKeepsMatch(t *testing.T) {
	var nm nameMatcher
	nm.reset()
	for _, c := range "connection  " {
		nm.step(byte(c))
	}
	if got := nm.hdrType(); got != HdrConnection {
		t.Fatalf("trailing spaces should keep the match, got %v", got)
	}
}

func TestConnValueMatcher(t *testing.T) {
	cases := map[string]connToken{
		"keep-alive": connTokKeepAlive,
		"Keep-Alive": connTokKeepAlive,
		"close":      connTokClose,
		"Close":      connTokClose,
		"upgrade":    connTokNone,
		"close, foo": connTokNone,
	}
	for v, want := range cases {
		var m connValueMatcher
		for i := 0; i < len(v); i++ {
			m.step(v[i])
		}
		if got := m.result(); got != want {
			t.Errorf("connValueMatcher(%q) = %v, want %v", v, got, want)
		}
	}
}

func TestTEValueMatcherLastTokenChunked(t *testing.T) {
	cases := map[string]bool{
		"chunked":             true,
		"gzip, chunked":       true,
		"chunked, gzip":       false,
		"gzip":                false,
		"chunked;foo=bar":     true,
		"a, b, c, chunked":    true,
	}
	for v, want := range cases {
		var m teValueMatcher
		for i := 0; i < len(v); i++ {
			m.step(v[i])
		}
		if got := m.done(); got != want {
			t.Errorf("teValueMatcher(%q).done() = %v, want %v", v, got, want)
		}
	}
}

func TestContentLengthDigits(t *testing.T) {
	var cur int64
	var errc ErrorCode
	for _, c := range "12345" {
		cur, errc = addContentLengthDigit(cur, byte(c))
		if errc != ErrOK {
			t.Fatalf("unexpected error at %q: %v", c, errc)
		}
	}
	if cur != 12345 {
		t.Fatalf("got %d want 12345", cur)
	}
	if _, errc = addContentLengthDigit(cur, 'x'); errc != ErrInvalidContentLength {
		t.Fatalf("expected ErrInvalidContentLength, got %v", errc)
	}
}
