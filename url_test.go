// Copyright 2026 The httpwire Authors.
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file.

package httpwire

import "testing"

func runURL(t *testing.T, raw string, isConnect, strict bool) (string, urlOutcome) {
	t.Helper()
	var us urlStepper
	us.init(isConnect, strict)
	var last urlOutcome
	for i := 0; i < len(raw); i++ {
		outcome, errc := us.step(raw[i])
		last = outcome
		if outcome == urlBad {
			t.Fatalf("%q: byte %d (%q): unexpected bad, err=%v", raw, i, raw[i], errc)
		}
		if outcome == urlEndSpace || outcome == urlEndCRLF {
			return raw[:i], last
		}
	}
	return raw, last
}

func TestURLForms(t *testing.T) {
	cases := []struct {
		raw       string
		isConnect bool
	}{
		{"/foo/bar?q=1#frag ", false},
		{"* ", false},
		{"http://example.com/path?x=1 ", false},
		{"example.com:443\r\n", true},
	}
	for _, c := range cases {
		if _, outcome := runURL(t, c.raw, c.isConnect, false); outcome != urlEndSpace && outcome != urlEndCRLF {
			t.Errorf("%q: expected url to terminate, got %v", c.raw, outcome)
		}
	}
}

func TestURLRejectsBadHost(t *testing.T) {
	var us urlStepper
	us.init(false, false)
	raw := "http://exa!mple.com/"
	for i := 0; i < len(raw); i++ {
		outcome, _ := us.step(raw[i])
		if raw[i] == '!' {
			if outcome != urlBad {
				t.Fatalf("expected bad host at '!', got %v", outcome)
			}
			return
		}
	}
	t.Fatal("never hit the bad byte")
}

func TestURLStrictRejectsHighBit(t *testing.T) {
	var us urlStepper
	us.init(false, true)
	raw := []byte("/p\xffath ")
	for i, c := range raw {
		outcome, _ := us.step(c)
		if c >= 0x80 {
			if outcome != urlBad {
				t.Fatalf("strict mode should reject high-bit byte at %d, got %v", i, outcome)
			}
			return
		}
	}
	t.Fatal("never hit the high-bit byte")
}

func TestURLUnderscoreHostStrict(t *testing.T) {
	var us urlStepper
	us.init(false, true)
	raw := "http://ex_ample.com/ "
	for i := 0; i < len(raw); i++ {
		outcome, _ := us.step(raw[i])
		if raw[i] == '_' {
			if outcome != urlBad {
				t.Fatalf("strict mode should reject '_' in host, got %v", outcome)
			}
			return
		}
	}
	t.Fatal("never hit the underscore")
}
