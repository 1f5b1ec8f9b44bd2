// Copyright 2026 The httpwire Authors.
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file.

package httpwire

import "testing"

func TestMethodStepperAllNames(t *testing.T) {
	for m := MGet; m < mMethodCount; m++ {
		name := Method2Name[m]
		var ms methodStepper
		if !ms.start(name[0]) {
			t.Fatalf("%s: start failed on %q", name, name[0])
		}
		for i := 1; i < len(name); i++ {
			if !ms.step(name[i]) {
				t.Fatalf("%s: step failed at byte %d (%q)", name, i, name[i])
			}
		}
		got, ok := ms.done()
		if !ok || got != m {
			t.Fatalf("%s: done() = %v,%v want %v,true", name, got, ok, m)
		}
	}
}

func TestMethodStepperRejectsGarbage(t *testing.T) {
	var ms methodStepper
	if ms.start('Z') {
		t.Fatal("start should reject a byte with no method")
	}
	if !ms.start('G') {
		t.Fatal("start should accept 'G'")
	}
	if ms.step('X') {
		t.Fatal("step should reject a byte that doesn't continue GET")
	}
}

func TestMethodForksDiverge(t *testing.T) {
	cases := []struct {
		name string
		want HTTPMethod
	}{
		{"CONNECT", MConnect},
		{"CHECKOUT", MCheckout},
		{"COPY", MCopy},
		{"MKCOL", MMkcol},
		{"MOVE", MMove},
		{"MERGE", MMerge},
		{"M-SEARCH", MMSearch},
		{"MKACTIVITY", MMkactivity},
		{"POST", MPost},
		{"PROPFIND", MPropfind},
		{"PUT", MPut},
		{"PATCH", MPatch},
		{"PROPPATCH", MProppatch},
		{"UNLOCK", MUnlock},
		{"UNSUBSCRIBE", MUnsubscribe},
	}
	for _, c := range cases {
		var ms methodStepper
		if !ms.start(c.name[0]) {
			t.Fatalf("%s: start failed", c.name)
		}
		for i := 1; i < len(c.name); i++ {
			if !ms.step(c.name[i]) {
				t.Fatalf("%s: step failed at %d", c.name, i)
			}
		}
		got, ok := ms.done()
		if !ok || got != c.want {
			t.Fatalf("%s: got %v,%v want %v,true", c.name, got, ok, c.want)
		}
	}
}
