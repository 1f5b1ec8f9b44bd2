// Copyright 2026 The httpwire Authors.
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file.

package httpwire

// Flags packs the per-message boolean state described in spec's data model
// into a single bitset (grounded on the teacher's HdrFlags idiom).
type Flags uint8

const (
	FlagChunked Flags = 1 << iota
	FlagKeepAlive
	FlagClose
	FlagTrailing
	FlagUpgrade
	FlagSkipBody
)

// Set turns on bit f.
func (fl *Flags) Set(f Flags) { *fl |= f }

// Clear turns off bit f.
func (fl *Flags) Clear(f Flags) { *fl &^= f }

// Test reports whether bit f is set.
func (fl Flags) Test(f Flags) bool { return fl&f != 0 }
