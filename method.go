// Copyright 2026 The httpwire Authors.
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file.

package httpwire

// HTTPMethod is the numeric representation of a recognized request method.
type HTTPMethod uint8

// method types (grounded on the teacher's HTTPMethod enum / Method2Name
// naming convention, extended to the full method set of spec's §4.3).
const (
	MUndef HTTPMethod = iota
	MGet
	MHead
	MPost
	MPut
	MDelete
	MConnect
	MOptions
	MTrace
	MCopy
	MLock
	MMkcol
	MMove
	MPropfind
	MProppatch
	MUnlock
	MReport
	MMkactivity
	MCheckout
	MMerge
	MMSearch
	MNotify
	MSubscribe
	MUnsubscribe
	MPatch
	mMethodCount // sentinel, must be last
)

// Method2Name translates between a numeric HTTPMethod and its ASCII name.
var Method2Name = [mMethodCount][]byte{
	MUndef:       []byte(""),
	MGet:         []byte("GET"),
	MHead:        []byte("HEAD"),
	MPost:        []byte("POST"),
	MPut:         []byte("PUT"),
	MDelete:      []byte("DELETE"),
	MConnect:     []byte("CONNECT"),
	MOptions:     []byte("OPTIONS"),
	MTrace:       []byte("TRACE"),
	MCopy:        []byte("COPY"),
	MLock:        []byte("LOCK"),
	MMkcol:       []byte("MKCOL"),
	MMove:        []byte("MOVE"),
	MPropfind:    []byte("PROPFIND"),
	MProppatch:   []byte("PROPPATCH"),
	MUnlock:      []byte("UNLOCK"),
	MReport:      []byte("REPORT"),
	MMkactivity:  []byte("MKACTIVITY"),
	MCheckout:    []byte("CHECKOUT"),
	MMerge:       []byte("MERGE"),
	MMSearch:     []byte("M-SEARCH"),
	MNotify:      []byte("NOTIFY"),
	MSubscribe:   []byte("SUBSCRIBE"),
	MUnsubscribe: []byte("UNSUBSCRIBE"),
	MPatch:       []byte("PATCH"),
}

// Name returns the ASCII method name.
func (m HTTPMethod) Name() []byte {
	if m >= mMethodCount {
		return Method2Name[MUndef]
	}
	return Method2Name[m]
}

// String implements the Stringer interface.
func (m HTTPMethod) String() string {
	return string(m.Name())
}

// methodFork describes a divergence point in the method trie: while
// matching the literal for "from" at byte index "at", seeing "onChar"
// instead diverts the tentative match to "to" (whose literal agrees with
// "from"'s literal for all indices < at).
type methodFork struct {
	from   HTTPMethod
	at     int
	onChar byte
	to     HTTPMethod
}

// methodForks encodes exactly the fork table described in spec's §4.3.
var methodForks = []methodFork{
	{MConnect, 1, 'H', MCheckout},
	{MConnect, 2, 'P', MCopy},

	{MMkcol, 1, 'O', MMove},
	{MMkcol, 1, 'E', MMerge},
	{MMkcol, 1, '-', MMSearch},
	{MMkcol, 2, 'A', MMkactivity},

	{MPost, 1, 'R', MPropfind},
	{MPost, 1, 'U', MPut},
	{MPost, 1, 'A', MPatch},
	{MPropfind, 4, 'P', MProppatch},

	{MUnlock, 2, 'S', MUnsubscribe},
}

// methodInitial maps the first byte of a request method to its tentative
// (default, before any fork is taken) method.
var methodInitial = map[byte]HTTPMethod{
	'G': MGet,
	'H': MHead,
	'P': MPost,
	'U': MUnlock,
	'D': MDelete,
	'C': MConnect,
	'O': MOptions,
	'T': MTrace,
	'L': MLock,
	'M': MMkcol,
	'R': MReport,
	'N': MNotify,
	'S': MSubscribe,
}

// methodStepper drives the streaming method trie one byte at a time.
type methodStepper struct {
	tentative HTTPMethod
	idx       int
}

// start begins matching at the method's first byte. It returns false if c
// cannot begin any recognized method.
func (ms *methodStepper) start(c byte) bool {
	m, ok := methodInitial[c]
	if !ok {
		return false
	}
	ms.tentative = m
	ms.idx = 1
	return true
}

// step advances the trie by one byte. It returns false if c does not
// continue any recognized method from the current position.
func (ms *methodStepper) step(c byte) bool {
	for _, f := range methodForks {
		if f.from == ms.tentative && f.at == ms.idx && f.onChar == c {
			ms.tentative = f.to
			ms.idx++
			return true
		}
	}
	lit := Method2Name[ms.tentative]
	if ms.idx < len(lit) && lit[ms.idx] == c {
		ms.idx++
		return true
	}
	return false
}

// done reports whether the trie has consumed a complete, unambiguous
// method name (the next byte must be the method/URL separator space).
func (ms *methodStepper) done() (HTTPMethod, bool) {
	lit := Method2Name[ms.tentative]
	if ms.idx == len(lit) {
		return ms.tentative, true
	}
	return MUndef, false
}
