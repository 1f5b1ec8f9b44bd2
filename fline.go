// Copyright 2026 The httpwire Authors.
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file.

package httpwire

// lineKind is the resolved grammar of the current message's start line.
type lineKind uint8

const (
	kindEither lineKind = iota
	kindRequest
	kindResponse
)

// slState enumerates every state of the combined request-line/status-line
// DFA (spec's §4.1/§4.2/§4.3). A request line and a status line share the
// "HTTP/major.minor" fragment, so one state machine drives both; slInit
// disambiguates which grammar applies when the Parser was built with
// MessageKind Either.
type slState uint8

const (
	slInit slState = iota
	slHStart // 'H' seen in Either mode: HEAD request vs HTTP/ response literal
	slMethod
	slURL
	slAfterURLSpaces
	slHTTPLit
	slMajorStart
	slMajor
	slDot
	slMinorStart
	slMinor
	slReqLF // request line: saw CR, waiting for LF
	slSpacesBeforeStatus
	slStatus
	slReason
	slRespLF // status line: saw CR, waiting for LF
	slDone
)

const httpLit = "HTTP/"

// slOutcome reports what a byte fed to lineParser.step meant to the
// surrounding Execute loop.
type slOutcome uint8

const (
	slContinue       slOutcome = iota // consumed, no boundary crossed
	slMethodKnown                     // lp.method is now valid (byte was the method/URL separator)
	slURLContentStart                 // this byte is the first byte of the URL span
	slURLDone                         // this byte (a space) ended the URL span
	slHTTP09                          // this byte (CR or LF) ended the URL with no version: HTTP/0.9
	slVersionKnown                    // lp.major/lp.minor are now valid
	slStatusKnown                     // lp.status is now valid (response only)
	slLineDone                        // the start line is fully consumed
	slBad
)

// lineParser drives the start-line DFA. It is embedded in Parser and
// reinitialized before each message (spec's §5: one Parser instance is
// reused across every message of a pipelined connection).
type lineParser struct {
	kind      lineKind
	state     slState
	strict    bool
	ms        methodStepper
	us        urlStepper
	litPos    int
	digits    int
	major     int
	minor     int
	status    int
	method    HTTPMethod
	isConnect bool
}

func (lp *lineParser) init(kind MessageKind, strict bool) {
	*lp = lineParser{strict: strict}
	switch kind {
	case Request:
		lp.kind = kindRequest
	case Response:
		lp.kind = kindResponse
	default:
		lp.kind = kindEither
	}
	lp.state = slInit
}

// step feeds one byte of the start line to the DFA.
func (lp *lineParser) step(c byte) (slOutcome, ErrorCode) {
	switch lp.state {
	case slInit:
		return lp.stepInit(c)
	case slHStart:
		return lp.stepHStart(c)
	case slMethod:
		return lp.stepMethod(c)
	case slURL:
		return lp.stepURL(c)
	case slAfterURLSpaces:
		return lp.stepAfterURLSpaces(c)
	case slHTTPLit:
		return lp.stepHTTPLit(c)
	case slMajorStart:
		return lp.stepMajorStart(c)
	case slMajor:
		return lp.stepMajor(c)
	case slMinorStart:
		return lp.stepMinorStart(c)
	case slMinor:
		return lp.stepMinor(c)
	case slReqLF:
		if c != '\n' {
			return slBad, ErrLFExpected
		}
		lp.state = slDone
		return slLineDone, ErrOK
	case slSpacesBeforeStatus:
		return lp.stepSpacesBeforeStatus(c)
	case slStatus:
		return lp.stepStatus(c)
	case slReason:
		return lp.stepReason(c)
	case slRespLF:
		if c != '\n' {
			return slBad, ErrLFExpected
		}
		lp.state = slDone
		return slLineDone, ErrOK
	}
	return slBad, ErrInvalidInternalState
}

func (lp *lineParser) stepInit(c byte) (slOutcome, ErrorCode) {
	if lp.kind == kindEither {
		if c == 'H' {
			lp.state = slHStart
			lp.ms.tentative = MHead
			lp.ms.idx = 1
			lp.litPos = 1
			return slContinue, ErrOK
		}
		lp.kind = kindRequest
		if !lp.ms.start(c) {
			return slBad, ErrInvalidMethod
		}
		lp.state = slMethod
		return slContinue, ErrOK
	}
	if lp.kind == kindResponse {
		if c != httpLit[0] {
			return slBad, ErrInvalidVersion
		}
		lp.litPos = 1
		lp.state = slHTTPLit
		return slContinue, ErrOK
	}
	if !lp.ms.start(c) {
		return slBad, ErrInvalidMethod
	}
	lp.state = slMethod
	return slContinue, ErrOK
}

func (lp *lineParser) stepHStart(c byte) (slOutcome, ErrorCode) {
	switch c {
	case 'T':
		lp.kind = kindResponse
		lp.litPos = 2
		lp.state = slHTTPLit
		return slContinue, ErrOK
	case 'E':
		lp.kind = kindRequest
		if !lp.ms.step(c) {
			return slBad, ErrInvalidMethod
		}
		lp.state = slMethod
		return slContinue, ErrOK
	default:
		return slBad, ErrInvalidMethod
	}
}

func (lp *lineParser) stepMethod(c byte) (slOutcome, ErrorCode) {
	if lp.ms.step(c) {
		return slContinue, ErrOK
	}
	m, ok := lp.ms.done()
	if !ok || c != ' ' {
		return slBad, ErrInvalidMethod
	}
	lp.method = m
	lp.isConnect = m == MConnect
	lp.us.init(lp.isConnect, lp.strict)
	lp.state = slURL
	return slMethodKnown, ErrOK
}

func (lp *lineParser) stepURL(c byte) (slOutcome, ErrorCode) {
	wasSpaces := lp.us.state == uSpacesBeforeURL
	outcome, errc := lp.us.step(c)
	switch outcome {
	case urlBad:
		return slBad, errc
	case urlEndSpace:
		lp.state = slAfterURLSpaces
		return slURLDone, ErrOK
	case urlEndCRLF:
		lp.state = slDone
		return slHTTP09, ErrOK
	default:
		if wasSpaces && lp.us.state != uSpacesBeforeURL {
			return slURLContentStart, ErrOK
		}
		return slContinue, ErrOK
	}
}

func (lp *lineParser) stepAfterURLSpaces(c byte) (slOutcome, ErrorCode) {
	if c == ' ' {
		if lp.strict {
			return slBad, ErrStrict
		}
		return slContinue, ErrOK
	}
	if c != httpLit[0] {
		return slBad, ErrInvalidVersion
	}
	lp.litPos = 1
	lp.state = slHTTPLit
	return slContinue, ErrOK
}

func (lp *lineParser) stepHTTPLit(c byte) (slOutcome, ErrorCode) {
	if lp.litPos >= len(httpLit) {
		return slBad, ErrInvalidInternalState
	}
	if c != httpLit[lp.litPos] {
		return slBad, ErrInvalidVersion
	}
	lp.litPos++
	if lp.litPos == len(httpLit) {
		lp.state = slMajorStart
	}
	return slContinue, ErrOK
}

func (lp *lineParser) stepMajorStart(c byte) (slOutcome, ErrorCode) {
	if !isDigit(c) {
		return slBad, ErrInvalidVersion
	}
	lp.major = int(c - '0')
	lp.digits = 1
	lp.state = slMajor
	return slContinue, ErrOK
}

func (lp *lineParser) stepMajor(c byte) (slOutcome, ErrorCode) {
	if isDigit(c) {
		lp.digits++
		if lp.digits > 3 {
			return slBad, ErrInvalidVersion
		}
		lp.major = lp.major*10 + int(c-'0')
		return slContinue, ErrOK
	}
	if c != '.' {
		return slBad, ErrInvalidVersion
	}
	lp.state = slMinorStart
	return slContinue, ErrOK
}

func (lp *lineParser) stepMinorStart(c byte) (slOutcome, ErrorCode) {
	if !isDigit(c) {
		return slBad, ErrInvalidVersion
	}
	lp.minor = int(c - '0')
	lp.digits = 1
	lp.state = slMinor
	return slContinue, ErrOK
}

func (lp *lineParser) stepMinor(c byte) (slOutcome, ErrorCode) {
	if isDigit(c) {
		lp.digits++
		if lp.digits > 3 {
			return slBad, ErrInvalidVersion
		}
		lp.minor = lp.minor*10 + int(c-'0')
		return slContinue, ErrOK
	}
	if lp.major > 999 || lp.minor > 999 {
		return slBad, ErrInvalidVersion
	}
	if lp.kind == kindRequest {
		switch {
		case c == '\r':
			lp.state = slReqLF
			return slVersionKnown, ErrOK
		case c == '\n' && !lp.strict:
			lp.state = slDone
			return slLineDone, ErrOK
		}
		return slBad, ErrLFExpected
	}
	if c != ' ' {
		return slBad, ErrInvalidVersion
	}
	lp.state = slSpacesBeforeStatus
	return slVersionKnown, ErrOK
}

func (lp *lineParser) stepSpacesBeforeStatus(c byte) (slOutcome, ErrorCode) {
	if c == ' ' {
		if lp.strict {
			return slBad, ErrStrict
		}
		return slContinue, ErrOK
	}
	if !isDigit(c) {
		return slBad, ErrInvalidStatus
	}
	lp.status = int(c - '0')
	lp.digits = 1
	lp.state = slStatus
	return slContinue, ErrOK
}

func (lp *lineParser) stepStatus(c byte) (slOutcome, ErrorCode) {
	if isDigit(c) {
		lp.digits++
		if lp.digits > 3 {
			return slBad, ErrInvalidStatus
		}
		lp.status = lp.status*10 + int(c-'0')
		return slContinue, ErrOK
	}
	if lp.digits != 3 {
		return slBad, ErrInvalidStatus
	}
	switch {
	case c == ' ':
		lp.state = slReason
		return slStatusKnown, ErrOK
	case c == '\r':
		lp.state = slRespLF
		return slStatusKnown, ErrOK
	case c == '\n' && !lp.strict:
		lp.state = slDone
		return slLineDone, ErrOK
	}
	return slBad, ErrInvalidStatus
}

func (lp *lineParser) stepReason(c byte) (slOutcome, ErrorCode) {
	switch c {
	case '\r':
		lp.state = slRespLF
		return slContinue, ErrOK
	case '\n':
		if lp.strict {
			return slBad, ErrLFExpected
		}
		lp.state = slDone
		return slLineDone, ErrOK
	}
	return slContinue, ErrOK
}
