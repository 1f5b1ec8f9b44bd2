// Copyright 2026 The httpwire Authors.
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file.

package httpwire

// urlState enumerates the URL sub-DFA states of spec's §4.2, embedded
// inside the request start-line DFA.
type urlState uint8

const (
	uSpacesBeforeURL urlState = iota
	uSchema
	uSchemaSlash
	uSchemaSlashSlash
	uHost
	uPort
	uPath
	uQueryStringStart
	uQueryString
	uFragmentStart
	uFragment
	uDone // URL terminated (by space, CR or LF)
)

// urlOutcome reports what the caller should do after feeding one byte to
// the URL stepper.
type urlOutcome uint8

const (
	urlContinue  urlOutcome = iota // byte consumed, URL still open
	urlEndSpace                    // byte was the space after the URL
	urlEndCRLF                     // byte was CR/LF: HTTP/0.9, no version follows
	urlBad                         // byte is not allowed here
)

// urlStepper drives the URL sub-DFA one byte at a time.
type urlStepper struct {
	state     urlState
	isConnect bool
	strict    bool
}

func (u *urlStepper) init(isConnect, strict bool) {
	u.state = uSpacesBeforeURL
	u.isConnect = isConnect
	u.strict = strict
}

// hostChar reports whether c is allowed inside HOST.
func hostChar(c byte, strict bool) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		return true
	case c == '.' || c == '-':
		return true
	case c == '_':
		return !strict
	}
	return false
}

// urlChar reports whether c is an acceptable byte inside path/query/
// fragment per the normalURLChar table, honoring strict mode's rejection
// of high-bit bytes.
func urlChar(c byte, strict bool) bool {
	if c >= 0x80 {
		return !strict
	}
	return normalURLChar[c]
}

// step advances the URL DFA by one byte, returning the resulting outcome
// and (on urlBad) the specific error code to report.
func (u *urlStepper) step(c byte) (urlOutcome, ErrorCode) {
	if c == ' ' {
		switch u.state {
		case uSpacesBeforeURL:
			return urlContinue, ErrOK
		default:
			u.state = uDone
			return urlEndSpace, ErrOK
		}
	}
	if c == '\r' || c == '\n' {
		if u.state == uSpacesBeforeURL {
			return urlBad, ErrInvalidURL
		}
		u.state = uDone
		return urlEndCRLF, ErrOK
	}

	switch u.state {
	case uSpacesBeforeURL:
		if u.isConnect {
			u.state = uHost
			return u.step(c)
		}
		switch c {
		case '/':
			u.state = uPath
			return urlContinue, ErrOK
		case '*':
			u.state = uPath
			return urlContinue, ErrOK
		default:
			if isAlpha(c) {
				u.state = uSchema
				return urlContinue, ErrOK
			}
			return urlBad, ErrInvalidURL
		}
	case uSchema:
		if isAlpha(c) || isDigit(c) || c == '+' || c == '-' || c == '.' {
			return urlContinue, ErrOK
		}
		if c == ':' {
			u.state = uSchemaSlash
			return urlContinue, ErrOK
		}
		return urlBad, ErrInvalidURL
	case uSchemaSlash:
		if c == '/' {
			u.state = uSchemaSlashSlash
			return urlContinue, ErrOK
		}
		return urlBad, ErrInvalidURL
	case uSchemaSlashSlash:
		if c == '/' {
			u.state = uHost
			return urlContinue, ErrOK
		}
		return urlBad, ErrInvalidURL
	case uHost:
		switch c {
		case ':':
			u.state = uPort
			return urlContinue, ErrOK
		case '/':
			u.state = uPath
			return urlContinue, ErrOK
		case '?':
			u.state = uQueryStringStart
			return urlContinue, ErrOK
		case '#':
			u.state = uFragmentStart
			return urlContinue, ErrOK
		default:
			if hostChar(c, u.strict) {
				return urlContinue, ErrOK
			}
			return urlBad, ErrInvalidHost
		}
	case uPort:
		switch c {
		case '/':
			u.state = uPath
			return urlContinue, ErrOK
		case '?':
			u.state = uQueryStringStart
			return urlContinue, ErrOK
		case '#':
			u.state = uFragmentStart
			return urlContinue, ErrOK
		default:
			if isDigit(c) {
				return urlContinue, ErrOK
			}
			return urlBad, ErrInvalidPort
		}
	case uPath:
		switch c {
		case '?':
			u.state = uQueryStringStart
			return urlContinue, ErrOK
		case '#':
			u.state = uFragmentStart
			return urlContinue, ErrOK
		default:
			if urlChar(c, u.strict) {
				return urlContinue, ErrOK
			}
			return urlBad, ErrInvalidPath
		}
	case uQueryStringStart, uQueryString:
		if c == '#' {
			u.state = uFragmentStart
			return urlContinue, ErrOK
		}
		if urlChar(c, u.strict) {
			u.state = uQueryString
			return urlContinue, ErrOK
		}
		return urlBad, ErrInvalidQueryString
	case uFragmentStart, uFragment:
		if urlChar(c, u.strict) {
			u.state = uFragment
			return urlContinue, ErrOK
		}
		return urlBad, ErrInvalidFragment
	}
	return urlBad, ErrInvalidInternalState
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
