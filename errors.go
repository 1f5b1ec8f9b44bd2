// Copyright 2026 The httpwire Authors.
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file.

package httpwire

// ErrorCode is the sticky error taxonomy reported by a Parser. The zero
// value, ErrOK, means "no error". Once Execute observes any other value it
// becomes permanent for the lifetime of the Parser (see Parser.Errno).
type ErrorCode uint8

const (
	ErrOK ErrorCode = iota

	// callback-refused errors (a registered callback returned non-zero)
	ErrCBMessageBegin
	ErrCBURL
	ErrCBHeaderField
	ErrCBHeaderValue
	ErrCBHeadersComplete
	ErrCBBody
	ErrCBMessageComplete

	// framing errors
	ErrInvalidEOFState
	ErrHeaderOverflow
	ErrClosedConnection

	// syntactic errors
	ErrInvalidVersion
	ErrInvalidStatus
	ErrInvalidMethod
	ErrInvalidURL
	ErrInvalidHost
	ErrInvalidPort
	ErrInvalidPath
	ErrInvalidQueryString
	ErrInvalidFragment
	ErrLFExpected
	ErrInvalidHeaderToken
	ErrInvalidContentLength
	ErrInvalidChunkSize
	ErrInvalidConstant
	ErrInvalidInternalState
	ErrStrict

	ErrUnknown

	// internal-only sentinels: never surface as a sticky errno. No code in
	// this package produces them; suspend/resume between Execute calls is
	// carried by the parser's phase and open-span state instead.
	errMoreBytes
	errEndOfHeader
	errMoreValues
)

var errorNames = [...]string{
	ErrOK:                   "OK",
	ErrCBMessageBegin:       "CB_message_begin",
	ErrCBURL:                "CB_url",
	ErrCBHeaderField:        "CB_header_field",
	ErrCBHeaderValue:        "CB_header_value",
	ErrCBHeadersComplete:    "CB_headers_complete",
	ErrCBBody:               "CB_body",
	ErrCBMessageComplete:    "CB_message_complete",
	ErrInvalidEOFState:      "INVALID_EOF_STATE",
	ErrHeaderOverflow:       "HEADER_OVERFLOW",
	ErrClosedConnection:     "CLOSED_CONNECTION",
	ErrInvalidVersion:       "INVALID_VERSION",
	ErrInvalidStatus:        "INVALID_STATUS",
	ErrInvalidMethod:        "INVALID_METHOD",
	ErrInvalidURL:           "INVALID_URL",
	ErrInvalidHost:          "INVALID_HOST",
	ErrInvalidPort:          "INVALID_PORT",
	ErrInvalidPath:          "INVALID_PATH",
	ErrInvalidQueryString:   "INVALID_QUERY_STRING",
	ErrInvalidFragment:      "INVALID_FRAGMENT",
	ErrLFExpected:           "LF_EXPECTED",
	ErrInvalidHeaderToken:   "INVALID_HEADER_TOKEN",
	ErrInvalidContentLength: "INVALID_CONTENT_LENGTH",
	ErrInvalidChunkSize:     "INVALID_CHUNK_SIZE",
	ErrInvalidConstant:      "INVALID_CONSTANT",
	ErrInvalidInternalState: "INVALID_INTERNAL_STATE",
	ErrStrict:               "STRICT",
	ErrUnknown:              "UNKNOWN",
}

var errorDescriptions = [...]string{
	ErrOK:                   "success",
	ErrCBMessageBegin:       "the on_message_begin callback failed",
	ErrCBURL:                "the on_url callback failed",
	ErrCBHeaderField:        "the on_header_field callback failed",
	ErrCBHeaderValue:        "the on_header_value callback failed",
	ErrCBHeadersComplete:    "the on_headers_complete callback failed",
	ErrCBBody:               "the on_body callback failed",
	ErrCBMessageComplete:    "the on_message_complete callback failed",
	ErrInvalidEOFState:      "stream ended at an unexpected time",
	ErrHeaderOverflow:       "too many header bytes seen; overflow detected",
	ErrClosedConnection:     "data received after completed connection: close message",
	ErrInvalidVersion:       "invalid HTTP version",
	ErrInvalidStatus:        "invalid HTTP status code",
	ErrInvalidMethod:        "invalid HTTP method",
	ErrInvalidURL:           "invalid URL",
	ErrInvalidHost:          "invalid host",
	ErrInvalidPort:          "invalid port",
	ErrInvalidPath:          "invalid path",
	ErrInvalidQueryString:   "invalid query string",
	ErrInvalidFragment:      "invalid fragment",
	ErrLFExpected:           "LF character expected",
	ErrInvalidHeaderToken:   "invalid character in header",
	ErrInvalidContentLength: "invalid character in Content-Length header",
	ErrInvalidChunkSize:     "invalid character in chunk size header",
	ErrInvalidConstant:      "invalid constant string",
	ErrInvalidInternalState: "parser is in an inconsistent internal state",
	ErrStrict:               "strict mode assertion failed",
	ErrUnknown:              "an unknown error occurred",
}

// Name returns the short, stable taxonomy name (e.g. "HEADER_OVERFLOW").
func (e ErrorCode) Name() string {
	if int(e) < len(errorNames) && errorNames[e] != "" {
		return errorNames[e]
	}
	return "UNKNOWN"
}

// Description returns a short human-readable description of e.
func (e ErrorCode) Description() string {
	if int(e) < len(errorDescriptions) && errorDescriptions[e] != "" {
		return errorDescriptions[e]
	}
	return errorDescriptions[ErrUnknown]
}

// Error implements the error interface.
func (e ErrorCode) Error() string {
	return e.Name() + ": " + e.Description()
}

// ParseError wraps a sticky ErrorCode together with the byte offset at
// which it was detected, returned from Execute.
type ParseError struct {
	Code ErrorCode
	Offs int
}

func (e *ParseError) Error() string {
	return e.Code.Error()
}

func (e *ParseError) Unwrap() error { return e.Code }
