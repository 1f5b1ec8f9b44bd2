// Copyright 2026 The httpwire Authors.
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file.

package httpwire

// maxHeaderSize bounds the number of header-region bytes a single message
// may carry before Execute reports ErrHeaderOverflow. Counted are the bytes
// of field names, the colon, and each value with its leading whitespace and
// terminating CR (trailers included); LF bytes and the empty line that ends
// a header block are not counted.
const maxHeaderSize = 81920

// phase is the top-level state of Parser.Execute: which region of the
// message the next byte belongs to.
type phase uint8

const (
	phStartLine phase = iota
	phHeaderFieldStart
	phHeaderField
	phHeaderValueStart
	phHeaderValue
	phHeaderValueCR
	phHeadersAlmostDone
	phBodyIdentity
	phBodyIdentityEOF
	phChunkSize
	phChunkData
	phChunkDataEnd
)

// Callbacks are the optional hooks Execute invokes while parsing. Every
// hook returning a nonzero value aborts parsing with the matching sticky
// CB_* ErrorCode (spec's callback-dispatch contract), with one exception:
// outside the Upgrade/CONNECT path, OnHeadersComplete returning exactly 1
// means the message has no body (see callHeadersComplete).
type Callbacks struct {
	OnMessageBegin    func(p *Parser) int
	OnURL             func(p *Parser, data []byte) int
	OnHeaderField     func(p *Parser, data []byte) int
	OnHeaderValue     func(p *Parser, data []byte) int
	OnHeadersComplete func(p *Parser) int
	OnBody            func(p *Parser, data []byte) int
	OnMessageComplete func(p *Parser) int
}

// Parser is a resumable HTTP/1.x message parser. A single instance is
// meant to be reused across every message of a pipelined connection: it
// never allocates or retains the buffer passed to Execute, and every data
// callback hands the caller a slice straight into that buffer.
type Parser struct {
	kind   MessageKind
	strict bool
	dead   bool
	errno  ErrorCode

	cb Callbacks

	msgBegun      bool
	lastKeepAlive bool
	lastUpgrade   bool
	lastSkipBody  bool

	// upgradeBoundary is set for exactly one stepByte return when headers
	// complete on an Upgrade/CONNECT message (spec's §4.1 item 2): Execute
	// must stop right there and hand the remaining bytes back to the
	// caller instead of parsing them as the next message.
	upgradeBoundary bool

	phase phase
	lp    lineParser

	method     HTTPMethod
	statusCode int
	httpMajor  int
	httpMinor  int
	flags      Flags

	nm         nameMatcher
	curHdrType HdrT
	conn       connValueMatcher
	te         teValueMatcher
	clTmp      int64

	haveContentLength bool
	contentLength     int64
	bodyBytesRead     int64
	headerBytes       int

	cp chunkParser

	urlOpen        bool
	urlStart       int
	urlInProgress  bool
	fieldOpen      bool
	fieldStart     int
	valueOpen      bool
	valueStart     int
}

// New creates a Parser expecting the given message grammar. Pass Either to
// let the first byte of the stream decide between a request and a
// response (the Upgrade Negotiation Sideband and most client/server
// pairings know which they expect and should pass Request or Response
// instead).
func New(kind MessageKind) *Parser {
	p := &Parser{kind: kind}
	p.lp.init(kind, false)
	return p
}

// Strict toggles strict-mode parsing: bare LF line endings, '_' in
// hostnames and high-bit URL bytes are rejected, and the parser moves to a
// permanently dead state after a non-persistent message completes.
func (p *Parser) Strict(strict bool) {
	p.strict = strict
	p.lp.strict = strict
}

// SetCallbacks installs the callback set Execute will invoke.
func (p *Parser) SetCallbacks(cb Callbacks) {
	p.cb = cb
}

func (p *Parser) Method() HTTPMethod { return p.method }
func (p *Parser) StatusCode() int    { return p.statusCode }
func (p *Parser) HTTPMajor() int     { return p.httpMajor }
func (p *Parser) HTTPMinor() int     { return p.httpMinor }
func (p *Parser) Errno() ErrorCode   { return p.errno }

// Upgrade reports whether the message that just completed ended in a
// protocol upgrade or a CONNECT tunnel. Like ShouldKeepAlive, it survives
// the per-message reset so a caller can read it right after Execute
// returns. It is updated after OnMessageComplete returns, so from inside
// that message's own callbacks it still reports the previous message.
func (p *Parser) Upgrade() bool { return p.lastUpgrade }

// SkipBody reports whether the message that just completed had no body
// despite its framing headers, per the OnHeadersComplete "return 1" signal.
func (p *Parser) SkipBody() bool        { return p.lastSkipBody }
func (p *Parser) ShouldKeepAlive() bool { return p.lastKeepAlive }
func (p *Parser) ContentLength() (int64, bool) {
	return p.contentLength, p.haveContentLength
}

func (p *Parser) callNoData(fn func(*Parser) int, errc ErrorCode) ErrorCode {
	if fn == nil {
		return ErrOK
	}
	if fn(p) != 0 {
		return errc
	}
	return ErrOK
}

func (p *Parser) callData(fn func(*Parser, []byte) int, data []byte, errc ErrorCode) ErrorCode {
	if fn == nil || len(data) == 0 {
		return ErrOK
	}
	if fn(p, data) != 0 {
		return errc
	}
	return ErrOK
}

func (p *Parser) flushURL(data []byte, end int) ErrorCode {
	if !p.urlOpen {
		return ErrOK
	}
	chunk := data[p.urlStart:end]
	p.urlOpen = false
	return p.callData(p.cb.OnURL, chunk, ErrCBURL)
}

func (p *Parser) flushField(data []byte, end int) ErrorCode {
	if !p.fieldOpen {
		return ErrOK
	}
	chunk := data[p.fieldStart:end]
	p.fieldOpen = false
	return p.callData(p.cb.OnHeaderField, chunk, ErrCBHeaderField)
}

func (p *Parser) flushValue(data []byte, end int) ErrorCode {
	if !p.valueOpen {
		return ErrOK
	}
	chunk := data[p.valueStart:end]
	p.valueOpen = false
	return p.callData(p.cb.OnHeaderValue, chunk, ErrCBHeaderValue)
}

func (p *Parser) fail(errc ErrorCode, consumed int) (int, error) {
	p.errno = errc
	return consumed, &ParseError{Code: errc, Offs: consumed}
}

// Execute feeds data to the parser, returning the number of bytes consumed
// and a non-nil error on the first byte that makes the message invalid or
// a registered callback reject the message. Once Execute returns an error
// every later call is a no-op returning (0, the same error) -- the sticky
// errno contract.
func (p *Parser) Execute(data []byte) (int, error) {
	if p.errno != ErrOK {
		return 0, &ParseError{Code: p.errno}
	}
	if p.dead {
		return 0, &ParseError{Code: ErrClosedConnection}
	}
	if !p.msgBegun {
		if errc := p.callNoData(p.cb.OnMessageBegin, ErrCBMessageBegin); errc != ErrOK {
			return p.fail(errc, 0)
		}
		p.msgBegun = true
	}
	if p.urlOpen {
		p.urlStart = 0
	}
	if p.fieldOpen {
		p.fieldStart = 0
	}
	if p.valueOpen {
		p.valueStart = 0
	}

	i := 0
	for i < len(data) {
		switch p.phase {
		case phBodyIdentity:
			n := len(data) - i
			if remain := p.contentLength - p.bodyBytesRead; int64(n) > remain {
				n = int(remain)
			}
			chunk := data[i : i+n]
			if errc := p.callData(p.cb.OnBody, chunk, ErrCBBody); errc != ErrOK {
				return p.fail(errc, i+n)
			}
			p.bodyBytesRead += int64(n)
			i += n
			if p.bodyBytesRead >= p.contentLength {
				if errc := p.completeMessage(); errc != ErrOK {
					return p.fail(errc, i)
				}
			}
		case phBodyIdentityEOF:
			chunk := data[i:]
			if errc := p.callData(p.cb.OnBody, chunk, ErrCBBody); errc != ErrOK {
				return p.fail(errc, len(data))
			}
			i = len(data)
		case phChunkData:
			n := int64(len(data) - i)
			if n > p.cp.remaining {
				n = p.cp.remaining
			}
			chunk := data[i : i+int(n)]
			if errc := p.callData(p.cb.OnBody, chunk, ErrCBBody); errc != ErrOK {
				return p.fail(errc, i+int(n))
			}
			p.cp.remaining -= n
			i += int(n)
			if p.cp.remaining == 0 {
				p.cp.initDataEnd()
				p.phase = phChunkDataEnd
			}
		default:
			if p.dead {
				return i, &ParseError{Code: ErrClosedConnection, Offs: i}
			}
			if !p.msgBegun {
				if errc := p.callNoData(p.cb.OnMessageBegin, ErrCBMessageBegin); errc != ErrOK {
					return p.fail(errc, i)
				}
				p.msgBegun = true
			}
			c := data[i]
			if errc := p.stepByte(c, data, i); errc != ErrOK {
				return p.fail(errc, i+1)
			}
			i++
			if p.upgradeBoundary {
				p.upgradeBoundary = false
				return i, nil
			}
		}
	}

	if errc := p.flushURL(data, len(data)); errc != ErrOK {
		return p.fail(errc, len(data))
	}
	if errc := p.flushField(data, len(data)); errc != ErrOK {
		return p.fail(errc, len(data))
	}
	if errc := p.flushValue(data, len(data)); errc != ErrOK {
		return p.fail(errc, len(data))
	}
	// The flushes above always close the span; reopen it if the DFA is
	// still logically inside it, so the next Execute call resumes at
	// offset 0 of the next buffer instead of losing the split field.
	if p.urlInProgress {
		p.urlOpen = true
	}
	if p.phase == phHeaderField {
		p.fieldOpen = true
	}
	if p.phase == phHeaderValue {
		p.valueOpen = true
	}
	return len(data), nil
}

// stepByte advances the DFA by exactly one byte outside the bulk-copied
// body phases.
func (p *Parser) stepByte(c byte, data []byte, i int) ErrorCode {
	switch p.phase {
	case phStartLine:
		return p.stepStartLine(c, data, i)
	case phHeaderFieldStart:
		return p.stepHeaderFieldStart(c, data, i)
	case phHeaderField:
		return p.stepHeaderField(c, data, i)
	case phHeaderValueStart:
		return p.stepHeaderValueStart(c, data, i)
	case phHeaderValue:
		return p.stepHeaderValue(c, data, i)
	case phHeaderValueCR:
		if c != '\n' {
			return ErrLFExpected
		}
		p.phase = phHeaderFieldStart
		return ErrOK
	case phHeadersAlmostDone:
		if c != '\n' {
			return ErrLFExpected
		}
		return p.headersComplete()
	case phChunkSize:
		done, errc := p.cp.stepSize(c)
		if errc != ErrOK {
			return errc
		}
		if done {
			if p.cp.remaining == 0 {
				p.flags.Set(FlagTrailing)
				p.headerBytes = 0
				p.phase = phHeaderFieldStart
			} else {
				p.phase = phChunkData
			}
		}
		return ErrOK
	case phChunkDataEnd:
		done, errc := p.cp.stepDataEnd(c)
		if errc != ErrOK {
			return errc
		}
		if done {
			p.cp.initSize()
			p.phase = phChunkSize
		}
		return ErrOK
	}
	return ErrInvalidInternalState
}

func (p *Parser) stepStartLine(c byte, data []byte, i int) ErrorCode {
	outcome, errc := p.lp.step(c)
	if errc != ErrOK {
		return errc
	}
	switch outcome {
	case slURLContentStart:
		p.urlOpen = true
		p.urlStart = i
		p.urlInProgress = true
	case slURLDone:
		p.urlInProgress = false
		if e := p.flushURL(data, i); e != ErrOK {
			return e
		}
	case slHTTP09:
		p.urlInProgress = false
		if e := p.flushURL(data, i); e != ErrOK {
			return e
		}
		p.method = p.lp.method
		return p.finishStartLine09(c)
	case slVersionKnown:
		p.httpMajor, p.httpMinor = p.lp.major, p.lp.minor
	case slStatusKnown:
		p.statusCode = p.lp.status
	case slLineDone:
		p.httpMajor, p.httpMinor = p.lp.major, p.lp.minor
		if p.lp.kind == kindResponse {
			p.statusCode = p.lp.status
		}
		p.method = p.lp.method
		p.phase = phHeaderFieldStart
		p.headerBytes = 0
		p.nm.reset()
	}
	return ErrOK
}

// finishStartLine09 handles a request line that ended (on c, CR or LF)
// right after the URL: the message is HTTP/0.9 and carries no headers, so
// a CR waits for its LF in the header-terminator state and an LF runs the
// headers-complete decision at once.
func (p *Parser) finishStartLine09(c byte) ErrorCode {
	p.httpMajor, p.httpMinor = 0, 9
	p.headerBytes = 0
	if c == '\r' {
		p.phase = phHeadersAlmostDone
		return ErrOK
	}
	return p.headersComplete()
}

func (p *Parser) stepHeaderFieldStart(c byte, data []byte, i int) ErrorCode {
	if c == '\r' {
		p.phase = phHeadersAlmostDone
		return ErrOK
	}
	if c == '\n' {
		if p.strict {
			return ErrLFExpected
		}
		return p.headersComplete()
	}
	if !token[c] {
		return ErrInvalidHeaderToken
	}
	p.headerBytes++
	if p.headerBytes > maxHeaderSize {
		return ErrHeaderOverflow
	}
	p.nm.reset()
	p.nm.step(c)
	p.fieldOpen = true
	p.fieldStart = i
	p.phase = phHeaderField
	return ErrOK
}

func (p *Parser) stepHeaderField(c byte, data []byte, i int) ErrorCode {
	if c == ':' {
		if e := p.flushField(data, i); e != ErrOK {
			return e
		}
		p.curHdrType = p.nm.hdrType()
		p.conn.reset()
		p.te.reset()
		p.clTmp = 0
		p.headerBytes++
		if p.headerBytes > maxHeaderSize {
			return ErrHeaderOverflow
		}
		p.phase = phHeaderValueStart
		return ErrOK
	}
	if !token[c] {
		return ErrInvalidHeaderToken
	}
	p.nm.step(c)
	p.headerBytes++
	if p.headerBytes > maxHeaderSize {
		return ErrHeaderOverflow
	}
	return ErrOK
}

func (p *Parser) stepHeaderValueStart(c byte, data []byte, i int) ErrorCode {
	p.headerBytes++
	if p.headerBytes > maxHeaderSize {
		return ErrHeaderOverflow
	}
	if c == ' ' || c == '\t' {
		return ErrOK
	}
	if c == '\r' {
		p.phase = phHeaderValueCR
		return p.finishHeaderValue()
	}
	if c == '\n' {
		if p.strict {
			return ErrLFExpected
		}
		p.phase = phHeaderFieldStart
		return p.finishHeaderValue()
	}
	p.valueOpen = true
	p.valueStart = i
	p.phase = phHeaderValue
	return p.consumeValueByte(c)
}

func (p *Parser) stepHeaderValue(c byte, data []byte, i int) ErrorCode {
	p.headerBytes++
	if p.headerBytes > maxHeaderSize {
		return ErrHeaderOverflow
	}
	if c == '\r' {
		if e := p.flushValue(data, i); e != ErrOK {
			return e
		}
		if e := p.finishHeaderValue(); e != ErrOK {
			return e
		}
		p.phase = phHeaderValueCR
		return ErrOK
	}
	if c == '\n' {
		if p.strict {
			return ErrLFExpected
		}
		if e := p.flushValue(data, i); e != ErrOK {
			return e
		}
		if e := p.finishHeaderValue(); e != ErrOK {
			return e
		}
		p.phase = phHeaderFieldStart
		return ErrOK
	}
	return p.consumeValueByte(c)
}

// consumeValueByte feeds one header-value byte to the streaming recognizer
// matching p.curHdrType, if any (spec's §4.5).
func (p *Parser) consumeValueByte(c byte) ErrorCode {
	switch p.curHdrType {
	case HdrConnection:
		p.conn.step(c)
	case HdrTransferEncoding:
		p.te.step(c)
	case HdrContentLength:
		nv, errc := addContentLengthDigit(p.clTmp, c)
		if errc != ErrOK {
			return errc
		}
		p.clTmp = nv
	}
	return ErrOK
}

// finishHeaderValue applies the recognized header's effect once its value
// has ended (CR/LF reached).
func (p *Parser) finishHeaderValue() ErrorCode {
	switch p.curHdrType {
	case HdrConnection:
		switch p.conn.result() {
		case connTokKeepAlive:
			p.flags.Set(FlagKeepAlive)
		case connTokClose:
			p.flags.Set(FlagClose)
		}
	case HdrTransferEncoding:
		if p.te.done() {
			p.flags.Set(FlagChunked)
		}
	case HdrContentLength:
		if p.haveContentLength && p.clTmp != p.contentLength {
			return ErrInvalidContentLength
		}
		p.contentLength = p.clTmp
		p.haveContentLength = true
	case HdrUpgrade:
		p.flags.Set(FlagUpgrade)
	}
	return ErrOK
}

// callHeadersComplete invokes OnHeadersComplete and translates its special
// "no body" signal (exactly 1, per spec's §4.6 callback contract) from an
// ordinary nonzero-abort return.
func (p *Parser) callHeadersComplete() (skip bool, errc ErrorCode) {
	fn := p.cb.OnHeadersComplete
	if fn == nil {
		return false, ErrOK
	}
	switch fn(p) {
	case 0:
		return false, ErrOK
	case 1:
		return true, ErrOK
	default:
		return false, ErrCBHeadersComplete
	}
}

// headersComplete runs the body-framing decision tree (spec's §5): it is
// reached both at the end of a message's own header block and at the end
// of a chunked trailer block (FlagTrailing), where it instead always
// completes the message.
func (p *Parser) headersComplete() ErrorCode {
	if p.flags.Test(FlagTrailing) {
		return p.completeMessage()
	}

	// Upgrade/CONNECT short-circuits the ordinary body-framing decision
	// entirely: headers_complete and message_complete fire back to back and
	// Execute stops right here, handing the tunnelled bytes back to the
	// caller instead of parsing them as another message (spec's §4.1 item 2).
	if p.flags.Test(FlagUpgrade) || p.method == MConnect {
		p.flags.Set(FlagUpgrade)
		if errc := p.callNoData(p.cb.OnHeadersComplete, ErrCBHeadersComplete); errc != ErrOK {
			return errc
		}
		if errc := p.completeMessage(); errc != ErrOK {
			return errc
		}
		p.upgradeBoundary = true
		return ErrOK
	}

	skip, errc := p.callHeadersComplete()
	if errc != ErrOK {
		return errc
	}
	if skip {
		p.flags.Set(FlagSkipBody)
	}

	switch {
	case skip:
		return p.completeMessage()
	case p.flags.Test(FlagChunked):
		p.cp = chunkParser{strict: p.strict}
		p.cp.initSize()
		p.phase = phChunkSize
		return ErrOK
	case p.haveContentLength:
		if p.contentLength == 0 {
			return p.completeMessage()
		}
		p.bodyBytesRead = 0
		p.phase = phBodyIdentity
		return ErrOK
	case p.lp.kind == kindResponse:
		p.phase = phBodyIdentityEOF
		return ErrOK
	default:
		return p.completeMessage()
	}
}

// shouldKeepAliveInternal implements spec's §8 formula exactly:
// (HTTP/1.1+ ∧ ¬CLOSE) ∨ (HTTP/1.0 ∧ KEEP_ALIVE). CLOSE only ever overrides
// the 1.1+ branch; an HTTP/1.0 message's persistence depends solely on
// whether KEEP_ALIVE was seen, matching http_should_keep_alive-style
// reference implementations.
func (p *Parser) shouldKeepAliveInternal() bool {
	if p.httpMajor > 1 || (p.httpMajor == 1 && p.httpMinor >= 1) {
		return !p.flags.Test(FlagClose)
	}
	return p.flags.Test(FlagKeepAlive)
}

// completeMessage fires on_message_complete and resets the Parser for the
// next message on the same connection (spec's pipelining requirement: one
// Parser instance, reused message after message).
func (p *Parser) completeMessage() ErrorCode {
	if errc := p.callNoData(p.cb.OnMessageComplete, ErrCBMessageComplete); errc != ErrOK {
		return errc
	}
	keepAlive := p.shouldKeepAliveInternal()

	if !keepAlive && p.strict {
		p.dead = true
	}

	// Everything below is reset for the next pipelined message. Method,
	// StatusCode, HTTPMajor and HTTPMinor are deliberately left alone: a
	// caller inspecting them right after Execute returns (e.g. to log or
	// route the message that just completed) should still see this
	// message's values, and they get overwritten naturally as soon as the
	// next message's start line is parsed. Upgrade and SkipBody live in
	// p.flags, which *does* get cleared below (its other bits must not leak
	// into the next message's framing decisions), so their values are
	// snapshotted into lastUpgrade/lastSkipBody first.
	p.lastKeepAlive = keepAlive
	p.lastUpgrade = p.flags.Test(FlagUpgrade)
	p.lastSkipBody = p.flags.Test(FlagSkipBody)
	p.msgBegun = false
	p.phase = phStartLine
	p.lp.init(p.kind, p.strict)

	p.flags = 0
	p.nm.reset()
	p.curHdrType = HdrOther
	p.conn = connValueMatcher{}
	p.te = teValueMatcher{}
	p.clTmp = 0

	p.haveContentLength = false
	p.contentLength = 0
	p.bodyBytesRead = 0
	p.headerBytes = 0

	p.cp = chunkParser{}

	p.urlOpen = false
	p.urlStart = 0
	p.urlInProgress = false
	p.fieldOpen = false
	p.fieldStart = 0
	p.valueOpen = false
	p.valueStart = 0
	return ErrOK
}

// Finish signals a clean connection close, completing an EOF-delimited
// body or reporting ErrInvalidEOFState if the stream ended mid-message.
func (p *Parser) Finish() error {
	if p.errno != ErrOK {
		return &ParseError{Code: p.errno}
	}
	if p.dead {
		return nil
	}
	switch {
	case p.phase == phStartLine && (!p.msgBegun || p.lp.state == slInit):
		return nil
	case p.phase == phBodyIdentityEOF:
		if errc := p.completeMessage(); errc != ErrOK {
			p.errno = errc
			return &ParseError{Code: errc}
		}
		return nil
	}
	p.errno = ErrInvalidEOFState
	return &ParseError{Code: ErrInvalidEOFState}
}
