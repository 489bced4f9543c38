// Package scan implements the strict JSON tokenizer shared by the public
// parse entry points and the pluggable source drivers.
package scan

import (
	"io"
)

// Kind represents token kinds produced by a source.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

// Token represents a streaming token with its input offset. String and key
// payloads carry the raw text read between the quotes; escape sequences are
// preserved verbatim. Number payloads carry the raw lexeme.
type Token struct {
	Kind   Kind
	String string
	Number string
	Bool   bool
	Offset int64
}

// TokenSource is the minimal interface required by the tree builder.
type TokenSource interface {
	NextToken() (Token, error)
	Location() int64
}

// SimpleIssue is a minimal issue representation used below the public API.
type SimpleIssue struct {
	Code    string
	Path    string
	Message string
	Offset  int64
}

// IssueError is a lightweight error carrying a SimpleIssue.
type IssueError struct{ SimpleIssue }

func (e IssueError) Error() string { return e.SimpleIssue.Message }

type frameKind int

const (
	frameObject frameKind = iota
	frameArray
)

type framePhase int

const (
	// Object: expecting a key string or '}'.
	phaseKeyOrClose framePhase = iota
	// Object: expecting the member value.
	phaseValue
	// Object or array: expecting ',' or the closing bracket.
	phaseCommaOrClose
	// Array: expecting an element value or ']'.
	phaseElemOrClose
)

type frame struct {
	kind       frameKind
	phase      framePhase
	afterComma bool
}

// Scanner tokenizes a complete JSON document held in memory. It validates the
// full grammar as it goes: string escapes, literal spelling, comma and colon
// discipline, and the single-top-level-value rule. Number lexemes are
// collected greedily and validated at conversion time by the caller.
type Scanner struct {
	data    []byte
	pos     int
	stack   []frame
	done    bool
	readErr error
}

// NewBytes returns a Scanner over the given document.
func NewBytes(b []byte) *Scanner { return &Scanner{data: b} }

// NewReader slurps the reader once up front and scans the result. A read
// failure surfaces as a parse error on the first NextToken call.
func NewReader(r io.Reader) *Scanner {
	data, err := io.ReadAll(r)
	return &Scanner{data: data, readErr: err}
}

// Location reports the current byte offset.
func (s *Scanner) Location() int64 { return int64(s.pos) }

// NextToken returns the next token, or io.EOF once the single top-level value
// has been consumed and only whitespace remains.
func (s *Scanner) NextToken() (Token, error) {
	if s.readErr != nil {
		return Token{}, s.fail("parse_error", "could not be read: "+s.readErr.Error())
	}
	for {
		s.skipWhitespace()
		if len(s.stack) == 0 {
			if s.done {
				if s.eof() {
					return Token{}, io.EOF
				}
				return Token{}, s.fail("expected_eof",
					"error after reading a valid json value, expected EOF but found "+quoteByte(s.data[s.pos]))
			}
			if s.eof() {
				return Token{}, s.fail("empty_input", "cannot parse empty input or input containing only whitespace")
			}
			return s.scanValue()
		}

		top := &s.stack[len(s.stack)-1]
		if s.eof() {
			if top.kind == frameArray {
				return Token{}, s.fail("unexpected_eof", "error while parsing array, unexpected end of input")
			}
			return Token{}, s.fail("unexpected_eof", "error while parsing object, unexpected end of input")
		}
		c := s.data[s.pos]

		if top.kind == frameArray {
			switch top.phase {
			case phaseElemOrClose:
				if c == ']' {
					if top.afterComma {
						return Token{}, s.fail("trailing_comma", "trailing comma not allowed in array")
					}
					return s.closeFrame(KindEndArray), nil
				}
				if c == ',' {
					return Token{}, s.fail("unexpected_comma", "unexpected comma when parsing array")
				}
				return s.scanValue()
			default: // phaseCommaOrClose
				if c == ',' {
					s.pos++
					top.phase = phaseElemOrClose
					top.afterComma = true
					continue
				}
				if c == ']' {
					return s.closeFrame(KindEndArray), nil
				}
				return Token{}, s.fail("expected_comma", "entries in array must be separated by a comma")
			}
		}

		switch top.phase {
		case phaseKeyOrClose:
			if c == '}' {
				if top.afterComma {
					return Token{}, s.fail("trailing_comma", "trailing comma not allowed in object")
				}
				return s.closeFrame(KindEndObject), nil
			}
			if c != '"' {
				return Token{}, s.fail("unexpected_char", "error while parsing object, expected '\"', got "+quoteByte(c))
			}
			off := int64(s.pos)
			key, err := s.scanString()
			if err != nil {
				return Token{}, err
			}
			s.skipWhitespace()
			if s.eof() {
				return Token{}, s.fail("unexpected_eof", "error while parsing object, unexpected end of input")
			}
			if s.data[s.pos] != ':' {
				return Token{}, s.fail("unexpected_char", "error while parsing object, expected ':', got "+quoteByte(s.data[s.pos]))
			}
			s.pos++
			top.phase = phaseValue
			top.afterComma = false
			return Token{Kind: KindKey, String: key, Offset: off}, nil
		case phaseValue:
			return s.scanValue()
		default: // phaseCommaOrClose
			if c == ',' {
				s.pos++
				top.phase = phaseKeyOrClose
				top.afterComma = true
				continue
			}
			if c == '}' {
				return s.closeFrame(KindEndObject), nil
			}
			return Token{}, s.fail("unexpected_char", "error while parsing object, expected ',' or '}', got "+quoteByte(c))
		}
	}
}

// scanValue dispatches on the first character of the next value, exactly the
// fixed table from the JSON grammar.
func (s *Scanner) scanValue() (Token, error) {
	off := int64(s.pos)
	c := s.data[s.pos]
	switch {
	case c == '"':
		str, err := s.scanString()
		if err != nil {
			return Token{}, err
		}
		s.markValueDone()
		return Token{Kind: KindString, String: str, Offset: off}, nil
	case c == '-' || ('0' <= c && c <= '9'):
		lex := s.scanNumberLexeme()
		s.markValueDone()
		return Token{Kind: KindNumber, Number: lex, Offset: off}, nil
	case c == 't' || c == 'f':
		b, err := s.scanBool()
		if err != nil {
			return Token{}, err
		}
		s.markValueDone()
		return Token{Kind: KindBool, Bool: b, Offset: off}, nil
	case c == 'n':
		if err := s.scanNull(); err != nil {
			return Token{}, err
		}
		s.markValueDone()
		return Token{Kind: KindNull, Offset: off}, nil
	case c == '[':
		s.pos++
		s.stack = append(s.stack, frame{kind: frameArray, phase: phaseElemOrClose})
		return Token{Kind: KindBeginArray, Offset: off}, nil
	case c == '{':
		s.pos++
		s.stack = append(s.stack, frame{kind: frameObject, phase: phaseKeyOrClose})
		return Token{Kind: KindBeginObject, Offset: off}, nil
	default:
		return Token{}, s.fail("unexpected_char", "unexpected character "+quoteByte(c))
	}
}

// markValueDone records that one complete value ended at the current nesting
// level, advancing the enclosing frame (or finishing the document).
func (s *Scanner) markValueDone() {
	if len(s.stack) == 0 {
		s.done = true
		return
	}
	top := &s.stack[len(s.stack)-1]
	top.phase = phaseCommaOrClose
	top.afterComma = false
}

func (s *Scanner) closeFrame(kind Kind) Token {
	off := int64(s.pos)
	s.pos++
	s.stack = s.stack[:len(s.stack)-1]
	s.markValueDone()
	return Token{Kind: kind, Offset: off}
}

// scanString consumes a quoted string and returns its raw contents. The
// escape state machine matches RFC 8259: the escape set is "\/bfnrtu, \u must
// be followed by exactly 4 hex digits, and unescaped control characters
// (0-31) are rejected.
func (s *Scanner) scanString() (string, error) {
	s.pos++ // opening quote, verified by the caller
	start := s.pos
	escaped := false
	hexRemaining := 0
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		if hexRemaining > 0 {
			if !isHexDigit(c) {
				return "", s.fail("invalid_escape", `\u must be followed by 4 hex characters`)
			}
			hexRemaining--
			s.pos++
			continue
		}
		if c == '"' && !escaped {
			str := string(s.data[start:s.pos])
			s.pos++
			return str, nil
		}
		if c <= 31 {
			return "", s.fail("control_char", "error while parsing string, unescaped control character")
		}
		if c == '\\' && !escaped {
			escaped = true
		} else if escaped {
			if !isValidEscape(c) {
				return "", s.fail("invalid_escape", "error while parsing string, invalid escaped character "+quoteByte(c))
			}
			if c == 'u' {
				hexRemaining = 4
			}
			escaped = false
		}
		s.pos++
	}
	return "", s.fail("unexpected_eof", "error while parsing string, unexpected end of input")
}

// scanNumberLexeme greedily consumes the number character set. Lexical and
// range validation happen when the lexeme is converted to a value.
func (s *Scanner) scanNumberLexeme() string {
	start := s.pos
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		if ('0' <= c && c <= '9') || c == '.' || c == '-' || c == '+' || c == 'e' || c == 'E' {
			s.pos++
			continue
		}
		break
	}
	return string(s.data[start:s.pos])
}

func (s *Scanner) scanBool() (bool, error) {
	lit := s.take(4)
	if lit == "true" {
		return true, nil
	}
	if len(lit) > 0 && lit[0] == 'f' {
		lit += s.take(1)
		if lit == "false" {
			return false, nil
		}
	}
	return false, s.fail("invalid_literal", `error while parsing bool, expected "true" or "false", got "`+lit+`"`)
}

func (s *Scanner) scanNull() error {
	lit := s.take(4)
	if lit != "null" {
		return s.fail("invalid_literal", `error while parsing null, expected "null", got "`+lit+`"`)
	}
	return nil
}

// take consumes up to n bytes; short reads happen only at end of input.
func (s *Scanner) take(n int) string {
	end := s.pos + n
	if end > len(s.data) {
		end = len(s.data)
	}
	out := string(s.data[s.pos:end])
	s.pos = end
	return out
}

func (s *Scanner) skipWhitespace() {
	for s.pos < len(s.data) && isWhitespace(s.data[s.pos]) {
		s.pos++
	}
}

func (s *Scanner) eof() bool { return s.pos >= len(s.data) }

func (s *Scanner) fail(code, msg string) error {
	return IssueError{SimpleIssue{Code: code, Path: "/", Message: msg, Offset: int64(s.pos)}}
}

// isWhitespace reports RFC 8259 whitespace. Form feed and vertical tab are
// not whitespace in strict JSON.
func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isValidEscape(c byte) bool {
	return c == '"' || c == '\\' || c == '/' ||
		c == 'b' || c == 'f' || c == 'n' ||
		c == 'r' || c == 't' || c == 'u'
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func quoteByte(c byte) string { return "'" + string(rune(c)) + "'" }
