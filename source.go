package jsonvalue

import (
	"io"
	"sync"

	"github.com/reoring/jsonvalue/internal/scan"
)

// tokenKind enumerates JSON token kinds.
type tokenKind int

const (
	_tokenBeginObject tokenKind = iota
	_tokenEndObject
	_tokenBeginArray
	_tokenEndArray
	_tokenKey
	_tokenString
	_tokenNumber
	_tokenBool
	_tokenNull
)

// Exported aliases so alternative drivers can reference token kinds without
// relying on unstable APIs. The alias and constants mirror the internal
// tokenKind.
type TokenKind = tokenKind

const (
	TokenBeginObject TokenKind = _tokenBeginObject
	TokenEndObject   TokenKind = _tokenEndObject
	TokenBeginArray  TokenKind = _tokenBeginArray
	TokenEndArray    TokenKind = _tokenEndArray
	TokenKey         TokenKind = _tokenKey
	TokenString      TokenKind = _tokenString
	TokenNumber      TokenKind = _tokenNumber
	TokenBool        TokenKind = _tokenBool
	TokenNull        TokenKind = _tokenNull
)

// Token describes a token in the input stream. String and key payloads carry
// the raw text between the quotes; Number payloads carry the raw lexeme.
// Offset records the byte position when known (-1 otherwise).
type Token struct {
	Kind   tokenKind
	String string
	Number string
	Bool   bool
	Offset int64
}

// Source abstracts over polymorphic input sources. It yields io.EOF once the
// single top-level value has been consumed.
type Source interface {
	NextToken() (Token, error)
	Location() int64 // byte offset; -1 if unknown
}

// Driver converts JSON input into a Source via a pluggable SPI. The default
// implementation is the strict built-in scanner and may be swapped with
// SetDriver.
type Driver interface {
	NewReader(r io.Reader) Source
	NewBytes(b []byte) Source
	Name() string
}

var (
	driverMu      sync.RWMutex
	currentDriver Driver = defaultDriver{}
)

// SetDriver replaces the global driver; nil values are ignored.
func SetDriver(d Driver) {
	if d == nil {
		return
	}
	driverMu.Lock()
	currentDriver = d
	driverMu.Unlock()
}

// UseDefaultDriver restores the strict built-in scanner driver.
func UseDefaultDriver() {
	driverMu.Lock()
	currentDriver = defaultDriver{}
	driverMu.Unlock()
}

func getDriver() Driver {
	driverMu.RLock()
	d := currentDriver
	driverMu.RUnlock()
	return d
}

// DefaultDriver returns the built-in strict scanner driver regardless of the
// globally installed one.
func DefaultDriver() Driver { return defaultDriver{} }

// defaultDriver wraps the built-in strict scanner.
type defaultDriver struct{}

func (defaultDriver) NewReader(r io.Reader) Source {
	return &scanSourceAdapter{inner: scan.NewReader(r)}
}
func (defaultDriver) NewBytes(b []byte) Source {
	return &scanSourceAdapter{inner: scan.NewBytes(b)}
}
func (defaultDriver) Name() string { return "scan" }

// JSONReader wraps an io.Reader as a Source using the current driver.
func JSONReader(r io.Reader) Source { return getDriver().NewReader(r) }

// JSONBytes wraps a byte slice as a Source using the current driver.
func JSONBytes(b []byte) Source { return getDriver().NewBytes(b) }

// EnforceSource wraps a Source with runtime enforcement (duplicate keys,
// depth, bytes). Non-fatal findings are forwarded to sink when it is non-nil.
func EnforceSource(s Source, opt ParseOpt, sink func(Issue)) Source {
	var forward func(scan.SimpleIssue)
	if sink != nil {
		forward = func(si scan.SimpleIssue) {
			sink(Issue{Path: si.Path, Code: si.Code, Message: si.Message, Offset: si.Offset})
		}
	}
	eopt := scan.EnforceOptions{
		OnDuplicate: toScanDup(opt.Strictness.OnDuplicateKey),
		MaxDepth:    opt.MaxDepth,
		MaxBytes:    opt.MaxBytes,
		IssueSink:   forward,
		FailFast:    opt.FailFast,
	}
	// Fast-path: if s already wraps a scan.TokenSource, unwrap to avoid
	// adapter round-trips.
	if sa, ok := s.(*scanSourceAdapter); ok {
		return &scanSourceAdapter{inner: scan.WrapWithEnforcement(sa.inner, eopt)}
	}
	return &scanSourceAdapter{inner: scan.WrapWithEnforcement(&sourceTokenAdapter{inner: s}, eopt)}
}

// enforceSourceIfNeeded returns the original Source when the options are
// effectively disabled, preventing unnecessary overhead for small inputs.
func enforceSourceIfNeeded(s Source, opt ParseOpt, sink func(Issue)) Source {
	if opt.Strictness.OnDuplicateKey == Ignore && opt.MaxDepth == 0 && opt.MaxBytes == 0 && sink == nil {
		return s
	}
	return EnforceSource(s, opt, sink)
}

func toScanDup(sev Severity) scan.DuplicateStrictness {
	switch sev {
	case Warn:
		return scan.DupWarn
	case Error:
		return scan.DupError
	default:
		return scan.DupIgnore
	}
}

// ---- Source <-> scan.TokenSource adapters ----

type scanSourceAdapter struct {
	inner scan.TokenSource
}

func (s *scanSourceAdapter) NextToken() (Token, error) {
	t, err := s.inner.NextToken()
	if err != nil {
		return Token{}, err
	}
	return Token{Kind: fromScanKind(t.Kind), String: t.String, Number: t.Number, Bool: t.Bool, Offset: t.Offset}, nil
}
func (s *scanSourceAdapter) Location() int64 { return s.inner.Location() }

type sourceTokenAdapter struct{ inner Source }

func (a *sourceTokenAdapter) NextToken() (scan.Token, error) {
	t, err := a.inner.NextToken()
	if err != nil {
		return scan.Token{}, err
	}
	return scan.Token{Kind: toScanKind(t.Kind), String: t.String, Number: t.Number, Bool: t.Bool, Offset: t.Offset}, nil
}
func (a *sourceTokenAdapter) Location() int64 { return a.inner.Location() }

func fromScanKind(k scan.Kind) tokenKind {
	switch k {
	case scan.KindBeginObject:
		return _tokenBeginObject
	case scan.KindEndObject:
		return _tokenEndObject
	case scan.KindBeginArray:
		return _tokenBeginArray
	case scan.KindEndArray:
		return _tokenEndArray
	case scan.KindKey:
		return _tokenKey
	case scan.KindString:
		return _tokenString
	case scan.KindNumber:
		return _tokenNumber
	case scan.KindBool:
		return _tokenBool
	default:
		return _tokenNull
	}
}

func toScanKind(k tokenKind) scan.Kind {
	switch k {
	case _tokenBeginObject:
		return scan.KindBeginObject
	case _tokenEndObject:
		return scan.KindEndObject
	case _tokenBeginArray:
		return scan.KindBeginArray
	case _tokenEndArray:
		return scan.KindEndArray
	case _tokenKey:
		return scan.KindKey
	case _tokenString:
		return scan.KindString
	case _tokenNumber:
		return scan.KindNumber
	case _tokenBool:
		return scan.KindBool
	default:
		return scan.KindNull
	}
}
