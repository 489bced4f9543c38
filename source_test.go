package jsonvalue_test

import (
	"io"
	"testing"

	jsonvalue "github.com/reoring/jsonvalue"
)

// fixedSource replays a canned token stream, the way an alternative decoder
// backend would feed the tree builder.
type fixedSource struct {
	toks []jsonvalue.Token
	i    int
}

func (s *fixedSource) NextToken() (jsonvalue.Token, error) {
	if s.i >= len(s.toks) {
		return jsonvalue.Token{}, io.EOF
	}
	t := s.toks[s.i]
	s.i++
	return t, nil
}

func (s *fixedSource) Location() int64 { return -1 }

type fixedDriver struct{ toks []jsonvalue.Token }

func (d fixedDriver) NewReader(io.Reader) jsonvalue.Source { return &fixedSource{toks: d.toks} }
func (d fixedDriver) NewBytes([]byte) jsonvalue.Source     { return &fixedSource{toks: d.toks} }
func (d fixedDriver) Name() string                         { return "fixed" }

func objectTokens() []jsonvalue.Token {
	return []jsonvalue.Token{
		{Kind: jsonvalue.TokenBeginObject, Offset: -1},
		{Kind: jsonvalue.TokenKey, String: "a", Offset: -1},
		{Kind: jsonvalue.TokenNumber, Number: "1", Offset: -1},
		{Kind: jsonvalue.TokenKey, String: "b", Offset: -1},
		{Kind: jsonvalue.TokenBeginArray, Offset: -1},
		{Kind: jsonvalue.TokenBool, Bool: true, Offset: -1},
		{Kind: jsonvalue.TokenNull, Offset: -1},
		{Kind: jsonvalue.TokenEndArray, Offset: -1},
		{Kind: jsonvalue.TokenEndObject, Offset: -1},
	}
}

func TestParse_CustomSource(t *testing.T) {
	v, err := jsonvalue.Parse(&fixedSource{toks: objectTokens()})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := jsonvalue.Dump(v); got != `{"a":1,"b":[true,null]}` {
		t.Fatalf("unexpected dump: %s", got)
	}
}

func TestParse_CustomSource_TruncatedStream(t *testing.T) {
	toks := objectTokens()
	_, err := jsonvalue.Parse(&fixedSource{toks: toks[:3]})
	mustCode(t, err, jsonvalue.CodeUnexpectedEOF)
}

func TestSetDriver(t *testing.T) {
	jsonvalue.SetDriver(fixedDriver{toks: objectTokens()})
	defer jsonvalue.UseDefaultDriver()

	// driver output replaces whatever bytes were handed in
	v, err := jsonvalue.ParseString(`ignored`)
	if err != nil {
		t.Fatalf("parse via driver: %v", err)
	}
	if got := jsonvalue.Dump(v); got != `{"a":1,"b":[true,null]}` {
		t.Fatalf("unexpected dump: %s", got)
	}

	jsonvalue.UseDefaultDriver()
	if _, err := jsonvalue.ParseString(`ignored`); err == nil {
		t.Fatalf("expected the strict scanner to reject the input")
	}
}

func TestEnforceSource_WrapsForeignSource(t *testing.T) {
	toks := []jsonvalue.Token{
		{Kind: jsonvalue.TokenBeginObject, Offset: -1},
		{Kind: jsonvalue.TokenKey, String: "a", Offset: -1},
		{Kind: jsonvalue.TokenNumber, Number: "1", Offset: -1},
		{Kind: jsonvalue.TokenKey, String: "a", Offset: -1},
		{Kind: jsonvalue.TokenNumber, Number: "2", Offset: -1},
		{Kind: jsonvalue.TokenEndObject, Offset: -1},
	}
	opt := jsonvalue.ParseOpt{Strictness: jsonvalue.Strictness{OnDuplicateKey: jsonvalue.Error}}
	_, err := jsonvalue.Parse(&fixedSource{toks: toks}, opt)
	mustCode(t, err, jsonvalue.CodeDuplicateKey)
}
