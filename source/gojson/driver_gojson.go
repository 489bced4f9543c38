//go:build gojson

package gojson

import (
	"bytes"
	"io"

	j "github.com/goccy/go-json"

	jsonvalue "github.com/reoring/jsonvalue"
)

// Driver returns a jsonvalue.Driver backed by goccy/go-json. The go-json
// decoder is faster but laxer than the built-in scanner; the tree builder
// still applies number validation and the single-top-level-value rule.
func Driver() jsonvalue.Driver { return driverGoJSON{} }

type driverGoJSON struct{}

func (driverGoJSON) NewReader(r io.Reader) jsonvalue.Source { return newSource(r) }
func (driverGoJSON) NewBytes(b []byte) jsonvalue.Source     { return newSource(bytes.NewReader(b)) }
func (driverGoJSON) Name() string                           { return "go-json" }

// ---- jsonvalue.Source implementation using the go-json Decoder ----

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind         containerKind
	expectingKey bool
}

type source struct {
	dec   *j.Decoder
	stack []frame
}

func newSource(r io.Reader) *source {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	return &source{dec: dec}
}

func (s *source) NextToken() (jsonvalue.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		if err == io.EOF {
			return jsonvalue.Token{}, io.EOF
		}
		return jsonvalue.Token{}, err
	}

	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			s.stack = append(s.stack, frame{kind: kindObject, expectingKey: true})
			return jsonvalue.Token{Kind: jsonvalue.TokenBeginObject, Offset: -1}, nil
		case '}':
			s.pop()
			return jsonvalue.Token{Kind: jsonvalue.TokenEndObject, Offset: -1}, nil
		case '[':
			s.stack = append(s.stack, frame{kind: kindArray})
			return jsonvalue.Token{Kind: jsonvalue.TokenBeginArray, Offset: -1}, nil
		case ']':
			s.pop()
			return jsonvalue.Token{Kind: jsonvalue.TokenEndArray, Offset: -1}, nil
		}
	case string:
		if n := len(s.stack); n > 0 {
			top := &s.stack[n-1]
			if top.kind == kindObject && top.expectingKey {
				top.expectingKey = false
				return jsonvalue.Token{Kind: jsonvalue.TokenKey, String: v, Offset: -1}, nil
			}
		}
		s.valueDone()
		return jsonvalue.Token{Kind: jsonvalue.TokenString, String: v, Offset: -1}, nil
	case bool:
		s.valueDone()
		return jsonvalue.Token{Kind: jsonvalue.TokenBool, Bool: v, Offset: -1}, nil
	case j.Number:
		s.valueDone()
		return jsonvalue.Token{Kind: jsonvalue.TokenNumber, Number: string(v), Offset: -1}, nil
	}

	s.valueDone()
	return jsonvalue.Token{Kind: jsonvalue.TokenNull, Offset: -1}, nil
}

func (s *source) pop() {
	if n := len(s.stack); n > 0 {
		s.stack = s.stack[:n-1]
	}
	s.valueDone()
}

func (s *source) valueDone() {
	if n := len(s.stack); n > 0 {
		top := &s.stack[n-1]
		if top.kind == kindObject && !top.expectingKey {
			top.expectingKey = true
		}
	}
}

func (s *source) Location() int64 { return -1 }
