package jsonvalue_test

import (
	"strings"
	"testing"

	jsonvalue "github.com/reoring/jsonvalue"
)

func TestParse_DuplicateKey_DefaultLastWriteWins(t *testing.T) {
	v, err := jsonvalue.ParseString(`{"a":1,"a":2,"a":3}`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if n, _ := v.Len(); n != 1 {
		t.Fatalf("expected one member, got %d", n)
	}
	a, _ := v.Get("a")
	if i, _ := a.Int64(); i != 3 {
		t.Fatalf("expected last write 3, got %d", i)
	}
}

func TestParse_DuplicateKey_Error(t *testing.T) {
	opt := jsonvalue.ParseOpt{Strictness: jsonvalue.Strictness{OnDuplicateKey: jsonvalue.Error}}
	_, err := jsonvalue.ParseString(`{"a":1,"a":2}`, opt)
	iss, ok := jsonvalue.AsIssues(err)
	if !ok || len(iss) == 0 {
		t.Fatalf("expected issues, got %v", err)
	}
	if iss[0].Code != jsonvalue.CodeDuplicateKey {
		t.Fatalf("expected duplicate_key, got %s", iss[0].Code)
	}
	if iss[0].Path != "/a" {
		t.Fatalf("expected path /a, got %s", iss[0].Path)
	}
}

func TestParse_DuplicateKey_NestedPath(t *testing.T) {
	opt := jsonvalue.ParseOpt{Strictness: jsonvalue.Strictness{OnDuplicateKey: jsonvalue.Error}}
	_, err := jsonvalue.ParseString(`{"a":{"b":1,"b":2}}`, opt)
	iss, ok := jsonvalue.AsIssues(err)
	if !ok || len(iss) == 0 {
		t.Fatalf("expected issues, got %v", err)
	}
	if iss[0].Path != "/a/b" {
		t.Fatalf("expected path /a/b, got %s", iss[0].Path)
	}
}

func TestParseWithIssues_DuplicateKey_Warn(t *testing.T) {
	opt := jsonvalue.ParseOpt{Strictness: jsonvalue.Strictness{OnDuplicateKey: jsonvalue.Warn}}
	v, iss, err := jsonvalue.ParseWithIssues(jsonvalue.JSONBytes([]byte(`{"a":1,"a":2}`)), opt)
	if err != nil {
		t.Fatalf("warn must not fail the parse: %v", err)
	}
	a, _ := v.Get("a")
	if i, _ := a.Int64(); i != 2 {
		t.Fatalf("expected last write 2, got %d", i)
	}
	if len(iss) != 1 || iss[0].Code != jsonvalue.CodeDuplicateKey {
		t.Fatalf("expected one duplicate_key finding, got %v", iss)
	}
}

func TestParse_DuplicateKey_WarnFailFast(t *testing.T) {
	opt := jsonvalue.ParseOpt{
		Strictness: jsonvalue.Strictness{OnDuplicateKey: jsonvalue.Warn},
		FailFast:   true,
	}
	_, err := jsonvalue.ParseString(`{"a":1,"a":2}`, opt)
	mustCode(t, err, jsonvalue.CodeDuplicateKey)
}

func TestParse_MaxDepth(t *testing.T) {
	opt := jsonvalue.ParseOpt{MaxDepth: 2}
	if _, err := jsonvalue.ParseString(`[[1]]`, opt); err != nil {
		t.Fatalf("depth 2 within limit: %v", err)
	}
	_, err := jsonvalue.ParseString(`[[[[1]]]]`, opt)
	mustCode(t, err, jsonvalue.CodeMaxDepth)

	_, err = jsonvalue.ParseString(`{"a":{"b":{"c":1}}}`, opt)
	mustCode(t, err, jsonvalue.CodeMaxDepth)
}

func TestParse_MaxBytes(t *testing.T) {
	doc := `{"abcdef":1}`
	if _, err := jsonvalue.ParseString(doc, jsonvalue.ParseOpt{MaxBytes: 64}); err != nil {
		t.Fatalf("within limit: %v", err)
	}
	_, err := jsonvalue.ParseString(doc, jsonvalue.ParseOpt{MaxBytes: 5})
	mustCode(t, err, jsonvalue.CodeTruncated)
}

func TestParseReader_MaxBytes(t *testing.T) {
	doc := `{"abcdef":1}`
	if _, err := jsonvalue.ParseReader(strings.NewReader(doc), jsonvalue.ParseOpt{MaxBytes: 64}); err != nil {
		t.Fatalf("within limit: %v", err)
	}
	_, err := jsonvalue.ParseReader(strings.NewReader(doc), jsonvalue.ParseOpt{MaxBytes: 5})
	mustCode(t, err, jsonvalue.CodeTruncated)
}
