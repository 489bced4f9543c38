package jsonvalue_test

import (
	"errors"
	"fmt"
	"testing"

	jsonvalue "github.com/reoring/jsonvalue"
)

func TestIssues_ErrorSummary(t *testing.T) {
	var iss jsonvalue.Issues
	for i := 0; i < 5; i++ {
		iss = jsonvalue.AppendIssues(iss, jsonvalue.Issue{
			Path: "/", Code: jsonvalue.CodeParseError, Message: fmt.Sprintf("m%d", i), Offset: -1,
		})
	}
	want := "parse_error: m0; parse_error: m1; parse_error: m2; ... (total 5)"
	if got := iss.Error(); got != want {
		t.Fatalf("summary:\n got %s\nwant %s", got, want)
	}
	if got := (jsonvalue.Issues{}).Error(); got != "" {
		t.Fatalf("empty issues: got %q", got)
	}
}

func TestAsIssues(t *testing.T) {
	if _, ok := jsonvalue.AsIssues(nil); ok {
		t.Fatalf("nil error must not yield issues")
	}
	if _, ok := jsonvalue.AsIssues(errors.New("plain")); ok {
		t.Fatalf("plain error must not yield issues")
	}
	_, err := jsonvalue.ParseString(`[`)
	iss, ok := jsonvalue.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("expected one issue, got %v", err)
	}
	if iss[0].Code != jsonvalue.CodeUnexpectedEOF {
		t.Fatalf("code: %s", iss[0].Code)
	}
	if iss[0].Path != "/" {
		t.Fatalf("path: %s", iss[0].Path)
	}
	if iss[0].Offset < 0 {
		t.Fatalf("scanner errors carry an offset, got %d", iss[0].Offset)
	}
}

func TestParse_ErrorCarriesOffset(t *testing.T) {
	_, err := jsonvalue.ParseString(`{"a": 01}`)
	iss, ok := jsonvalue.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("expected one issue, got %v", err)
	}
	if iss[0].Code != jsonvalue.CodeInvalidNumber {
		t.Fatalf("code: %s", iss[0].Code)
	}
	if iss[0].Offset != 6 {
		t.Fatalf("offset: got %d, want 6", iss[0].Offset)
	}
}
