package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	if got := T("invalid_type", nil); got != "invalid type" {
		t.Fatalf("en: got %q", got)
	}
	SetLanguage("ja")
	defer SetLanguage("en")
	if got := T("invalid_type", nil); got != "型が不正です" {
		t.Fatalf("ja: got %q", got)
	}
	if got := T("duplicate_key", nil); got != "キーが重複しています" {
		t.Fatalf("ja: got %q", got)
	}
}

func TestTranslator_UnknownCodeFallsBack(t *testing.T) {
	if got := T("no_such_code", nil); got != "no_such_code" {
		t.Fatalf("got %q", got)
	}
}

type upperTranslator struct{}

func (upperTranslator) Message(code string, _ map[string]string) string { return "X:" + code }

func TestSetTranslator(t *testing.T) {
	SetTranslator(upperTranslator{})
	defer SetTranslator(nil)
	if got := T("parse_error", nil); got != "X:parse_error" {
		t.Fatalf("got %q", got)
	}
	SetTranslator(nil)
	if got := T("parse_error", nil); got != "parse error" {
		t.Fatalf("reset: got %q", got)
	}
}
