//go:build gojson

package gojson_test

import (
	"strings"
	"testing"

	jsonvalue "github.com/reoring/jsonvalue"
	"github.com/reoring/jsonvalue/source/gojson"
)

func TestDriver_ParseObject(t *testing.T) {
	jsonvalue.SetDriver(gojson.Driver())
	defer jsonvalue.UseDefaultDriver()

	v, err := jsonvalue.ParseString(`{"a":1,"b":[true,null,"x"],"c":{"d":2.5}}`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := jsonvalue.Dump(v); got != `{"a":1,"b":[true,null,"x"],"c":{"d":2.5}}` {
		t.Fatalf("unexpected dump: %s", got)
	}
}

func TestDriver_Reader(t *testing.T) {
	src := gojson.Driver().NewReader(strings.NewReader(`[1,2,3]`))
	v, err := jsonvalue.Parse(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if n, _ := v.Len(); n != 3 {
		t.Fatalf("expected 3 elements, got %d", n)
	}
}

func TestDriver_EnforcementStillApplies(t *testing.T) {
	jsonvalue.SetDriver(gojson.Driver())
	defer jsonvalue.UseDefaultDriver()

	opt := jsonvalue.ParseOpt{Strictness: jsonvalue.Strictness{OnDuplicateKey: jsonvalue.Error}}
	_, err := jsonvalue.ParseString(`{"a":1,"a":2}`, opt)
	iss, ok := jsonvalue.AsIssues(err)
	if !ok || len(iss) == 0 || iss[0].Code != jsonvalue.CodeDuplicateKey {
		t.Fatalf("expected duplicate_key, got %v", err)
	}
}
