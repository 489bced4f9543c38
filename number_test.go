package jsonvalue_test

import (
	"testing"

	jsonvalue "github.com/reoring/jsonvalue"
)

func TestNumber_IntAndFloatAccess(t *testing.T) {
	n := jsonvalue.IntNumber(42)
	if n.IsFloat() {
		t.Fatalf("expected integer representation")
	}
	i, err := n.Int64()
	if err != nil || i != 42 {
		t.Fatalf("Int64: got %d err=%v", i, err)
	}
	if _, err := n.Float64(); err == nil {
		t.Fatalf("expected Float64 on integer to fail")
	}

	f := jsonvalue.FloatNumber(2.5)
	if !f.IsFloat() {
		t.Fatalf("expected floating representation")
	}
	if _, err := f.Int64(); err == nil {
		t.Fatalf("expected Int64 on float to fail")
	}
	fv, err := f.Float64()
	if err != nil || fv != 2.5 {
		t.Fatalf("Float64: got %g err=%v", fv, err)
	}
}

func TestNumber_CompareWidens(t *testing.T) {
	cases := []struct {
		a, b jsonvalue.Number
		want int
	}{
		{jsonvalue.IntNumber(1), jsonvalue.IntNumber(2), -1},
		{jsonvalue.IntNumber(2), jsonvalue.IntNumber(2), 0},
		{jsonvalue.FloatNumber(2.5), jsonvalue.FloatNumber(1.5), 1},
		{jsonvalue.IntNumber(2), jsonvalue.FloatNumber(2.5), -1},
		{jsonvalue.FloatNumber(2.0), jsonvalue.IntNumber(2), 0},
		{jsonvalue.FloatNumber(3.5), jsonvalue.IntNumber(3), 1},
		{jsonvalue.IntNumber(25), jsonvalue.FloatNumber(25.0), 0},
	}
	for _, c := range cases {
		if got := c.a.Compare(c.b); got != c.want {
			t.Fatalf("Compare(%s, %s) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
	if !jsonvalue.IntNumber(7).Equal(jsonvalue.FloatNumber(7)) {
		t.Fatalf("expected 7 == 7.0 under widening")
	}
}

func TestNumber_String(t *testing.T) {
	if got := jsonvalue.IntNumber(-42).String(); got != "-42" {
		t.Fatalf("integer text: %s", got)
	}
	if got := jsonvalue.FloatNumber(1.5).String(); got != "1.5" {
		t.Fatalf("float text: %s", got)
	}
	if got := jsonvalue.FloatNumber(-25).String(); got != "-25" {
		t.Fatalf("whole float text: %s", got)
	}
}
