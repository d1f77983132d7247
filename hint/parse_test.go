package hint_test

import (
	"reflect"
	"testing"

	typefence "github.com/typefence/typefence"
	"github.com/typefence/typefence/hint"
)

func TestParse_Roundtrip(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"int", "int"},
		{"any", "any"},
		{"number", "number"},
		{"int|float64", "int|float64"},
		{"int | float64 | string", "int|float64|string"},
		{"[]string", "[]string"},
		{"[][]int", "[][]int"},
		{"map[string]int", "map[string]int"},
		{"map[string][]int", "map[string][]int"},
		{"[]map[string]any", "[]map[string]any"},
		{"(int|string)", "int|string"},
		{"[](int|string)", "[]int|string"},
	}
	for _, tc := range cases {
		h, err := hint.Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tc.in, err)
		}
		if got := h.String(); got != tc.want {
			t.Fatalf("Parse(%q).String() = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParse_Checks(t *testing.T) {
	h, err := hint.Parse("[]int|string")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	p := typefence.Param("x")
	if iss := h.Check(p, reflect.ValueOf([]any{1, 2}), true); len(iss) != 0 {
		t.Fatalf("slice alternative should match, got %v", iss)
	}
	if iss := h.Check(p, reflect.ValueOf("ok"), true); len(iss) != 0 {
		t.Fatalf("string alternative should match, got %v", iss)
	}
	if iss := h.Check(p, reflect.ValueOf(1.5), true); len(iss) == 0 {
		t.Fatalf("float should match neither alternative")
	}
}

func TestParse_UnknownIdentPassesThrough(t *testing.T) {
	h, err := hint.Parse("Widget")
	if err != nil {
		t.Fatalf("unknown identifiers must parse into pass-through hints: %v", err)
	}
	if iss := h.Check(typefence.Param("x"), reflect.ValueOf(struct{}{}), true); len(iss) != 0 {
		t.Fatalf("unsupported form must pass everything, got %v", iss)
	}
}

func TestParse_Errors(t *testing.T) {
	for _, in := range []string{"", "map[string", "(int", "int|", "[]", "int]"} {
		if _, err := hint.Parse(in); err == nil {
			t.Fatalf("Parse(%q) should fail", in)
		}
	}
}
