package hint_test

import (
	"reflect"
	"testing"

	typefence "github.com/typefence/typefence"
	"github.com/typefence/typefence/hint"
)

func check(t *testing.T, h typefence.Hint, v any, deep bool) []typefence.Issue {
	t.Helper()
	return h.Check(typefence.Param("x"), reflect.ValueOf(v), deep)
}

func TestOf_Primitives(t *testing.T) {
	h := hint.Of[int]()
	if iss := check(t, h, 3, false); len(iss) != 0 {
		t.Fatalf("int should match int, got %v", iss)
	}
	iss := check(t, h, "nope", false)
	if len(iss) != 1 || iss[0].Code != typefence.CodeInvalidType {
		t.Fatalf("expected invalid_type, got %v", iss)
	}
	if iss[0].Params["expected"] != "int" || iss[0].Params["actual"] != "string" {
		t.Fatalf("unexpected params %v", iss[0].Params)
	}
}

type greeter interface{ Greet() string }

type englishGreeter struct{}

func (englishGreeter) Greet() string { return "hi" }

func TestOf_InterfaceAcceptsImplementations(t *testing.T) {
	h := hint.Of[greeter]()
	if iss := check(t, h, englishGreeter{}, false); len(iss) != 0 {
		t.Fatalf("implementation should satisfy the interface hint, got %v", iss)
	}
	if iss := check(t, h, 42, false); len(iss) == 0 {
		t.Fatalf("non-implementation should fail the interface hint")
	}
}

func TestOf_NilValue(t *testing.T) {
	var v any
	iss := hint.Of[int]().Check(typefence.Param("x"), reflect.ValueOf(v), false)
	if len(iss) != 1 || iss[0].Params["actual"] != "nil" {
		t.Fatalf("expected nil mismatch, got %v", iss)
	}
}

func TestUnion(t *testing.T) {
	h := hint.Union(hint.Of[int](), hint.Of[float64]())
	if iss := check(t, h, 1, false); len(iss) != 0 {
		t.Fatalf("int should match the union, got %v", iss)
	}
	if iss := check(t, h, 1.5, false); len(iss) != 0 {
		t.Fatalf("float64 should match the union, got %v", iss)
	}
	iss := check(t, h, "a", false)
	if len(iss) != 1 || iss[0].Code != typefence.CodeUnionMismatch {
		t.Fatalf("expected union_mismatch, got %v", iss)
	}
	if h.String() != "int|float64" {
		t.Fatalf("unexpected union rendering %q", h.String())
	}
}

func TestSlice_ShallowAndDeep(t *testing.T) {
	h := hint.Slice(hint.Of[int]())

	if iss := check(t, h, []any{1, "a"}, false); len(iss) != 0 {
		t.Fatalf("shallow slice check should accept mixed elements, got %v", iss)
	}
	if iss := check(t, h, "not-a-slice", false); len(iss) == 0 {
		t.Fatalf("outer kind must be checked even shallowly")
	}

	iss := check(t, h, []any{1, "a", 2, true}, true)
	if len(iss) != 2 {
		t.Fatalf("expected one issue per bad element, got %v", iss)
	}
	if iss[0].Path != "/x/1" || iss[1].Path != "/x/3" {
		t.Fatalf("expected element paths /x/1 and /x/3, got %v", iss)
	}
}

func TestSlice_NestedDeep(t *testing.T) {
	h := hint.Slice(hint.Slice(hint.Of[int]()))
	iss := check(t, h, []any{[]any{1, 2}, []any{"a"}}, true)
	if len(iss) != 1 || iss[0].Path != "/x/1/0" {
		t.Fatalf("expected nested element issue at /x/1/0, got %v", iss)
	}
}

func TestMap_ShallowAndDeep(t *testing.T) {
	h := hint.Map(hint.Of[string](), hint.Of[int]())

	if iss := check(t, h, map[string]any{"a": "oops"}, false); len(iss) != 0 {
		t.Fatalf("shallow map check should accept any values, got %v", iss)
	}
	if iss := check(t, h, []int{1}, false); len(iss) == 0 {
		t.Fatalf("outer kind must be checked even shallowly")
	}

	iss := check(t, h, map[string]any{"a": 1, "b": "oops"}, true)
	if len(iss) != 1 || iss[0].Path != "/x/b" {
		t.Fatalf("expected value issue at /x/b, got %v", iss)
	}
}

func TestAnyAndUnsupported_AlwaysPass(t *testing.T) {
	for _, h := range []typefence.Hint{hint.Any(), hint.Unsupported("Optional<int>")} {
		for _, v := range []any{1, "a", nil, []any{1}, map[string]any{}} {
			if iss := h.Check(typefence.Param("x"), reflect.ValueOf(v), true); len(iss) != 0 {
				t.Fatalf("%s should pass %v, got %v", h.String(), v, iss)
			}
		}
	}
}

func TestLiteral(t *testing.T) {
	h := hint.Literal("fast")
	if iss := check(t, h, "fast", false); len(iss) != 0 {
		t.Fatalf("exact value should pass, got %v", iss)
	}
	if iss := check(t, h, "slow", false); len(iss) == 0 {
		t.Fatalf("different value should fail the literal hint")
	}
}

func TestNumber(t *testing.T) {
	for _, v := range []any{1, int64(2), uint8(3), 4.5, float32(6)} {
		if iss := check(t, hint.Number(), v, false); len(iss) != 0 {
			t.Fatalf("%v should match number, got %v", v, iss)
		}
	}
	if iss := check(t, hint.Number(), "7", false); len(iss) == 0 {
		t.Fatalf("string should not match number")
	}
}
