package hint

import (
	"fmt"
	"reflect"
	"strings"

	tf "github.com/typefence/typefence"
	"github.com/typefence/typefence/i18n"
	"github.com/typefence/typefence/internal/typedesc"
)

// Of declares an instance-of check against T. A value passes when its
// dynamic type is assignable to T, so an interface hint accepts every
// implementation of that interface.
func Of[T any]() tf.Hint {
	return typeHint{rt: reflect.TypeOf((*T)(nil)).Elem()}
}

// OfType is Of for a reflect.Type already in hand (used by Parse).
func OfType(rt reflect.Type) tf.Hint { return typeHint{rt: rt} }

// Any declares the unconditional pass-through type expression.
func Any() tf.Hint { return anyHint{} }

// Union declares a set of acceptable alternatives; a value passes when it
// matches at least one. The deep flag is forwarded to the alternatives.
func Union(alts ...tf.Hint) tf.Hint { return unionHint{alts: alts} }

// Slice declares an ordered-sequence container with the given element type.
// The outer kind is always checked; elements only under deep checking.
func Slice(elem tf.Hint) tf.Hint { return sliceHint{elem: elem} }

// Map declares a mapping container with the given key and value types.
// The outer kind is always checked; entries only under deep checking.
func Map(key, val tf.Hint) tf.Hint { return mapHint{key: key, val: val} }

// Literal declares an exact-value check (reflect.DeepEqual).
func Literal(v any) tf.Hint { return literalHint{want: v} }

// Number matches any integer, unsigned or floating-point value. JSON
// arguments decode numbers as float64, which this hint accepts.
func Number() tf.Hint { return numberHint{} }

// Unsupported declares a form the checker cannot validate. It passes every
// value through unchanged: best-effort validation beats spurious rejection
// of legitimate calls.
func Unsupported(form string) tf.Hint { return unsupportedHint{form: form} }

// ---- implementations ----

type typeHint struct{ rt reflect.Type }

func (h typeHint) String() string { return h.rt.String() }

func (h typeHint) Check(p tf.PathRef, v reflect.Value, _ bool) []tf.Issue {
	if !v.IsValid() {
		return mismatch(p, tf.CodeInvalidType, h.String(), "nil")
	}
	if v.Type().AssignableTo(h.rt) {
		return nil
	}
	return mismatch(p, tf.CodeInvalidType, h.String(), typedesc.Describe(v, false))
}

type anyHint struct{}

func (anyHint) String() string                                   { return "any" }
func (anyHint) Check(tf.PathRef, reflect.Value, bool) []tf.Issue { return nil }

type unsupportedHint struct{ form string }

func (h unsupportedHint) String() string {
	if h.form == "" {
		return "<unsupported>"
	}
	return h.form
}
func (unsupportedHint) Check(tf.PathRef, reflect.Value, bool) []tf.Issue { return nil }

type unionHint struct{ alts []tf.Hint }

func (h unionHint) String() string {
	parts := make([]string, len(h.alts))
	for i, a := range h.alts {
		parts[i] = a.String()
	}
	return strings.Join(parts, "|")
}

func (h unionHint) Check(p tf.PathRef, v reflect.Value, deep bool) []tf.Issue {
	for _, alt := range h.alts {
		if len(alt.Check(p, v, deep)) == 0 {
			return nil
		}
	}
	return mismatch(p, tf.CodeUnionMismatch, h.String(), typedesc.Describe(v, deep))
}

type sliceHint struct{ elem tf.Hint }

func (h sliceHint) String() string { return "[]" + h.elem.String() }

func (h sliceHint) Check(p tf.PathRef, v reflect.Value, deep bool) []tf.Issue {
	if !v.IsValid() || (v.Kind() != reflect.Slice && v.Kind() != reflect.Array) {
		return mismatch(p, tf.CodeInvalidType, h.String(), typedesc.Describe(v, false))
	}
	if !deep {
		return nil
	}
	var iss []tf.Issue
	for i := 0; i < v.Len(); i++ {
		iss = append(iss, h.elem.Check(p.Index(i), unwrap(v.Index(i)), deep)...)
	}
	return iss
}

type mapHint struct{ key, val tf.Hint }

func (h mapHint) String() string { return "map[" + h.key.String() + "]" + h.val.String() }

func (h mapHint) Check(p tf.PathRef, v reflect.Value, deep bool) []tf.Issue {
	if !v.IsValid() || v.Kind() != reflect.Map {
		return mismatch(p, tf.CodeInvalidType, h.String(), typedesc.Describe(v, false))
	}
	if !deep {
		return nil
	}
	var iss []tf.Issue
	it := v.MapRange()
	for it.Next() {
		kv := unwrap(it.Key())
		ref := p.Field(fmt.Sprint(it.Key().Interface()))
		if kIss := h.key.Check(ref, kv, deep); len(kIss) > 0 {
			for i := range kIss {
				if kIss[i].Params == nil {
					kIss[i].Params = map[string]any{}
				}
				kIss[i].Params["at"] = "key"
			}
			iss = append(iss, kIss...)
		}
		iss = append(iss, h.val.Check(ref, unwrap(it.Value()), deep)...)
	}
	return iss
}

type literalHint struct{ want any }

func (h literalHint) String() string { return "=" + fmt.Sprint(h.want) }

func (h literalHint) Check(p tf.PathRef, v reflect.Value, _ bool) []tf.Issue {
	if v.IsValid() && reflect.DeepEqual(v.Interface(), h.want) {
		return nil
	}
	return mismatch(p, tf.CodeInvalidType, h.String(), typedesc.Describe(v, false))
}

type numberHint struct{}

func (numberHint) String() string { return "number" }

func (numberHint) Check(p tf.PathRef, v reflect.Value, _ bool) []tf.Issue {
	if v.IsValid() {
		switch v.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
			return nil
		}
	}
	return mismatch(p, tf.CodeInvalidType, "number", typedesc.Describe(v, false))
}

// ---- helpers ----

func unwrap(v reflect.Value) reflect.Value {
	if v.IsValid() && v.Kind() == reflect.Interface && !v.IsNil() {
		return v.Elem()
	}
	return v
}

func mismatch(p tf.PathRef, code, expected, actual string) []tf.Issue {
	it := p.Issue(code, i18n.T(code, nil), "expected", expected, "actual", actual)
	it.Hint = "expected " + expected + ", got " + actual
	return []tf.Issue{it}
}
