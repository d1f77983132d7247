// Package typedesc renders runtime type descriptions for check failures.
// Deep descriptions summarize the element types observed inside containers,
// which keeps "expected X, got Y" messages useful for []any and map[string]any
// arguments.
package typedesc

import (
	"reflect"
	"sort"
	"strings"
)

// Describe returns a short description of v's runtime type. With deep
// enabled, slices, arrays and maps are described together with the set of
// element types actually present, e.g. "[]any{int | string}". Walking every
// element is O(n); callers gate it behind the same deep flag used for
// checking.
func Describe(v reflect.Value, deep bool) string {
	if !v.IsValid() {
		return "nil"
	}
	if v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	if !deep {
		return v.Type().String()
	}
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return v.Type().String() // bytes are bytes, not a container of ints
		}
		seen := map[string]struct{}{}
		for i := 0; i < v.Len(); i++ {
			seen[Describe(v.Index(i), false)] = struct{}{}
		}
		return v.Type().String() + braced(seen)
	case reflect.Map:
		keys, vals := map[string]struct{}{}, map[string]struct{}{}
		it := v.MapRange()
		for it.Next() {
			keys[Describe(it.Key(), false)] = struct{}{}
			vals[Describe(it.Value(), false)] = struct{}{}
		}
		if len(keys) == 0 {
			return v.Type().String()
		}
		return v.Type().String() + "{" + joined(keys) + " -> " + joined(vals) + "}"
	default:
		return v.Type().String()
	}
}

func braced(set map[string]struct{}) string {
	if len(set) == 0 {
		return ""
	}
	return "{" + joined(set) + "}"
}

func joined(set map[string]struct{}) string {
	parts := make([]string, 0, len(set))
	for s := range set {
		parts = append(parts, s)
	}
	sort.Strings(parts)
	return strings.Join(parts, " | ")
}
