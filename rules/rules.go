// Package rules provides value-level checks attached to declared parameters:
// membership in an allowed set, numeric ranges, and arbitrary predicates.
// Rules run only after a parameter's type hint passed, so they can assume a
// plausible value shape.
package rules

import (
	"fmt"
	"reflect"

	tf "github.com/typefence/typefence"
	"github.com/typefence/typefence/i18n"
)

// OneOf requires the argument to equal one of the allowed values
// (reflect.DeepEqual).
func OneOf(allowed ...any) tf.Rule {
	return func(p tf.PathRef, v reflect.Value) []tf.Issue {
		var got any
		if v.IsValid() {
			got = v.Interface()
		}
		for _, a := range allowed {
			if reflect.DeepEqual(got, a) {
				return nil
			}
		}
		it := p.Issue(tf.CodeNotAllowed, i18n.T(tf.CodeNotAllowed, nil), "allowed", allowed, "got", got)
		it.Hint = fmt.Sprintf("value %v is not among the allowed values %v", got, allowed)
		it.Rule = "one_of"
		return []tf.Issue{it}
	}
}

// Range requires a numeric argument to fall within [lo, hi]. Bounds given in
// the wrong order are normalized. Non-numeric arguments violate the rule.
func Range(lo, hi float64) tf.Rule {
	if lo > hi {
		lo, hi = hi, lo
	}
	return func(p tf.PathRef, v reflect.Value) []tf.Issue {
		f, ok := toFloat(v)
		if !ok {
			it := p.Issue(tf.CodeRuleViolation, i18n.T(tf.CodeRuleViolation, nil), "min", lo, "max", hi)
			it.Hint = "range rule applied to a non-numeric argument"
			it.Rule = "range"
			return []tf.Issue{it}
		}
		if f < lo || f > hi {
			it := p.Issue(tf.CodeOutOfRange, i18n.T(tf.CodeOutOfRange, nil), "min", lo, "max", hi, "got", f)
			it.Hint = fmt.Sprintf("value %v must be in the range [%v, %v]", f, lo, hi)
			it.Rule = "range"
			return []tf.Issue{it}
		}
		return nil
	}
}

// Check requires the argument to satisfy an arbitrary predicate. The name
// identifies the rule in issues.
func Check(name string, pred func(v any) bool) tf.Rule {
	return func(p tf.PathRef, v reflect.Value) []tf.Issue {
		var got any
		if v.IsValid() {
			got = v.Interface()
		}
		if pred(got) {
			return nil
		}
		it := p.Issue(tf.CodeRuleViolation, i18n.T(tf.CodeRuleViolation, nil), "got", got)
		it.Hint = fmt.Sprintf("value %v does not meet the required criteria", got)
		it.Rule = name
		return []tf.Issue{it}
	}
}

// ---------- Rule combinators ----------

// And executes all rules and concatenates Issues.
func And(rs ...tf.Rule) tf.Rule {
	return func(p tf.PathRef, v reflect.Value) []tf.Issue {
		var out []tf.Issue
		for _, r := range rs {
			if r == nil {
				continue
			}
			if iss := r(p, v); len(iss) > 0 {
				out = append(out, iss...)
			}
		}
		return out
	}
}

// Or succeeds if any rule returns no Issues. When all fail, the branch with
// the fewest Issues is reported.
func Or(rs ...tf.Rule) tf.Rule {
	return func(p tf.PathRef, v reflect.Value) []tf.Issue {
		var best []tf.Issue
		bestSet := false
		for _, r := range rs {
			if r == nil {
				continue
			}
			iss := r(p, v)
			if len(iss) == 0 {
				return nil
			}
			if !bestSet || len(iss) < len(best) {
				best = iss
				bestSet = true
			}
		}
		if bestSet {
			return best
		}
		return nil
	}
}

func toFloat(v reflect.Value) (float64, bool) {
	if !v.IsValid() {
		return 0, false
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	default:
		return 0, false
	}
}
