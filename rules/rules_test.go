package rules_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	typefence "github.com/typefence/typefence"
	"github.com/typefence/typefence/rules"
)

func run(r typefence.Rule, v any) []typefence.Issue {
	return r(typefence.Param("x"), reflect.ValueOf(v))
}

func TestOneOf(t *testing.T) {
	r := rules.OneOf("fast", "slow")

	assert.Empty(t, run(r, "fast"))
	assert.Empty(t, run(r, "slow"))

	iss := run(r, "medium")
	require.Len(t, iss, 1)
	assert.Equal(t, typefence.CodeNotAllowed, iss[0].Code)
	assert.Equal(t, "/x", iss[0].Path)
	assert.Equal(t, "one_of", iss[0].Rule)
}

func TestRange(t *testing.T) {
	r := rules.Range(0, 10)

	assert.Empty(t, run(r, 0))
	assert.Empty(t, run(r, 10))
	assert.Empty(t, run(r, 5.5))

	iss := run(r, 11)
	require.Len(t, iss, 1)
	assert.Equal(t, typefence.CodeOutOfRange, iss[0].Code)
	assert.Equal(t, float64(0), iss[0].Params["min"])
	assert.Equal(t, float64(10), iss[0].Params["max"])

	// bounds given backwards are normalized
	assert.Empty(t, run(rules.Range(10, 0), 5))

	// non-numeric values violate the rule rather than panicking
	iss = run(r, "five")
	require.Len(t, iss, 1)
	assert.Equal(t, typefence.CodeRuleViolation, iss[0].Code)
}

func TestCheck(t *testing.T) {
	even := rules.Check("even", func(v any) bool {
		n, ok := v.(int)
		return ok && n%2 == 0
	})

	assert.Empty(t, run(even, 4))

	iss := run(even, 3)
	require.Len(t, iss, 1)
	assert.Equal(t, typefence.CodeRuleViolation, iss[0].Code)
	assert.Equal(t, "even", iss[0].Rule)
}

func TestCombinators(t *testing.T) {
	positive := rules.Check("positive", func(v any) bool { n, ok := v.(int); return ok && n > 0 })
	even := rules.Check("even", func(v any) bool { n, ok := v.(int); return ok && n%2 == 0 })

	assert.Empty(t, run(rules.And(positive, even), 4))
	assert.Len(t, run(rules.And(positive, even), -3), 2)

	assert.Empty(t, run(rules.Or(positive, even), -4)) // even still holds
	assert.Len(t, run(rules.Or(positive, rules.And(positive, even)), -3), 1)
}

func TestRulesRunThroughSignature(t *testing.T) {
	sig, err := typefence.NewSignature("resize",
		typefence.P("factor").Rules(rules.Range(0, 1)),
	)
	require.NoError(t, err)

	err = sig.Check(t.Context(), []any{0.5}, typefence.RequireAll(false))
	assert.NoError(t, err)

	err = sig.Check(t.Context(), []any{2.0}, typefence.RequireAll(false))
	iss, ok := typefence.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, typefence.CodeOutOfRange, iss[0].Code)
	assert.Equal(t, "/factor", iss[0].Path)
}
