package typefence

import (
	"reflect"

	"github.com/rs/zerolog"
)

// Hint is a declared type expression for one parameter. Implementations live
// in the hint package; the root package only consumes them.
//
// Check reports zero issues when v satisfies the declared type. The deep flag
// requests element-wise validation of containers; hints that do not contain
// anything ignore it.
type Hint interface {
	Check(p PathRef, v reflect.Value, deep bool) []Issue
	String() string
}

// Rule is a value-level check applied to an argument after its type hint
// passed. Constructors live in the rules package.
type Rule func(p PathRef, v reflect.Value) []Issue

// Option configures checking behavior for Wrap and Signature.Check.
type Option func(*config)

type config struct {
	requireAll bool
	deep       bool
	failFast   bool
	method     bool
	logger     *zerolog.Logger
	wrapID     string
}

func newConfig(opts []Option) *config {
	cfg := &config{requireAll: true}
	for _, o := range opts {
		if o != nil {
			o(cfg)
		}
	}
	return cfg
}

// RequireAll controls whether every parameter (except a receiver marked via
// Method) must carry a type hint. Enabled by default; a missing hint is then
// reported at call time as a missing_hint configuration issue.
func RequireAll(on bool) Option { return func(c *config) { c.requireAll = on } }

// Deep enables element-wise validation of container arguments. Cost is
// O(total elements), so it is off by default.
func Deep(on bool) Option { return func(c *config) { c.deep = on } }

// FailFast stops checking at the first failing parameter instead of
// collecting every issue for the call.
func FailFast() Option { return func(c *config) { c.failFast = true } }

// Method marks the first parameter as a receiver: it is exempt from
// RequireAll and is never checked.
func Method() Option { return func(c *config) { c.method = true } }

// WithLogger attaches a zerolog logger; failed checks are logged before the
// error is surfaced to the caller.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = &l }
}
