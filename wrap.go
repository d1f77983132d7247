package typefence

import (
	"context"
	"fmt"
	"reflect"

	"github.com/google/uuid"
)

var (
	errType = reflect.TypeOf((*error)(nil)).Elem()
	ctxType = reflect.TypeOf((*context.Context)(nil)).Elem()
)

// Wrap returns a callable with the identical signature of fn that checks
// every call against sig before delegating. Results of a passing call are
// returned unmodified.
//
// Failure surfacing depends on fn's shape: when the last result is an error,
// the wrapper returns zero values plus the Issues error; otherwise it panics
// with the Issues value. Checking happens strictly before the body executes.
//
// When fn's first parameter is a context.Context, fail-fast marks carried by
// the caller's context (WithFailFast) are honored in addition to the FailFast
// option.
func Wrap[F any](fn F, sig *Signature, opts ...Option) (F, error) {
	var zero F
	fv := reflect.ValueOf(fn)
	if !fv.IsValid() || fv.Kind() != reflect.Func {
		return zero, ErrNotFunc
	}
	ft := fv.Type()
	if ft.IsVariadic() {
		return zero, ErrVariadic
	}
	if sig == nil {
		return zero, fmt.Errorf("%w: nil signature", ErrParamCount)
	}
	if ft.NumIn() != len(sig.params) {
		return zero, fmt.Errorf("%w: function has %d parameters, %d declared", ErrParamCount, ft.NumIn(), len(sig.params))
	}
	cfg := newConfig(opts)
	if cfg.logger != nil {
		cfg.wrapID = uuid.NewString()
	}
	errIdx := -1
	if n := ft.NumOut(); n > 0 && ft.Out(n-1) == errType {
		errIdx = n - 1
	}
	ctxIn := ft.NumIn() > 0 && ft.In(0) == ctxType

	handler := func(args []reflect.Value) []reflect.Value {
		ctx := context.Background()
		if ctxIn {
			if c, ok := args[0].Interface().(context.Context); ok && c != nil {
				ctx = c
			}
		}
		if iss := sig.check(ctx, cfg, args); len(iss) > 0 {
			cfg.logFailure(sig.name, iss)
			return failResults(ft, errIdx, iss)
		}
		return fv.Call(args)
	}
	return reflect.MakeFunc(ft, handler).Interface().(F), nil
}

// MustWrap is Wrap panicking on declaration errors.
func MustWrap[F any](fn F, sig *Signature, opts ...Option) F {
	w, err := Wrap(fn, sig, opts...)
	if err != nil {
		panic(err)
	}
	return w
}

// failResults materializes the failure return for a wrapped call: zero values
// with iss in the trailing error slot, or a panic when fn has no error
// result.
func failResults(ft reflect.Type, errIdx int, iss Issues) []reflect.Value {
	if errIdx < 0 {
		panic(iss)
	}
	out := make([]reflect.Value, ft.NumOut())
	for i := range out {
		out[i] = reflect.Zero(ft.Out(i))
	}
	ev := reflect.New(errType).Elem()
	ev.Set(reflect.ValueOf(iss))
	out[errIdx] = ev
	return out
}

func (c *config) logFailure(fn string, iss Issues) {
	if c.logger == nil {
		return
	}
	evt := c.logger.Error().Str("function", fn)
	if c.wrapID != "" {
		evt = evt.Str("wrap_id", c.wrapID)
	}
	evt.Err(iss).Msg("argument check failed")
}
