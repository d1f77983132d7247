package typefence

import (
	"context"
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/typefence/typefence/i18n"
)

// ParamSpec declares one parameter: its name, an optional type hint and
// optional value rules. Build specs with P and the chaining helpers.
type ParamSpec struct {
	name  string
	hint  Hint
	rules []Rule
}

// P declares a parameter by name. Attach a type expression with Hint and
// value rules with Rules.
func P(name string) ParamSpec { return ParamSpec{name: name} }

// Hint attaches the declared type expression.
func (p ParamSpec) Hint(h Hint) ParamSpec {
	p.hint = h
	return p
}

// Rules attaches value rules, applied only after the type hint passed.
func (p ParamSpec) Rules(rs ...Rule) ParamSpec {
	p.rules = append(append([]Rule{}, p.rules...), rs...)
	return p
}

// Name returns the declared parameter name.
func (p ParamSpec) Name() string { return p.name }

// Signature is the declared parameter list used for call-time checking.
// It is built once and immutable afterwards; checking shares no mutable
// state across calls.
type Signature struct {
	name   string
	fnType reflect.Type // nil when declared without a function (NewSignature)
	params []ParamSpec
}

// NewSignature declares a signature without binding it to a Go function.
// This form backs declaration files (CLI) and CheckJSON; it cannot be used
// with Wrap.
func NewSignature(name string, params ...ParamSpec) (*Signature, error) {
	if err := checkParamNames(params); err != nil {
		return nil, err
	}
	return &Signature{name: name, params: params}, nil
}

// SignatureOf inspects fn and binds the declared parameters to it. The
// declaration must cover every parameter in order; variadic functions are
// rejected.
func SignatureOf(fn any, params ...ParamSpec) (*Signature, error) {
	rt := reflect.TypeOf(fn)
	if rt == nil || rt.Kind() != reflect.Func {
		return nil, ErrNotFunc
	}
	if rt.IsVariadic() {
		return nil, ErrVariadic
	}
	if rt.NumIn() != len(params) {
		return nil, fmt.Errorf("%w: function has %d parameters, %d declared", ErrParamCount, rt.NumIn(), len(params))
	}
	if err := checkParamNames(params); err != nil {
		return nil, err
	}
	return &Signature{name: funcName(fn), fnType: rt, params: params}, nil
}

func checkParamNames(params []ParamSpec) error {
	seen := map[string]struct{}{}
	for _, p := range params {
		if _, dup := seen[p.name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateParam, p.name)
		}
		seen[p.name] = struct{}{}
	}
	return nil
}

func funcName(fn any) string {
	pc := reflect.ValueOf(fn).Pointer()
	if f := runtime.FuncForPC(pc); f != nil {
		name := f.Name()
		if i := strings.LastIndex(name, "/"); i >= 0 {
			name = name[i+1:]
		}
		return name
	}
	return "func"
}

// Name returns the signature's function name (best effort for closures).
func (s *Signature) Name() string { return s.name }

// Params returns the declared parameter names in order.
func (s *Signature) Params() []string {
	out := make([]string, len(s.params))
	for i, p := range s.params {
		out[i] = p.name
	}
	return out
}

// Describe renders the normalized declaration, e.g.
// "increment(x int|float64, tag any)". Parameters without a hint render bare.
func (s *Signature) Describe() string {
	parts := make([]string, len(s.params))
	for i, p := range s.params {
		if p.hint != nil {
			parts[i] = p.name + " " + p.hint.String()
		} else {
			parts[i] = p.name
		}
	}
	return fmt.Sprintf("%s(%s)", s.name, strings.Join(parts, ", "))
}

// Check validates the supplied arguments against the declared signature
// without invoking anything. It returns nil or an Issues error. This is the
// same checker Wrap installs in front of the wrapped function.
func (s *Signature) Check(ctx context.Context, args []any, opts ...Option) error {
	cfg := newConfig(opts)
	if len(args) != len(s.params) {
		iss := Issues{Root().Issue(
			CodeArityMismatch, i18n.T(CodeArityMismatch, nil),
			"want", len(s.params), "got", len(args),
		)}
		cfg.logFailure(s.name, iss)
		return iss
	}
	vals := make([]reflect.Value, len(args))
	for i, a := range args {
		vals[i] = reflect.ValueOf(a)
	}
	if iss := s.check(ctx, cfg, vals); len(iss) > 0 {
		cfg.logFailure(s.name, iss)
		return iss
	}
	return nil
}

// check runs the per-parameter validation. vals holds the call arguments in
// declaration order, receiver included when cfg.method is set.
func (s *Signature) check(ctx context.Context, cfg *config, vals []reflect.Value) Issues {
	failFast := cfg.failFast || IsFailFast(ctx)
	var iss Issues
	for i, p := range s.params {
		if cfg.method && i == 0 {
			continue // receiver is never checked
		}
		ref := Param(p.name)
		v := vals[i]
		if v.IsValid() && v.Kind() == reflect.Interface && !v.IsNil() {
			v = v.Elem()
		}
		var pIss []Issue
		if p.hint != nil {
			pIss = p.hint.Check(ref, v, cfg.deep)
		} else if cfg.requireAll {
			it := ref.Issue(CodeMissingHint, i18n.T(CodeMissingHint, nil), "param", p.name)
			it.Hint = fmt.Sprintf("parameter %q has no type hint", p.name)
			iss = AppendIssues(iss, it)
			if failFast {
				return iss
			}
			continue
		}
		if len(pIss) == 0 {
			for _, r := range p.rules {
				if r == nil {
					continue
				}
				pIss = append(pIss, r(ref, v)...)
				if len(pIss) > 0 && failFast {
					break
				}
			}
		}
		iss = AppendIssues(iss, pIss...)
		if len(iss) > 0 && failFast {
			return iss
		}
	}
	return iss
}
