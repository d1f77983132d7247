package typefence

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/typefence/typefence/internal/callstack"
)

// modulePath prefixes the frames that caller inspection must skip.
const modulePath = "github.com/typefence/typefence"

type accessMode int

const (
	accessPrivate accessMode = iota
	accessProtected
)

func (m accessMode) String() string {
	if m == accessPrivate {
		return "private"
	}
	return "protected"
}

// announced maps a type key ("pkg/path.Type") to the keys of the types it
// directly embeds. Written by Announce, read on every guarded call.
var announced sync.Map // string -> []string

// Private wraps a method value so that only methods of the owner's exact
// type may call it. Calls from plain functions, other types, or embedders
// are rejected with an access_denied Issues error before the body executes.
//
// Caller identity is recovered from the live call stack, so the same
// limitations as any frame inspection apply: the guard gates calls into the
// wrapped value, not reassignment of the field holding it.
func Private[F any](owner any, fn F) F {
	return guardAccess(owner, fn, accessPrivate)
}

// Protected wraps a method value so that methods of the owner's type, or of
// any announced type embedding it, may call it.
//
// Go cannot resolve a reflect.Type from a stack frame alone, so embedding
// types become visible to Protected only once they pass through Announce
// (typically in their constructor) or through a guard of their own.
func Protected[F any](owner any, fn F) F {
	return guardAccess(owner, fn, accessProtected)
}

// Announce registers v's type and its embedded chain with the access
// registry, making it recognizable as an embedder in Protected checks.
func Announce(v any) {
	announceType(indirectType(reflect.TypeOf(v)))
}

func guardAccess[F any](owner any, fn F, mode accessMode) F {
	ot := indirectType(reflect.TypeOf(owner))
	if ot == nil || ot.Name() == "" {
		panic(fmt.Errorf("typefence: %s guard owner must be a named type", mode))
	}
	fv := reflect.ValueOf(fn)
	if !fv.IsValid() || fv.Kind() != reflect.Func {
		panic(ErrNotFunc)
	}
	Announce(owner)
	ownerKey := typeKey(ot)
	ft := fv.Type()
	errIdx := -1
	if n := ft.NumOut(); n > 0 && ft.Out(n-1) == errType {
		errIdx = n - 1
	}
	name := funcName(fn)

	handler := func(args []reflect.Value) []reflect.Value {
		fr, ok := callstack.Caller(modulePath)
		if !ok || !accessAllowed(fr, ownerKey, mode) {
			it := IssueAt(Root(), CodeAccessDenied,
				fmt.Sprintf("%s method of %s called from %s", mode, ownerKey, callerKey(fr)),
				map[string]any{
					"method": name, "mode": mode.String(),
					"owner": ownerKey, "caller": callerKey(fr),
				})
			return failResults(ft, errIdx, Issues{it})
		}
		return fv.Call(args)
	}
	return reflect.MakeFunc(ft, handler).Interface().(F)
}

func accessAllowed(fr callstack.Frame, ownerKey string, mode accessMode) bool {
	if fr.Recv == "" {
		return false // plain functions carry no class context
	}
	caller := fr.PkgPath + "." + fr.Recv
	if caller == ownerKey {
		return true
	}
	return mode == accessProtected && embedsTransitively(caller, ownerKey)
}

func callerKey(fr callstack.Frame) string {
	if fr.PkgPath == "" {
		return "<unknown>"
	}
	if fr.Recv == "" {
		return fr.PkgPath + "." + fr.Func
	}
	return fr.PkgPath + "." + fr.Recv
}

func typeKey(t reflect.Type) string { return t.PkgPath() + "." + t.Name() }

func indirectType(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

func announceType(t reflect.Type) {
	if t == nil || t.Kind() != reflect.Struct || t.Name() == "" {
		return
	}
	key := typeKey(t)
	if _, loaded := announced.Load(key); loaded {
		return
	}
	var bases []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.Anonymous {
			continue
		}
		bt := indirectType(f.Type)
		if bt.Kind() != reflect.Struct || bt.Name() == "" {
			continue
		}
		bases = append(bases, typeKey(bt))
		announceType(bt)
	}
	announced.Store(key, bases)
}

// embedsTransitively walks the announced embedding edges from caller looking
// for owner.
func embedsTransitively(caller, owner string) bool {
	seen := map[string]struct{}{}
	queue := []string{caller}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if _, dup := seen[cur]; dup {
			continue
		}
		seen[cur] = struct{}{}
		v, ok := announced.Load(cur)
		if !ok {
			continue
		}
		for _, base := range v.([]string) {
			if base == owner {
				return true
			}
			queue = append(queue, base)
		}
	}
	return false
}
