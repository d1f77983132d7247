package typefence

import (
	"fmt"
	"strconv"
	"strings"
)

// PathRef builds argument-pointer paths in a chain-safe way and creates
// Issues. The root segment is the parameter name; further segments address
// container elements reached during deep checks.
type PathRef interface {
	Field(name string) PathRef
	Index(i int) PathRef
	Pointer() string
	Issue(code, msg string, kv ...any) Issue
}

// Root returns a PathRef at the argument-list root.
func Root() PathRef { return &pathRef{parts: nil} }

// Param returns a PathRef anchored at the named parameter.
func Param(name string) PathRef { return Root().Field(name) }

// At parses a pointer like "/items/2" into a PathRef.
func At(path string) PathRef {
	if path == "" || path == "/" {
		return Root()
	}
	// naive split on '/', ignoring first empty due to leading '/'
	parts := []string{}
	for _, p := range strings.Split(path, "/") {
		if p == "" {
			continue
		}
		parts = append(parts, p)
	}
	return &pathRef{parts: parts}
}

type pathRef struct {
	parts []string
}

func (p *pathRef) Field(name string) PathRef {
	if name == "" {
		return p
	}
	// escape '~' -> '~0', '/' -> '~1' per RFC6901
	esc := strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
	return &pathRef{parts: append(append([]string{}, p.parts...), esc)}
}

func (p *pathRef) Index(i int) PathRef {
	return &pathRef{parts: append(append([]string{}, p.parts...), strconv.Itoa(i))}
}

func (p *pathRef) Pointer() string {
	if len(p.parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.parts, "/")
}

func (p *pathRef) Issue(code, msg string, kv ...any) Issue {
	m := map[string]any{}
	for i := 0; i+1 < len(kv); i += 2 {
		m[fmt.Sprint(kv[i])] = kv[i+1]
	}
	return Issue{Path: p.Pointer(), Code: code, Message: msg, Params: m}
}
