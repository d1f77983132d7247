// Package callstack recovers the identity of the function that called into a
// guarded wrapper. It walks runtime call frames, skips the wrapper machinery
// (runtime, reflect and this module's own frames), and parses the first
// remaining frame's symbol name into package path, receiver type and function
// name.
package callstack

import (
	"runtime"
	"strings"
)

// Frame identifies a single call site.
type Frame struct {
	PkgPath string // import path of the calling package
	Recv    string // receiver type name, "" for plain functions
	Func    string // function or method name
}

// maxDepth bounds the walk; wrapper machinery never stacks deeper than this.
const maxDepth = 64

// Caller returns the first frame whose package is neither runtime, reflect,
// nor one of the given prefixes. ok is false when every captured frame was
// machinery, which callers should treat as an unidentifiable caller.
func Caller(skipPrefixes ...string) (Frame, bool) {
	pcs := make([]uintptr, maxDepth)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		fr, more := frames.Next()
		if fr.Function != "" {
			f := Parse(fr.Function)
			if !skipped(f.PkgPath, skipPrefixes) {
				return f, true
			}
		}
		if !more {
			break
		}
	}
	return Frame{}, false
}

func skipped(pkg string, prefixes []string) bool {
	if pkg == "runtime" || pkg == "reflect" {
		return true
	}
	for _, p := range prefixes {
		if pkg == p || strings.HasPrefix(pkg, p+"/") {
			return true
		}
	}
	return false
}

// Parse splits a runtime symbol name like
// "github.com/x/pkg.(*Recv).Method.func1" into its frame parts. Generic
// instantiation suffixes ("[...]") and closure suffixes (".func1") are
// stripped; value receivers ("pkg.Recv.Method") are handled as well.
func Parse(symbol string) Frame {
	name := stripGenerics(symbol)

	// The package path is everything up to the first dot after the last slash.
	slash := strings.LastIndex(name, "/")
	dot := strings.Index(name[slash+1:], ".")
	if dot < 0 {
		return Frame{PkgPath: name}
	}
	pkg := name[:slash+1+dot]
	rest := name[slash+1+dot+1:]

	segs := strings.Split(rest, ".")
	segs = dropClosureSuffixes(segs)
	if len(segs) == 0 {
		return Frame{PkgPath: pkg}
	}
	if len(segs) == 1 {
		return Frame{PkgPath: pkg, Func: segs[0]}
	}
	recv := segs[0]
	if strings.HasPrefix(recv, "(*") && strings.HasSuffix(recv, ")") {
		recv = recv[2 : len(recv)-1]
	}
	return Frame{PkgPath: pkg, Recv: recv, Func: segs[len(segs)-1]}
}

func stripGenerics(s string) string {
	for {
		open := strings.Index(s, "[")
		if open < 0 {
			return s
		}
		depth := 0
		end := -1
		for i := open; i < len(s); i++ {
			switch s[i] {
			case '[':
				depth++
			case ']':
				depth--
				if depth == 0 {
					end = i
				}
			}
			if end >= 0 {
				break
			}
		}
		if end < 0 {
			return s
		}
		s = s[:open] + s[end+1:]
	}
}

func dropClosureSuffixes(segs []string) []string {
	for len(segs) > 1 && isClosureSeg(segs[len(segs)-1]) {
		segs = segs[:len(segs)-1]
	}
	return segs
}

func isClosureSeg(s string) bool {
	if strings.HasPrefix(s, "func") && len(s) > 4 {
		for _, r := range s[4:] {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	}
	// gowrap/deferwrap style numeric segments
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
