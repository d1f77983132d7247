package typefence

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType   = "invalid_type"
	CodeUnionMismatch = "union_mismatch"
	CodeElementType   = "element_type"
	CodeMissingHint   = "missing_hint"
	CodeArityMismatch = "arity_mismatch"
	CodeUnknownParam  = "unknown_param"
	CodeAccessDenied  = "access_denied"
	CodeParseError    = "parse_error"
	// Value rules (rules package)
	CodeNotAllowed    = "not_allowed"
	CodeOutOfRange    = "out_of_range"
	CodeRuleViolation = "rule_violation"
)

// Issue represents a single check failure for one call.
type Issue struct {
	Path    string // Pointer into the argument list (for example: /items/2).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: expected/actual detail, remediation hints.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"expected":"int", "actual":"string"})
	// for i18n and observability.
	Params map[string]any
	// Rule optionally records the rule name that produced this issue.
	Rule string
}

// Issues is a collection of check failures that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_type at /x: expected int, got string
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Hint != "" {
			fmt.Fprintf(b, ": %s", it.Hint)
		} else if it.Message != "" {
			fmt.Fprintf(b, ": %s", it.Message)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// Declaration errors reported by SignatureOf/Wrap before any call happens.
var (
	// ErrNotFunc indicates the wrap target is not a function.
	ErrNotFunc = errors.New("typefence: target is not a function")
	// ErrVariadic indicates the wrap target is variadic, which is unsupported.
	ErrVariadic = errors.New("typefence: variadic functions are not supported")
	// ErrParamCount indicates the declared parameter list does not match the
	// function's parameter list.
	ErrParamCount = errors.New("typefence: declared parameters do not match function arity")
	// ErrDuplicateParam indicates two declared parameters share a name.
	ErrDuplicateParam = errors.New("typefence: duplicate parameter name")
)
