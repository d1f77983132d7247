package typefence

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

// CheckJSON validates a JSON-encoded argument list against sig. A JSON array
// is treated as positional arguments; a JSON object supplies arguments by
// parameter name. Numbers decode as float64, so declarations intended for
// JSON checking should use float64 or the number hint.
func CheckJSON(ctx context.Context, sig *Signature, data []byte, opts ...Option) error {
	trim := bytes.TrimLeft(data, " \t\r\n")
	if len(trim) == 0 {
		return parseIssue("empty input", nil)
	}
	switch trim[0] {
	case '[':
		var args []any
		if err := json.Unmarshal(data, &args); err != nil {
			return parseIssue("invalid JSON argument array", err)
		}
		return sig.Check(ctx, args, opts...)
	case '{':
		var named map[string]any
		if err := json.Unmarshal(data, &named); err != nil {
			return parseIssue("invalid JSON argument object", err)
		}
		args, iss := sig.bindNamed(named)
		if len(iss) > 0 {
			return iss
		}
		return sig.Check(ctx, args, opts...)
	default:
		return parseIssue("expected a JSON array or object of arguments", nil)
	}
}

func parseIssue(hint string, cause error) Issues {
	it := IssueAt(Root(), CodeParseError, hint, nil)
	it.Cause = cause
	return Issues{it}
}

// bindNamed maps name/value pairs onto the declared parameter order. Missing
// and unknown names are reported without attempting type checks, since the
// positional slots would be meaningless.
func (s *Signature) bindNamed(named map[string]any) ([]any, Issues) {
	var iss Issues
	args := make([]any, len(s.params))
	for i, p := range s.params {
		v, ok := named[p.name]
		if !ok {
			it := IssueAt(Param(p.name), CodeArityMismatch,
				fmt.Sprintf("missing argument %q", p.name),
				map[string]any{"param": p.name})
			iss = AppendIssues(iss, it)
			continue
		}
		args[i] = v
	}
	declared := map[string]struct{}{}
	for _, p := range s.params {
		declared[p.name] = struct{}{}
	}
	for name := range named {
		if _, ok := declared[name]; !ok {
			it := IssueAt(Param(name), CodeUnknownParam,
				fmt.Sprintf("no parameter named %q, declared: %s", name, strings.Join(s.Params(), ", ")),
				map[string]any{"param": name})
			iss = AppendIssues(iss, it)
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return args, nil
}
