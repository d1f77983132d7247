package typefence

import "github.com/typefence/typefence/i18n"

// IssueAt creates an Issue at p with the dictionary message for code and the
// human-readable detail in Hint. Call sites that would otherwise fill four
// Issue fields by hand use this instead.
func IssueAt(p PathRef, code, hint string, params map[string]any) Issue {
	return Issue{
		Path:    p.Pointer(),
		Code:    code,
		Message: i18n.T(code, nil),
		Hint:    hint,
		Params:  params,
	}
}
