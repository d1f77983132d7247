package main

import (
	"fmt"
	"strings"

	typefence "github.com/typefence/typefence"
)

// renderReport prints one line per issue under the signature header. Output
// is deterministic for positional argument lists, which makes it suitable
// for golden tests.
func renderReport(sig *typefence.Signature, iss typefence.Issues) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "%s\n", sig.Describe())
	for _, it := range iss {
		// Issues from custom rules may carry hand-built paths; At brings
		// them to canonical pointer form before printing.
		fmt.Fprintf(b, "  %s at %s", it.Code, typefence.At(it.Path).Pointer())
		switch {
		case it.Hint != "":
			fmt.Fprintf(b, ": %s", it.Hint)
		case it.Message != "":
			fmt.Fprintf(b, ": %s", it.Message)
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(b, "%d issue(s)\n", len(iss))
	return b.String()
}
