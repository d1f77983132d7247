package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	typefence "github.com/typefence/typefence"
	"github.com/typefence/typefence/hint"
	"github.com/typefence/typefence/rules"
)

// signatureFile is the YAML declaration format:
//
//	function: increment
//	params:
//	  - name: x
//	    type: int|float64
//	  - name: mode
//	    type: string
//	    one_of: [fast, slow]
//	  - name: ratio
//	    type: number
//	    range: [0, 1]
//
// type is optional; a hint-less parameter is only accepted under --lax.
type signatureFile struct {
	Function string      `yaml:"function"`
	Params   []paramDecl `yaml:"params"`
}

type paramDecl struct {
	Name  string    `yaml:"name"`
	Type  string    `yaml:"type"`
	OneOf []any     `yaml:"one_of"`
	Range []float64 `yaml:"range"`
}

func loadSignatureFile(path string) (*typefence.Signature, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read signature: %w", err)
	}
	var sf signatureFile
	if err := yaml.Unmarshal(raw, &sf); err != nil {
		return nil, fmt.Errorf("parse signature %s: %w", path, err)
	}
	if sf.Function == "" {
		return nil, fmt.Errorf("parse signature %s: missing function name", path)
	}
	specs := make([]typefence.ParamSpec, 0, len(sf.Params))
	for _, d := range sf.Params {
		if d.Name == "" {
			return nil, fmt.Errorf("parse signature %s: parameter without a name", path)
		}
		ps := typefence.P(d.Name)
		if d.Type != "" {
			h, err := hint.Parse(d.Type)
			if err != nil {
				return nil, fmt.Errorf("parse signature %s: param %q: %w", path, d.Name, err)
			}
			ps = ps.Hint(h)
		}
		if len(d.OneOf) > 0 {
			ps = ps.Rules(rules.OneOf(d.OneOf...))
		}
		if len(d.Range) == 2 {
			ps = ps.Rules(rules.Range(d.Range[0], d.Range[1]))
		} else if len(d.Range) != 0 {
			return nil, fmt.Errorf("parse signature %s: param %q: range must have exactly two bounds", path, d.Name)
		}
		specs = append(specs, ps)
	}
	sig, err := typefence.NewSignature(sf.Function, specs...)
	if err != nil {
		return nil, fmt.Errorf("parse signature %s: %w", path, err)
	}
	return sig, nil
}
