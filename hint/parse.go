package hint

import (
	"fmt"
	"reflect"
	"strings"

	tf "github.com/typefence/typefence"
)

// Parse reads a textual type expression into a Hint. The grammar covers the
// declarations signature files need:
//
//	expr  := term ('|' term)*
//	term  := '[]' term | 'map[' expr ']' term | '(' expr ')' | ident
//	ident := any | number | bool | string | int | int8..int64 |
//	         uint | uint8..uint64 | float32 | float64 | byte
//
// Unknown identifiers parse into Unsupported pass-through hints, so a
// declaration the checker cannot understand never rejects a legitimate call.
// Structural errors such as unbalanced brackets are reported.
func Parse(expr string) (tf.Hint, error) {
	p := &parser{src: expr}
	h, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, fmt.Errorf("hint: unexpected %q at offset %d", p.src[p.pos:], p.pos)
	}
	return h, nil
}

// MustParse is Parse panicking on malformed expressions.
func MustParse(expr string) tf.Hint {
	h, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return h
}

type parser struct {
	src string
	pos int
}

func (p *parser) parseExpr() (tf.Hint, error) {
	var alts []tf.Hint
	for {
		t, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		alts = append(alts, t)
		p.skipSpace()
		if !p.eat("|") {
			break
		}
	}
	if len(alts) == 1 {
		return alts[0], nil
	}
	return Union(alts...), nil
}

func (p *parser) parseTerm() (tf.Hint, error) {
	p.skipSpace()
	switch {
	case p.eat("[]"):
		elem, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		return Slice(elem), nil
	case p.eat("map["):
		key, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if !p.eat("]") {
			return nil, fmt.Errorf("hint: missing ']' in map key at offset %d", p.pos)
		}
		val, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		return Map(key, val), nil
	case p.eat("("):
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if !p.eat(")") {
			return nil, fmt.Errorf("hint: missing ')' at offset %d", p.pos)
		}
		return inner, nil
	default:
		return p.parseIdent()
	}
}

func (p *parser) parseIdent() (tf.Hint, error) {
	start := p.pos
	for p.pos < len(p.src) && isIdentRune(p.src[p.pos]) {
		p.pos++
	}
	name := p.src[start:p.pos]
	if name == "" {
		return nil, fmt.Errorf("hint: expected a type name at offset %d", start)
	}
	switch name {
	case "any":
		return Any(), nil
	case "number":
		return Number(), nil
	}
	if rt, ok := namedTypes[name]; ok {
		return OfType(rt), nil
	}
	return Unsupported(name), nil
}

func (p *parser) eat(tok string) bool {
	if strings.HasPrefix(p.src[p.pos:], tok) {
		p.pos += len(tok)
		return true
	}
	return false
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && p.src[p.pos] == ' ' {
		p.pos++
	}
}

func isIdentRune(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

var namedTypes = map[string]reflect.Type{
	"bool":    reflect.TypeOf(false),
	"string":  reflect.TypeOf(""),
	"int":     reflect.TypeOf(int(0)),
	"int8":    reflect.TypeOf(int8(0)),
	"int16":   reflect.TypeOf(int16(0)),
	"int32":   reflect.TypeOf(int32(0)),
	"int64":   reflect.TypeOf(int64(0)),
	"uint":    reflect.TypeOf(uint(0)),
	"uint8":   reflect.TypeOf(uint8(0)),
	"uint16":  reflect.TypeOf(uint16(0)),
	"uint32":  reflect.TypeOf(uint32(0)),
	"uint64":  reflect.TypeOf(uint64(0)),
	"float32": reflect.TypeOf(float32(0)),
	"float64": reflect.TypeOf(float64(0)),
	"byte":    reflect.TypeOf(byte(0)),
}
