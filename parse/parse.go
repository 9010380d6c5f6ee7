// Package parse reads s-expression text into ir trees. The resolution
// engine itself only consumes structured trees; this package serves the
// command line tools and the test suites.
package parse

import (
	"fmt"
	"strconv"

	"github.com/defpatch/defpatch/ir"
)

// Parse reads exactly one form.
func Parse(d []byte) (*ir.Node, error) {
	p := &parser{d: d}
	p.skipSpace()
	node, err := p.form()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.eof() {
		return nil, fmt.Errorf("%w at offset %d: trailing input", ErrParse, p.pos)
	}
	return node, nil
}

// ParseAll reads zero or more forms.
func ParseAll(d []byte) ([]*ir.Node, error) {
	p := &parser{d: d}
	var res []*ir.Node
	for {
		p.skipSpace()
		if p.eof() {
			return res, nil
		}
		node, err := p.form()
		if err != nil {
			return nil, err
		}
		res = append(res, node)
	}
}

type parser struct {
	d   []byte
	pos int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.d)
}

func (p *parser) skipSpace() {
	for !p.eof() {
		switch p.d[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		case ';':
			for !p.eof() && p.d[p.pos] != '\n' {
				p.pos++
			}
		default:
			return
		}
	}
}

func (p *parser) form() (*ir.Node, error) {
	if p.eof() {
		return nil, fmt.Errorf("%w at offset %d: unexpected end of input", ErrParse, p.pos)
	}
	switch p.d[p.pos] {
	case '(':
		return p.list()
	case ')':
		return nil, fmt.Errorf("%w at offset %d: unexpected ')'", ErrParse, p.pos)
	case '"':
		return p.string()
	default:
		return p.atom()
	}
}

func (p *parser) list() (*ir.Node, error) {
	open := p.pos
	p.pos++ // '('
	var values []*ir.Node
	for {
		p.skipSpace()
		if p.eof() {
			return nil, fmt.Errorf("%w at offset %d: unclosed list", ErrParse, open)
		}
		if p.d[p.pos] == ')' {
			p.pos++
			return ir.FromSlice(values), nil
		}
		node, err := p.form()
		if err != nil {
			return nil, err
		}
		values = append(values, node)
	}
}

func (p *parser) string() (*ir.Node, error) {
	open := p.pos
	p.pos++ // '"'
	for !p.eof() {
		switch p.d[p.pos] {
		case '\\':
			p.pos += 2
		case '"':
			p.pos++
			s, err := strconv.Unquote(string(p.d[open:p.pos]))
			if err != nil {
				return nil, fmt.Errorf("%w at offset %d: bad string: %v", ErrParse, open, err)
			}
			return ir.FromString(s), nil
		default:
			p.pos++
		}
	}
	return nil, fmt.Errorf("%w at offset %d: unterminated string", ErrParse, open)
}

func isDelim(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '(', ')', '"', ';':
		return true
	}
	return false
}

func (p *parser) atom() (*ir.Node, error) {
	start := p.pos
	for !p.eof() && !isDelim(p.d[p.pos]) {
		p.pos++
	}
	lex := string(p.d[start:p.pos])
	if i, err := strconv.ParseInt(lex, 10, 64); err == nil {
		return ir.FromInt(i), nil
	}
	if f, err := strconv.ParseFloat(lex, 64); err == nil {
		return ir.FromFloat(f), nil
	}
	return ir.Sym(lex), nil
}
