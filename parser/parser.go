// The MIT License (MIT)
//
// Copyright (c) 2026 The lamb authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package parser

import (
	"github.com/pkg/errors"

	"github.com/lamb-lang/lamb"
	"github.com/lamb-lang/lamb/ast"
	"github.com/lamb-lang/lamb/types"
)

// ErrUnexpectedEOF is the cause of any parse error produced by running out
// of input mid-term. Interactive callers probe for it with IsIncomplete to
// prompt for a continuation line instead of reporting a hard error.
var ErrUnexpectedEOF = errors.New("unexpected end of input")

// IsIncomplete reports whether err indicates input that may become valid
// with more text appended.
func IsIncomplete(err error) bool {
	return errors.Cause(err) == ErrUnexpectedEOF
}

type parser struct {
	lex lexer
	tok token
}

func newParser(src string) (*parser, error) {
	p := &parser{lex: lexer{src: src}}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) expect(kind tokenKind) (token, error) {
	tok := p.tok
	if tok.kind != kind {
		return token{}, p.unexpected(kind.String())
	}
	return tok, p.advance()
}

func (p *parser) unexpected(wanted string) error {
	if p.tok.kind == tokenEOF {
		return errors.Wrapf(ErrUnexpectedEOF, "expected %s", wanted)
	}
	return errors.Errorf("expected %s, found %s at offset %d", wanted, p.tok.kind, p.tok.offset)
}

// ParseTerm parses a complete λ-term.
func ParseTerm(src string) (ast.Term, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}
	t, err := p.term()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokenEOF {
		return nil, errors.Errorf("unexpected %s at offset %d", p.tok.kind, p.tok.offset)
	}
	return t, nil
}

func (p *parser) term() (ast.Term, error) {
	if p.tok.kind == tokenLambda {
		return p.abs()
	}
	return p.app()
}

func (p *parser) abs() (ast.Term, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	var binders []string
	for p.tok.kind == tokenIdent {
		binders = append(binders, p.tok.text)
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if len(binders) == 0 {
		return nil, p.unexpected("binder")
	}
	if _, err := p.expect(tokenDot); err != nil {
		return nil, err
	}
	body, err := p.term()
	if err != nil {
		return nil, err
	}
	for i := len(binders) - 1; i >= 0; i-- {
		body = &ast.Abs{Var: binders[i], Body: body}
	}
	return body, nil
}

func (p *parser) app() (ast.Term, error) {
	t, err := p.atom()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokenIdent || p.tok.kind == tokenLParen {
		arg, err := p.atom()
		if err != nil {
			return nil, err
		}
		t = &ast.App{Func: t, Arg: arg}
	}
	return t, nil
}

func (p *parser) atom() (ast.Term, error) {
	switch p.tok.kind {
	case tokenIdent:
		name := p.tok.text
		return &ast.Var{Name: name}, p.advance()
	case tokenLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		t, err := p.term()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokenRParen); err != nil {
			return nil, err
		}
		return t, nil
	}
	return nil, p.unexpected("term")
}

// ParseConstraint parses a constraint skeleton: a term-shaped tree with
// optional `:T` annotations on binders and variable occurrences, and `_`
// holes.
func ParseConstraint(src string) (lamb.Constraint, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}
	c, err := p.constraint()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokenEOF {
		return nil, errors.Errorf("unexpected %s at offset %d", p.tok.kind, p.tok.offset)
	}
	return c, nil
}

func (p *parser) constraint() (lamb.Constraint, error) {
	if p.tok.kind == tokenLambda {
		return p.constraintAbs()
	}
	return p.constraintApp()
}

type binder struct {
	annot types.Named
}

func (p *parser) constraintAbs() (lamb.Constraint, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	var binders []binder
	for p.tok.kind == tokenIdent {
		if err := p.advance(); err != nil {
			return nil, err
		}
		var annot types.Named
		if p.tok.kind == tokenColon {
			if err := p.advance(); err != nil {
				return nil, err
			}
			var err error
			if annot, err = p.namedType(); err != nil {
				return nil, err
			}
		}
		binders = append(binders, binder{annot: annot})
	}
	if len(binders) == 0 {
		return nil, p.unexpected("binder")
	}
	if _, err := p.expect(tokenDot); err != nil {
		return nil, err
	}
	body, err := p.constraint()
	if err != nil {
		return nil, err
	}
	for i := len(binders) - 1; i >= 0; i-- {
		body = &lamb.ConstraintAbs{Type: binders[i].annot, Body: body}
	}
	return body, nil
}

func (p *parser) constraintApp() (lamb.Constraint, error) {
	c, err := p.constraintAtom()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokenIdent || p.tok.kind == tokenLParen {
		arg, err := p.constraintAtom()
		if err != nil {
			return nil, err
		}
		c = &lamb.ConstraintApp{Func: c, Arg: arg}
	}
	return c, nil
}

func (p *parser) constraintAtom() (lamb.Constraint, error) {
	switch p.tok.kind {
	case tokenIdent:
		if err := p.advance(); err != nil {
			return nil, err
		}
		var annot types.Named
		if p.tok.kind == tokenColon {
			if err := p.advance(); err != nil {
				return nil, err
			}
			var err error
			if annot, err = p.namedType(); err != nil {
				return nil, err
			}
		}
		return &lamb.ConstraintVar{Type: annot}, nil
	case tokenLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		c, err := p.constraint()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokenRParen); err != nil {
			return nil, err
		}
		return c, nil
	}
	return nil, p.unexpected("constraint")
}

// namedType parses a named type: identifiers and right-associative arrows.
func (p *parser) namedType() (types.Named, error) {
	dom, err := p.namedAtom()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokenArrow {
		return dom, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	cod, err := p.namedType()
	if err != nil {
		return nil, err
	}
	return &types.NamedArrow{Dom: dom, Cod: cod}, nil
}

func (p *parser) namedAtom() (types.Named, error) {
	switch p.tok.kind {
	case tokenIdent:
		name := p.tok.text
		return &types.NamedVar{Name: name}, p.advance()
	case tokenLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		n, err := p.namedType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokenRParen); err != nil {
			return nil, err
		}
		return n, nil
	}
	return nil, p.unexpected("type")
}
