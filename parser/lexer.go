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

// parser turns surface syntax into λ-terms and constraint skeletons.
//
// Terms are written `λx. x` or `\x. x`, with application by juxtaposition
// (left-associative) and parentheses for grouping. Constraint skeletons use
// the same grammar plus optional `:T` annotations after binders and variable
// occurrences, where T is a named type over `->` (or `→`) arrows; `_` is an
// unannotated hole.
package parser

import (
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenLambda
	tokenIdent
	tokenDot
	tokenColon
	tokenArrow
	tokenLParen
	tokenRParen
)

func (k tokenKind) String() string {
	switch k {
	case tokenEOF:
		return "end of input"
	case tokenLambda:
		return "'λ'"
	case tokenIdent:
		return "identifier"
	case tokenDot:
		return "'.'"
	case tokenColon:
		return "':'"
	case tokenArrow:
		return "'->'"
	case tokenLParen:
		return "'('"
	case tokenRParen:
		return "')'"
	}
	return "unknown token"
}

type token struct {
	kind   tokenKind
	text   string
	offset int
}

type lexer struct {
	src string
	off int
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) && r != 'λ'
}

func isIdentPart(r rune) bool {
	return r == '_' || r == '\'' || unicode.IsLetter(r) && r != 'λ' || unicode.IsDigit(r)
}

func (l *lexer) next() (token, error) {
	for l.off < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[l.off:])
		start := l.off
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			l.off += size
			continue
		case r == 'λ' || r == '\\':
			l.off += size
			return token{kind: tokenLambda, text: l.src[start:l.off], offset: start}, nil
		case r == '.':
			l.off += size
			return token{kind: tokenDot, text: ".", offset: start}, nil
		case r == ':':
			l.off += size
			return token{kind: tokenColon, text: ":", offset: start}, nil
		case r == '(':
			l.off += size
			return token{kind: tokenLParen, text: "(", offset: start}, nil
		case r == ')':
			l.off += size
			return token{kind: tokenRParen, text: ")", offset: start}, nil
		case r == '→':
			l.off += size
			return token{kind: tokenArrow, text: l.src[start:l.off], offset: start}, nil
		case r == '-':
			if l.off+1 < len(l.src) && l.src[l.off+1] == '>' {
				l.off += 2
				return token{kind: tokenArrow, text: "->", offset: start}, nil
			}
			return token{}, errors.Errorf("unexpected character %q at offset %d", r, start)
		case isIdentStart(r):
			l.off += size
			for l.off < len(l.src) {
				r, size := utf8.DecodeRuneInString(l.src[l.off:])
				if !isIdentPart(r) {
					break
				}
				l.off += size
			}
			return token{kind: tokenIdent, text: l.src[start:l.off], offset: start}, nil
		default:
			return token{}, errors.Errorf("unexpected character %q at offset %d", r, start)
		}
	}
	return token{kind: tokenEOF, offset: l.off}, nil
}
