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

package types

import (
	"strconv"
	"strings"
)

// VarName returns the default rendering of a type-variable id.
func VarName(id Id) string { return "t" + strconv.Itoa(int(id)) }

// TypeString returns a string representation of a Type. Arrows print
// right-associatively; only the left operand of an arrow is parenthesized
// when it is itself an arrow.
func TypeString(t Type) string {
	var sb strings.Builder
	typeString(&sb, false, t)
	return sb.String()
}

func typeString(sb *strings.Builder, operand bool, t Type) {
	switch t := t.(type) {
	case *Var:
		sb.WriteString(VarName(t.Id))
	case *Arrow:
		if operand {
			sb.WriteByte('(')
		}
		typeString(sb, true, t.Dom)
		sb.WriteString(" → ")
		typeString(sb, false, t.Cod)
		if operand {
			sb.WriteByte(')')
		}
	}
}

// NamedString returns a string representation of a Named type, under the
// same parenthesization rules as TypeString.
func NamedString(n Named) string {
	var sb strings.Builder
	namedString(&sb, false, n)
	return sb.String()
}

func namedString(sb *strings.Builder, operand bool, n Named) {
	switch n := n.(type) {
	case *NamedVar:
		sb.WriteString(n.Name)
	case *NamedArrow:
		if operand {
			sb.WriteByte('(')
		}
		namedString(sb, true, n.Dom)
		sb.WriteString(" → ")
		namedString(sb, false, n.Cod)
		if operand {
			sb.WriteByte(')')
		}
	}
}
