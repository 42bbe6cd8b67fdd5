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

package lamb

import (
	"strings"

	"github.com/lamb-lang/lamb/ast"
	"github.com/lamb-lang/lamb/types"
)

// ShowTypeTree renders a typed tree: a variable occurrence as `{name: type}`,
// an abstraction as `λv: type . body`, an application as juxtaposition. An
// application's left operand is parenthesized when it is an abstraction, and
// its right operand whenever it is not a variable.
func ShowTypeTree(tree NamedTerm) string {
	var sb strings.Builder
	showTree(&sb, tree)
	return sb.String()
}

func showTree(sb *strings.Builder, tree NamedTerm) {
	switch tree := tree.(type) {
	case *NamedVar:
		sb.WriteByte('{')
		sb.WriteString(tree.Name)
		sb.WriteString(": ")
		sb.WriteString(types.NamedString(tree.Type))
		sb.WriteByte('}')

	case *NamedApp:
		if _, abs := tree.Func.(*NamedAbs); abs {
			sb.WriteByte('(')
			showTree(sb, tree.Func)
			sb.WriteByte(')')
		} else {
			showTree(sb, tree.Func)
		}
		sb.WriteByte(' ')
		if _, simple := tree.Arg.(*NamedVar); simple {
			showTree(sb, tree.Arg)
		} else {
			sb.WriteByte('(')
			showTree(sb, tree.Arg)
			sb.WriteByte(')')
		}

	case *NamedAbs:
		sb.WriteString("λ")
		sb.WriteString(tree.Var)
		sb.WriteString(": ")
		sb.WriteString(types.NamedString(tree.VarType))
		sb.WriteString(" . ")
		showTree(sb, tree.Body)
	}
}

// InferString infers the type of term and returns the rendered typed tree
// followed by " : " and the type, or the failure message verbatim.
func InferString(term ast.Term) string {
	t, tree, err := InferType(term)
	if err != nil {
		return err.Error()
	}
	return ShowTypeTree(tree) + " : " + types.NamedString(t)
}

// InferConstraintString is InferString under a constraint skeleton.
func InferConstraintString(term ast.Term, c Constraint) string {
	t, tree, err := InferTypeWithConstraint(term, c)
	if err != nil {
		return err.Error()
	}
	return ShowTypeTree(tree) + " : " + types.NamedString(t)
}
