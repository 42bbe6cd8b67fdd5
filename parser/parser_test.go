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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lamb-lang/lamb"
	"github.com/lamb-lang/lamb/ast"
	"github.com/lamb-lang/lamb/types"
)

func TestParseTerm(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"x", "x"},
		{"λx. x", "λx. x"},
		{`\x. x`, "λx. x"},
		{"λf x. f x", "λf. λx. f x"},
		{"f x y", "f x y"},
		{"f (x y)", "f (x y)"},
		{"(λx. x) (λy. y)", "(λx. x) (λy. y)"},
		{"  λ x .  x  x ", "λx. x x"},
		{"λx'. x'", "λx'. x'"},
		{"(((x)))", "x"},
	}
	for _, c := range cases {
		term, err := ParseTerm(c.src)
		require.NoError(t, err, "src: %s", c.src)
		require.Equal(t, c.want, ast.TermString(term), "src: %s", c.src)
	}
}

func TestParseTermShape(t *testing.T) {
	term, err := ParseTerm("λf x. f x")
	require.NoError(t, err)
	require.True(t, ast.Equal(term, &ast.Abs{
		Var: "f",
		Body: &ast.Abs{
			Var:  "x",
			Body: &ast.App{Func: &ast.Var{Name: "f"}, Arg: &ast.Var{Name: "x"}},
		},
	}))

	// application is left-associative
	term, err = ParseTerm("f x y")
	require.NoError(t, err)
	require.True(t, ast.Equal(term, &ast.App{
		Func: &ast.App{Func: &ast.Var{Name: "f"}, Arg: &ast.Var{Name: "x"}},
		Arg:  &ast.Var{Name: "y"},
	}))
}

func TestParseTermErrors(t *testing.T) {
	for _, src := range []string{"", "λ. x", ")", "f )", "x λy. y x (", "x ? y", "λx x"} {
		_, err := ParseTerm(src)
		require.Error(t, err, "src: %s", src)
	}
}

func TestParseTermIncomplete(t *testing.T) {
	for _, src := range []string{"λx.", "(f x", "λx", "f (", ""} {
		_, err := ParseTerm(src)
		require.Error(t, err, "src: %s", src)
		require.True(t, IsIncomplete(err), "src: %s, err: %v", src, err)
	}

	// hard errors are not incomplete
	_, err := ParseTerm("f )")
	require.Error(t, err)
	require.False(t, IsIncomplete(err))
}

func TestParseConstraint(t *testing.T) {
	c, err := ParseConstraint("λx:A. _")
	require.NoError(t, err)
	outer, ok := c.(*lamb.ConstraintAbs)
	require.True(t, ok)
	require.True(t, types.NamedEqual(outer.Type, &types.NamedVar{Name: "A"}))
	hole, ok := outer.Body.(*lamb.ConstraintVar)
	require.True(t, ok)
	require.Nil(t, hole.Type)

	c, err = ParseConstraint("λx:A. λy:B. _")
	require.NoError(t, err)
	outer = c.(*lamb.ConstraintAbs)
	inner, ok := outer.Body.(*lamb.ConstraintAbs)
	require.True(t, ok)
	require.True(t, types.NamedEqual(inner.Type, &types.NamedVar{Name: "B"}))
}

func TestParseConstraintArrowTypes(t *testing.T) {
	c, err := ParseConstraint("λf:(A -> B). _")
	require.NoError(t, err)
	outer := c.(*lamb.ConstraintAbs)
	require.Equal(t, "A → B", types.NamedString(outer.Type))

	// arrows associate right without parens
	c, err = ParseConstraint("λf:A -> B -> C. _")
	require.NoError(t, err)
	outer = c.(*lamb.ConstraintAbs)
	require.Equal(t, "A → B → C", types.NamedString(outer.Type))

	c, err = ParseConstraint("λf:(A → B) → C. _")
	require.NoError(t, err)
	outer = c.(*lamb.ConstraintAbs)
	require.Equal(t, "(A → B) → C", types.NamedString(outer.Type))
}

func TestParseConstraintShapes(t *testing.T) {
	c, err := ParseConstraint("(λx:A. _) y:B")
	require.NoError(t, err)
	capp, ok := c.(*lamb.ConstraintApp)
	require.True(t, ok)
	_, ok = capp.Func.(*lamb.ConstraintAbs)
	require.True(t, ok)
	arg, ok := capp.Arg.(*lamb.ConstraintVar)
	require.True(t, ok)
	require.True(t, types.NamedEqual(arg.Type, &types.NamedVar{Name: "B"}))
}

func TestParseConstraintErrors(t *testing.T) {
	for _, src := range []string{"λx:. _", "λx:A -> . _", "λx:A", "λx:(A. _"} {
		_, err := ParseConstraint(src)
		require.Error(t, err, "src: %s", src)
	}
}

func TestParseThenInfer(t *testing.T) {
	term, err := ParseTerm("λf x. f x")
	require.NoError(t, err)
	require.Equal(t, "λf: t0 → t1 . λx: t0 . {f: t0 → t1} {x: t0} : (t0 → t1) → t0 → t1",
		lamb.InferString(term))
}
