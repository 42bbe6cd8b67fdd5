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

// ast defines λ-terms and their pure structural operations: free and bound
// variable analysis, α-equivalence, pattern matching, and capture-avoiding
// substitution.
package ast

// Term is the base for all λ-terms.
type Term interface {
	// Name of the syntax-type of the term.
	TermName() string
}

var (
	_ Term = (*Var)(nil)
	_ Term = (*App)(nil)
	_ Term = (*Abs)(nil)
)

// Variable occurrence
type Var struct {
	Name string
}

// "Var"
func (t *Var) TermName() string { return "Var" }

// Application: `f x`
type App struct {
	Func Term
	Arg  Term
}

// "App"
func (t *App) TermName() string { return "App" }

// Abstraction: `λx. e`, binding Var within Body
type Abs struct {
	Var  string
	Body Term
}

// "Abs"
func (t *Abs) TermName() string { return "Abs" }

// Equal reports whether two terms are structurally identical, including
// the names of bound variables. See AlphaEqual for equality up to renaming
// of binders.
func Equal(t1, t2 Term) bool {
	switch t1 := t1.(type) {
	case *Var:
		t2, ok := t2.(*Var)
		return ok && t1.Name == t2.Name
	case *App:
		t2, ok := t2.(*App)
		return ok && Equal(t1.Func, t2.Func) && Equal(t1.Arg, t2.Arg)
	case *Abs:
		t2, ok := t2.(*Abs)
		return ok && t1.Var == t2.Var && Equal(t1.Body, t2.Body)
	}
	return false
}
