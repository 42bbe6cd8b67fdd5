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

package ast

// Substitute replaces free occurrences of x in t by n, renaming binders where
// required so that no free variable of n is captured. Binders are renamed to
// the first name of the Fresh enumeration outside the free variables of n;
// the inner renaming cannot reintroduce capture since the chosen name is
// fresh relative to n.
func Substitute(x string, n Term, t Term) Term {
	switch t := t.(type) {
	case *Var:
		if t.Name == x {
			return n
		}
		return t
	case *App:
		return &App{Func: Substitute(x, n, t.Func), Arg: Substitute(x, n, t.Arg)}
	case *Abs:
		if t.Var == x || !FreeVars(t.Body)[x] {
			return t
		}
		if !FreeVars(n)[t.Var] {
			return &Abs{Var: t.Var, Body: Substitute(x, n, t.Body)}
		}
		z := Fresh(FreeVars(n))
		renamed := Substitute(t.Var, &Var{Name: z}, t.Body)
		return &Abs{Var: z, Body: Substitute(x, n, renamed)}
	}
	return t
}
