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

// FreeVars returns the set of variable names occurring free in t.
func FreeVars(t Term) map[string]bool {
	free := make(map[string]bool)
	collectFreeVars(t, free)
	return free
}

func collectFreeVars(t Term, free map[string]bool) {
	switch t := t.(type) {
	case *Var:
		free[t.Name] = true
	case *App:
		collectFreeVars(t.Func, free)
		collectFreeVars(t.Arg, free)
	case *Abs:
		inner := FreeVars(t.Body)
		delete(inner, t.Var)
		for name := range inner {
			free[name] = true
		}
	}
}

// BoundVars returns the set of names appearing as a binder anywhere in t.
// A name may be both free and bound in the same term.
func BoundVars(t Term) map[string]bool {
	bound := make(map[string]bool)
	collectBoundVars(t, bound)
	return bound
}

func collectBoundVars(t Term, bound map[string]bool) {
	switch t := t.(type) {
	case *App:
		collectBoundVars(t.Func, bound)
		collectBoundVars(t.Arg, bound)
	case *Abs:
		bound[t.Var] = true
		collectBoundVars(t.Body, bound)
	}
}

// Length returns the number of variable occurrences and binders in t.
func Length(t Term) int {
	switch t := t.(type) {
	case *App:
		return Length(t.Func) + Length(t.Arg)
	case *Abs:
		return 1 + Length(t.Body)
	default:
		return 1
	}
}

// Match attempts f at the root of t, then recursively within t, returning the
// first produced value. For an App the function operand is tried before the
// argument. For an Abs the bound variable is tried as if it were a Var node
// before the body; a consequence is that Match can produce a value for a
// binder name which never occurs free in t.
func Match[T any](t Term, f func(Term) (T, bool)) (T, bool) {
	if v, ok := f(t); ok {
		return v, true
	}
	switch t := t.(type) {
	case *App:
		if v, ok := Match(t.Func, f); ok {
			return v, true
		}
		return Match(t.Arg, f)
	case *Abs:
		if v, ok := f(&Var{Name: t.Var}); ok {
			return v, true
		}
		return Match(t.Body, f)
	}
	var zero T
	return zero, false
}

// OccursIn reports whether p matches a subterm of t, under Match's notion of
// a subterm (the binder of an Abs is tried as a Var node).
func OccursIn(p, t Term) bool {
	_, ok := Match(t, func(s Term) (struct{}, bool) {
		return struct{}{}, Equal(p, s)
	})
	return ok
}

// SubTerms returns all subterms of t, including t itself, deduplicated by
// structural equality. Binders do not contribute Var subterms.
func SubTerms(t Term) []Term {
	var sub []Term
	add := func(s Term) {
		for _, seen := range sub {
			if Equal(seen, s) {
				return
			}
		}
		sub = append(sub, s)
	}
	var walk func(Term)
	walk = func(s Term) {
		add(s)
		switch s := s.(type) {
		case *App:
			walk(s.Func)
			walk(s.Arg)
		case *Abs:
			walk(s.Body)
		}
	}
	walk(t)
	return sub
}

// AlphaEqual reports whether two terms are equal up to consistent renaming of
// bound variables. Two abstractions λv1. e1 and λv2. e2 are α-equal iff v2 is
// not free in λv1. e1 and e1 is α-equal to e2 with v2 renamed to v1.
func AlphaEqual(t1, t2 Term) bool {
	switch t1 := t1.(type) {
	case *Var:
		t2, ok := t2.(*Var)
		return ok && t1.Name == t2.Name
	case *App:
		t2, ok := t2.(*App)
		return ok && AlphaEqual(t1.Func, t2.Func) && AlphaEqual(t1.Arg, t2.Arg)
	case *Abs:
		t2, ok := t2.(*Abs)
		if !ok {
			return false
		}
		if t2.Var != t1.Var && FreeVars(t1.Body)[t2.Var] {
			return false
		}
		return AlphaEqual(t1.Body, Substitute(t2.Var, &Var{Name: t1.Var}, t2.Body))
	}
	return false
}
