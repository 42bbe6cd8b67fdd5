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

import (
	"sort"
	"strings"
	"testing"
)

func v(name string) *Var           { return &Var{Name: name} }
func app(f, x Term) *App           { return &App{Func: f, Arg: x} }
func abs(name string, b Term) *Abs { return &Abs{Var: name, Body: b} }

func names(set map[string]bool) string {
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return strings.Join(out, " ")
}

func TestFreeAndBoundVars(t *testing.T) {
	// (λx. x y) x
	term := app(abs("x", app(v("x"), v("y"))), v("x"))
	if got := names(FreeVars(term)); got != "x y" {
		t.Fatalf("free vars: %s", got)
	}
	if got := names(BoundVars(term)); got != "x" {
		t.Fatalf("bound vars: %s", got)
	}
	// x is both free and bound in the same term
	if !FreeVars(term)["x"] || !BoundVars(term)["x"] {
		t.Fatalf("expected x to be both free and bound")
	}

	shadowed := abs("x", abs("x", v("x")))
	if got := names(FreeVars(shadowed)); got != "" {
		t.Fatalf("free vars: %s", got)
	}
}

func TestLength(t *testing.T) {
	if got := Length(v("x")); got != 1 {
		t.Fatalf("length: %d", got)
	}
	if got := Length(abs("x", app(v("x"), v("x")))); got != 3 {
		t.Fatalf("length: %d", got)
	}
	if got := Length(app(abs("x", v("x")), abs("y", v("y")))); got != 4 {
		t.Fatalf("length: %d", got)
	}
}

func TestMatchOrder(t *testing.T) {
	firstVar := func(s Term) (string, bool) {
		if s, ok := s.(*Var); ok {
			return s.Name, true
		}
		return "", false
	}

	// left child before right
	name, ok := Match(app(app(v("a"), v("b")), v("c")), firstVar)
	if !ok || name != "a" {
		t.Fatalf("match: %s %v", name, ok)
	}

	// the binder is tried as a Var before the body
	name, ok = Match(abs("c", v("d")), firstVar)
	if !ok || name != "c" {
		t.Fatalf("match: %s %v", name, ok)
	}

	_, ok = Match(abs("c", v("d")), func(s Term) (string, bool) { return "", false })
	if ok {
		t.Fatalf("expected no match")
	}
}

func TestOccursIn(t *testing.T) {
	if !OccursIn(v("x"), app(v("x"), v("y"))) {
		t.Fatalf("expected x to occur")
	}
	if OccursIn(v("z"), app(v("x"), v("y"))) {
		t.Fatalf("expected z not to occur")
	}
	if !OccursIn(app(v("x"), v("y")), abs("z", app(v("x"), v("y")))) {
		t.Fatalf("expected x y to occur")
	}
	// The binder of an Abs is visible as a Var, even though x does not
	// occur free in λx. y.
	if !OccursIn(v("x"), abs("x", v("y"))) {
		t.Fatalf("expected binder occurrence")
	}
}

func TestSubTerms(t *testing.T) {
	term := abs("x", app(v("x"), v("x")))
	sub := SubTerms(term)
	if len(sub) != 3 {
		t.Fatalf("subterms: %d", len(sub))
	}
	for _, want := range []Term{term, app(v("x"), v("x")), v("x")} {
		found := false
		for _, got := range sub {
			if Equal(got, want) {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("missing subterm %s", TermString(want))
		}
	}
}

func TestAlphaEqual(t *testing.T) {
	id1, id2 := abs("x", v("x")), abs("y", v("y"))
	if !AlphaEqual(id1, id2) || !AlphaEqual(id2, id1) {
		t.Fatalf("expected λx. x ≡ λy. y")
	}
	if !AlphaEqual(id1, id1) {
		t.Fatalf("expected reflexivity")
	}

	// transitivity across three renamings
	id3 := abs("z", v("z"))
	if !AlphaEqual(id1, id3) || !AlphaEqual(id2, id3) {
		t.Fatalf("expected transitivity")
	}

	// nested binders
	if !AlphaEqual(abs("x", abs("y", v("x"))), abs("a", abs("b", v("a")))) {
		t.Fatalf("expected λx. λy. x ≡ λa. λb. a")
	}
	if AlphaEqual(abs("x", abs("y", v("x"))), abs("a", abs("b", v("b")))) {
		t.Fatalf("expected λx. λy. x ≢ λa. λb. b")
	}

	// renaming a binder onto a free variable is not α-equivalence
	if AlphaEqual(abs("x", v("y")), abs("y", v("y"))) {
		t.Fatalf("expected λx. y ≢ λy. y")
	}
	if !AlphaEqual(abs("x", v("y")), abs("z", v("y"))) {
		t.Fatalf("expected λx. y ≡ λz. y")
	}

	if AlphaEqual(v("x"), abs("x", v("x"))) {
		t.Fatalf("expected differing shapes to be unequal")
	}
}

func TestTermString(t *testing.T) {
	cases := []struct {
		term Term
		want string
	}{
		{abs("x", app(v("x"), v("x"))), "λx. x x"},
		{app(abs("x", v("x")), abs("y", v("y"))), "(λx. x) (λy. y)"},
		{app(app(v("f"), v("x")), v("y")), "f x y"},
		{app(v("f"), app(v("x"), v("y"))), "f (x y)"},
	}
	for _, c := range cases {
		if got := TermString(c.term); got != c.want {
			t.Fatalf("rendered %q, want %q", got, c.want)
		}
	}
}
