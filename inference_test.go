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
	"testing"

	"github.com/lamb-lang/lamb/ast"
	"github.com/lamb-lang/lamb/internal/util"
	"github.com/lamb-lang/lamb/types"
)

func v(name string) *ast.Var               { return &ast.Var{Name: name} }
func app(f, x ast.Term) *ast.App           { return &ast.App{Func: f, Arg: x} }
func abs(name string, b ast.Term) *ast.Abs { return &ast.Abs{Var: name, Body: b} }

func TestIdentity(t *testing.T) {
	// λx. x : t0 → t0, both positions sharing one type variable
	term := abs("x", v("x"))

	ty, tree, err := InferType(term)
	if err != nil {
		t.Fatal(err)
	}
	if got := types.NamedString(ty); got != "t0 → t0" {
		t.Fatalf("type: %s", got)
	}
	if got := ShowTypeTree(tree); got != "λx: t0 . {x: t0}" {
		t.Fatalf("tree: %s", got)
	}
	t.Logf("%s : %s", ShowTypeTree(tree), types.NamedString(ty))
}

func TestApply(t *testing.T) {
	// λf. λx. f x : (t0 → t1) → t0 → t1; f's domain is x's type
	term := abs("f", abs("x", app(v("f"), v("x"))))

	ty, tree, err := InferType(term)
	if err != nil {
		t.Fatal(err)
	}
	if got := types.NamedString(ty); got != "(t0 → t1) → t0 → t1" {
		t.Fatalf("type: %s", got)
	}
	if got := ShowTypeTree(tree); got != "λf: t0 → t1 . λx: t0 . {f: t0 → t1} {x: t0}" {
		t.Fatalf("tree: %s", got)
	}
}

func TestSelfApplication(t *testing.T) {
	// λx. x x is untypable: the occurs check rejects t = t → u
	term := abs("x", app(v("x"), v("x")))

	_, _, err := InferType(term)
	if err == nil {
		t.Fatalf("expected infinite-type failure")
	}
	if !strings.HasPrefix(err.Error(), "can't construct infinite type:") {
		t.Fatalf("error: %s", err)
	}
	want := "can't construct infinite type: t1 = t1 → t2\n\tin x\n\tin x x\n\tin λx. x x"
	if err.Error() != want {
		t.Fatalf("error: %q", err)
	}
	t.Logf("error: %s", err)
}

func TestApplyIdentityToIdentity(t *testing.T) {
	// (λx. x) (λy. y) : t0 → t0
	term := app(abs("x", v("x")), abs("y", v("y")))

	ty, tree, err := InferType(term)
	if err != nil {
		t.Fatal(err)
	}
	if got := types.NamedString(ty); got != "t0 → t0" {
		t.Fatalf("type: %s", got)
	}
	if got := ShowTypeTree(tree); got != "(λx: t0 → t0 . {x: t0 → t0}) (λy: t0 . {y: t0})" {
		t.Fatalf("tree: %s", got)
	}
}

func TestFreeVariable(t *testing.T) {
	if got := InferString(v("x")); got != "{x: t0} : t0" {
		t.Fatalf("inferred: %s", got)
	}
	if got := InferString(app(abs("x", v("x")), v("y"))); got != "(λx: t0 . {x: t0}) {y: t0} : t0" {
		t.Fatalf("inferred: %s", got)
	}
}

func TestDeterminism(t *testing.T) {
	terms := []ast.Term{
		abs("f", abs("x", app(v("f"), app(v("f"), v("x"))))),
		app(abs("x", v("x")), abs("y", v("y"))),
		abs("x", abs("y", v("x"))),
	}
	for _, term := range terms {
		first := InferString(term)
		for i := 0; i < 3; i++ {
			if got := InferString(term); got != first {
				t.Fatalf("inference not deterministic: %q vs %q", first, got)
			}
		}
	}
}

func TestTwiceCombinator(t *testing.T) {
	// λf. λx. f (f x) : (t0 → t0) → t0 → t0
	term := abs("f", abs("x", app(v("f"), app(v("f"), v("x")))))

	ty, _, err := InferType(term)
	if err != nil {
		t.Fatal(err)
	}
	if got := types.NamedString(ty); got != "(t0 → t0) → t0 → t0" {
		t.Fatalf("type: %s", got)
	}
}

func TestRenumberDensity(t *testing.T) {
	terms := []ast.Term{
		abs("f", abs("x", app(v("f"), v("x")))),
		abs("x", abs("y", abs("z", app(app(v("x"), v("z")), app(v("y"), v("z")))))),
		app(abs("x", v("x")), abs("y", v("y"))),
	}
	for _, term := range terms {
		e := newEnvironment()
		required := e.freshVar()
		ty, tree, err := e.infer(term, required, []ast.Term{term})
		if err != nil {
			t.Fatal(err)
		}
		ty, tree = e.canonicalize(ty, tree)

		seen := util.NewIntSet()
		for _, id := range types.Vars(ty, nil) {
			seen.Add(int(id))
		}
		collectTreeVars(tree, seen)
		for dense, id := range seen.Sorted() {
			if dense != id {
				t.Fatalf("ids not dense for %s: %v", ast.TermString(term), seen.Sorted())
			}
		}
	}
}

func TestSubstitutionPropagatesToTermVars(t *testing.T) {
	e := newEnvironment()
	a, b := e.freshVar(), e.freshVar()
	e.bindTermVar("x", a)

	if _, err := e.unify(a, &types.Arrow{Dom: b, Cod: b}); err != nil {
		t.Fatal(err)
	}
	got, ok := e.lookupTermVar("x")
	if !ok {
		t.Fatalf("x unbound")
	}
	if s := types.TypeString(got); s != "t1 → t1" {
		t.Fatalf("term-var type: %s", s)
	}
}

func TestBindTypeVarSelfNoop(t *testing.T) {
	e := newEnvironment()
	a := e.freshVar()
	e.bindTypeVar(a.Id, &types.Var{Id: a.Id})
	if e.subst.Len() != 0 {
		t.Fatalf("expected no binding, got %d", e.subst.Len())
	}
}

func TestOccursCheckThroughSubstitution(t *testing.T) {
	// After a ↦ b → b, unifying b with a must fail even though a's id
	// does not appear literally in b.
	e := newEnvironment()
	a, b := e.freshVar(), e.freshVar()
	if _, err := e.unify(a, &types.Arrow{Dom: b, Cod: b}); err != nil {
		t.Fatal(err)
	}
	if _, err := e.unify(b, a); err == nil {
		t.Fatalf("expected occurs failure")
	}
}
