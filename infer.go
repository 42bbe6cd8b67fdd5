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

	"github.com/pkg/errors"

	"github.com/lamb-lang/lamb/ast"
	"github.com/lamb-lang/lamb/types"
)

// InferType infers the type of term with no constraints, returning the
// canonicalized type and the type-decorated term tree. Type variables are
// named t0, t1, ... in ascending order of first allocation among the
// survivors of unification.
func InferType(term ast.Term) (types.Named, NamedTerm, error) {
	return inferNamed(term, nil)
}

// InferTypeWithConstraint infers the type of term, then reconciles the
// result with a partially-annotated constraint skeleton of the same shape.
// Type variables matched by an annotation take the annotation's name;
// the rest keep their default t<n> names.
func InferTypeWithConstraint(term ast.Term, c Constraint) (types.Named, NamedTerm, error) {
	if c == nil {
		return nil, nil, errors.New("empty constraint")
	}
	return inferNamed(term, c)
}

func inferNamed(term ast.Term, c Constraint) (types.Named, NamedTerm, error) {
	if term == nil {
		return nil, nil, errors.New("empty term")
	}
	e := newEnvironment()
	required := e.freshVar()
	t, tree, err := e.infer(term, required, []ast.Term{term})
	if err != nil {
		return nil, nil, err
	}
	t, tree = e.canonicalize(t, tree)
	names := map[types.Id]types.Named{}
	if c != nil {
		if names, err = constraintNames(c, tree); err != nil {
			return nil, nil, err
		}
	}
	nt, ntree := applyNames(t, tree, names)
	return nt, ntree, nil
}

// infer walks term with the expected type required, allocating fresh type
// variables and unifying as it goes. trace lists the enclosing subterms,
// innermost first; it is rendered into the error on unification failure.
func (e *environment) infer(term ast.Term, required types.Type, trace []ast.Term) (types.Type, TypedTerm, error) {
	switch term := term.(type) {
	case *ast.Var:
		old, ok := e.lookupTermVar(term.Name)
		if !ok {
			e.bindTermVar(term.Name, required)
			return required, &TypedVar{Name: term.Name, Type: required}, nil
		}
		t, err := e.unify(old, required)
		if err != nil {
			return nil, nil, traced(err, trace)
		}
		return t, &TypedVar{Name: term.Name, Type: t}, nil

	case *ast.App:
		alpha := e.freshVar()
		targ, atree, err := e.infer(term.Arg, alpha, push(term.Arg, trace))
		if err != nil {
			return nil, nil, err
		}
		tfn, ftree, err := e.infer(term.Func, &types.Arrow{Dom: targ, Cod: required}, push(term.Func, trace))
		if err != nil {
			return nil, nil, err
		}
		arrow, ok := e.subst.Resolve(tfn).(*types.Arrow)
		if !ok {
			return nil, nil, traced(errors.Errorf("can't apply non-arrow type: %s", types.TypeString(tfn)), trace)
		}
		return arrow.Cod, &TypedApp{Func: ftree, Arg: atree}, nil

	case *ast.Abs:
		alpha := e.freshVar()
		beta := e.freshVar()
		saved, shadowed := e.lookupTermVar(term.Var)
		e.bindTermVar(term.Var, alpha)
		tbody, btree, err := e.infer(term.Body, beta, push(term.Body, trace))
		if err != nil {
			return nil, nil, err
		}
		total, err := e.unify(&types.Arrow{Dom: alpha, Cod: tbody}, required)
		if err != nil {
			return nil, nil, traced(err, trace)
		}
		if shadowed {
			e.bindTermVar(term.Var, saved)
		} else {
			e.unbindTermVar(term.Var)
		}
		return total, &TypedAbs{Var: term.Var, VarType: alpha, Body: btree}, nil
	}
	return nil, nil, errors.Errorf("unknown term %s", term.TermName())
}

func push(term ast.Term, trace []ast.Term) []ast.Term {
	next := make([]ast.Term, 0, len(trace)+1)
	next = append(next, term)
	return append(next, trace...)
}

// traced appends one "in <term>" line per enclosing subterm, innermost
// first.
func traced(err error, trace []ast.Term) error {
	var sb strings.Builder
	sb.WriteString(err.Error())
	for _, term := range trace {
		sb.WriteString("\n\tin ")
		sb.WriteString(ast.TermString(term))
	}
	return errors.New(sb.String())
}
