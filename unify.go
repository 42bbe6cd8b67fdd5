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
	"github.com/pkg/errors"

	"github.com/lamb-lang/lamb/types"
)

// unify merges two types under the current substitution, recording a binding
// whenever an unbound type-variable meets another type. Operands are
// head-resolved through the substitution before dispatch, so a variable
// bound earlier in the same unification is seen as its binding. When both
// operands are distinct unbound variables, the right one is bound to the
// left.
func (e *environment) unify(a, b types.Type) (types.Type, error) {
	a, b = e.subst.Resolve(a), e.subst.Resolve(b)
	avar, _ := a.(*types.Var)
	bvar, _ := b.(*types.Var)
	switch {
	case avar != nil && bvar != nil && avar.Id == bvar.Id:
		return a, nil

	case bvar != nil:
		if e.occursIn(bvar.Id, a) {
			return nil, errors.Errorf("can't construct infinite type: %s = %s",
				types.TypeString(b), types.TypeString(a))
		}
		e.bindTypeVar(bvar.Id, a)
		return a, nil

	case avar != nil:
		if e.occursIn(avar.Id, b) {
			return nil, errors.Errorf("can't construct infinite type: %s = %s",
				types.TypeString(a), types.TypeString(b))
		}
		e.bindTypeVar(avar.Id, b)
		return b, nil
	}

	aarr, aok := a.(*types.Arrow)
	barr, bok := b.(*types.Arrow)
	if !aok || !bok {
		return nil, errors.Errorf("can't unify %s with %s",
			types.TypeString(a), types.TypeString(b))
	}
	l, err := e.unify(aarr.Dom, barr.Dom)
	if err != nil {
		return nil, err
	}
	r, err := e.unify(aarr.Cod, barr.Cod)
	if err != nil {
		return nil, err
	}
	return &types.Arrow{Dom: l, Cod: r}, nil
}

// occursIn reports whether the type-variable id occurs in t under the
// current substitution.
func (e *environment) occursIn(id types.Id, t types.Type) bool {
	switch t := e.subst.Resolve(t).(type) {
	case *types.Var:
		return t.Id == id
	case *types.Arrow:
		return e.occursIn(id, t.Dom) || e.occursIn(id, t.Cod)
	}
	return false
}
