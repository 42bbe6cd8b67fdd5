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

// Constraint is a partially-annotated skeleton of a term: the same tree
// shape, optionally decorated with named types at variable occurrences and
// abstraction binders.
type Constraint interface {
	ConstraintName() string
}

var (
	_ Constraint = (*ConstraintVar)(nil)
	_ Constraint = (*ConstraintApp)(nil)
	_ Constraint = (*ConstraintAbs)(nil)
)

// Variable occurrence or hole; Type is nil when unannotated.
type ConstraintVar struct {
	Type types.Named
}

// "Var"
func (c *ConstraintVar) ConstraintName() string { return "Var" }

// Application skeleton
type ConstraintApp struct {
	Func Constraint
	Arg  Constraint
}

// "App"
func (c *ConstraintApp) ConstraintName() string { return "App" }

// Abstraction skeleton; Type annotates the bound variable and is nil when
// unannotated.
type ConstraintAbs struct {
	Type types.Named
	Body Constraint
}

// "Abs"
func (c *ConstraintAbs) ConstraintName() string { return "Abs" }

// constraintNames walks the constraint skeleton and the canonicalized typed
// tree in lockstep, producing the mapping from type-variable ids to the
// user-supplied names. The first mismatch fails the merge.
func constraintNames(c Constraint, tree TypedTerm) (map[types.Id]types.Named, error) {
	switch c := c.(type) {
	case *ConstraintVar:
		tv, ok := tree.(*TypedVar)
		if !ok {
			return nil, errors.New("constraint shape not match!")
		}
		if c.Type == nil {
			return map[types.Id]types.Named{}, nil
		}
		return constrainType(tv.Type, c.Type)

	case *ConstraintApp:
		ta, ok := tree.(*TypedApp)
		if !ok {
			return nil, errors.New("constraint shape not match!")
		}
		m1, err := constraintNames(c.Func, ta.Func)
		if err != nil {
			return nil, err
		}
		m2, err := constraintNames(c.Arg, ta.Arg)
		if err != nil {
			return nil, err
		}
		return mergeNames(m1, m2)

	case *ConstraintAbs:
		ta, ok := tree.(*TypedAbs)
		if !ok {
			return nil, errors.New("constraint shape not match!")
		}
		m1 := map[types.Id]types.Named{}
		if c.Type != nil {
			var err error
			if m1, err = constrainType(ta.VarType, c.Type); err != nil {
				return nil, err
			}
		}
		m2, err := constraintNames(c.Body, ta.Body)
		if err != nil {
			return nil, err
		}
		return mergeNames(m1, m2)
	}
	return nil, errors.New("constraint shape not match!")
}

// constrainType matches an inferred type against a named annotation of the
// same shape. A named arrow cannot constrain deeper than the inferred type's
// arrow structure.
func constrainType(t types.Type, n types.Named) (map[types.Id]types.Named, error) {
	switch t := t.(type) {
	case *types.Var:
		return map[types.Id]types.Named{t.Id: n}, nil
	case *types.Arrow:
		arrow, ok := n.(*types.NamedArrow)
		if !ok {
			return nil, errors.Errorf("type %s can't be constraint to %s",
				types.TypeString(t), types.NamedString(n))
		}
		m1, err := constrainType(t.Dom, arrow.Dom)
		if err != nil {
			return nil, err
		}
		m2, err := constrainType(t.Cod, arrow.Cod)
		if err != nil {
			return nil, err
		}
		return mergeNames(m1, m2)
	}
	return nil, errors.New("constraint shape not match!")
}

// mergeNames unions two name maps; assigning two distinct names to one
// type-variable fails.
func mergeNames(m1, m2 map[types.Id]types.Named) (map[types.Id]types.Named, error) {
	for id, n := range m2 {
		if existing, ok := m1[id]; ok && !types.NamedEqual(existing, n) {
			return nil, errors.Errorf("%s can't be %s",
				types.NamedString(existing), types.NamedString(n))
		}
		m1[id] = n
	}
	return m1, nil
}
