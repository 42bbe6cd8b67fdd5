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

package types

import (
	"github.com/benbjohnson/immutable"
)

var emptyMap = immutable.NewSortedMap(nil)

var EmptySubst = Subst{emptyMap}

// Subst contains immutable mappings from type-variable ids to the types they
// have been unified with. Entries are ordered by id. No entry may map an id
// to a type containing that id; the unifier's occurs check maintains this,
// and Apply relies on it for termination.
type Subst struct {
	m *immutable.SortedMap
}

func NewSubst() Subst { return Subst{emptyMap} }

// Get the number of entries in the substitution.
func (s Subst) Len() int { return s.m.Len() }

// Get the binding for an id.
func (s Subst) Get(id Id) (Type, bool) {
	t, ok := s.m.Get(int(id))
	if !ok {
		return nil, false
	}
	return t.(Type), true
}

// Has reports whether id is bound.
func (s Subst) Has(id Id) bool {
	_, ok := s.m.Get(int(id))
	return ok
}

// Set returns a substitution extended with a binding for id, without
// mutating the existing substitution.
func (s Subst) Set(id Id, t Type) Subst {
	m := s.m
	if m == nil {
		m = emptyMap
	}
	return Subst{m.Set(int(id), t)}
}

// Iterate over entries in the substitution, in ascending id order.
// If f returns false, iteration will be stopped.
func (s Subst) Range(f func(Id, Type) bool) {
	iter := s.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(Id(k.(int)), v.(Type)) {
			return
		}
	}
}

// Resolve chases bindings while the head of t is a bound type-variable.
// The result is either an arrow or an unbound variable; operands of an arrow
// result are not resolved.
func (s Subst) Resolve(t Type) Type {
	for {
		tv, ok := t.(*Var)
		if !ok {
			return t
		}
		bound, ok := s.Get(tv.Id)
		if !ok {
			return t
		}
		t = bound
	}
}

// Apply rewrites t by replacing every bound type-variable with the recursive
// rewrite of its binding. Terminates because the occurs check prevents
// cycles.
func (s Subst) Apply(t Type) Type {
	switch t := t.(type) {
	case *Var:
		if bound, ok := s.Get(t.Id); ok {
			return s.Apply(bound)
		}
		return t
	case *Arrow:
		return &Arrow{Dom: s.Apply(t.Dom), Cod: s.Apply(t.Cod)}
	}
	return t
}
