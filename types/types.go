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

// types defines the simple types assigned during inference: type variables
// identified by opaque integer ids, and right-associative function arrows.
// Named types mirror the same shape over user-facing name strings.
package types

// Id is the opaque identifier of a type variable, displayed as t<n>.
type Id int

// Type is the base interface for all types.
type Type interface {
	TypeName() string
}

var (
	_ Type = (*Var)(nil)
	_ Type = (*Arrow)(nil)
)

// Type variable
type Var struct {
	Id Id
}

// "Var"
func (t *Var) TypeName() string { return "Var" }

// Function type: `a → b`. Arrows associate to the right: `a → b → c` is
// `a → (b → c)`.
type Arrow struct {
	Dom Type
	Cod Type
}

// "Arrow"
func (t *Arrow) TypeName() string { return "Arrow" }

// Map applies f to the id of every type-variable leaf of t, preserving the
// arrow structure.
func Map(f func(Id) Id, t Type) Type {
	switch t := t.(type) {
	case *Var:
		return &Var{Id: f(t.Id)}
	case *Arrow:
		return &Arrow{Dom: Map(f, t.Dom), Cod: Map(f, t.Cod)}
	}
	return t
}

// Vars appends the ids of the type-variable leaves of t to ids, left to
// right, possibly with repetition.
func Vars(t Type, ids []Id) []Id {
	switch t := t.(type) {
	case *Var:
		return append(ids, t.Id)
	case *Arrow:
		return Vars(t.Cod, Vars(t.Dom, ids))
	}
	return ids
}

// Named is the base interface for user-facing types, shaped like Type with
// names in place of ids.
type Named interface {
	NamedTypeName() string
}

var (
	_ Named = (*NamedVar)(nil)
	_ Named = (*NamedArrow)(nil)
)

// Named type variable
type NamedVar struct {
	Name string
}

// "Var"
func (t *NamedVar) NamedTypeName() string { return "Var" }

// Named function type
type NamedArrow struct {
	Dom Named
	Cod Named
}

// "Arrow"
func (t *NamedArrow) NamedTypeName() string { return "Arrow" }

// NamedEqual reports whether two named types are structurally identical.
func NamedEqual(n1, n2 Named) bool {
	switch n1 := n1.(type) {
	case *NamedVar:
		n2, ok := n2.(*NamedVar)
		return ok && n1.Name == n2.Name
	case *NamedArrow:
		n2, ok := n2.(*NamedArrow)
		return ok && NamedEqual(n1.Dom, n2.Dom) && NamedEqual(n1.Cod, n2.Cod)
	}
	return false
}
