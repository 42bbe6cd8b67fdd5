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
	"github.com/lamb-lang/lamb/types"
)

// TypedTerm is a term tree decorated with inferred types: a Var carries its
// type, an Abs carries the type of its bound variable. An App carries no
// annotation; its type is the codomain of its function child's arrow.
type TypedTerm interface {
	TypedTermName() string
}

var (
	_ TypedTerm = (*TypedVar)(nil)
	_ TypedTerm = (*TypedApp)(nil)
	_ TypedTerm = (*TypedAbs)(nil)
)

// Typed variable occurrence
type TypedVar struct {
	Name string
	Type types.Type
}

// "Var"
func (t *TypedVar) TypedTermName() string { return "Var" }

// Typed application
type TypedApp struct {
	Func TypedTerm
	Arg  TypedTerm
}

// "App"
func (t *TypedApp) TypedTermName() string { return "App" }

// Typed abstraction; VarType is the type of the bound variable.
type TypedAbs struct {
	Var     string
	VarType types.Type
	Body    TypedTerm
}

// "Abs"
func (t *TypedAbs) TypedTermName() string { return "Abs" }

// NamedTerm is the user-facing form of a TypedTerm, with canonicalized,
// possibly constraint-named types at every annotation.
type NamedTerm interface {
	NamedTermName() string
}

var (
	_ NamedTerm = (*NamedVar)(nil)
	_ NamedTerm = (*NamedApp)(nil)
	_ NamedTerm = (*NamedAbs)(nil)
)

// Named variable occurrence
type NamedVar struct {
	Name string
	Type types.Named
}

// "Var"
func (t *NamedVar) NamedTermName() string { return "Var" }

// Named application
type NamedApp struct {
	Func NamedTerm
	Arg  NamedTerm
}

// "App"
func (t *NamedApp) NamedTermName() string { return "App" }

// Named abstraction
type NamedAbs struct {
	Var     string
	VarType types.Named
	Body    NamedTerm
}

// "Abs"
func (t *NamedAbs) NamedTermName() string { return "Abs" }
