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

// environment carries the mutable state of a single inference run: the types
// currently assigned to term variables in scope, the accumulated
// type-variable substitution, and the fresh-id counter.
//
// An environment is created per inference call and never shared; it cannot
// be used concurrently.
type environment struct {
	// Types assigned to term variables in the enclosing scope
	vars map[string]types.Type
	// Accumulated substitution for unified type-variables
	subst types.Subst
	// Next unused type-variable id
	counter types.Id
}

func newEnvironment() *environment {
	return &environment{
		vars:  make(map[string]types.Type),
		subst: types.NewSubst(),
	}
}

// mintId returns the next unused type-variable id.
func (e *environment) mintId() types.Id {
	id := e.counter
	e.counter++
	return id
}

func (e *environment) freshVar() *types.Var {
	return &types.Var{Id: e.mintId()}
}

func (e *environment) bindTermVar(name string, t types.Type) { e.vars[name] = t }

func (e *environment) unbindTermVar(name string) { delete(e.vars, name) }

func (e *environment) lookupTermVar(name string) (types.Type, bool) {
	t, ok := e.vars[name]
	return t, ok
}

// bindTypeVar records id ↦ t in the substitution and rewrites the
// term-variable map under the extended substitution, so subsequent
// term-variable lookups see up-to-date types. Binding an id to itself is a
// no-op.
func (e *environment) bindTypeVar(id types.Id, t types.Type) {
	if tv, ok := t.(*types.Var); ok && tv.Id == id {
		return
	}
	e.subst = e.subst.Set(id, t)
	for name, vt := range e.vars {
		e.vars[name] = e.subst.Apply(vt)
	}
}
