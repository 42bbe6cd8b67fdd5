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
	"github.com/lamb-lang/lamb/internal/util"
	"github.com/lamb-lang/lamb/types"
)

// canonicalize applies the accumulated substitution throughout the result
// type and typed tree, then renumbers the surviving type-variable ids to a
// dense 0-based range, ascending by original id.
func (e *environment) canonicalize(t types.Type, tree TypedTerm) (types.Type, TypedTerm) {
	t = e.subst.Apply(t)
	tree = mapTreeTypes(e.subst.Apply, tree)

	survivors := util.NewIntSet()
	for _, id := range types.Vars(t, nil) {
		survivors.Add(int(id))
	}
	collectTreeVars(tree, survivors)

	renumber := make(map[types.Id]types.Id, len(survivors))
	for dense, id := range survivors.Sorted() {
		renumber[types.Id(id)] = types.Id(dense)
	}
	dense := func(t types.Type) types.Type {
		return types.Map(func(id types.Id) types.Id { return renumber[id] }, t)
	}
	return dense(t), mapTreeTypes(dense, tree)
}

func mapTreeTypes(f func(types.Type) types.Type, tree TypedTerm) TypedTerm {
	switch tree := tree.(type) {
	case *TypedVar:
		return &TypedVar{Name: tree.Name, Type: f(tree.Type)}
	case *TypedApp:
		return &TypedApp{Func: mapTreeTypes(f, tree.Func), Arg: mapTreeTypes(f, tree.Arg)}
	case *TypedAbs:
		return &TypedAbs{Var: tree.Var, VarType: f(tree.VarType), Body: mapTreeTypes(f, tree.Body)}
	}
	return tree
}

func collectTreeVars(tree TypedTerm, set util.IntSet) {
	add := func(t types.Type) {
		for _, id := range types.Vars(t, nil) {
			set.Add(int(id))
		}
	}
	switch tree := tree.(type) {
	case *TypedVar:
		add(tree.Type)
	case *TypedApp:
		collectTreeVars(tree.Func, set)
		collectTreeVars(tree.Arg, set)
	case *TypedAbs:
		add(tree.VarType)
		collectTreeVars(tree.Body, set)
	}
}

// applyNames converts the canonicalized outputs to their user-facing named
// form. Ids matched by a constraint take the constraint's name; the rest
// keep the default t<n> rendering of their id.
func applyNames(t types.Type, tree TypedTerm, names map[types.Id]types.Named) (types.Named, NamedTerm) {
	return nameType(t, names), nameTree(tree, names)
}

func nameType(t types.Type, names map[types.Id]types.Named) types.Named {
	switch t := t.(type) {
	case *types.Var:
		if n, ok := names[t.Id]; ok {
			return n
		}
		return &types.NamedVar{Name: types.VarName(t.Id)}
	case *types.Arrow:
		return &types.NamedArrow{Dom: nameType(t.Dom, names), Cod: nameType(t.Cod, names)}
	}
	return nil
}

func nameTree(tree TypedTerm, names map[types.Id]types.Named) NamedTerm {
	switch tree := tree.(type) {
	case *TypedVar:
		return &NamedVar{Name: tree.Name, Type: nameType(tree.Type, names)}
	case *TypedApp:
		return &NamedApp{Func: nameTree(tree.Func, names), Arg: nameTree(tree.Arg, names)}
	case *TypedAbs:
		return &NamedAbs{Var: tree.Var, VarType: nameType(tree.VarType, names), Body: nameTree(tree.Body, names)}
	}
	return nil
}
