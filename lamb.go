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

// lamb provides type inference for the untyped λ-calculus.
//
// The type-system is monomorphic Hindley-Milner: terms are assigned simple
// types (arrows over type variables) by generating fresh type variables while
// walking the term and unifying them, with an occurs check rejecting infinite
// types. Inferred type variables may additionally be constrained against a
// user-supplied, partially-annotated skeleton of the term, which maps them to
// user-facing names.
//
// Inference is deterministic: for a given term, the resulting type is always
// the same up to renaming of type variables, and the renaming itself is
// canonicalized to a dense t0, t1, ... sequence.
//
// Links:
//
// * Hindley-Milner type system (Wikipedia): https://en.wikipedia.org/wiki/Hindley–Milner_type_system
//
// * The Principal Type-Scheme of an Object in Combinatory Logic (Hindley, 1969)
package lamb
