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

package ast

import (
	"strings"
)

// Variable names are enumerated as u, v, w, x, y, z, a, ..., t, then the same
// alphabet with one prime appended per round: u', v', ..., t', u'', ...
var baseNames [26]string

func init() {
	for i := range baseNames {
		baseNames[i] = string(byte('a' + (20+i)%26))
	}
}

// Fresh returns the first name in the enumeration not present in avoid.
// The enumeration order is fixed, so the chosen name is reproducible for a
// given avoid set.
func Fresh(avoid map[string]bool) string {
	for round := 0; ; round++ {
		primes := strings.Repeat("'", round)
		for _, base := range baseNames {
			name := base + primes
			if !avoid[name] {
				return name
			}
		}
	}
}
