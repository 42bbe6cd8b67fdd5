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

package main

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lamb-lang/lamb"
	"github.com/lamb-lang/lamb/ast"
	"github.com/lamb-lang/lamb/parser"
	"github.com/lamb-lang/lamb/types"
)

var constraintFlag string

var rootCmd = &cobra.Command{
	Use:           "lamb",
	Short:         "λ-calculus type inference",
	Long:          "lamb infers simple Hindley-Milner types for untyped λ-terms.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL()
	},
}

var inferCmd = &cobra.Command{
	Use:   "infer EXPR",
	Short: "Infer the type of a λ-term and exit",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := eval(strings.Join(args, " "), constraintFlag)
		if err != nil {
			color.Red("%s", err)
			return err
		}
		cmd.Println(out)
		return nil
	},
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive prompt",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL()
	},
}

func init() {
	inferCmd.Flags().StringVarP(&constraintFlag, "constraint", "c", "",
		"constraint skeleton, e.g. 'λx:A. _'")
	rootCmd.AddCommand(inferCmd, replCmd)
}

// eval parses src (and the optional constraint skeleton), infers, and
// renders `tree : type`.
func eval(src, constraint string) (string, error) {
	term, err := parser.ParseTerm(src)
	if err != nil {
		return "", err
	}
	var (
		t    types.Named
		tree lamb.NamedTerm
	)
	if constraint != "" {
		c, err := parser.ParseConstraint(constraint)
		if err != nil {
			return "", err
		}
		t, tree, err = lamb.InferTypeWithConstraint(term, c)
		if err != nil {
			return "", err
		}
	} else {
		t, tree, err = lamb.InferType(term)
		if err != nil {
			return "", err
		}
	}
	return lamb.ShowTypeTree(tree) + " : " + types.NamedString(t), nil
}

// free variables of the term, for the REPL's :free command
func freeNames(term ast.Term) []string {
	free := ast.FreeVars(term)
	names := make([]string, 0, len(free))
	for name := range free {
		names = append(names, name)
	}
	return names
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
