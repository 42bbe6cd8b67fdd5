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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/lamb-lang/lamb/parser"
)

const (
	historyFile = ".lamb_history"
	promptMain  = "==> "
	promptCont  = "... "
)

const banner = `lamb REPL
Ctrl+C cancels input, Ctrl+D exits. Type :help for commands.`

const helpText = `REPL commands:
  :quit                      Exit the REPL
  :help                      Show this help
  :free TERM                 List the free variables of TERM
  :constrain TERM ; SKELETON Infer TERM against a constraint skeleton`

func runREPL() error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := historyPath()
	if f, err := os.Open(histPath); err == nil {
		ln.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Println(banner)
	for {
		line, err := ln.Prompt(promptMain)
		switch err {
		case nil:
		case liner.ErrPromptAborted:
			continue
		case io.EOF:
			fmt.Println()
			return nil
		default:
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)

		if strings.HasPrefix(line, ":") {
			if quit := replCommand(line); quit {
				return nil
			}
			continue
		}

		out, err := evalContinued(ln, line)
		if err != nil {
			color.Red("%s", err)
			continue
		}
		color.Blue("%s", out)
	}
}

// evalContinued evaluates line, prompting for continuation lines while the
// parser reports the input as incomplete.
func evalContinued(ln *liner.State, line string) (string, error) {
	for {
		out, err := eval(line, "")
		if err == nil || !parser.IsIncomplete(err) {
			return out, err
		}
		more, perr := ln.Prompt(promptCont)
		if perr != nil {
			return "", err
		}
		line += "\n" + more
	}
}

// replCommand handles a `:` command line, reporting whether the REPL should
// exit.
func replCommand(line string) bool {
	cmd, rest := splitCommand(line)
	switch cmd {
	case ":quit", ":q":
		return true
	case ":help":
		fmt.Println(helpText)
	case ":free":
		term, err := parser.ParseTerm(rest)
		if err != nil {
			color.Red("%s", err)
			return false
		}
		names := freeNames(term)
		sort.Strings(names)
		color.Blue("%s", strings.Join(names, " "))
	case ":constrain":
		src, skeleton, ok := splitConstrain(rest)
		if !ok {
			color.Red("usage: :constrain TERM ; SKELETON")
			return false
		}
		out, err := eval(src, skeleton)
		if err != nil {
			color.Red("%s", err)
			return false
		}
		color.Blue("%s", out)
	default:
		color.Red("unknown command %s (try :help)", cmd)
	}
	return false
}

func splitCommand(line string) (cmd, rest string) {
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		return line[:i], strings.TrimSpace(line[i:])
	}
	return line, ""
}

// splitConstrain splits `TERM ; SKELETON` on the first semicolon.
func splitConstrain(rest string) (src, skeleton string, ok bool) {
	i := strings.IndexByte(rest, ';')
	if i < 0 {
		return "", "", false
	}
	src, skeleton = strings.TrimSpace(rest[:i]), strings.TrimSpace(rest[i+1:])
	if src == "" || skeleton == "" {
		return "", "", false
	}
	return src, skeleton, true
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFile
	}
	return filepath.Join(home, historyFile)
}
