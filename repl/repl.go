// Copyright 2026 The Cinder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package repl provides a read/analyze/print loop for Cinder.
//
// It supports readline-style command editing,
// and interrupts through Control-C.
//
// Each input is parsed as a script and bound in a session whose global
// scope persists across inputs, so that a variable or function declared
// by one input may be used by the next. If the input is incomplete,
// for example an unclosed block, the REPL reads more lines until it
// parses or a blank line is entered. The REPL prints the diagnostics of
// each input, and for an input consisting of a single expression, its
// type and, if constant, its value.
package repl // import "go.cinder.dev/repl"

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/chzyer/readline"
	"go.cinder.dev/binder"
	"go.cinder.dev/bound"
	"go.cinder.dev/diag"
	"go.cinder.dev/flow"
	"go.cinder.dev/fold"
	"go.cinder.dev/symbols"
	"go.cinder.dev/syntax"
)

var interrupted = make(chan os.Signal, 1)

// A Session analyzes successive inputs against a shared global scope.
type Session struct {
	Out  io.Writer // results; os.Stdout if nil
	Err  io.Writer // diagnostics; os.Stderr if nil
	Dump bool      // print the bound tree of each input

	binder *binder.Session
	folder *fold.Folder
	n      int
}

// NewSession returns a session binding with the given types and options.
func NewSession(types *symbols.Types, opts binder.Options) *Session {
	return &Session{
		binder: binder.NewSession(types, opts),
		folder: fold.New(),
	}
}

// REPL executes a read, analyze, print loop.
func REPL(s *Session) {
	signal.Notify(interrupted, os.Interrupt)
	defer signal.Stop(interrupted)

	rl, err := readline.New(">>> ")
	if err != nil {
		PrintError(err)
		return
	}
	defer rl.Close()
	for {
		if err := rep(rl, s); err != nil {
			if err == readline.ErrInterrupt {
				fmt.Println(err)
				continue
			}
			break
		}
	}
	fmt.Println()
}

// rep reads, analyzes, and prints one item.
//
// It returns an error (possibly readline.ErrInterrupt)
// only if readline failed. Cinder errors are printed.
func rep(rl *readline.Instance, s *Session) error {
	// Drain any SIGINT delivered while the previous item was analyzed.
	select {
	case <-interrupted:
	default:
	}

	rl.SetPrompt(">>> ")
	var buf strings.Builder
	for {
		line, err := rl.Readline()
		rl.SetPrompt("... ")
		if err != nil {
			if err == io.EOF && buf.Len() > 0 {
				break // analyze what we have
			}
			return err
		}
		if buf.Len() > 0 && strings.TrimSpace(line) == "" {
			break
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
		if !Incomplete(buf.String()) {
			break
		}
	}
	if strings.TrimSpace(buf.String()) == "" {
		return nil
	}
	if _, err := s.Analyze(buf.String()); err != nil {
		PrintError(err)
	}
	return nil
}

// Incomplete reports whether src fails to parse only because
// it ends too soon.
func Incomplete(src string) bool {
	_, err := syntax.Parse("<stdin>", src, syntax.ScriptMode)
	var e syntax.Error
	if !errors.As(err, &e) {
		return false
	}
	return strings.HasPrefix(e.Msg, "got end of file") || strings.HasPrefix(e.Msg, "unexpected EOF")
}

// Analyze parses, binds, folds and checks one input, printing its
// diagnostics and result. It returns an error only if src does not
// parse; in that case the session is unchanged.
func (s *Session) Analyze(src string) (*bound.Program, error) {
	s.n++
	f, err := syntax.Parse(fmt.Sprintf("<stdin:%d>", s.n), src, syntax.ScriptMode)
	if err != nil {
		return nil, err
	}
	prog := s.folder.Program(s.binder.Bind(f))
	diags := diag.Concat(prog.Diagnostics(), flow.Check(prog))

	out, errw := s.out(), s.err()
	if len(diags) > 0 {
		diags.Format(errw)
	}
	if s.Dump {
		bound.Dump(out, prog)
	}
	if x := soleExpr(prog); x != nil && !diags.HasErrors() && x.Type().IsValid() {
		if c, ok := x.(*bound.Const); ok && c.Value != nil {
			fmt.Fprintf(out, "%s = %s\n", x.Type(), c.Value)
		} else {
			fmt.Fprintln(out, x.Type())
		}
	}
	return prog, nil
}

// Scope returns the global scope of the session.
func (s *Session) Scope() symbols.Scope { return s.binder.Scope() }

func (s *Session) out() io.Writer {
	if s.Out != nil {
		return s.Out
	}
	return os.Stdout
}

func (s *Session) err() io.Writer {
	if s.Err != nil {
		return s.Err
	}
	return os.Stderr
}

func soleExpr(p *bound.Program) bound.Expr {
	if len(p.Members) != 1 {
		return nil
	}
	if m, ok := p.Members[0].(*bound.ScriptMember); ok {
		if stmt, ok := m.Stmt.(*bound.ExprStmt); ok {
			return stmt.X
		}
	}
	return nil
}

// PrintError prints the error to stderr.
func PrintError(err error) {
	fmt.Fprintln(os.Stderr, err)
}
