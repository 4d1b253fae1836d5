// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for the tern language.
package ui

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/michaelmacinnis/adapted"
	"github.com/peterh/liner"

	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/interface/literal"
	"github.com/michaelmacinnis/tern/internal/common/interface/scope"
	"github.com/michaelmacinnis/tern/internal/common/type/void"
	"github.com/michaelmacinnis/tern/internal/engine"
	"github.com/michaelmacinnis/tern/internal/reader"
	"github.com/michaelmacinnis/tern/internal/system/history"
)

// Evaluator is the interface for things that evaluate what the user types.
type Evaluator interface {
	ClearPendingContinuation() bool
	Environment() scope.I
	Eval(expr cell.I, e scope.I) (cell.I, error)
	TraceOff()
	TraceOn()
}

// T (ui) collects lines of input until they form complete expressions and
// then evaluates them.
type T struct {
	Evaluator

	errors  io.Writer
	output  io.Writer
	pending strings.Builder
}

type ui = T

const delimiters = " \t\n()[]'`,\";"

// New creates a ui that writes values to output and errors to errs.
func New(e Evaluator, output, errs io.Writer) *ui {
	return &ui{Evaluator: e, errors: errs, output: output}
}

// Complete is a liner.WordCompleter that completes names bound in the
// evaluator's environment. The word may be a prefix or a glob pattern.
func (u *ui) Complete(line string, pos int) (head string, completions []string, tail string) {
	start := strings.LastIndexAny(line[:pos], delimiters) + 1

	head = line[:start]
	tail = line[pos:]

	word := line[start:pos]
	if word == "" {
		return head, nil, tail
	}

	seen := map[string]bool{}

	for s := u.Environment(); s != nil; s = s.Enclosing() {
		for _, name := range s.Names() {
			if seen[name] {
				continue
			}

			seen[name] = true

			matched, _ := adapted.Match(word+"*", name)
			if matched || strings.HasPrefix(name, word) {
				completions = append(completions, name)
			}
		}
	}

	sort.Strings(completions)

	return head, completions, tail
}

// Continued returns true if the lines seen so far end mid-expression.
func (u *ui) Continued() bool {
	return u.pending.Len() > 0
}

// Line processes one line of input. It returns true, and an exit status,
// when the session should end.
func (u *ui) Line(line string) (bool, int) {
	if !u.Continued() {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, ",") {
			return u.command(trimmed)
		}
	}

	u.pending.WriteString(line)
	u.pending.WriteByte('\n')

	forms, err := reader.All("stdin", u.pending.String())
	if err != nil {
		if reader.Incomplete(err) {
			return false, 0
		}

		u.Reset()
		u.report(err)

		return false, 0
	}

	u.Reset()

	for _, form := range forms {
		v, err := u.Eval(form, nil)
		if err != nil {
			if code, ok := engine.ExitCode(err); ok {
				return true, code
			}

			u.report(err)

			break
		}

		if v != void.Value {
			fmt.Fprintln(u.output, literal.String(v))
		}
	}

	return false, 0
}

// Reset discards an incomplete expression.
func (u *ui) Reset() {
	u.pending.Reset()
}

func (u *ui) command(c string) (bool, int) {
	switch c {
	case ",notrace":
		u.TraceOff()
	case ",quit":
		return true, 0
	case ",trace":
		u.TraceOn()
	default:
		fmt.Fprintln(u.errors, "unknown command:", c)
	}

	return false, 0
}

func (u *ui) report(err error) {
	fmt.Fprintln(u.errors, "error:", err)

	if u.ClearPendingContinuation() {
		fmt.Fprintln(u.errors, "continuation invocation abandoned")
	}
}

// Terminal is an interactive session on the controlling terminal.
type Terminal struct {
	*ui

	cli    *liner.State
	once   sync.Once
	path   string
	prompt string
}

// Open puts the terminal in line editing mode and loads the history file
// at path. The caller must call Close to restore the terminal.
func Open(u *ui, prompt, path string) *Terminal {
	cli := liner.NewLiner()

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(u.Complete)

	if err := history.Load(path, cli.ReadHistory); err != nil {
		fmt.Fprintln(u.errors, err)
	}

	return &Terminal{ui: u, cli: cli, path: path, prompt: prompt}
}

// Close saves the history file and restores the terminal. It is safe to
// call more than once and from another goroutine.
func (t *Terminal) Close() {
	t.once.Do(func() {
		if err := history.Save(t.path, t.cli.WriteHistory); err != nil {
			fmt.Fprintln(t.errors, err)
		}

		t.cli.Close()
	})
}

// Run reads lines until the user quits. It returns the exit status for the
// process.
func (t *Terminal) Run() int {
	continued := strings.Repeat(" ", len(t.prompt))

	for {
		p := t.prompt
		if t.Continued() {
			p = continued
		}

		line, err := t.cli.Prompt(p)

		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted):
			t.Reset()

			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(t.output)

			return 0
		default:
			fmt.Fprintln(t.errors, err)

			return 1
		}

		if strings.TrimSpace(line) != "" {
			t.cli.AppendHistory(line)
		}

		if done, code := t.Line(line); done {
			return code
		}
	}
}
