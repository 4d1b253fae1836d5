/*
Tern is an embeddable interpreter for a Scheme-like language.

Run with no arguments on a terminal for an interactive session:

    $ tern
    > (define (square x) (* x x))
    square
    > (square 12)
    144

Or pass expressions or a script:

    tern -c '(display (+ 1 2))'
    tern script.scm arg1 arg2

For the Go API, see the tern package under pkg/tern.

Tern is released under an MIT-style license.
*/
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/michaelmacinnis/tern/internal/system/options"
	"github.com/michaelmacinnis/tern/internal/system/process"
	"github.com/michaelmacinnis/tern/internal/ui"
	"github.com/michaelmacinnis/tern/pkg/tern"
)

const (
	terminatedStatus = 128 + 15
	version          = "tern 0.1.0"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if err := options.Parse(argv, version); err != nil {
		fmt.Fprintln(stderr, err)

		return 2
	}

	e, err := tern.New(
		tern.WithError(stderr),
		tern.WithInput(stdin),
		tern.WithOutput(stdout),
	)
	if err != nil {
		fmt.Fprintln(stderr, err)

		return 1
	}

	args := make([]any, len(options.Args()))
	for i, a := range options.Args() {
		args[i] = a
	}

	e.Bindings().Put("command-line", func(...any) any {
		return args
	})

	if options.Trace() {
		e.TraceOn()
	}

	terminated := make(chan struct{})

	var once sync.Once

	stop := process.Notify(e.Interrupt, func() {
		once.Do(func() { close(terminated) })
		e.Interrupt()
	})
	defer stop()

	if options.Interactive() && stdin == os.Stdin {
		term := ui.Open(ui.New(e, stdout, stderr), options.Prompt(), options.History())
		defer term.Close()

		return supervise(terminated, func() int {
			if code, ok := preload(e, stderr); !ok {
				return code
			}

			return term.Run()
		}, term.Close)
	}

	return supervise(terminated, func() int {
		if code, ok := preload(e, stderr); !ok {
			return code
		}

		switch {
		case options.Command() != "":
			_, err := e.EvalString(options.Command())

			return status(err, stderr)

		case options.Script() != "":
			code, _ := load(e, options.Script(), stderr)

			return code
		}

		return status(e.Load(stdin, e.Environment()), stderr)
	}, nil)
}

// supervise runs work on its own goroutine and returns its status. If
// terminated is closed first, cleanup runs on the calling goroutine and
// supervise returns the status for a SIGTERM.
func supervise(terminated <-chan struct{}, work func() int, cleanup func()) int {
	result := make(chan int, 1)

	go func() {
		result <- work()
	}()

	select {
	case code := <-result:
		return code
	case <-terminated:
		if cleanup != nil {
			cleanup()
		}

		return terminatedStatus
	}
}

func preload(e *tern.Engine, stderr io.Writer) (int, bool) {
	for _, path := range options.Preload() {
		if code, ok := load(e, path, stderr); !ok {
			return code, false
		}
	}

	return 0, true
}

func load(e *tern.Engine, path string, stderr io.Writer) (int, bool) {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintln(stderr, err)

		return 1, false
	}
	defer f.Close()

	code := status(e.Load(f, e.Environment()), stderr)

	return code, code == 0
}

func status(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}

	if code, ok := tern.ExitCode(err); ok {
		return code
	}

	fmt.Fprintln(stderr, "error:", strings.TrimSpace(err.Error()))

	return 1
}
