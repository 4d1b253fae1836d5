// Released under an MIT license. See LICENSE.

// Package history reads and writes the REPL's history file.
package history

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Load passes the contents of the history file at path to read. A missing
// file is not an error.
func Load(path string, read func(r io.Reader) (int, error)) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	} else if err != nil {
		return fmt.Errorf("history: %w", err)
	}

	_, err = read(f)
	if err != nil {
		_ = f.Close()

		return fmt.Errorf("history: %w", err)
	}

	return f.Close()
}

// Save replaces the history file at path with what write produces.
func Save(path string, write func(w io.Writer) (int, error)) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("history: %w", err)
	}

	_, err = write(f)
	if err != nil {
		_ = f.Close()

		return fmt.Errorf("history: %w", err)
	}

	return f.Close()
}
