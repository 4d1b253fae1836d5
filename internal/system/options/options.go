// Released under an MIT license. See LICENSE.

// Package options parses tern's command line and configuration file.
package options

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"
)

// Config holds the settings read from the configuration file.
type Config struct {
	History string   `yaml:"history"`
	Preload []string `yaml:"preload"`
	Prompt  string   `yaml:"prompt"`
	Trace   bool     `yaml:"trace"`
}

const (
	defaultConfig  = ".ternrc.yaml"
	defaultHistory = ".tern_history"
	defaultPrompt  = "> "
)

//nolint:gochecknoglobals
var (
	args        []string
	command     string
	config      Config
	interactive bool
	script      string
	usage       = `tern

Usage:
  tern [-t] [-c COMMAND] [--config=FILE] [SCRIPT [ARGUMENTS...]]
  tern -h | -v

Arguments:
  SCRIPT     Path to a tern script. Also the first element of (command-line).
  ARGUMENTS  Arguments passed to the script.

Options:
  -c, --command=COMMAND  Evaluate the specified expressions.
  -t, --trace            Trace evaluation on stderr.
  --config=FILE          Read settings from FILE [default: ~/.ternrc.yaml].
  -h, --help             Display this help.
  -v, --version          Print tern version.

If tern's stdin is a TTY, and tern was invoked with no script or command,
tern starts an interactive session.
`
)

// Args returns the script name followed by its arguments.
func Args() []string {
	return args
}

// Command returns the expressions passed with -c.
func Command() string {
	return command
}

// History returns the path of the REPL history file.
func History() string {
	if config.History != "" {
		return expand(config.History)
	}

	return filepath.Join(home(), defaultHistory)
}

// Interactive returns true if tern should start a REPL.
func Interactive() bool {
	return interactive
}

// Parse parses argv, which does not include the program name, and reads
// the configuration file.
func Parse(argv []string, version string) error {
	p := &docopt.Parser{
		HelpHandler:  docopt.PrintHelpAndExit,
		OptionsFirst: true,
	}

	opts, err := p.ParseArgs(usage, argv, version)
	if err != nil {
		return fmt.Errorf("options: %w", err)
	}

	command, _ = opts.String("--command")
	script, _ = opts.String("SCRIPT")

	interactive = script == "" && command == "" && terminal()

	name := script
	if name == "" {
		name = os.Args[0]
	}

	rest, _ := opts["ARGUMENTS"].([]string)
	args = append([]string{name}, rest...)

	path, _ := opts.String("--config")

	config, err = Load(expand(path), path != "~/"+defaultConfig)
	if err != nil {
		return err
	}

	if trace, _ := opts.Bool("--trace"); trace {
		config.Trace = true
	}

	return nil
}

// Load reads the configuration file at path. A missing file is only an
// error if required is true.
func Load(path string, required bool) (Config, error) {
	c := Config{}

	b, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}

		return c, fmt.Errorf("config: %w", err)
	}

	err = yaml.Unmarshal(b, &c)
	if err != nil {
		return c, fmt.Errorf("config %s: %w", path, err)
	}

	for i, p := range c.Preload {
		c.Preload[i] = expand(p)
	}

	return c, nil
}

// Preload returns the scripts to load before anything else.
func Preload() []string {
	return config.Preload
}

// Prompt returns the REPL prompt.
func Prompt() string {
	if config.Prompt != "" {
		return config.Prompt
	}

	return defaultPrompt
}

// Script returns the path of the script to run, if any.
func Script() string {
	return script
}

// Trace returns true if evaluation should be traced from the start.
func Trace() bool {
	return config.Trace
}

func expand(path string) string {
	if path == "~" {
		return home()
	}

	if len(path) > 1 && path[:2] == "~/" {
		return filepath.Join(home(), path[2:])
	}

	return path
}

func home() string {
	h, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	return h
}

func terminal() bool {
	fd := os.Stdin.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
