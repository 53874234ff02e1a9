// Package input resolves the URL text to inspect, either from the command line
// or from piped standard input.
package input

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

var (
	// ErrNoInput is returned when no URL was given and stdin is a terminal.
	ErrNoInput = errors.New("no URL provided")

	// ErrEmptyInput is returned when piped input is blank.
	ErrEmptyInput = errors.New("URL cannot be empty")
)

// Source records where the URL text came from.
type Source string

const (
	SourceArgument Source = "argument"
	SourceStdin    Source = "stdin"
)

// IsTerminal reports whether r is an interactive terminal. Readers that are
// not files, such as buffers in tests, count as piped input.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Resolve returns the URL to inspect. A positional argument wins; otherwise
// stdin is drained and trimmed, unless it is a terminal.
func Resolve(args []string, stdin io.Reader) (string, Source, error) {
	if len(args) > 0 {
		return args[0], SourceArgument, nil
	}

	if stdin == nil || IsTerminal(stdin) {
		return "", "", ErrNoInput
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", "", fmt.Errorf("failed to read from stdin: %w", err)
	}

	raw := strings.TrimSpace(string(data))
	if raw == "" {
		return "", "", ErrEmptyInput
	}
	return raw, SourceStdin, nil
}
