// Package tty detects whether standard input is an interactive terminal and
// reads piped input.
package tty

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether f is attached to a terminal, including Cygwin
// and MSYS pseudo terminals.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ReadInput returns the text piped into f. A terminal yields no input.
// The text is usable even when an error is returned; see ReadLines.
func ReadInput(f *os.File) (string, error) {
	if IsTerminal(f) {
		return "", nil
	}

	return ReadLines(f)
}

// ReadLines reads every line of r and joins them with "\n". Line endings
// ("\n" or "\r\n") are stripped and a trailing newline does not add an empty
// line. Lines that are not valid UTF-8 are kept as empty lines. A read error
// ends input at the last complete line; the lines read so far are returned
// together with the error.
func ReadLines(r io.Reader) (string, error) {
	br := bufio.NewReader(r)

	var (
		lines   []string
		readErr error
	)
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			readErr = err
			break
		}

		if line != "" {
			lines = append(lines, cleanLine(line))
		}

		if err != nil {
			break
		}
	}

	return strings.Join(lines, "\n"), readErr
}

func cleanLine(line string) string {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	if !utf8.ValidString(line) {
		return ""
	}

	return line
}
