// Copyright (c) 2025 Reactivities
// Licensed under the MIT License. See LICENSE file in the project root for details.

package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// Interactive reports whether stdin is a terminal.
func Interactive() bool {
	return isTerminal(int(os.Stdin.Fd()))
}

// ReadLine prints prompt to w and reads one line from reader. If EOF occurs
// after some input was read, the partial line is returned.
func ReadLine(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadSecret prints prompt to w and reads a value without echo. When stdin is
// not a terminal the value is read as a plain line from reader instead, so
// secrets can be piped in.
func ReadSecret(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if !Interactive() {
		return ReadLine(reader, prompt, w)
	}
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	b, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Confirm asks a yes/no question; anything but y or yes is no.
func Confirm(reader *bufio.Reader, question string, w io.Writer) bool {
	answer, err := ReadLine(reader, question+" [y/N]: ", w)
	if err != nil {
		return false
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	}
	return false
}

// OutputIsTerminal reports whether stdout is a terminal.
func OutputIsTerminal() bool {
	return isTerminal(int(os.Stdout.Fd()))
}
