package client

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is replaced in tests that must not touch a terminal.
var readPassword = term.ReadPassword

// passwordReader asks for a secret that should not appear on the command line.
type passwordReader func(prompt string) (string, error)

// stdinPassword prompts on out and reads the password from in without echo
// when in is a terminal. Piped input is read one line at a time.
func stdinPassword(in *os.File, out io.Writer) passwordReader {
	lines := bufio.NewReader(in)

	return func(prompt string) (string, error) {
		fd := int(in.Fd())
		if !term.IsTerminal(fd) {
			return readLine(lines)
		}

		fmt.Fprint(out, prompt)
		pw, err := readPassword(fd)
		fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("error reading password: %w", err)
		}

		return string(pw), nil
	}
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("error reading password: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}
