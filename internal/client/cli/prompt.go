package cli

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// readLine prompts and reads one line of input.
func (a *App) readLine(prompt string) (string, error) {
	fmt.Fprint(a.out, prompt)
	line, err := a.in.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readPassword prompts and reads a password without echoing when stdin is a
// terminal. Non-terminal input (tests, pipes) falls back to a plain line read.
func (a *App) readPassword(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return a.readLine(prompt)
	}

	fmt.Fprint(a.out, prompt)
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(a.out)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}
