package main

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// readLine prompts and returns one trimmed line. io.EOF is returned only
// when nothing was typed.
func (a *app) readLine(label string) (string, error) {
	if label != "" {
		fmt.Fprint(a.out, label)
	}
	line, err := a.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readPassword reads without echo on a terminal, as a plain line otherwise.
func (a *app) readPassword(label string) (string, error) {
	if !term.IsTerminal(a.inFd) {
		return a.readLine(label)
	}
	fmt.Fprint(a.out, label)
	b, err := term.ReadPassword(a.inFd)
	fmt.Fprintln(a.out)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// orPrompt returns v, or asks for it when empty.
func (a *app) orPrompt(v, label string) (string, error) {
	if strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v), nil
	}
	return a.readLine(label)
}
