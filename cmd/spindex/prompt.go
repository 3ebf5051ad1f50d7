package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// errStopped ends a run early because the user declined a prompt.
	errStopped = errors.New("stopped by user")
	errAborted = errors.New("script execution cannot continue")
)

type prompter struct {
	in              *bufio.Reader
	out             io.Writer
	colorize        bool
	assumeYes       bool
	abortOnWarnings bool
}

func newPrompter(in io.Reader, out io.Writer, colorize, assumeYes, abortOnWarnings bool) *prompter {
	return &prompter{
		in:              bufio.NewReader(in),
		out:             out,
		colorize:        colorize,
		assumeYes:       assumeYes,
		abortOnWarnings: abortOnWarnings,
	}
}

// confirm asks a (y/N) question. Only "y" or "Y" counts as yes; end of
// input counts as no.
func (p *prompter) confirm(question string) (bool, error) {
	fmt.Fprintf(p.out, "\n%s (y/N) ", question)
	if p.assumeYes {
		fmt.Fprintln(p.out, "y")
		return true, nil
	}
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read answer: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		fmt.Fprintln(p.out)
	}
	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}

// warningsGate lists warnings under header and asks whether to action.
// It returns nil with no output when there are no warnings, errAborted
// when warnings are fatal, and errStopped when the user declines.
func (p *prompter) warningsGate(warnings []string, header, action string) error {
	if len(warnings) == 0 {
		return nil
	}

	fmt.Fprintf(p.out, "\n%s\n\n", header)
	for _, w := range warnings {
		fmt.Fprintln(p.out, colorText(w, ansiRed, p.colorize))
	}

	if p.abortOnWarnings {
		return errAborted
	}

	ok, err := p.confirm(fmt.Sprintf("Would you like to %s?", action))
	if err != nil {
		return err
	}
	if !ok {
		return errStopped
	}
	return nil
}
