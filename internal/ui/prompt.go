package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"go.eggybyte.com/camelgen/internal/core/errors"
)

// Prompter asks questions on a line-oriented terminal.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a prompter reading answers from in and writing
// questions to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// NewStdPrompter creates a prompter bound to the process terminal.
func NewStdPrompter() *Prompter {
	return NewPrompter(os.Stdin, Stdout())
}

// Ask prints message with its default value and returns the trimmed answer.
// An empty answer selects defaultValue. io.EOF is returned only when the
// input is exhausted before any answer was read.
func (p *Prompter) Ask(message, defaultValue string) (string, error) {
	question := color.New(color.FgGreen).Sprint("?")
	if defaultValue != "" {
		fmt.Fprintf(p.out, "%s %s (%s) ", question, message, defaultValue)
	} else {
		fmt.Fprintf(p.out, "%s %s ", question, message)
	}

	line, err := p.in.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil && (err != io.EOF || line == "") {
		if err == io.EOF {
			fmt.Fprintln(p.out)
		}
		return "", err
	}

	if line == "" {
		return defaultValue, nil
	}
	return line, nil
}

// Reject reports an invalid answer before the question is asked again.
func (p *Prompter) Reject(err error) {
	fmt.Fprintf(p.out, ">> %s\n", color.New(color.FgRed).Sprint(errors.Message(err)))
}

// Confirm prompts the user for a yes/no answer. Non-interactive mode
// confirms automatically.
func (p *Prompter) Confirm(format string, args ...interface{}) bool {
	if IsNonInteractive() {
		return true
	}

	answer, err := p.Ask(fmt.Sprintf(format, args...)+" [y/N]:", "")
	if err != nil {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}
