package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInputClosed is returned once the input stream is exhausted.
var ErrInputClosed = errors.New("input closed")

// Prompter writes prompts and reads one normalized answer per line.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Ask prints prompt and returns the next input line trimmed and lowercased.
// Lines of any length are accepted; a final line without a newline still
// counts as an answer.
func (p *Prompter) Ask(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(p.out, prompt)
	}
	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading input: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	return strings.ToLower(strings.TrimSpace(line)), nil
}

// AskUntil repeats prompt until valid accepts the answer, printing reject
// after each refusal. It gives up only when input ends.
func (p *Prompter) AskUntil(prompt, reject string, valid func(string) bool) (string, error) {
	for {
		answer, err := p.Ask(prompt)
		if err != nil {
			return "", err
		}
		if valid(answer) {
			return answer, nil
		}
		if reject != "" {
			fmt.Fprintln(p.out, reject)
		}
	}
}

func isYesNo(s string) bool {
	return s == "yes" || s == "no"
}
