package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Console is a Prompter over a line-oriented terminal. It blocks on the
// reader until a conforming answer arrives; there is no timeout.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewConsole creates a Console reading answers from in and writing prompts
// to out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Choose presents msg and reads integers until one lands in 1..numChoices.
func (c *Console) Choose(msg string, numChoices int) (int, error) {
	fmt.Fprintln(c.out, msg)
	for {
		fmt.Fprint(c.out, "> ")
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || choice < 1 || choice > numChoices {
			fmt.Fprintf(c.out, "Please enter a valid choice (1-%d)\n", numChoices)
			continue
		}
		return choice, nil
	}
}

// AskText presents msg and reads lines until conform accepts one.
func (c *Console) AskText(msg string, conform func(string) bool, wrongMsg string) (string, error) {
	fmt.Fprintln(c.out, msg)
	for {
		fmt.Fprint(c.out, "> ")
		line, err := c.readLine()
		if err != nil {
			return "", err
		}

		if !conform(line) {
			fmt.Fprintln(c.out, wrongMsg)
			continue
		}
		return line, nil
	}
}

func (c *Console) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("reading prompt answer: %w", err)
		}
		return "", io.EOF
	}
	return c.in.Text(), nil
}
