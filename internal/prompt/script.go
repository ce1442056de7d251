package prompt

import "fmt"

// Script is a Prompter that replays canned answers in order. It exists for
// tests of the resolver flow, which would otherwise need a terminal.
type Script struct {
	Answers []string
	// Asked records every prompt message, in order, for assertions.
	Asked []string
	next  int
}

// NewScript creates a Script that will answer the prompts with the given
// strings, in order.
func NewScript(answers ...string) *Script {
	return &Script{Answers: answers}
}

func (s *Script) answer() (string, error) {
	if s.next >= len(s.Answers) {
		return "", fmt.Errorf("script exhausted after %d answers", len(s.Answers))
	}
	a := s.Answers[s.next]
	s.next++
	return a, nil
}

// Choose replays the next scripted answer as a choice. Unlike the console,
// the script does not re-prompt: a non-conforming answer is a test bug.
func (s *Script) Choose(msg string, numChoices int) (int, error) {
	s.Asked = append(s.Asked, msg)
	a, err := s.answer()
	if err != nil {
		return 0, err
	}
	var choice int
	if _, err := fmt.Sscanf(a, "%d", &choice); err != nil {
		return 0, fmt.Errorf("scripted answer %q is not a choice: %w", a, err)
	}
	return choice, nil
}

// AskText replays scripted answers until one conforms, mirroring the
// console's re-prompt loop so tests can exercise rejection paths.
func (s *Script) AskText(msg string, conform func(string) bool, wrongMsg string) (string, error) {
	s.Asked = append(s.Asked, msg)
	for {
		a, err := s.answer()
		if err != nil {
			return "", err
		}
		if conform(a) {
			return a, nil
		}
	}
}
