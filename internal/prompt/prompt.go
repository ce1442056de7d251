// Package prompt abstracts the synchronous question/answer surface the
// resolver needs. The resolver states what a valid answer looks like; how
// the question reaches the user is this package's concern alone.
package prompt

// Prompter asks the user one question at a time and blocks until a valid
// answer arrives. Implementations re-prompt on malformed raw input; answers
// returned to the caller always satisfy the stated constraint.
type Prompter interface {
	// Choose presents msg and returns the picked option in 1..numChoices.
	Choose(msg string, numChoices int) (int, error)

	// AskText presents msg and returns free text accepted by conform,
	// re-prompting with wrongMsg until it is.
	AskText(msg string, conform func(string) bool, wrongMsg string) (string, error)
}
