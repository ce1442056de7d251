package resolver

import (
	"fmt"
	"strings"

	"github.com/4rgc/bsparser/internal/models"
)

// MultipleMatchingPatternsFoundError reports an ambiguous transaction: more
// than one pattern claims its description. This is a data-integrity problem
// in the pattern bank and aborts the whole batch; picking one of the matches
// silently would misclassify money.
type MultipleMatchingPatternsFoundError struct {
	Transaction models.RawTransaction
	Patterns    []*models.Pattern
}

func (e *MultipleMatchingPatternsFoundError) Error() string {
	contents := make([]string, 0, len(e.Patterns))
	for _, p := range e.Patterns {
		contents = append(contents, fmt.Sprintf("%q", p.Contents))
	}
	return fmt.Sprintf("multiple matching patterns found for transaction %q: %s",
		e.Transaction.Desc, strings.Join(contents, ", "))
}

// InvalidChoiceError reports a prompt answer outside the legal range. The
// prompt layer keeps malformed input from ever reaching the resolver, so
// this surfacing means a broken Prompter implementation.
type InvalidChoiceError struct {
	From, To int
	Got      int
}

func (e *InvalidChoiceError) Error() string {
	return fmt.Sprintf("invalid choice %d, expected %d-%d", e.Got, e.From, e.To)
}
