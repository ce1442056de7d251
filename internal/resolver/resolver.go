// Package resolver decides which pattern classifies a transaction. A
// transaction with exactly one matching pattern resolves immediately; an
// unmatched one drives an interactive flow that either grows the pattern
// bank or skips the transaction.
package resolver

import (
	"fmt"
	"strings"

	"github.com/4rgc/bsparser/internal/logging"
	"github.com/4rgc/bsparser/internal/models"
	"github.com/4rgc/bsparser/internal/patternbank"
	"github.com/4rgc/bsparser/internal/prompt"
)

const (
	choiceAdd  = 1
	choiceSkip = 2

	choiceCreate = 1
	choiceAppend = 2

	choiceIncome  = 1
	choiceExpense = 2
)

// Labels are the strings written into new patterns for the income/expense
// flag.
type Labels struct {
	Income  string
	Expense string
}

// Resolution is the outcome for one transaction: either a pattern, or a
// user decision to drop the transaction from the output.
type Resolution struct {
	Pattern *models.Pattern
	Skipped bool
}

// Resolver matches transactions against a pattern bank and runs the
// interactive resolution flow for the unmatched ones. Every mutation goes
// through the bank immediately, so a pattern created for one transaction is
// visible to the very next Resolve call.
type Resolver struct {
	bank     *patternbank.Bank
	prompter prompt.Prompter
	labels   Labels
	logger   logging.Logger
}

// New creates a Resolver over the given bank and prompt surface.
func New(bank *patternbank.Bank, prompter prompt.Prompter, labels Labels, logger logging.Logger) *Resolver {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Resolver{
		bank:     bank,
		prompter: prompter,
		labels:   labels,
		logger:   logger,
	}
}

// Resolve produces the pattern classifying tx, prompting the user when the
// bank has no match. More than one match is fatal.
func (r *Resolver) Resolve(tx models.RawTransaction) (Resolution, error) {
	matches := r.bank.FindMatching(tx)
	switch {
	case len(matches) == 1:
		return Resolution{Pattern: matches[0]}, nil
	case len(matches) > 1:
		return Resolution{}, &MultipleMatchingPatternsFoundError{Transaction: tx, Patterns: matches}
	}

	return r.resolveUnmatched(tx)
}

func (r *Resolver) resolveUnmatched(tx models.RawTransaction) (Resolution, error) {
	msg := fmt.Sprintf("No pattern matches this transaction:\n\t%s\nWould you like to add a new pattern or skip it?\n\t1 - Add\n\t2 - Skip", tx.Desc)
	choice, err := r.prompter.Choose(msg, 2)
	if err != nil {
		return Resolution{}, err
	}

	switch choice {
	case choiceAdd:
		pattern, err := r.addPattern(tx)
		if err != nil {
			return Resolution{}, err
		}
		return Resolution{Pattern: pattern}, nil
	case choiceSkip:
		r.logger.Info("Skipping transaction",
			logging.Field{Key: logging.FieldDesc, Value: tx.Desc})
		return Resolution{Skipped: true}, nil
	default:
		return Resolution{}, &InvalidChoiceError{From: 1, To: 2, Got: choice}
	}
}

func (r *Resolver) addPattern(tx models.RawTransaction) (*models.Pattern, error) {
	key, err := r.promptKey(tx)
	if err != nil {
		return nil, err
	}

	msg := "Would you like to create a new pattern or append the key to an existing one?\n\t1 - Create\n\t2 - Append"
	choice, err := r.prompter.Choose(msg, 2)
	if err != nil {
		return nil, err
	}

	switch choice {
	case choiceCreate:
		return r.createPattern(key)
	case choiceAppend:
		return r.appendToPattern(key)
	default:
		return nil, &InvalidChoiceError{From: 1, To: 2, Got: choice}
	}
}

// promptKey asks for the substring that should identify the transaction.
// Only substrings of the triggering description are accepted, so the new or
// extended pattern is guaranteed to match it.
func (r *Resolver) promptKey(tx models.RawTransaction) (string, error) {
	msg := fmt.Sprintf("Enter the key for the following transaction text:\n\t%s", tx.Desc)
	wrongMsg := fmt.Sprintf("The key must be a part of the transaction text. Please try again.\n\t%s", tx.Desc)

	return r.prompter.AskText(msg, func(s string) bool {
		return s != "" && strings.Contains(tx.Desc, s)
	}, wrongMsg)
}

func (r *Resolver) createPattern(key string) (*models.Pattern, error) {
	contents, err := r.promptContents()
	if err != nil {
		return nil, err
	}

	category, err := r.promptCategory()
	if err != nil {
		return nil, err
	}

	subcategory, err := r.promptSubcategory(category)
	if err != nil {
		return nil, err
	}

	incomeExpense, err := r.promptIncomeExpense()
	if err != nil {
		return nil, err
	}

	pattern := &models.Pattern{
		Key:           []string{key},
		MainCategory:  category,
		SubCategory:   subcategory,
		Contents:      contents,
		IncomeExpense: incomeExpense,
	}
	r.bank.AddPattern(pattern)

	r.logger.Info("Created pattern",
		logging.Field{Key: logging.FieldContents, Value: contents},
		logging.Field{Key: logging.FieldKey, Value: key},
		logging.Field{Key: logging.FieldCategory, Value: category})
	return pattern, nil
}

func (r *Resolver) promptContents() (string, error) {
	existing := r.bank.AllContents()
	taken := make(map[string]bool, len(existing))
	for _, c := range existing {
		taken[c] = true
	}

	return r.prompter.AskText(
		"Enter a description for the new pattern:",
		func(s string) bool { return s != "" && !taken[s] },
		"This description is already in use. Please try again.")
}

func (r *Resolver) promptCategory() (string, error) {
	categories := r.bank.AllCategories()
	options := make([]string, 0, len(categories)+1)
	for _, c := range categories {
		options = append(options, c.Name)
	}
	options = append(options, "Make new")

	msg := "Choose a category for the new pattern:\n" + formatMenu(options)
	choice, err := r.prompter.Choose(msg, len(options))
	if err != nil {
		return "", err
	}
	if choice < 1 || choice > len(options) {
		return "", &InvalidChoiceError{From: 1, To: len(options), Got: choice}
	}

	if choice == len(options) {
		taken := make(map[string]bool, len(categories))
		for _, c := range categories {
			taken[c.Name] = true
		}
		return r.prompter.AskText(
			"Enter the name of the new category:",
			func(s string) bool { return s != "" && !taken[s] },
			"This category already exists. Please try again.")
	}
	return options[choice-1], nil
}

func (r *Resolver) promptSubcategory(category string) (string, error) {
	var subcategories []string
	for _, c := range r.bank.AllCategories() {
		if c.Name == category {
			subcategories = c.Subcategories
			break
		}
	}

	options := append(append([]string{}, subcategories...), "Make new", "None")
	msg := "Choose a subcategory for the new pattern:\n" + formatMenu(options)
	choice, err := r.prompter.Choose(msg, len(options))
	if err != nil {
		return "", err
	}

	switch {
	case choice == len(options):
		// None: the pattern carries no subcategory at all.
		return "", nil
	case choice == len(options)-1:
		taken := make(map[string]bool, len(subcategories))
		for _, s := range subcategories {
			taken[s] = true
		}
		return r.prompter.AskText(
			"Enter the name of the new subcategory:",
			func(s string) bool { return s != "" && !taken[s] },
			"This subcategory already exists. Please try again.")
	case choice >= 1 && choice < len(options)-1:
		return options[choice-1], nil
	default:
		return "", &InvalidChoiceError{From: 1, To: len(options), Got: choice}
	}
}

func (r *Resolver) promptIncomeExpense() (string, error) {
	msg := "Is a transaction with this pattern an income or an expense?\n\t1 - Income\n\t2 - Expense"
	choice, err := r.prompter.Choose(msg, 2)
	if err != nil {
		return "", err
	}

	switch choice {
	case choiceIncome:
		return r.labels.Income, nil
	case choiceExpense:
		return r.labels.Expense, nil
	default:
		return "", &InvalidChoiceError{From: 1, To: 2, Got: choice}
	}
}

func (r *Resolver) appendToPattern(key string) (*models.Pattern, error) {
	descriptions := r.bank.AllContents()
	if len(descriptions) == 0 {
		return nil, fmt.Errorf("the pattern bank is empty, there is no pattern to append to")
	}

	msg := "Choose which pattern you want to append the key to:\n" + formatMenu(descriptions)
	choice, err := r.prompter.Choose(msg, len(descriptions))
	if err != nil {
		return nil, err
	}
	if choice < 1 || choice > len(descriptions) {
		return nil, &InvalidChoiceError{From: 1, To: len(descriptions), Got: choice}
	}

	contents := descriptions[choice-1]
	if err := r.bank.AppendKeyToPattern(key, contents); err != nil {
		return nil, err
	}

	pattern, ok := r.bank.FindByDescription(contents)
	if !ok {
		// AppendKeyToPattern just found it; losing it here is a bank bug.
		return nil, &patternbank.NotFoundError{Contents: contents}
	}

	r.logger.Info("Appended key to pattern",
		logging.Field{Key: logging.FieldKey, Value: key},
		logging.Field{Key: logging.FieldContents, Value: contents})
	return pattern, nil
}

func formatMenu(options []string) string {
	var b strings.Builder
	for i, opt := range options {
		fmt.Fprintf(&b, "\t%d - %s\n", i+1, opt)
	}
	return strings.TrimSuffix(b.String(), "\n")
}
