// Package statement turns raw bank statement exports into transactions. The
// expected input is delimited text with the columns date, description and
// amount, in that order and without a header row.
package statement

import (
	"encoding/csv"
	"fmt"
	"regexp"
	"strings"

	"github.com/4rgc/bsparser/internal/models"
	"github.com/shopspring/decimal"
)

// ArgumentError indicates a malformed statement row. It is fatal to the
// whole batch; there is no best-effort parsing.
type ArgumentError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// Statement dates are month/day/year with 1-2 digit month and day. The shape
// is validated but the text is carried through to the output unchanged.
var dateShape = regexp.MustCompile(`^(0?[1-9]|1[0-2])/(0?[1-9]|[12]\d|3[01])/(19|20)\d{2}$`)

// ParseLine converts one statement line into a RawTransaction. CSV fields
// may be double-quoted, with doubled quotes collapsing to one; TSV is a bare
// tab split.
func ParseLine(line string, format models.Format) (models.RawTransaction, error) {
	fields, err := splitLine(line, format)
	if err != nil {
		return models.RawTransaction{}, err
	}
	if len(fields) != 3 {
		return models.RawTransaction{}, &ArgumentError{
			Field:  "row",
			Value:  line,
			Reason: fmt.Sprintf("expected 3 fields (date, description, amount), got %d", len(fields)),
		}
	}

	date := strings.TrimSpace(fields[0])
	if !dateShape.MatchString(date) {
		return models.RawTransaction{}, &ArgumentError{
			Field:  "date",
			Value:  fields[0],
			Reason: "must be a calendar date shaped M/D/YYYY",
		}
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(fields[2]))
	if err != nil {
		return models.RawTransaction{}, &ArgumentError{
			Field:  "amount",
			Value:  fields[2],
			Reason: "must be a decimal number",
		}
	}

	return models.RawTransaction{
		Date:   date,
		Desc:   fields[1],
		Amount: amount,
	}, nil
}

// ParseBatch parses statement text line by line, skipping blank lines. The
// first invalid row fails the whole batch.
func ParseBatch(text string, format models.Format) ([]models.RawTransaction, error) {
	var transactions []models.RawTransaction

	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		tx, err := ParseLine(line, format)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		transactions = append(transactions, tx)
	}

	return transactions, nil
}

func splitLine(line string, format models.Format) ([]string, error) {
	if format == models.FormatTSV {
		return strings.Split(line, "\t"), nil
	}

	r := csv.NewReader(strings.NewReader(line))
	fields, err := r.Read()
	if err != nil {
		return nil, &ArgumentError{Field: "row", Value: line, Reason: err.Error()}
	}
	return fields, nil
}
