package statement

import (
	"fmt"
	"time"

	"github.com/4rgc/bsparser/internal/models"
)

// Statement dates are US-style month first; the user-facing cut-off keeps
// the day-first convention the interactive prompt always used.
const (
	txDateLayout  = "1/2/2006"
	cutoffLayout  = "02/01/2006"
	cutoffPattern = "dd/mm/yyyy"
)

// FilterBefore drops every transaction dated before the cut-off, which is
// given as dd/mm/yyyy. Transactions on the cut-off day itself are kept.
func FilterBefore(transactions []models.RawTransaction, cutoff string) ([]models.RawTransaction, error) {
	cutoffDate, err := time.Parse(cutoffLayout, cutoff)
	if err != nil {
		return nil, &ArgumentError{
			Field:  "cutoff date",
			Value:  cutoff,
			Reason: fmt.Sprintf("must be shaped %s", cutoffPattern),
		}
	}

	var kept []models.RawTransaction
	for _, tx := range transactions {
		txDate, err := time.Parse(txDateLayout, tx.Date)
		if err != nil {
			// ParseLine already validated the shape; reject anything that
			// still fails (e.g. 2/30) rather than guessing.
			return nil, &ArgumentError{Field: "date", Value: tx.Date, Reason: "not a real calendar date"}
		}
		if !txDate.Before(cutoffDate) {
			kept = append(kept, tx)
		}
	}
	return kept, nil
}
