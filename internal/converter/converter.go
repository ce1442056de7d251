// Package converter drives one statement batch through classification. It
// walks transactions strictly in input order because the resolver mutates
// the pattern bank as it goes; a pattern added for an early transaction must
// classify the later ones.
package converter

import (
	"fmt"

	"github.com/4rgc/bsparser/internal/logging"
	"github.com/4rgc/bsparser/internal/models"
	"github.com/4rgc/bsparser/internal/resolver"
)

// Converter turns raw transactions into output-ready ledger rows.
type Converter struct {
	resolver *resolver.Resolver
	logger   logging.Logger
}

// New creates a Converter over the given resolver.
func New(res *resolver.Resolver, logger logging.Logger) *Converter {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Converter{
		resolver: res,
		logger:   logger,
	}
}

// Convert resolves every transaction and builds the ledger rows, tagging
// each with the run-level account label. Skipped transactions are dropped
// from the output; any fatal resolution error aborts the whole batch.
func (c *Converter) Convert(transactions []models.RawTransaction, account string) ([]models.MeaningfulTransaction, error) {
	var out []models.MeaningfulTransaction

	for i, tx := range transactions {
		res, err := c.resolver.Resolve(tx)
		if err != nil {
			return nil, fmt.Errorf("resolving transaction %d (%s): %w", i+1, tx.Desc, err)
		}
		if res.Skipped {
			continue
		}
		out = append(out, models.NewMeaningfulTransaction(tx, account, res.Pattern))
	}

	c.logger.Info("Classified transactions",
		logging.Field{Key: logging.FieldCount, Value: len(out)},
		logging.Field{Key: logging.FieldAccount, Value: account})
	return out, nil
}
