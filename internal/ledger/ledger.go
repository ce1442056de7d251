// Package ledger renders classified transactions into the delimited output
// file. Column order is fixed; CSV gets standard quoting, TSV is a bare tab
// join and therefore refuses field values containing tabs.
package ledger

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/4rgc/bsparser/internal/logging"
	"github.com/4rgc/bsparser/internal/models"

	"github.com/gocarina/gocsv"
)

// Header lists the output columns in order. It must line up with the csv
// tags on models.MeaningfulTransaction.
var Header = []string{"Date", "Account", "Main Cat.", "Sub Cat.", "Contents", "Amount", "Inc./Exp.", "Details"}

// FormatterError indicates a field value the target format cannot represent.
// It is raised before anything is written, never after corrupting a file.
type FormatterError struct {
	Column string
	Value  string
}

func (e *FormatterError) Error() string {
	return fmt.Sprintf("field %s contains a character the output format cannot represent: %q", e.Column, e.Value)
}

// RenderRow renders one transaction as a single delimited line, without a
// trailing newline.
func RenderRow(tx models.MeaningfulTransaction, format models.Format) (string, error) {
	record := fieldRecord(tx)

	if format == models.FormatTSV {
		if err := checkTabs(record); err != nil {
			return "", err
		}
		return strings.Join(record, "\t"), nil
	}

	var b strings.Builder
	w := csv.NewWriter(&b)
	if err := w.Write(record); err != nil {
		return "", fmt.Errorf("rendering row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("rendering row: %w", err)
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}

// Render produces the complete output text: the header row followed by one
// line per transaction, newline-terminated.
func Render(transactions []models.MeaningfulTransaction, format models.Format) (string, error) {
	if format == models.FormatTSV {
		var b strings.Builder
		b.WriteString(strings.Join(Header, "\t"))
		b.WriteByte('\n')
		for _, tx := range transactions {
			row, err := RenderRow(tx, format)
			if err != nil {
				return "", err
			}
			b.WriteString(row)
			b.WriteByte('\n')
		}
		return b.String(), nil
	}

	var b strings.Builder
	w := csv.NewWriter(&b)
	if err := gocsv.MarshalCSV(&transactions, gocsv.NewSafeCSVWriter(w)); err != nil {
		return "", fmt.Errorf("rendering ledger: %w", err)
	}
	return b.String(), nil
}

// WriteLedger renders the batch and writes it to path, creating parent
// directories as needed. Nothing is written if rendering fails.
func WriteLedger(transactions []models.MeaningfulTransaction, path string, format models.Format, logger logging.Logger) error {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	text, err := Render(transactions, format)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(text), 0600); err != nil {
		return fmt.Errorf("writing ledger file: %w", err)
	}

	logger.Info("Wrote ledger file",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
		logging.Field{Key: logging.FieldFormat, Value: string(format)})
	return nil
}

func fieldRecord(tx models.MeaningfulTransaction) []string {
	return []string{
		tx.Date,
		tx.Account,
		tx.MainCategory,
		tx.SubCategory,
		tx.Contents,
		tx.Amount.String(),
		tx.IncomeExpense,
		tx.Details,
	}
}

func checkTabs(record []string) error {
	for i, v := range record {
		if strings.ContainsRune(v, '\t') {
			return &FormatterError{Column: Header[i], Value: v}
		}
	}
	return nil
}
