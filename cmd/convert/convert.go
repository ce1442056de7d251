// Package convert contains the command that turns a raw bank statement
// export into a categorized ledger file.
package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/4rgc/bsparser/cmd/root"
	"github.com/4rgc/bsparser/internal/converter"
	"github.com/4rgc/bsparser/internal/ledger"
	"github.com/4rgc/bsparser/internal/logging"
	"github.com/4rgc/bsparser/internal/models"
	"github.com/4rgc/bsparser/internal/patternbank"
	"github.com/4rgc/bsparser/internal/prompt"
	"github.com/4rgc/bsparser/internal/resolver"
	"github.com/4rgc/bsparser/internal/statement"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	inputFile    string
	inputFormat  string
	outputFile   string
	outputFormat string
	account      string
	fromDate     string
)

// Cmd is the convert command.
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a bank statement export into a categorized ledger file",
	Long: `Convert reads a statement export of date,description,amount rows,
matches every description against the pattern bank, asks interactively about
the ones it has never seen, and writes the categorized rows to the ledger
file. Newly learned patterns are saved back to the bank.`,
	RunE: convertFunc,
}

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Statement export file to convert")
	Cmd.Flags().StringVarP(&inputFormat, "format", "f", "", "Input format: csv or tsv (default: by file extension)")
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Ledger output file (default from config)")
	Cmd.Flags().StringVar(&outputFormat, "output-format", "", "Ledger output format: csv or tsv (default from config)")
	Cmd.Flags().StringVarP(&account, "account", "a", "debit", "Account the statement belongs to: credit or debit")
	Cmd.Flags().StringVar(&fromDate, "from", "", "Discard transactions dated before this day (dd/mm/yyyy)")
	if err := Cmd.MarkFlagRequired("input"); err != nil {
		panic(err)
	}
}

func convertFunc(cmd *cobra.Command, args []string) error {
	cfg := root.Cfg
	logger := logging.NewLogrusAdapterFromLogger(root.Log)
	runID := uuid.New().String()

	accountLabel, err := accountLabelFor(account)
	if err != nil {
		return err
	}

	format, err := resolveInputFormat()
	if err != nil {
		return err
	}

	logger.Info("Starting conversion",
		logging.Field{Key: logging.FieldRunID, Value: runID},
		logging.Field{Key: logging.FieldFile, Value: inputFile},
		logging.Field{Key: logging.FieldFormat, Value: string(format)},
		logging.Field{Key: logging.FieldAccount, Value: accountLabel},
	)

	bank := patternbank.New(cfg.Patterns.File, logger)
	if err := bank.Load(); err != nil {
		return fmt.Errorf("loading pattern bank: %w", err)
	}

	data, err := os.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("reading statement file: %w", err)
	}

	transactions, err := statement.ParseBatch(string(data), format)
	if err != nil {
		return fmt.Errorf("parsing statement: %w", err)
	}

	if fromDate != "" {
		transactions, err = statement.FilterBefore(transactions, fromDate)
		if err != nil {
			return fmt.Errorf("filtering statement: %w", err)
		}
	}

	logger.Info("Parsed statement",
		logging.Field{Key: logging.FieldFile, Value: inputFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
	)

	prompter := prompt.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())
	labels := resolver.Labels{Income: cfg.Labels.Income, Expense: cfg.Labels.Expense}
	res := resolver.New(bank, prompter, labels, logger)

	converted, err := converter.New(res, logger).Convert(transactions, accountLabel)
	if err != nil {
		return err
	}

	outPath := outputFile
	if outPath == "" {
		outPath = cfg.Output.File
	}
	outFormatName := outputFormat
	if outFormatName == "" {
		outFormatName = cfg.Output.Format
	}
	outFormat, err := models.ParseFormat(outFormatName)
	if err != nil {
		return err
	}

	if err := ledger.WriteLedger(converted, outPath, outFormat, logger); err != nil {
		return err
	}

	if err := bank.Save(); err != nil {
		return fmt.Errorf("saving pattern bank: %w", err)
	}

	logger.Info("Conversion complete",
		logging.Field{Key: logging.FieldRunID, Value: runID},
		logging.Field{Key: logging.FieldFile, Value: outPath},
		logging.Field{Key: logging.FieldCount, Value: len(converted)},
	)
	return nil
}

func accountLabelFor(name string) (string, error) {
	switch name {
	case "credit":
		return root.Cfg.Labels.CreditAccount, nil
	case "debit":
		return root.Cfg.Labels.DebitAccount, nil
	default:
		return "", fmt.Errorf("unknown account %q: must be credit or debit", name)
	}
}

// resolveInputFormat picks the input format from the flag, falling back to
// the input file's extension, then to CSV.
func resolveInputFormat() (models.Format, error) {
	if inputFormat != "" {
		return models.ParseFormat(inputFormat)
	}
	switch strings.ToLower(filepath.Ext(inputFile)) {
	case ".tsv":
		return models.FormatTSV, nil
	default:
		return models.FormatCSV, nil
	}
}
