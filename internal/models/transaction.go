package models

import "github.com/shopspring/decimal"

// RawTransaction is one row of the source statement, exactly as given: the
// date stays the source's M/D/YYYY text and the amount keeps its sign. Rows
// are immutable once parsed.
type RawTransaction struct {
	Date   string
	Desc   string
	Amount decimal.Decimal
}

// MeaningfulTransaction is one output ledger row. The csv tags drive both the
// header row and the column order of the output file.
type MeaningfulTransaction struct {
	Date          string          `csv:"Date"`
	Account       string          `csv:"Account"`
	MainCategory  string          `csv:"Main Cat."`
	SubCategory   string          `csv:"Sub Cat."`
	Contents      string          `csv:"Contents"`
	Amount        decimal.Decimal `csv:"Amount"`
	IncomeExpense string          `csv:"Inc./Exp."`
	Details       string          `csv:"Details"`
}

// NewMeaningfulTransaction combines a raw transaction with its resolved
// pattern and the run-level account label. The amount loses its sign; the
// direction is carried by the pattern's income/expense flag instead.
func NewMeaningfulTransaction(raw RawTransaction, account string, pattern *Pattern) MeaningfulTransaction {
	return MeaningfulTransaction{
		Date:          raw.Date,
		Account:       account,
		MainCategory:  pattern.MainCategory,
		SubCategory:   pattern.SubCategory,
		Contents:      pattern.Contents,
		Amount:        raw.Amount.Abs(),
		IncomeExpense: pattern.IncomeExpense,
		Details:       pattern.Details,
	}
}
