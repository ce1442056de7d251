package models

import "fmt"

// Format identifies a delimited text format for statements and ledgers.
type Format string

const (
	// FormatCSV is comma-separated with optional double-quoted fields.
	FormatCSV Format = "csv"
	// FormatTSV is tab-separated; tabs cannot appear inside fields.
	FormatTSV Format = "tsv"
)

// Delimiter returns the format's field separator.
func (f Format) Delimiter() rune {
	if f == FormatTSV {
		return '\t'
	}
	return ','
}

// ParseFormat converts a user-supplied format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, FormatTSV:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown format %q (must be 'csv' or 'tsv')", s)
	}
}
