package statement

import (
	"testing"

	"github.com/4rgc/bsparser/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLineCSV(t *testing.T) {
	tx, err := ParseLine(`3/11/2021,"Osmow's",-11.57`, models.FormatCSV)
	require.NoError(t, err)

	assert.Equal(t, "3/11/2021", tx.Date)
	assert.Equal(t, "Osmow's", tx.Desc, "outer quotes are stripped")
	assert.Equal(t, "-11.57", tx.Amount.String())
}

func TestParseLineCSVQuoting(t *testing.T) {
	// Embedded commas stay inside a quoted field; doubled quotes collapse.
	tx, err := ParseLine(`3/11/2021,"DOMINO'S, BROOKLYN ""NY""",25.00`, models.FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, `DOMINO'S, BROOKLYN "NY"`, tx.Desc)
}

func TestParseLineTSV(t *testing.T) {
	tx, err := ParseLine("12/1/2021\tPAYROLL DEPOSIT\t1500.00", models.FormatTSV)
	require.NoError(t, err)

	assert.Equal(t, "12/1/2021", tx.Date)
	assert.Equal(t, "PAYROLL DEPOSIT", tx.Desc)
	assert.Equal(t, "1500", tx.Amount.String())
}

func TestParseLineErrors(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		field string
	}{
		{name: "month out of range", line: `13/40/2021,"X",5`, field: "date"},
		{name: "two digit year", line: `3/11/21,"X",5`, field: "date"},
		{name: "not a date at all", line: `yesterday,"X",5`, field: "date"},
		{name: "non-numeric amount", line: `3/11/2021,"X",notanumber`, field: "amount"},
		{name: "missing column", line: `3/11/2021,"X"`, field: "row"},
		{name: "extra column", line: `3/11/2021,"X",5,extra`, field: "row"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLine(tt.line, models.FormatCSV)
			require.Error(t, err)

			var argErr *ArgumentError
			require.ErrorAs(t, err, &argErr)
			assert.Equal(t, tt.field, argErr.Field)
		})
	}
}

func TestParseBatch(t *testing.T) {
	text := "3/11/2021,\"Osmow's\",-11.57\n\n12/1/2021,\"PAYROLL\",1500.00\n"

	txs, err := ParseBatch(text, models.FormatCSV)
	require.NoError(t, err)

	require.Len(t, txs, 2, "blank lines are skipped")
	assert.Equal(t, "Osmow's", txs[0].Desc)
	assert.Equal(t, "PAYROLL", txs[1].Desc)
}

func TestParseBatchFailsFast(t *testing.T) {
	text := "3/11/2021,\"Osmow's\",-11.57\nbadrow,\"X\",5\n12/1/2021,\"PAYROLL\",1500.00"

	txs, err := ParseBatch(text, models.FormatCSV)
	require.Error(t, err)
	assert.Nil(t, txs, "one bad row fails the whole batch")
	assert.Contains(t, err.Error(), "line 2")

	var argErr *ArgumentError
	assert.ErrorAs(t, err, &argErr)
}

func TestFilterBefore(t *testing.T) {
	txs, err := ParseBatch(
		"3/11/2021,\"Osmow's\",-11.57\n"+
			"2/28/2021,\"OLD CHARGE\",-5.00\n"+
			"3/1/2021,\"ON CUTOFF\",-1.00\n",
		models.FormatCSV)
	require.NoError(t, err)

	kept, err := FilterBefore(txs, "01/03/2021")
	require.NoError(t, err)

	require.Len(t, kept, 2)
	assert.Equal(t, "Osmow's", kept[0].Desc)
	assert.Equal(t, "ON CUTOFF", kept[1].Desc, "the cut-off day itself is kept")
}

func TestFilterBeforeBadCutoff(t *testing.T) {
	_, err := FilterBefore(nil, "2021-03-01")
	require.Error(t, err)

	var argErr *ArgumentError
	assert.ErrorAs(t, err, &argErr)
}
