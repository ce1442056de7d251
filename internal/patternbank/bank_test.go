package patternbank

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/4rgc/bsparser/internal/logging"
	"github.com/4rgc/bsparser/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBank(t *testing.T, patterns ...*models.Pattern) *Bank {
	t.Helper()
	bank := New(filepath.Join(t.TempDir(), "patterns.json"), &logging.MockLogger{})
	for _, p := range patterns {
		bank.AddPattern(p)
	}
	return bank
}

func rawTx(desc string) models.RawTransaction {
	return models.RawTransaction{
		Date:   "3/11/2021",
		Desc:   desc,
		Amount: decimal.RequireFromString("-11.57"),
	}
}

func TestLoadMissingFile(t *testing.T) {
	bank := New(filepath.Join(t.TempDir(), "nope.json"), &logging.MockLogger{})

	err := bank.Load()
	require.Error(t, err)

	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "read", storageErr.Op)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	bank := New(path, &logging.MockLogger{})
	err := bank.Load()

	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "parse", storageErr.Op)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.json")
	bank := New(path, &logging.MockLogger{})
	bank.AddPattern(&models.Pattern{
		Key:           []string{"OSMOW'S", "OSMOWS"},
		MainCategory:  "Food",
		SubCategory:   "Dining",
		Contents:      "Osmow's",
		IncomeExpense: "Expense",
	})
	bank.AddPattern(&models.Pattern{
		Key:           []string{"PAYROLL"},
		MainCategory:  "Salary",
		Contents:      "Employer",
		IncomeExpense: "Income",
		Details:       "monthly",
	})

	require.NoError(t, bank.Save())

	reloaded := New(path, &logging.MockLogger{})
	require.NoError(t, reloaded.Load())

	require.Equal(t, bank.Len(), reloaded.Len())
	for i, p := range bank.Patterns() {
		assert.Equal(t, *p, *reloaded.Patterns()[i], "pattern %d survives the round trip, key order included", i)
	}
}

func TestLoadSchemaFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.json")
	content := `[{"key":["OSMOW'S"],"Main Cat.":"Food","Sub Cat.":"Dining","Contents":"Osmow's","Inc./Exp.":"Expense"}]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	bank := New(path, &logging.MockLogger{})
	require.NoError(t, bank.Load())

	require.Equal(t, 1, bank.Len())
	p := bank.Patterns()[0]
	assert.Equal(t, []string{"OSMOW'S"}, p.Key)
	assert.Equal(t, "Food", p.MainCategory)
	assert.Equal(t, "Dining", p.SubCategory)
	assert.Equal(t, "Osmow's", p.Contents)
	assert.Equal(t, "Expense", p.IncomeExpense)
}

func TestFindMatching(t *testing.T) {
	food := &models.Pattern{Key: []string{"DOMINOS PIZZA"}, MainCategory: "Food", Contents: "Dominos", IncomeExpense: "Expense"}
	transport := &models.Pattern{Key: []string{"UBER"}, MainCategory: "Transport", Contents: "Uber", IncomeExpense: "Expense"}
	bank := testBank(t, food, transport)

	tests := []struct {
		name string
		desc string
		want []*models.Pattern
	}{
		{name: "single match", desc: "DOMINOS PIZZA 10754 BROOKLYN NY", want: []*models.Pattern{food}},
		{name: "no match", desc: "WENDY'S", want: nil},
		{name: "case sensitive", desc: "dominos pizza", want: nil},
		{name: "multiple matches", desc: "DOMINOS PIZZA VIA UBER", want: []*models.Pattern{food, transport}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bank.FindMatching(rawTx(tt.desc)))
		})
	}
}

func TestAllKeys(t *testing.T) {
	bank := testBank(t,
		&models.Pattern{Key: []string{"A", "B"}, Contents: "one"},
		&models.Pattern{Key: []string{"B", "C"}, Contents: "two"},
	)

	assert.Equal(t, []string{"A", "B", "C"}, bank.AllKeys())
}

func TestAllContents(t *testing.T) {
	bank := testBank(t,
		&models.Pattern{Contents: "Osmow's"},
		&models.Pattern{Contents: "Dominos"},
	)

	assert.Equal(t, []string{"Osmow's", "Dominos"}, bank.AllContents())
}

func TestAllCategories(t *testing.T) {
	bank := testBank(t,
		&models.Pattern{MainCategory: "Food", SubCategory: "Dining", Contents: "a"},
		&models.Pattern{MainCategory: "Food", SubCategory: "Groceries", Contents: "b"},
		&models.Pattern{MainCategory: "Food", SubCategory: "Dining", Contents: "c"},
		&models.Pattern{MainCategory: "Transport", Contents: "d"},
	)

	categories := bank.AllCategories()
	require.Len(t, categories, 2)
	assert.Equal(t, "Food", categories[0].Name)
	assert.Equal(t, []string{"Dining", "Groceries"}, categories[0].Subcategories)
	assert.Equal(t, "Transport", categories[1].Name)
	assert.Empty(t, categories[1].Subcategories, "patterns without a subcategory contribute none")
}

func TestAppendKeyToPattern(t *testing.T) {
	p := &models.Pattern{Key: []string{"OSMOW'S"}, Contents: "Osmow's"}
	bank := testBank(t, p)

	require.NoError(t, bank.AppendKeyToPattern("OSMOWS TORONTO", "Osmow's"))
	assert.Equal(t, []string{"OSMOW'S", "OSMOWS TORONTO"}, p.Key)

	// Same key again: the key list is a set.
	require.NoError(t, bank.AppendKeyToPattern("OSMOWS TORONTO", "Osmow's"))
	assert.Equal(t, []string{"OSMOW'S", "OSMOWS TORONTO"}, p.Key)
}

func TestAppendKeyToPatternNotFound(t *testing.T) {
	bank := testBank(t, &models.Pattern{Contents: "Osmow's"})

	err := bank.AppendKeyToPattern("KEY", "nope")
	require.Error(t, err)

	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "nope", notFound.Contents)
}

func TestFindByDescription(t *testing.T) {
	p := &models.Pattern{Contents: "Osmow's"}
	bank := testBank(t, p)

	found, ok := bank.FindByDescription("Osmow's")
	require.True(t, ok)
	assert.Same(t, p, found)

	_, ok = bank.FindByDescription("missing")
	assert.False(t, ok)
}
