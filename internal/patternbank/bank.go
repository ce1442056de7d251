// Package patternbank is the authoritative store of classification rules. It
// owns the persisted pattern list and every query the matching and
// resolution flows need.
package patternbank

import (
	"encoding/json"
	"os"

	"github.com/4rgc/bsparser/internal/logging"
	"github.com/4rgc/bsparser/internal/models"
)

// Bank holds the full pattern collection for one run. Construct one per run
// and pass it explicitly to whatever needs it; there is no global instance.
// The bank is not safe for concurrent use.
type Bank struct {
	path     string
	patterns []*models.Pattern
	logger   logging.Logger
}

// New creates a Bank backed by the JSON file at path. The bank starts empty;
// call Load before matching.
func New(path string, logger logging.Logger) *Bank {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Bank{
		path:   path,
		logger: logger,
	}
}

// Load reads the backing file and replaces the in-memory pattern list
// wholesale. A missing or malformed file yields a StorageError.
func (b *Bank) Load() error {
	data, err := os.ReadFile(b.path)
	if err != nil {
		return &StorageError{Path: b.path, Op: "read", Err: err}
	}

	var patterns []*models.Pattern
	if err := json.Unmarshal(data, &patterns); err != nil {
		return &StorageError{Path: b.path, Op: "parse", Err: err}
	}

	b.patterns = patterns
	b.logger.Info("Loaded pattern bank",
		logging.Field{Key: logging.FieldFile, Value: b.path},
		logging.Field{Key: logging.FieldCount, Value: len(patterns)})
	return nil
}

// Save serializes the entire pattern list and overwrites the backing file.
func (b *Bank) Save() error {
	data, err := json.MarshalIndent(b.patterns, "", "\t")
	if err != nil {
		return &StorageError{Path: b.path, Op: "marshal", Err: err}
	}

	if err := os.WriteFile(b.path, data, 0600); err != nil {
		return &StorageError{Path: b.path, Op: "write", Err: err}
	}

	b.logger.Info("Saved pattern bank",
		logging.Field{Key: logging.FieldFile, Value: b.path},
		logging.Field{Key: logging.FieldCount, Value: len(b.patterns)})
	return nil
}

// AddPattern appends a pattern to the bank. Contents uniqueness is the
// interactive flow's responsibility; AddPattern does not enforce it because
// some existing pattern files carry deliberate duplicates.
func (b *Bank) AddPattern(pattern *models.Pattern) {
	b.patterns = append(b.patterns, pattern)
	b.logger.Debug("Added pattern",
		logging.Field{Key: logging.FieldContents, Value: pattern.Contents})
}

// FindMatching returns every pattern with at least one key contained in the
// transaction's description. Callers interpret the length: zero means
// unresolved, one resolved, more than one is an ambiguity the caller must
// treat as fatal.
func (b *Bank) FindMatching(tx models.RawTransaction) []*models.Pattern {
	var matches []*models.Pattern
	for _, p := range b.patterns {
		if p.Matches(tx.Desc) {
			matches = append(matches, p)
		}
	}
	return matches
}

// AllKeys returns the deduplicated union of every pattern's keys, in
// first-seen order.
func (b *Bank) AllKeys() []string {
	seen := make(map[string]bool)
	var keys []string
	for _, p := range b.patterns {
		for _, k := range p.Key {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	return keys
}

// AllContents returns every pattern's contents value in bank order.
func (b *Bank) AllContents() []string {
	contents := make([]string, 0, len(b.patterns))
	for _, p := range b.patterns {
		contents = append(contents, p.Contents)
	}
	return contents
}

// AllCategories returns one entry per distinct main category in first-seen
// order, each with the distinct non-empty subcategories observed under it.
func (b *Bank) AllCategories() []models.Category {
	index := make(map[string]int)
	var categories []models.Category

	for _, p := range b.patterns {
		i, ok := index[p.MainCategory]
		if !ok {
			i = len(categories)
			index[p.MainCategory] = i
			categories = append(categories, models.Category{Name: p.MainCategory})
		}
		if p.SubCategory == "" {
			continue
		}
		duplicate := false
		for _, s := range categories[i].Subcategories {
			if s == p.SubCategory {
				duplicate = true
				break
			}
		}
		if !duplicate {
			categories[i].Subcategories = append(categories[i].Subcategories, p.SubCategory)
		}
	}
	return categories
}

// AppendKeyToPattern appends key to the pattern identified by contents. The
// key list stays duplicate-free. Returns a NotFoundError if no pattern has
// that contents value.
func (b *Bank) AppendKeyToPattern(key, contents string) error {
	p, ok := b.FindByDescription(contents)
	if !ok {
		return &NotFoundError{Contents: contents}
	}
	p.AppendKey(key)
	b.logger.Debug("Appended key to pattern",
		logging.Field{Key: logging.FieldKey, Value: key},
		logging.Field{Key: logging.FieldContents, Value: contents})
	return nil
}

// FindByDescription returns the first pattern whose contents equals the
// given value.
func (b *Bank) FindByDescription(contents string) (*models.Pattern, bool) {
	for _, p := range b.patterns {
		if p.Contents == contents {
			return p, true
		}
	}
	return nil, false
}

// Patterns returns the bank's pattern list in insertion order. The slice is
// shared with the bank; callers must not reorder it.
func (b *Bank) Patterns() []*models.Pattern {
	return b.patterns
}

// Len returns the number of patterns in the bank.
func (b *Bank) Len() int {
	return len(b.patterns)
}
