// Package models provides the data structures shared across the application.
package models

import "strings"

// Pattern is one persisted categorization rule. The JSON field names are the
// on-disk schema of the pattern bank and must not change; existing pattern
// files depend on them.
type Pattern struct {
	Key           []string `json:"key"`
	MainCategory  string   `json:"Main Cat."`
	SubCategory   string   `json:"Sub Cat.,omitempty"`
	Contents      string   `json:"Contents"`
	IncomeExpense string   `json:"Inc./Exp."`
	Details       string   `json:"Details,omitempty"`
}

// HasKey reports whether key is already one of the pattern's keys.
func (p *Pattern) HasKey(key string) bool {
	for _, k := range p.Key {
		if k == key {
			return true
		}
	}
	return false
}

// AppendKey adds key to the pattern's key list. The key list is semantically
// a set; appending an existing key is a no-op.
func (p *Pattern) AppendKey(key string) {
	if !p.HasKey(key) {
		p.Key = append(p.Key, key)
	}
}

// Matches reports whether any of the pattern's keys is a substring of desc.
// Matching is case-sensitive and byte-exact.
func (p *Pattern) Matches(desc string) bool {
	for _, k := range p.Key {
		if strings.Contains(desc, k) {
			return true
		}
	}
	return false
}

// Category is a derived view over the pattern list: one main category with
// the distinct subcategories observed under it. It is computed on demand for
// the interactive selection menus and never persisted.
type Category struct {
	Name          string   `json:"category" yaml:"category"`
	Subcategories []string `json:"subcategories" yaml:"subcategories"`
}
