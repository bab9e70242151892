// Package rules maps a specialization to a curated, ordered list of roles.
// It is independent of the learned model.
package rules

import (
	"github.com/sowmyalt/edu2job/internal/lookup"
)

// Engine looks up curated roles by branch keyword.
type Engine struct {
	table *lookup.Table[[]string]
}

// New creates an Engine over the given table.
func New(table *lookup.Table[[]string]) *Engine {
	return &Engine{table: table}
}

// Default returns an Engine over the built-in branch table.
func Default() *Engine {
	return New(lookup.MustNew(defaultEntries))
}

// Lookup returns the roles of the longest table key contained in the
// lowercased, trimmed specialization, or nil when no key matches.
// The returned slice is a copy; callers may modify it.
func (e *Engine) Lookup(specialization string) []string {
	_, roles, ok := e.table.LongestContained(specialization)
	if !ok {
		return nil
	}
	return append([]string(nil), roles...)
}

// MatchedKey returns the table key Lookup would use, or "" when none matches.
func (e *Engine) MatchedKey(specialization string) string {
	key, _, _ := e.table.LongestContained(specialization)
	return key
}
