// Package lookup provides keyword tables made of canonical entries plus aliases
// that point at exactly one canonical entry.
package lookup

import (
	"fmt"
	"sort"
	"strings"
)

// Entry declares either a canonical value (Alias empty) or an alias for the
// canonical entry named by Alias.
type Entry[T any] struct {
	Key   string
	Value T
	Alias string
}

// Table resolves keys case-insensitively. Aliases resolve with a single
// indirection; an alias may not point at another alias.
type Table[T any] struct {
	canonical map[string]T
	aliases   map[string]string
	display   map[string]string
	order     []string // declaration order, lowercased
	longest   []string // longest key first, ties in declaration order
}

// New builds a Table from entries in declaration order.
func New[T any](entries []Entry[T]) (*Table[T], error) {
	t := &Table[T]{
		canonical: make(map[string]T),
		aliases:   make(map[string]string),
		display:   make(map[string]string),
	}

	for _, e := range entries {
		key := normalize(e.Key)
		if key == "" {
			return nil, fmt.Errorf("lookup: empty key")
		}
		if _, dup := t.display[key]; dup {
			return nil, fmt.Errorf("lookup: duplicate key %q", e.Key)
		}
		t.display[key] = e.Key
		t.order = append(t.order, key)
		if e.Alias != "" {
			t.aliases[key] = normalize(e.Alias)
			continue
		}
		t.canonical[key] = e.Value
	}

	for alias, target := range t.aliases {
		if _, ok := t.canonical[target]; !ok {
			return nil, fmt.Errorf("lookup: alias %q points at unknown or alias entry %q", t.display[alias], target)
		}
	}

	t.longest = append([]string(nil), t.order...)
	sort.SliceStable(t.longest, func(i, j int) bool {
		return len(t.longest[i]) > len(t.longest[j])
	})

	return t, nil
}

// MustNew is New for static tables; it panics on a malformed declaration.
func MustNew[T any](entries []Entry[T]) *Table[T] {
	t, err := New(entries)
	if err != nil {
		panic(err)
	}
	return t
}

// Resolve returns the value for key, following at most one alias.
func (t *Table[T]) Resolve(key string) (T, bool) {
	return t.resolve(normalize(key))
}

func (t *Table[T]) resolve(key string) (T, bool) {
	if target, ok := t.aliases[key]; ok {
		key = target
	}
	v, ok := t.canonical[key]
	return v, ok
}

// Keys returns the declared keys in declaration order.
func (t *Table[T]) Keys() []string {
	out := make([]string, 0, len(t.order))
	for _, k := range t.order {
		out = append(out, t.display[k])
	}
	return out
}

// Len returns the number of declared keys, aliases included.
func (t *Table[T]) Len() int {
	return len(t.order)
}

// FirstContained returns the first key, in declaration order, that occurs
// inside input (case-insensitive substring match).
func (t *Table[T]) FirstContained(input string) (string, T, bool) {
	return t.firstIn(t.order, input)
}

// LongestContained is FirstContained with keys tried longest first, so a short
// generic key never shadows a longer, more specific one.
func (t *Table[T]) LongestContained(input string) (string, T, bool) {
	return t.firstIn(t.longest, input)
}

func (t *Table[T]) firstIn(keys []string, input string) (string, T, bool) {
	var zero T
	in := normalize(input)
	if in == "" {
		return "", zero, false
	}
	for _, key := range keys {
		if strings.Contains(in, key) {
			v, ok := t.resolve(key)
			if !ok {
				continue
			}
			return t.display[key], v, true
		}
	}
	return "", zero, false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
