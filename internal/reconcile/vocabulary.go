// Package reconcile maps free-text categorical input onto the closed label
// vocabularies learned from the training corpus.
package reconcile

import (
	"sort"
	"strings"
)

// Vocabulary is an immutable bidirectional mapping between labels and dense
// integer codes. Codes follow sorted label order, so code 0 is the
// lexicographically smallest label.
type Vocabulary struct {
	labels []string
	codes  map[string]int
}

// FitVocabulary builds a Vocabulary from the trimmed, de-duplicated values.
// Empty values after trimming are kept as the empty label.
func FitVocabulary(values []string) *Vocabulary {
	seen := make(map[string]struct{}, len(values))
	labels := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		labels = append(labels, v)
	}
	sort.Strings(labels)

	codes := make(map[string]int, len(labels))
	for i, l := range labels {
		codes[l] = i
	}
	return &Vocabulary{labels: labels, codes: codes}
}

// Code returns the code for an exact label.
func (v *Vocabulary) Code(label string) (int, bool) {
	if v == nil {
		return 0, false
	}
	c, ok := v.codes[label]
	return c, ok
}

// Label returns the label for a code.
func (v *Vocabulary) Label(code int) (string, bool) {
	if v == nil || code < 0 || code >= len(v.labels) {
		return "", false
	}
	return v.labels[code], true
}

// Len returns the number of labels.
func (v *Vocabulary) Len() int {
	if v == nil {
		return 0
	}
	return len(v.labels)
}

// Labels returns a copy of the labels in code order.
func (v *Vocabulary) Labels() []string {
	if v == nil {
		return nil
	}
	return append([]string(nil), v.labels...)
}
