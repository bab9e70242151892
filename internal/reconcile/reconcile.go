package reconcile

import (
	"log"
	"strings"

	"github.com/sowmyalt/edu2job/internal/parsing"
)

// SentinelLabel is the catch-all label a vocabulary may carry for unknown input.
const SentinelLabel = parsing.DefaultCategory

// Method records which resolution step produced a code.
type Method string

const (
	MethodExact       Method = "exact"
	MethodAlias       Method = "alias"
	MethodSentinel    Method = "sentinel"
	MethodApproximate Method = "approximate"
	// MethodFallback means no step matched and code 0 was used. Code 0 is
	// whatever label sorts first and may be unrelated to the input.
	MethodFallback Method = "fallback"
)

// Resolution is the outcome of reconciling one raw value.
type Resolution struct {
	Feature string  `json:"feature"`
	Raw     string  `json:"raw"`
	Code    int     `json:"code"`
	Label   string  `json:"label"`
	Method  Method  `json:"method"`
	Score   float64 `json:"score,omitempty"`
}

// Miss reports whether the value fell through to the absolute fallback.
func (r Resolution) Miss() bool {
	return r.Method == MethodFallback
}

// Reconciler resolves raw categorical values against a vocabulary using, in
// order: exact match, alias keywords, the sentinel label, approximate match,
// and finally code 0.
type Reconciler struct {
	aliases map[string][]Alias
	cutoff  float64
}

// New creates a Reconciler. A cutoff outside (0, 1] uses DefaultCutoff.
func New(aliases map[string][]Alias, cutoff float64) *Reconciler {
	if cutoff <= 0 || cutoff > 1 {
		cutoff = DefaultCutoff
	}
	if aliases == nil {
		aliases = map[string][]Alias{}
	}
	return &Reconciler{aliases: aliases, cutoff: cutoff}
}

// Default returns a Reconciler with the built-in alias tables.
func Default() *Reconciler {
	return New(DefaultAliases(), DefaultCutoff)
}

// Reconcile maps raw onto vocab. It never fails: every input resolves to a
// code within the vocabulary range, or 0 for an empty vocabulary.
func (r *Reconciler) Reconcile(feature string, vocab *Vocabulary, raw string) Resolution {
	value := strings.TrimSpace(raw)
	res := Resolution{Feature: feature, Raw: raw}

	if code, ok := vocab.Code(value); ok {
		return resolved(res, vocab, code, MethodExact)
	}

	lower := strings.ToLower(value)
	for _, a := range r.aliases[feature] {
		if !strings.Contains(lower, a.Keyword) {
			continue
		}
		if code, ok := vocab.Code(a.Canonical); ok {
			return resolved(res, vocab, code, MethodAlias)
		}
		break
	}

	if code, ok := vocab.Code(SentinelLabel); ok {
		return resolved(res, vocab, code, MethodSentinel)
	}

	if label, score, ok := CloseMatch(value, vocab.Labels(), r.cutoff); ok {
		code, _ := vocab.Code(label)
		res = resolved(res, vocab, code, MethodApproximate)
		res.Score = score
		return res
	}

	res = resolved(res, vocab, 0, MethodFallback)
	log.Printf("[reconcile] feature=%s value=%q method=%s label=%q", feature, raw, res.Method, res.Label)
	return res
}

// Code is Reconcile reduced to the integer code.
func (r *Reconciler) Code(feature string, vocab *Vocabulary, raw string) int {
	return r.Reconcile(feature, vocab, raw).Code
}

func resolved(res Resolution, vocab *Vocabulary, code int, method Method) Resolution {
	res.Code = code
	res.Label, _ = vocab.Label(code)
	res.Method = method
	return res
}
