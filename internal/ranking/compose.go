// Package ranking turns rule roles or classifier candidates into annotated,
// ordered role recommendations.
package ranking

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sowmyalt/edu2job/internal/knowledge"
	"github.com/sowmyalt/edu2job/internal/types"
)

// FallbackRole is the role of the safe fallback prediction.
const FallbackRole = "Software Engineer"

// ErrNoCandidates is returned when neither path produced a role.
var ErrNoCandidates = errors.New("ranking: no rule roles or classifier candidates")

// Candidate is one classifier result, already decoded to a role name.
type Candidate struct {
	Role        string
	Probability float64
}

// Composer annotates roles with knowledge-base metadata and scores.
type Composer struct {
	base   *knowledge.Base
	boosts *knowledge.BoostTable
}

// NewComposer creates a Composer.
func NewComposer(base *knowledge.Base, boosts *knowledge.BoostTable) *Composer {
	return &Composer{base: base, boosts: boosts}
}

// DefaultComposer uses the built-in knowledge base and boost table.
func DefaultComposer() *Composer {
	return NewComposer(knowledge.DefaultBase(), knowledge.DefaultBoostTable())
}

// Compose builds the ranked predictions. Non-empty ruleRoles short-circuit the
// classifier candidates entirely; otherwise candidates are annotated in the
// order given.
func (c *Composer) Compose(specialization string, certificates int, ruleRoles []string, candidates []Candidate) ([]types.Prediction, error) {
	if len(ruleRoles) > 0 {
		return c.fromRules(specialization, certificates, ruleRoles), nil
	}
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}
	return c.fromCandidates(specialization, certificates, candidates)
}

func (c *Composer) fromRules(specialization string, certificates int, roles []string) []types.Prediction {
	out := make([]types.Prediction, 0, len(roles))
	for idx, role := range roles {
		details := c.base.Details(role)
		out = append(out, types.Prediction{
			Role:             role,
			Confidence:       ruleConfidence(idx),
			MatchScore:       ruleMatchScore(idx),
			Justification:    fmt.Sprintf("Strongly recommended for %s background.", specialization),
			MissingSkills:    missingSkills(details.Skills, certificates),
			RecommendedCerts: append([]string{}, details.RecommendedCerts...),
			Description:      details.Description,
		})
	}
	return out
}

func (c *Composer) fromCandidates(specialization string, certificates int, candidates []Candidate) ([]types.Prediction, error) {
	out := make([]types.Prediction, 0, len(candidates))
	for _, cand := range candidates {
		if cand.Role == "" {
			return nil, fmt.Errorf("ranking: candidate with empty role")
		}
		details := c.base.Details(cand.Role)
		boosted := c.boosts.Contains(specialization, cand.Role)

		var parts []string
		switch {
		case boosted:
			parts = append(parts, fmt.Sprintf("Strong match with your background in %s.", specialization))
		case cand.Probability > goodMatchProb:
			parts = append(parts, "Good statistical match based on academic profile.")
		default:
			parts = append(parts, "Potential alternative path.")
		}
		if certificates > 0 {
			parts = append(parts, fmt.Sprintf("Your %d certificates boost this profile.", certificates))
		}

		out = append(out, types.Prediction{
			Role:             cand.Role,
			Confidence:       round2(clamp01(cand.Probability)),
			MatchScore:       matchScore(cand.Probability, boosted),
			Justification:    strings.Join(parts, " "),
			MissingSkills:    missingSkills(details.Skills, certificates),
			RecommendedCerts: append([]string{}, details.RecommendedCerts...),
			Description:      details.Description,
		})
	}
	return out, nil
}

// Fallback returns the single safe prediction used when composition or
// inference fails.
func Fallback() []types.Prediction {
	return []types.Prediction{{
		Role:             FallbackRole,
		Confidence:       0,
		MatchScore:       0,
		Justification:    "Error in prediction processing.",
		MissingSkills:    []string{},
		RecommendedCerts: []string{},
		Description:      "Fallback prediction due to system error.",
	}}
}

// Untrained returns the single prediction used when no model has been
// trained and no rule matched.
func Untrained() []types.Prediction {
	p := Fallback()
	p[0].Justification = "Model not trained; no curated roles match this specialization."
	p[0].Description = "Fallback prediction because the model is not trained."
	return p
}
