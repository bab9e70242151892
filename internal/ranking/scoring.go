package ranking

import "math"

// Score constants for both recommendation paths.
const (
	ruleBaseConfidence = 0.95
	ruleConfidenceStep = 0.02
	ruleBaseMatch      = 98

	boostPoints     = 10
	maxBoostedMatch = 99
	goodMatchProb   = 0.2

	// Certificate counts above this cover the first core skills of a role.
	coveredSkillCerts = 2
	coveredSkills     = 2
)

// ruleConfidence is the synthetic confidence of the idx-th rule role, never below 0.
func ruleConfidence(idx int) float64 {
	return round2(clamp01(ruleBaseConfidence - float64(idx)*ruleConfidenceStep))
}

// ruleMatchScore is the match score of the idx-th rule role, never below 0.
func ruleMatchScore(idx int) int {
	return max(ruleBaseMatch-idx, 0)
}

// matchScore converts a probability into a 0-100 score, optionally boosted.
func matchScore(prob float64, boosted bool) int {
	score := int(math.Round(clamp01(prob) * 100))
	if boosted {
		score = min(score+boostPoints, maxBoostedMatch)
	}
	return score
}

// missingSkills drops the core skills a well-certified student is assumed to
// already have. The result never aliases skills.
func missingSkills(skills []string, certificates int) []string {
	if certificates > coveredSkillCerts {
		if len(skills) <= coveredSkills {
			return []string{}
		}
		skills = skills[coveredSkills:]
	}
	return append([]string{}, skills...)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
