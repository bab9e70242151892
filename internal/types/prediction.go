//nolint:revive // types is a standard Go package name pattern
package types

// Prediction is one annotated role recommendation.
type Prediction struct {
	Role             string   `json:"role"`
	Confidence       float64  `json:"confidence"`  // 0-1, two decimals
	MatchScore       int      `json:"match_score"` // 0-100
	Justification    string   `json:"justification"`
	MissingSkills    []string `json:"missing_skills"`
	RecommendedCerts []string `json:"recommended_certs"`
	Description      string   `json:"description"`
}

// PredictionResponse is the payload handed to the CLI and HTTP callers.
type PredictionResponse struct {
	Prediction    string       `json:"prediction"`
	TopPrediction string       `json:"top_prediction"`
	Predictions   []Prediction `json:"predictions"`
	Status        string       `json:"status"`
	ModelID       string       `json:"model_id,omitempty"`
}
