package engine

import (
	"fmt"
	"log"

	"github.com/sowmyalt/edu2job/internal/parsing"
	"github.com/sowmyalt/edu2job/internal/ranking"
	"github.com/sowmyalt/edu2job/internal/reconcile"
	"github.com/sowmyalt/edu2job/internal/types"
)

// Status classifies how a prediction was produced.
type Status string

const (
	StatusOK                  Status = "ok"
	StatusReconciliationMiss  Status = "reconciliation_miss"
	StatusTrainingUnavailable Status = "training_unavailable"
	StatusInferenceFailure    Status = "inference_failure"
)

// Result is the outcome of one prediction. Predictions is never empty.
type Result struct {
	Status      Status
	Predictions []types.Prediction
	// Resolutions records how each categorical feature was reconciled; empty
	// when no model was consulted.
	Resolutions []reconcile.Resolution
	// RuleMatched is true when the curated rule table produced the roles.
	RuleMatched bool
	ModelID     string
	// Err is the underlying cause for non-ok statuses. It is informational;
	// Predictions is always usable.
	Err error
}

// Top returns the role of the first prediction.
func (r Result) Top() string {
	if len(r.Predictions) == 0 {
		return ""
	}
	return r.Predictions[0].Role
}

// Response converts the result into the caller payload.
func (r Result) Response() types.PredictionResponse {
	return types.PredictionResponse{
		Prediction:    r.Top(),
		TopPrediction: r.Top(),
		Predictions:   r.Predictions,
		Status:        string(r.Status),
		ModelID:       r.ModelID,
	}
}

// Predict returns ranked role recommendations for profile. It never fails:
// every error path yields a usable Result with an explanatory Status.
func (e *Engine) Predict(profile types.Profile) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("panic during prediction: %v", r)
			log.Printf("[engine] %v", err)
			res = Result{Status: StatusInferenceFailure, Predictions: ranking.Fallback(), Err: err}
		}
	}()

	p := parsing.ApplyDefaults(profile)
	ruleRoles := e.opts.Rules.Lookup(p.Specialization)

	s := e.current.Load()
	if s == nil {
		return e.predictUntrained(p, ruleRoles)
	}

	res = Result{Status: StatusOK, ModelID: s.id, RuleMatched: len(ruleRoles) > 0}

	features := make([]float64, 0, len(featureColumns)+3)
	raw := map[string]string{
		types.ColumnDegree:         p.Degree,
		types.ColumnSpecialization: p.Specialization,
		types.ColumnCollegeName:    p.Institution,
	}
	for _, col := range featureColumns {
		r := e.opts.Reconciler.Reconcile(col, s.vocabs[col], raw[col])
		res.Resolutions = append(res.Resolutions, r)
		features = append(features, float64(r.Code))
	}
	features = append(features,
		parsing.NormalizeGPA(p.CGPA),
		float64(p.Certificates),
		float64(p.GraduationYear),
	)

	var candidates []ranking.Candidate
	if len(ruleRoles) == 0 {
		ranked, err := s.forest.Rank(features, e.opts.TopK)
		if err != nil {
			return e.failed(res, err)
		}
		for _, r := range ranked {
			role, ok := s.target.Label(r.Class)
			if !ok {
				return e.failed(res, fmt.Errorf("class %d has no label", r.Class))
			}
			candidates = append(candidates, ranking.Candidate{Role: role, Probability: r.Probability})
		}
		for _, r := range res.Resolutions {
			if r.Miss() {
				res.Status = StatusReconciliationMiss
				break
			}
		}
	}

	preds, err := e.opts.Composer.Compose(p.Specialization, p.Certificates, ruleRoles, candidates)
	if err != nil {
		return e.failed(res, err)
	}
	res.Predictions = preds
	return res
}

func (e *Engine) predictUntrained(p types.Profile, ruleRoles []string) Result {
	res := Result{Status: StatusTrainingUnavailable, Err: ErrTrainingUnavailable, RuleMatched: len(ruleRoles) > 0}
	if len(ruleRoles) > 0 {
		preds, err := e.opts.Composer.Compose(p.Specialization, p.Certificates, ruleRoles, nil)
		if err == nil {
			res.Predictions = preds
			return res
		}
		log.Printf("[engine] rule composition failed without a model: %v", err)
	}
	res.Predictions = ranking.Untrained()
	return res
}

func (e *Engine) failed(res Result, err error) Result {
	log.Printf("[engine] inference failed, returning fallback: %v", err)
	res.Status = StatusInferenceFailure
	res.Predictions = ranking.Fallback()
	res.Err = err
	return res
}
