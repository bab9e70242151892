// Package engine owns the trained prediction state and is the single entry
// point for training and prediction. A retrain builds a complete new state
// and swaps it in atomically; predictions always see one consistent
// generation.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sowmyalt/edu2job/internal/classifier"
	"github.com/sowmyalt/edu2job/internal/insights"
	"github.com/sowmyalt/edu2job/internal/knowledge"
	"github.com/sowmyalt/edu2job/internal/ranking"
	"github.com/sowmyalt/edu2job/internal/reconcile"
	"github.com/sowmyalt/edu2job/internal/rules"
	"github.com/sowmyalt/edu2job/internal/types"
)

// DefaultTopK is the number of classifier candidates annotated per prediction.
const DefaultTopK = 5

// ErrTrainingUnavailable means the corpus could not be read or was empty.
var ErrTrainingUnavailable = errors.New("training unavailable")

// Source yields the full training corpus. Load is called on every train.
type Source interface {
	Load(ctx context.Context) ([]types.TrainingExample, error)
}

// Options configures an Engine. Nil components use the built-in defaults.
type Options struct {
	Forest     classifier.Options
	TopK       int
	Rules      *rules.Engine
	Reconciler *reconcile.Reconciler
	Composer   *ranking.Composer
	Paths      *knowledge.PathTable
}

// Engine trains and serves role predictions. It is safe for concurrent use.
type Engine struct {
	opts    Options
	current atomic.Pointer[state]
	trainMu sync.Mutex
}

// New creates an untrained Engine.
func New(opts Options) *Engine {
	if opts.TopK <= 0 {
		opts.TopK = DefaultTopK
	}
	if opts.Rules == nil {
		opts.Rules = rules.Default()
	}
	if opts.Reconciler == nil {
		opts.Reconciler = reconcile.Default()
	}
	if opts.Composer == nil {
		opts.Composer = ranking.DefaultComposer()
	}
	if opts.Paths == nil {
		opts.Paths = knowledge.DefaultPathTable()
	}
	return &Engine{opts: opts}
}

// Summary describes the currently served model.
type Summary struct {
	Trained    bool           `json:"trained"`
	ModelID    string         `json:"model_id,omitempty"`
	TrainedAt  *time.Time     `json:"trained_at,omitempty"`
	Examples   int            `json:"examples"`
	Trees      int            `json:"trees"`
	Classes    int            `json:"classes"`
	Vocabulary map[string]int `json:"vocabulary,omitempty"`
}

// Train reads src and replaces the served state on success. On any failure
// the previous state keeps serving. Calls are serialized.
func (e *Engine) Train(ctx context.Context, src Source) (Summary, error) {
	e.trainMu.Lock()
	defer e.trainMu.Unlock()

	examples, err := src.Load(ctx)
	if err != nil {
		log.Printf("[engine] corpus load failed: %v", err)
		return e.Summary(), fmt.Errorf("%w: %w", ErrTrainingUnavailable, err)
	}
	return e.train(ctx, examples)
}

// TrainExamples is Train over an in-memory corpus.
func (e *Engine) TrainExamples(ctx context.Context, examples []types.TrainingExample) (Summary, error) {
	e.trainMu.Lock()
	defer e.trainMu.Unlock()
	return e.train(ctx, examples)
}

func (e *Engine) train(ctx context.Context, examples []types.TrainingExample) (Summary, error) {
	if len(examples) == 0 {
		log.Printf("[engine] corpus is empty, keeping current model")
		return e.Summary(), fmt.Errorf("%w: corpus is empty", ErrTrainingUnavailable)
	}

	start := time.Now()
	next, err := buildState(ctx, examples, e.opts.Forest)
	if err != nil {
		log.Printf("[engine] training failed, keeping current model: %v", err)
		return e.Summary(), fmt.Errorf("training failed: %w", err)
	}

	e.current.Store(next)
	log.Printf("[engine] model %s trained on %d examples (%d classes, %d trees) in %s",
		next.id, next.examples, next.target.Len(), next.trees, time.Since(start).Round(time.Millisecond))
	return summarize(next), nil
}

// Trained reports whether a model is being served.
func (e *Engine) Trained() bool {
	return e.current.Load() != nil
}

// Summary returns a description of the served model.
func (e *Engine) Summary() Summary {
	return summarize(e.current.Load())
}

func summarize(s *state) Summary {
	if s == nil {
		return Summary{}
	}
	at := s.trainedAt
	vocab := make(map[string]int, len(s.vocabs)+1)
	for col, v := range s.vocabs {
		vocab[col] = v.Len()
	}
	vocab[types.ColumnJobRole] = s.target.Len()
	return Summary{
		Trained:    true,
		ModelID:    s.id,
		TrainedAt:  &at,
		Examples:   s.examples,
		Trees:      s.trees,
		Classes:    s.target.Len(),
		Vocabulary: vocab,
	}
}

// Insights returns the corpus insights of the served generation, or nil when
// untrained. Snapshot methods accept a nil receiver.
func (e *Engine) Insights() *insights.Snapshot {
	s := e.current.Load()
	if s == nil {
		return nil
	}
	return s.insights
}

// CareerPaths returns the curated career paths for a specialization.
func (e *Engine) CareerPaths(specialization string) types.CareerPaths {
	return e.opts.Paths.For(specialization)
}
