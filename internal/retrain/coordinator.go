// Package retrain serializes retrain triggers from any origin (HTTP, AMQP,
// CLI) and records the outcome of the most recent run.
package retrain

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sowmyalt/edu2job/internal/engine"
)

// Trainer is the part of the engine a Coordinator drives.
type Trainer interface {
	Train(ctx context.Context, src engine.Source) (engine.Summary, error)
}

// Run describes one retrain attempt.
type Run struct {
	ID         string         `json:"id"`
	Reason     string         `json:"reason"`
	StartedAt  time.Time      `json:"started_at"`
	FinishedAt time.Time      `json:"finished_at"`
	Summary    engine.Summary `json:"summary"`
	Error      string         `json:"error,omitempty"`
}

// OK reports whether the run swapped in a new model.
func (r Run) OK() bool {
	return r.Error == ""
}

// Coordinator runs at most one retrain at a time.
type Coordinator struct {
	trainer Trainer
	source  engine.Source

	mu     sync.Mutex
	lastMu sync.RWMutex
	last   *Run
}

// NewCoordinator creates a Coordinator that retrains trainer from source.
func NewCoordinator(trainer Trainer, source engine.Source) *Coordinator {
	return &Coordinator{trainer: trainer, source: source}
}

// Retrain blocks until any in-flight retrain finishes, then runs one.
// The returned error is the training error, if any; the Run is always filled.
func (c *Coordinator) Retrain(ctx context.Context, reason string) (Run, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	run := Run{ID: uuid.NewString(), Reason: reason, StartedAt: time.Now().UTC()}
	log.Printf("[retrain] run %s started (reason=%q)", run.ID, reason)

	sum, err := c.trainer.Train(ctx, c.source)
	run.FinishedAt = time.Now().UTC()
	run.Summary = sum
	if err != nil {
		run.Error = err.Error()
		log.Printf("[retrain] run %s failed after %s: %v", run.ID, run.FinishedAt.Sub(run.StartedAt).Round(time.Millisecond), err)
	} else {
		log.Printf("[retrain] run %s finished in %s, model %s", run.ID, run.FinishedAt.Sub(run.StartedAt).Round(time.Millisecond), sum.ModelID)
	}

	c.lastMu.Lock()
	c.last = &run
	c.lastMu.Unlock()
	return run, err
}

// Last returns the most recent run, if any.
func (c *Coordinator) Last() (Run, bool) {
	c.lastMu.RLock()
	defer c.lastMu.RUnlock()
	if c.last == nil {
		return Run{}, false
	}
	return *c.last, true
}
