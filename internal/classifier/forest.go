// Package classifier implements a bagged ensemble of CART decision trees
// (a random forest) over dense float feature vectors.
package classifier

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

// Default hyperparameters.
const (
	DefaultTrees = 100
	DefaultSeed  = 42
)

// ErrNotTrained is returned by inference on a nil or empty forest.
var ErrNotTrained = errors.New("classifier: model not trained")

// Options controls forest construction.
type Options struct {
	Trees int
	Seed  int64
	// MaxFeatures is the number of features considered per split;
	// 0 means floor(sqrt(nFeatures)).
	MaxFeatures int
	// MinSamplesSplit is the smallest node that may be split; 0 means 2.
	MinSamplesSplit int
	// Workers bounds parallel tree construction; 0 means GOMAXPROCS.
	Workers int
}

func (o Options) withDefaults(nFeatures int) Options {
	if o.Trees <= 0 {
		o.Trees = DefaultTrees
	}
	if o.MaxFeatures <= 0 || o.MaxFeatures > nFeatures {
		o.MaxFeatures = int(math.Sqrt(float64(nFeatures)))
		if o.MaxFeatures < 1 {
			o.MaxFeatures = 1
		}
	}
	if o.MinSamplesSplit < 2 {
		o.MinSamplesSplit = 2
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	return o
}

// Forest is a trained, immutable random forest. It is safe for concurrent use.
type Forest struct {
	trees     []*tree
	nClasses  int
	nFeatures int
}

// Ranked is one class with its predicted probability.
type Ranked struct {
	Class       int
	Probability float64
}

// Train fits a forest on rows x with class labels y in [0, nClasses).
// Training is deterministic for a given Options.Seed regardless of Workers.
func Train(ctx context.Context, x [][]float64, y []int, nClasses int, opts Options) (*Forest, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("classifier: no training rows")
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("classifier: %d rows but %d labels", len(x), len(y))
	}
	if nClasses <= 0 {
		return nil, fmt.Errorf("classifier: class count must be positive, got %d", nClasses)
	}
	nFeatures := len(x[0])
	if nFeatures == 0 {
		return nil, fmt.Errorf("classifier: rows have no features")
	}
	for i, row := range x {
		if len(row) != nFeatures {
			return nil, fmt.Errorf("classifier: row %d has %d features, want %d", i, len(row), nFeatures)
		}
		if y[i] < 0 || y[i] >= nClasses {
			return nil, fmt.Errorf("classifier: row %d label %d out of range [0, %d)", i, y[i], nClasses)
		}
	}

	opts = opts.withDefaults(nFeatures)
	trees := make([]*tree, opts.Trees)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i := range trees {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rng := rand.New(rand.NewSource(opts.Seed + int64(i)))
			b := &treeBuilder{
				x:           x,
				y:           y,
				nClasses:    nClasses,
				nFeatures:   nFeatures,
				maxFeatures: opts.MaxFeatures,
				minSplit:    opts.MinSamplesSplit,
				rng:         rng,
			}
			trees[i] = b.build(bootstrap(rng, len(x)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("classifier: training interrupted: %w", err)
	}

	return &Forest{trees: trees, nClasses: nClasses, nFeatures: nFeatures}, nil
}

func bootstrap(rng *rand.Rand, n int) []int {
	samples := make([]int, n)
	for i := range samples {
		samples[i] = rng.Intn(n)
	}
	return samples
}

// NumClasses returns the number of target classes.
func (f *Forest) NumClasses() int { return f.nClasses }

// NumTrees returns the ensemble size.
func (f *Forest) NumTrees() int { return len(f.trees) }

// PredictProba returns the mean of the per-tree leaf distributions for x.
func (f *Forest) PredictProba(x []float64) ([]float64, error) {
	if f == nil || len(f.trees) == 0 {
		return nil, ErrNotTrained
	}
	if len(x) != f.nFeatures {
		return nil, fmt.Errorf("classifier: got %d features, want %d", len(x), f.nFeatures)
	}

	proba := make([]float64, f.nClasses)
	for _, t := range f.trees {
		for c, p := range t.distribution(x) {
			proba[c] += p
		}
	}
	n := float64(len(f.trees))
	for c := range proba {
		proba[c] /= n
	}
	return proba, nil
}

// Rank returns the k most probable classes in descending probability.
// Equal probabilities keep class order.
func (f *Forest) Rank(x []float64, k int) ([]Ranked, error) {
	proba, err := f.PredictProba(x)
	if err != nil {
		return nil, err
	}

	ranked := make([]Ranked, len(proba))
	for c, p := range proba {
		ranked[c] = Ranked{Class: c, Probability: p}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Probability > ranked[j].Probability
	})

	if k > 0 && k < len(ranked) {
		ranked = ranked[:k]
	}
	return ranked, nil
}
