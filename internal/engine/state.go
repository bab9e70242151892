package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sowmyalt/edu2job/internal/classifier"
	"github.com/sowmyalt/edu2job/internal/insights"
	"github.com/sowmyalt/edu2job/internal/parsing"
	"github.com/sowmyalt/edu2job/internal/reconcile"
	"github.com/sowmyalt/edu2job/internal/types"
)

// featureColumns is the categorical part of the feature vector, in order.
var featureColumns = []string{types.ColumnDegree, types.ColumnSpecialization, types.ColumnCollegeName}

// state is one trained generation: vocabularies, forest and insights built
// from the same corpus read. It is never mutated after construction.
type state struct {
	id        string
	trainedAt time.Time
	examples  int
	trees     int
	vocabs    map[string]*reconcile.Vocabulary
	target    *reconcile.Vocabulary
	forest    *classifier.Forest
	insights  *insights.Snapshot
}

func buildState(ctx context.Context, examples []types.TrainingExample, opts classifier.Options) (*state, error) {
	columns := map[string][]string{}
	targets := make([]string, len(examples))
	for i, ex := range examples {
		columns[types.ColumnDegree] = append(columns[types.ColumnDegree], ex.Degree)
		columns[types.ColumnSpecialization] = append(columns[types.ColumnSpecialization], ex.Specialization)
		columns[types.ColumnCollegeName] = append(columns[types.ColumnCollegeName], ex.CollegeName)
		targets[i] = ex.JobRole
	}

	vocabs := make(map[string]*reconcile.Vocabulary, len(featureColumns))
	for _, col := range featureColumns {
		vocabs[col] = reconcile.FitVocabulary(columns[col])
	}
	target := reconcile.FitVocabulary(targets)

	x := make([][]float64, len(examples))
	y := make([]int, len(examples))
	for i, ex := range examples {
		row := make([]float64, 0, len(featureColumns)+3)
		for _, col := range featureColumns {
			code, ok := vocabs[col].Code(strings.TrimSpace(columns[col][i]))
			if !ok {
				return nil, fmt.Errorf("row %d: %s label %q missing from vocabulary", i, col, columns[col][i])
			}
			row = append(row, float64(code))
		}
		row = append(row,
			parsing.NormalizeGPA(ex.CGPA),
			float64(ex.Certificates),
			float64(ex.GraduationYear),
		)
		x[i] = row

		code, ok := target.Code(strings.TrimSpace(ex.JobRole))
		if !ok {
			return nil, fmt.Errorf("row %d: job role %q missing from vocabulary", i, ex.JobRole)
		}
		y[i] = code
	}

	forest, err := classifier.Train(ctx, x, y, target.Len(), opts)
	if err != nil {
		return nil, err
	}

	return &state{
		id:        uuid.NewString(),
		trainedAt: time.Now().UTC(),
		examples:  len(examples),
		trees:     forest.NumTrees(),
		vocabs:    vocabs,
		target:    target,
		forest:    forest,
		insights:  insights.Build(examples),
	}, nil
}
