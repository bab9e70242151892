package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableIdent(t *testing.T) {
	tests := []struct {
		name    string
		table   string
		want    string
		wantErr bool
	}{
		{name: "default", table: "", want: `"training_examples"`},
		{name: "plain", table: "corpus", want: `"corpus"`},
		{name: "schema qualified", table: "ml.corpus", want: `"ml"."corpus"`},
		{name: "quotes escaped", table: `bad"name`, want: `"bad""name"`},
		{name: "empty part", table: "ml.", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ident, err := tableIdent(tt.table)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ident.Sanitize())
		})
	}
}

func TestTrainingColumns(t *testing.T) {
	assert.Len(t, TrainingColumns, 7)
	assert.Equal(t, "job_role", TrainingColumns[len(TrainingColumns)-1])
}
