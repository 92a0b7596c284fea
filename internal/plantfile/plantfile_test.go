package plantfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecomonitor/internal/carbon"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []carbon.Collection
		wantErr error
		errText string
	}{
		{
			name: "collections",
			input: `
collections:
  - id: office
    plants:
      - id: p1
        name: Rubber Plant
        type: tree
        height: 1.2
        width: 0.8
        age: 4
        species: Ficus elastica
  - id: empty
    plants: []
`,
			want: []carbon.Collection{
				{ID: "office", Plants: []carbon.Plant{{
					ID: "p1", Name: "Rubber Plant", Type: carbon.Tree,
					Height: 1.2, Width: 0.8, Age: 4, Species: "Ficus elastica",
				}}},
				{ID: "empty", Plants: []carbon.Plant{}},
			},
		},
		{
			name: "top level plants",
			input: `
plants:
  - {id: p1, type: herb, height: 0.5, width: 0.5, age: 0}
`,
			want: []carbon.Collection{
				{ID: DefaultCollectionID, Plants: []carbon.Plant{{ID: "p1", Type: carbon.Herb, Height: 0.5, Width: 0.5}}},
			},
		},
		{
			name:    "missing age",
			input:   "plants:\n  - {id: p1, height: 1, width: 1}\n",
			wantErr: carbon.ErrMissingField,
			errText: `plant "p1": invalid age`,
		},
		{
			name:    "zero height",
			input:   "plants:\n  - {id: p1, height: 0, width: 1, age: 1}\n",
			wantErr: carbon.ErrNotPositive,
		},
		{
			name:    "unknown key",
			input:   "plants:\n  - {id: p1, height: 1, width: 1, age: 1, colour: green}\n",
			errText: "colour",
		},
		{
			name:    "both layouts",
			input:   "plants: [{id: a, height: 1, width: 1, age: 1}]\ncollections: [{id: b, plants: []}]\n",
			errText: "not both",
		},
		{
			name:    "empty file",
			input:   "",
			errText: "empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input))
			if tt.wantErr != nil || tt.errText != "" {
				require.Error(t, err)
				if tt.wantErr != nil {
					require.ErrorIs(t, err, tt.wantErr)
				}
				assert.Contains(t, err.Error(), tt.errText)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plants.yaml")
	require.NoError(t, os.WriteFile(path, []byte("plants:\n  - {id: p1, type: fern, height: 0.6, width: 0.8, age: 2}\n"), 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].Plants[0].ID)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
