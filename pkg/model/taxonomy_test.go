package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLineage(t *testing.T) {

	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "full lineage",
			raw:  "Eukaryota;Alveolata;Dinoflagellata;Gymnodiniales",
			want: []string{"Eukaryota", "Alveolata", "Dinoflagellata", "Gymnodiniales"},
		},
		{
			name: "whitespace around segments",
			raw:  "A; B ;C",
			want: []string{"A", "B", "C"},
		},
		{
			name: "empty string classifies as Unknown",
			raw:  "",
			want: []string{"Unknown"},
		},
		{
			name: "single rank",
			raw:  "Bacteria",
			want: []string{"Bacteria"},
		},
		{
			name: "rank names are not validated",
			raw:  "not a rank; 123 ;!!",
			want: []string{"not a rank", "123", "!!"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLineage(tt.raw))
		})
	}
}

func TestLabelAt(t *testing.T) {

	labels := ParseLineage("Eukaryota;Alveolata")

	assert.Equal(t, "Eukaryota", LabelAt(labels, 0))
	assert.Equal(t, "Alveolata", LabelAt(labels, 1))

	// Short lineages substitute the sentinel past their depth
	assert.Equal(t, "Unknown", LabelAt(labels, 2))
	assert.Equal(t, "Unknown", LabelAt(labels, 6))
	assert.Equal(t, "Unknown", LabelAt(labels, -1))
}
