package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixture matching a typical pipeline result: five distinct phyla under one
// domain.
func fiveSequences() []SequenceRecord {
	return []SequenceRecord{
		{Taxonomy: "Eukaryota; Alveolata; Dinoflagellata; Gymnodiniales", Accession: "SEQ_001", Confidence: 0.95},
		{Taxonomy: "Eukaryota; Chlorophyta; Chlorophyceae; Chlamydomonadales", Accession: "SEQ_002", Confidence: 0.89},
		{Taxonomy: "Eukaryota; Metazoa; Arthropoda; Copepoda", Accession: "SEQ_003", Confidence: 0.92},
		{Taxonomy: "Eukaryota; Rhodophyta; Florideophyceae; Ceramiales", Accession: "SEQ_004", Confidence: 0.88},
		{Taxonomy: "Eukaryota; Fungi; Ascomycota; Saccharomycetales", Accession: "SEQ_005", Confidence: 0.91},
	}
}

func TestCompositionFiveDistinctPhyla(t *testing.T) {

	composition := Composition(fiveSequences(), 1)

	require.Len(t, composition, 5)
	for _, entry := range composition {
		assert.Equal(t, 1, entry.Value)
		assert.Equal(t, 20.0, entry.Percentage)
		assert.NotEmpty(t, entry.Color)
	}
}

func TestCompositionOrdering(t *testing.T) {

	sequences := []SequenceRecord{
		{Taxonomy: "Eukaryota;Alveolata;X"},
		{Taxonomy: "Eukaryota;Chlorophyta;Y"},
		{Taxonomy: "Eukaryota;Alveolata;Z"},
	}

	composition := Composition(sequences, 1)

	require.Len(t, composition, 2)
	assert.Equal(t, "Alveolata", composition[0].Name)
	assert.Equal(t, 2, composition[0].Value)
	assert.Equal(t, 66.67, composition[0].Percentage)
	assert.Equal(t, "Chlorophyta", composition[1].Name)
	assert.Equal(t, 33.33, composition[1].Percentage)

	total := 0.0
	for _, entry := range composition {
		total += entry.Percentage
	}
	assert.InDelta(t, 100.0, total, 0.01)
}

func TestCompositionShortLineageCountsAsUnknown(t *testing.T) {

	sequences := []SequenceRecord{
		{Taxonomy: "Bacteria"},
		{Taxonomy: "Eukaryota;Fungi"},
	}

	composition := Composition(sequences, 1)

	require.Len(t, composition, 2)
	names := []string{composition[0].Name, composition[1].Name}
	assert.Contains(t, names, "Unknown")
	assert.Contains(t, names, "Fungi")
}

func TestCompositionEmptyInput(t *testing.T) {

	composition := Composition(nil, 1)

	assert.NotNil(t, composition)
	assert.Empty(t, composition)
}

func TestCompositionPaletteCycles(t *testing.T) {

	// 16 distinct domains force the 15-entry palette to wrap around.
	sequences := make([]SequenceRecord, 0, 16)
	for i := 0; i < 16; i++ {
		sequences = append(sequences, SequenceRecord{Taxonomy: string(rune('A'+i)) + ";P"})
	}

	composition := Composition(sequences, 0)

	require.Len(t, composition, 16)
	assert.Equal(t, composition[0].Color, composition[15].Color)
}
