package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func diversitySamples() []Sample {
	return []Sample{
		{
			Name: "coastal.fasta",
			Sequences: []SequenceRecord{
				{Taxonomy: "Eukaryota;Alveolata;Dinoflagellata;Gymnodiniales"},
				{Taxonomy: "Eukaryota;Alveolata;Dinoflagellata;Gymnodiniales"},
				{Taxonomy: "Eukaryota;Fungi;Ascomycota;Saccharomycetales"},
			},
		},
		{
			Name: "abyssal.fasta",
			Sequences: []SequenceRecord{
				{Taxonomy: "Eukaryota;Fungi;Ascomycota;Saccharomycetales"},
				{Taxonomy: "Eukaryota;Metazoa;Arthropoda;Copepoda"},
			},
		},
		{
			Name: "vent.fasta",
			Sequences: []SequenceRecord{
				{Taxonomy: "Eukaryota;Metazoa;Arthropoda;Copepoda"},
			},
		},
	}
}

func TestCalculateBetaDiversityMatrixProperties(t *testing.T) {

	diversity, err := CalculateBetaDiversity(diversitySamples())
	require.NoError(t, err)

	n := len(diversity.Samples)
	require.Equal(t, 3, n)

	for i := 0; i < n; i++ {
		assert.Zero(t, diversity.DissimilarityMatrix[i][i])
		assert.Equal(t, 1.0, diversity.SimilarityMatrix[i][i])
		for j := 0; j < n; j++ {
			d := diversity.DissimilarityMatrix[i][j]
			assert.Equal(t, d, diversity.DissimilarityMatrix[j][i], "symmetry at %d,%d", i, j)
			assert.GreaterOrEqual(t, d, 0.0)
			assert.LessOrEqual(t, d, 1.0)
			assert.InDelta(t, 1-d, diversity.SimilarityMatrix[i][j], 1e-12)
		}
	}
}

func TestCalculateBetaDiversityKnownDistance(t *testing.T) {

	// coastal = {Gym:2, Sac:1}, abyssal = {Sac:1, Cop:1}
	// d = (|2-0| + |1-1| + |0-1|) / (2+2+1) = 3/5
	diversity, err := CalculateBetaDiversity(diversitySamples()[:2])
	require.NoError(t, err)

	assert.InDelta(t, 0.6, diversity.DissimilarityMatrix[0][1], 1e-12)
	assert.InDelta(t, 0.4, diversity.SimilarityMatrix[0][1], 1e-12)
}

func TestCalculateBetaDiversityDisjointSamplesAreMaximallyDistant(t *testing.T) {

	samples := []Sample{
		{Name: "a", Sequences: []SequenceRecord{{Taxonomy: "Eukaryota;Fungi"}}},
		{Name: "b", Sequences: []SequenceRecord{{Taxonomy: "Bacteria;Firmicutes"}}},
	}

	diversity, err := CalculateBetaDiversity(samples)
	require.NoError(t, err)

	assert.Equal(t, 1.0, diversity.DissimilarityMatrix[0][1])
}

func TestCalculateBetaDiversityOrdinationShape(t *testing.T) {

	diversity, err := CalculateBetaDiversity(diversitySamples())
	require.NoError(t, err)

	require.Len(t, diversity.PCoA, 3)
	for _, point := range diversity.PCoA {
		assert.Len(t, point, 2)
	}

	require.Len(t, diversity.ExplainedVariance, 2)
	assert.GreaterOrEqual(t, diversity.ExplainedVariance[0], diversity.ExplainedVariance[1])
	assert.LessOrEqual(t, diversity.ExplainedVariance[0]+diversity.ExplainedVariance[1], 1.0+1e-12)
}

func TestCalculateBetaDiversityDegenerateInput(t *testing.T) {

	_, err := CalculateBetaDiversity(nil)
	assert.ErrorIs(t, err, ErrDegenerate)

	_, err = CalculateBetaDiversity(diversitySamples()[:1])
	assert.ErrorIs(t, err, ErrDegenerate)

	_, err = CalculateBetaDiversity([]Sample{{Name: "a"}, {Name: "b"}})
	assert.ErrorIs(t, err, ErrDegenerate)
}
