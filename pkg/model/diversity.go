package model

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ErrDegenerate flags diversity input the math cannot work with: fewer than
// two samples, no classified sequences, or too few dimensions for a 2-D
// ordination.
var ErrDegenerate = errors.New("degenerate diversity input")

// DiversityData is the beta-diversity report across samples: pairwise
// Bray-Curtis dissimilarity (and its 1-x similarity), a 2-D
// principal-component ordination, and the variance fraction each retained
// component explains.
type DiversityData struct {
	Samples             []string    `json:"samples"`
	DissimilarityMatrix [][]float64 `json:"dissimilarity_matrix"`
	SimilarityMatrix    [][]float64 `json:"similarity_matrix"`
	PCoA                [][]float64 `json:"pcoa"`
	ExplainedVariance   []float64   `json:"explained_variance"`
}

// CalculateBetaDiversity builds a samples-by-taxa abundance matrix at
// species granularity (the full lineage string is the taxon key, no rank
// truncation) and derives the dissimilarity matrices plus the ordination.
func CalculateBetaDiversity(samples []Sample) (*DiversityData, error) {

	if len(samples) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 samples, got %d", ErrDegenerate, len(samples))
	}

	names := make([]string, len(samples))
	perSample := make([]map[string]int, len(samples))
	taxaSet := make(map[string]bool)

	for i, sample := range samples {
		counts := make(map[string]int)
		for _, seq := range sample.Sequences {
			taxonomy := seq.Taxonomy
			if taxonomy == "" {
				taxonomy = UnknownLabel
			}
			counts[taxonomy]++
			taxaSet[taxonomy] = true
		}
		names[i] = sample.Name
		perSample[i] = counts
	}

	taxa := make([]string, 0, len(taxaSet))
	for taxon := range taxaSet {
		taxa = append(taxa, taxon)
	}
	sort.Strings(taxa)

	if len(taxa) == 0 {
		return nil, fmt.Errorf("%w: no classified sequences in any sample", ErrDegenerate)
	}

	n := len(samples)
	abundance := mat.NewDense(n, len(taxa), nil)
	total := 0
	for i, counts := range perSample {
		for j, taxon := range taxa {
			abundance.Set(i, j, float64(counts[taxon]))
			total += counts[taxon]
		}
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: abundance matrix is all zero", ErrDegenerate)
	}

	dissimilarity := make([][]float64, n)
	similarity := make([][]float64, n)
	for i := 0; i < n; i++ {
		dissimilarity[i] = make([]float64, n)
		similarity[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			var d float64
			if i != j {
				d = brayCurtis(abundance.RawRowView(i), abundance.RawRowView(j))
			}
			dissimilarity[i][j] = d
			similarity[i][j] = 1 - d
		}
	}

	pcoa, explained, err := ordinate(abundance)
	if err != nil {
		return nil, err
	}

	return &DiversityData{
		Samples:             names,
		DissimilarityMatrix: dissimilarity,
		SimilarityMatrix:    similarity,
		PCoA:                pcoa,
		ExplainedVariance:   explained,
	}, nil
}

// brayCurtis is sum(|a-b|) / sum(a+b) over all taxa. A pair with nothing in
// either sample has no meaningful distance and reports 0.
func brayCurtis(a, b []float64) float64 {
	var num, denom float64
	for k := range a {
		num += math.Abs(a[k] - b[k])
		denom += a[k] + b[k]
	}
	if denom == 0 {
		return 0
	}
	return num / denom
}

// ordinate projects the abundance matrix onto its first two principal
// components, a linear stand-in for PCoA, and reports the variance fraction
// of each retained component.
func ordinate(abundance *mat.Dense) ([][]float64, []float64, error) {

	n, d := abundance.Dims()

	var pc stat.PC
	if ok := pc.PrincipalComponents(abundance, nil); !ok {
		return nil, nil, fmt.Errorf("%w: principal component factorization failed", ErrDegenerate)
	}

	vars := pc.VarsTo(nil)
	if len(vars) < 2 {
		return nil, nil, fmt.Errorf("%w: fewer than two principal components available", ErrDegenerate)
	}

	var vecs mat.Dense
	pc.VectorsTo(&vecs)

	// Center the data before projecting; the component vectors come from the
	// centered factorization.
	centered := mat.NewDense(n, d, nil)
	for j := 0; j < d; j++ {
		col := mat.Col(nil, j, abundance)
		mean := stat.Mean(col, nil)
		for i := 0; i < n; i++ {
			centered.Set(i, j, abundance.At(i, j)-mean)
		}
	}

	var projected mat.Dense
	projected.Mul(centered, vecs.Slice(0, d, 0, 2))

	coords := make([][]float64, n)
	for i := 0; i < n; i++ {
		coords[i] = []float64{projected.At(i, 0), projected.At(i, 1)}
	}

	var varSum float64
	for _, v := range vars {
		varSum += v
	}
	explained := []float64{0, 0}
	if varSum > 0 {
		explained[0] = vars[0] / varSum
		explained[1] = vars[1] / varSum
	}

	return coords, explained, nil
}
