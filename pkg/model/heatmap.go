package model

import "sort"

// HeatmapData is a samples-by-taxa abundance matrix for multi-sample
// comparison. Taxa are sorted; samples keep request order.
type HeatmapData struct {
	Samples []string `json:"samples"`
	Taxa    []string `json:"taxa"`
	Matrix  [][]int  `json:"matrix"`
}

// BuildHeatmap counts each sample's sequences at the requested rank position
// and lays the counts out as a matrix, one row per sample, one column per
// distinct taxon. Zero samples yields empty sets rather than an error.
func BuildHeatmap(samples []Sample, rankIdx int) *HeatmapData {

	sampleNames := make([]string, 0, len(samples))
	perSample := make([]map[string]int, 0, len(samples))
	taxaSet := make(map[string]bool)

	for _, sample := range samples {
		counts := make(map[string]int)
		for _, seq := range sample.Sequences {
			taxon := LabelAt(ParseLineage(seq.Taxonomy), rankIdx)
			counts[taxon]++
			taxaSet[taxon] = true
		}
		sampleNames = append(sampleNames, sample.Name)
		perSample = append(perSample, counts)
	}

	taxa := make([]string, 0, len(taxaSet))
	for taxon := range taxaSet {
		taxa = append(taxa, taxon)
	}
	sort.Strings(taxa)

	matrix := make([][]int, len(perSample))
	for i, counts := range perSample {
		row := make([]int, len(taxa))
		for j, taxon := range taxa {
			row[j] = counts[taxon]
		}
		matrix[i] = row
	}

	return &HeatmapData{
		Samples: sampleNames,
		Taxa:    taxa,
		Matrix:  matrix,
	}
}
