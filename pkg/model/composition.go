package model

import (
	"math"
	"sort"
)

// CompositionEntry is one slice of a pie/bar composition chart.
type CompositionEntry struct {
	Name       string  `json:"name"`
	Value      int     `json:"value"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
}

// Composition counts sequences by the label at the requested rank position
// and shapes the result for pie/bar charts: descending by count, percentage
// rounded to two decimals, palette colors assigned in order. Ties keep
// first-seen order so repeated requests over the same stored result agree.
// No sequences at all yields an empty list rather than an error.
func Composition(sequences []SequenceRecord, rankIdx int) []CompositionEntry {

	counts := make(map[string]int)
	order := make([]string, 0)

	for _, seq := range sequences {
		taxon := LabelAt(ParseLineage(seq.Taxonomy), rankIdx)
		if _, seen := counts[taxon]; !seen {
			order = append(order, taxon)
		}
		counts[taxon]++
	}

	total := 0
	for _, n := range counts {
		total += n
	}

	composition := make([]CompositionEntry, 0, len(order))
	if total == 0 {
		return composition
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	for i, taxon := range order {
		count := counts[taxon]
		composition = append(composition, CompositionEntry{
			Name:       taxon,
			Value:      count,
			Percentage: roundPercentage(count, total),
			Color:      paletteColor(i),
		})
	}

	return composition
}

func roundPercentage(count, total int) float64 {
	return math.Round(float64(count)/float64(total)*100*100) / 100
}
