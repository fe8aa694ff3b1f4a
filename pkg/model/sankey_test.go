package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSankeyNodeIDsAreSortedLabelRanks(t *testing.T) {

	sankey := BuildSankey([]SequenceRecord{
		{Taxonomy: "Bacteria"},
		{Taxonomy: "Eukaryota"},
	})

	// Lexicographic over {"Bacteria", "Eukaryota", "Start"}.
	require.Len(t, sankey.Nodes, 3)
	assert.Equal(t, SankeyNode{ID: 0, Name: "Bacteria"}, sankey.Nodes[0])
	assert.Equal(t, SankeyNode{ID: 1, Name: "Eukaryota"}, sankey.Nodes[1])
	assert.Equal(t, SankeyNode{ID: 2, Name: "Start"}, sankey.Nodes[2])
}

func TestBuildSankeyDeterministic(t *testing.T) {

	first := BuildSankey(fiveSequences())
	second := BuildSankey(fiveSequences())

	assert.Equal(t, first, second)
}

func TestBuildSankeyEdgeCounts(t *testing.T) {

	sankey := BuildSankey([]SequenceRecord{
		{Taxonomy: "Eukaryota;Fungi;Ascomycota"},
		{Taxonomy: "Eukaryota;Fungi;Basidiomycota"},
	})

	byName := make(map[string]int)
	for _, node := range sankey.Nodes {
		byName[node.Name] = node.ID
	}

	find := func(source, target string) int {
		for _, link := range sankey.Links {
			if link.Source == byName[source] && link.Target == byName[target] {
				return link.Value
			}
		}
		return 0
	}

	assert.Equal(t, 2, find("Start", "Eukaryota"))
	assert.Equal(t, 2, find("Eukaryota", "Fungi"))
	assert.Equal(t, 1, find("Fungi", "Ascomycota"))
	assert.Equal(t, 1, find("Fungi", "Basidiomycota"))
}

func TestBuildSankeyTruncatesToFixedWindow(t *testing.T) {

	// Seven ranks, but the flow window stops after the fourth level.
	sankey := BuildSankey([]SequenceRecord{
		{Taxonomy: "D;P;C;O;F;G;S"},
	})

	names := make([]string, 0, len(sankey.Nodes))
	for _, node := range sankey.Nodes {
		names = append(names, node.Name)
	}

	assert.ElementsMatch(t, []string{"Start", "D", "P", "C", "O"}, names)
	assert.Len(t, sankey.Links, 4)
	assert.NotContains(t, names, "F")
}

func TestBuildSankeyEmptyInput(t *testing.T) {

	sankey := BuildSankey(nil)

	// "Start" is always present even with nothing flowing out of it.
	require.Len(t, sankey.Nodes, 1)
	assert.Equal(t, "Start", sankey.Nodes[0].Name)
	assert.Empty(t, sankey.Links)
}
