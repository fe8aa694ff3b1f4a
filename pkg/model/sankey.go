package model

import "sort"

type SankeyNode struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type SankeyLink struct {
	Source int `json:"source"`
	Target int `json:"target"`
	Value  int `json:"value"`
}

type SankeyData struct {
	Nodes []SankeyNode `json:"nodes"`
	Links []SankeyLink `json:"links"`
}

// The flow window is fixed: a virtual "Start" column followed by the first
// four lineage levels, whatever rank names those happen to carry. This is a
// depth truncation, not a rank lookup.
const sankeyWindow = 5

// StartLabel heads every lineage in the flow diagram.
const StartLabel = "Start"

// BuildSankey accumulates directed edge counts between consecutive levels of
// the truncated flow window. Node IDs are the lexicographic rank of each
// distinct label across the whole node set, "Start" included, so rebuilding
// from the same sequences always yields the same IDs. Links come out sorted
// by (source, target) for the same reason.
func BuildSankey(sequences []SequenceRecord) *SankeyData {

	type edge struct {
		source string
		target string
	}

	flows := make(map[edge]int)
	nodeSet := map[string]bool{StartLabel: true}

	for _, seq := range sequences {
		parts := append([]string{StartLabel}, ParseLineage(seq.Taxonomy)...)
		levels := min(sankeyWindow, len(parts))

		for i := 0; i < levels-1; i++ {
			e := edge{source: parts[i], target: parts[i+1]}
			nodeSet[e.source] = true
			nodeSet[e.target] = true
			flows[e]++
		}
	}

	names := make([]string, 0, len(nodeSet))
	for name := range nodeSet {
		names = append(names, name)
	}
	sort.Strings(names)

	ids := make(map[string]int, len(names))
	nodes := make([]SankeyNode, len(names))
	for i, name := range names {
		ids[name] = i
		nodes[i] = SankeyNode{ID: i, Name: name}
	}

	links := make([]SankeyLink, 0, len(flows))
	for e, value := range flows {
		links = append(links, SankeyLink{
			Source: ids[e.source],
			Target: ids[e.target],
			Value:  value,
		})
	}
	sort.Slice(links, func(i, j int) bool {
		if links[i].Source != links[j].Source {
			return links[i].Source < links[j].Source
		}
		return links[i].Target < links[j].Target
	})

	return &SankeyData{Nodes: nodes, Links: links}
}
