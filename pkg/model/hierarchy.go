package model

// Hierarchy is the root of a sunburst/Krona tree. The root is always named
// "Life" and its children list is present even when empty.
type Hierarchy struct {
	Name     string           `json:"name"`
	Children []*HierarchyNode `json:"children"`
}

// HierarchyNode is one taxon in the tree. Leaves omit the children key
// entirely (nil, not an empty list) to distinguish "no finer classification"
// from "classified but no children observed yet".
type HierarchyNode struct {
	Name     string           `json:"name"`
	Value    int              `json:"value"`
	Children []*HierarchyNode `json:"children,omitempty"`

	byName map[string]*HierarchyNode
}

// BuildHierarchy folds every lineage into a single rooted tree. Each node a
// lineage passes through is incremented once, intermediate ranks included,
// so a node's count is the number of lineages terminating at or passing
// through it. Children keep first-seen order.
func BuildHierarchy(sequences []SequenceRecord) *Hierarchy {

	root := &HierarchyNode{}

	for _, seq := range sequences {
		parts := ParseLineage(seq.Taxonomy)
		current := root
		for i, part := range parts {
			child := current.child(part)
			child.Value++
			if i < len(parts)-1 {
				current = child
			}
		}
	}

	children := root.Children
	if children == nil {
		children = []*HierarchyNode{}
	}

	return &Hierarchy{
		Name:     "Life",
		Children: children,
	}
}

func (n *HierarchyNode) child(name string) *HierarchyNode {
	if n.byName == nil {
		n.byName = make(map[string]*HierarchyNode)
	}
	if existing, ok := n.byName[name]; ok {
		return existing
	}

	node := &HierarchyNode{Name: name}
	n.byName[name] = node
	n.Children = append(n.Children, node)
	return node
}
