package model

// UnknownLabel substitutes for any rank a lineage does not reach.
const UnknownLabel = "Unknown"

// Fixed palette for chart slices. Repeats when a sample carries more taxa
// than the palette holds.
var chartPalette = []string{
	"#22D3EE", "#10B981", "#F59E0B", "#EC4899", "#A78BFA",
	"#3B82F6", "#EF4444", "#8B5CF6", "#14B8A6", "#F97316",
	"#06B6D4", "#84CC16", "#F43F5E", "#6366F1", "#64748B",
}

func paletteColor(i int) string {
	return chartPalette[i%len(chartPalette)]
}
