package model

import "strings"

// ParseLineage splits a raw semicolon-delimited lineage string into its
// ordered rank labels, trimming whitespace around each. An empty string
// classifies as a single "Unknown" label. Rank names are not validated;
// whatever the pipeline emitted is kept verbatim.
func ParseLineage(raw string) []string {
	if raw == "" {
		return []string{UnknownLabel}
	}

	parts := strings.Split(raw, ";")
	labels := make([]string, len(parts))
	for i, part := range parts {
		labels[i] = strings.TrimSpace(part)
	}
	return labels
}

// LabelAt returns the label at the given rank position, or "Unknown" when
// the lineage stops before reaching it. Missing trailing ranks are absent,
// never padded, so every consumer goes through this.
func LabelAt(labels []string, idx int) string {
	if idx >= 0 && idx < len(labels) {
		return labels[idx]
	}
	return UnknownLabel
}
