package request

import "strings"

// ParseJobIDs splits a comma-joined job_ids query value into individual IDs,
// trimming whitespace and dropping empty segments.
func ParseJobIDs(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, part := range parts {
		id := strings.TrimSpace(part)
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
