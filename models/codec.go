package models

import "strings"

// SplitLines decodes a newline-joined text column into an ordered list,
// dropping empty segments. Segments are kept verbatim (no trimming) so that
// stored values round-trip exactly.
func SplitLines(text string) []string {
	items := []string{}
	for _, part := range strings.Split(text, "\n") {
		if part != "" {
			items = append(items, part)
		}
	}
	return items
}

// JoinLines encodes an ordered list as newline-joined text. An empty list
// yields an empty string, not a NULL.
func JoinLines(items []string) string {
	return strings.Join(items, "\n")
}

// ParseLines converts a raw multi-line form field into an ordered list:
// split on newline, trim each segment, drop empty segments, preserve order.
func ParseLines(raw string) []string {
	items := []string{}
	for _, part := range strings.Split(raw, "\n") {
		part = strings.TrimSpace(part)
		if part != "" {
			items = append(items, part)
		}
	}
	return items
}
