package duallist

import "strings"

// Delimiter separates labels in both the ingestion input and the serialized
// output. Labels containing it do not round-trip.
const Delimiter = ","

// ParseSource splits a raw source string into labels, trimming each token
// and dropping the empty ones.
func ParseSource(raw string) []string {
	parts := strings.Split(raw, Delimiter)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Serialize renders the selected labels in order. An empty side yields "".
func Serialize(selected []string) string {
	return strings.Join(selected, Delimiter)
}
