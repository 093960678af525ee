package protogen

import "strings"

// DefaultMessageName derives a message name from a fully-qualified table
// name: the last dot-separated segment, so "catalog.schema.air_quality"
// yields "air_quality". The segment is used as-is; no identifier validation
// is performed.
func DefaultMessageName(table string) string {
	if idx := strings.LastIndex(table, "."); idx >= 0 {
		return table[idx+1:]
	}

	return table
}
