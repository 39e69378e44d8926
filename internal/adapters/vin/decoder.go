// Package vin splits fixed-width VIN codes per the field schema and resolves
// raw field codes to descriptions via the static option tables. All functions
// operate on immutable data and are safe for concurrent use.
package vin

import (
	"strings"

	"github.com/csg33k/vin-decoder/internal/adapters/vin/spec"
)

// Decode splits code into per-field substrings in schema order. It never
// fails: a code shorter than the schema total yields empty substrings past the
// point of exhaustion, and characters beyond the total are ignored. Callers
// are responsible for validating the overall length against spec.TotalLen()
// before treating the result as a complete VIN.
func Decode(code string) map[string]string {
	out := make(map[string]string, len(spec.Fields()))
	pos := 0
	for _, f := range spec.Fields() {
		end := pos + f.Width
		out[f.Key] = substr(code, pos, end)
		pos = end
	}
	return out
}

// Complete reassembles the complete VIN from a field-value map in schema
// order. Missing fields contribute nothing. For a map produced by Decode from
// a full-length code this round-trips the original input exactly.
func Complete(values map[string]string) string {
	var b strings.Builder
	for _, f := range spec.Fields() {
		b.WriteString(values[f.Key])
	}
	return b.String()
}

// Normalize prepares user VIN input for decoding: surrounding whitespace and
// interior spaces are removed and the result is uppercased.
func Normalize(input string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(input), " ", ""))
}

// substr is a bounds-safe s[start:end].
func substr(s string, start, end int) string {
	if start >= len(s) {
		return ""
	}
	if end > len(s) {
		end = len(s)
	}
	return s[start:end]
}
