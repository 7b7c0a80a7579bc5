package seq

import "strings"

// NormalizeCommaSpacing rewrites text so every comma is followed by exactly
// one space and fields carry no surrounding whitespace.
// Every field is trimmed, including empty ones at either end, so ",1"
// becomes ", 1" and "a,b," becomes "a, b, ".
func NormalizeCommaSpacing(text string) string {
	parts := strings.Split(text, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return strings.Join(parts, ", ")
}
