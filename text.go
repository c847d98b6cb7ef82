package spy

import "strings"

// Normalize collapses every run of whitespace (including Unicode whitespace
// and newlines) into a single ASCII space and trims both ends.
// An empty result means the value is absent.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
