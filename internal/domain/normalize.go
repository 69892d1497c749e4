package domain

import "strings"

// NormalizeSearchTerm lower-cases and trims a destination search term.
// History entries are stored and matched in this form.
func NormalizeSearchTerm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
