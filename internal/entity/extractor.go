// Package entity scans free-form visitor messages for mentions of known
// technologies, projects, and skill categories. Matching is deliberately
// simple: lower-case the message and test plain substring containment
// against ordered alias dictionaries. No tokenization is performed, so
// an alias embedded inside an unrelated word still matches, a known
// limitation kept for compatibility with the site's existing behavior.
package entity

import "strings"

// Entities holds at most one extracted value per dictionary.
type Entities struct {
	Technology string `json:"technology,omitempty"`
	Project    string `json:"project,omitempty"`
	Category   string `json:"category,omitempty"`
}

// Extract scans message against the three alias dictionaries and
// returns the first hit from each. A dictionary stops scanning at its
// first hit; it never searches for a longer or "better" match, so
// alias declaration order decides ambiguous inputs.
func Extract(message string) Entities {
	lower := strings.ToLower(message)

	var out Entities
	out.Technology = firstMatch(lower, technologyAliases)
	out.Project = firstMatch(lower, projectAliases)
	out.Category = firstMatch(lower, categoryAliases)
	return out
}

func firstMatch(lower string, dict []alias) string {
	for _, a := range dict {
		if strings.Contains(lower, a.key) {
			return a.canonical
		}
	}
	return ""
}
