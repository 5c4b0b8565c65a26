// Package slug derives URL identifiers from human-readable names.
// Derivation is pure and deterministic so that uniqueness checks
// against stored slugs are meaningful.
package slug

import "strings"

// Make lowercases the input, collapses every run of non-alphanumeric
// characters into a single hyphen, and trims leading/trailing hyphens.
// Make is idempotent: Make(Make(s)) == Make(s).
func Make(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	lastHyphen := true // swallow leading separators
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimRight(b.String(), "-")
}

// ForJob derives a job posting slug from its title and company.
func ForJob(title, company string) string {
	return Make(title + " " + company)
}
