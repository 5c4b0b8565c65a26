package validation

import (
	"regexp"
	"strings"
)

// EmailPattern accepts local@domain.tld shapes; anything stricter
// rejected real submissions in practice.
var EmailPattern = `^[^\s@]+@[^\s@]+\.[^\s@]+$`

// CompiledPatterns caches compiled regex patterns.
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// IsValidEmail reports whether value matches the email pattern.
func IsValidEmail(value string) bool {
	return CompiledPatterns.Email.MatchString(value)
}

// Field pairs a required field's declared name with its submitted value.
type Field struct {
	Name  string
	Value string
}

// FirstMissing returns the name of the first required field (in
// declaration order) whose value is empty after trimming, or "" when
// all are present. Only one missing field is ever reported.
func FirstMissing(fields []Field) string {
	for _, f := range fields {
		if strings.TrimSpace(f.Value) == "" {
			return f.Name
		}
	}
	return ""
}
