package sites

import (
	"regexp"
	"strings"
)

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns free text into a URL-safe path segment: lower-case,
// every run of characters outside [a-z0-9] collapsed to a single "-",
// leading/trailing "-" stripped, truncated to maxLength (maxLength <= 0
// means unbounded). Total and idempotent; empty or all-symbol input
// yields "" and the caller must substitute its own fallback.
func Slugify(text string, maxLength int) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = nonSlug.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if maxLength > 0 && len(s) > maxLength {
		// Re-trim: the cut can land right after a dash.
		s = strings.Trim(s[:maxLength], "-")
	}
	return s
}
