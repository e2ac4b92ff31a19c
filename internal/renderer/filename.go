package renderer

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// SanitizeFilename lowercases a recipient name and strips everything that is
// not a letter or digit. Idempotent: sanitizing twice equals sanitizing once.
func SanitizeFilename(name string) string {
	return nonAlphanumeric.ReplaceAllString(strings.ToLower(name), "")
}
