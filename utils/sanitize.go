package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var sanitizer = bluemonday.UGCPolicy()

// Sanitize cleans HTML content to prevent XSS attacks.
func Sanitize(input string) string {
	return sanitizer.Sanitize(input)
}

// SanitizeLine trims and sanitizes single-line input such as titles.
func SanitizeLine(input string) string {
	return strings.TrimSpace(sanitizer.Sanitize(strings.TrimSpace(input)))
}
