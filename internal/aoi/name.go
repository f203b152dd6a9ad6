package aoi

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	invalidNameChars = regexp.MustCompile(`[^\w\-_. ]`)
	nameWhitespace   = regexp.MustCompile(`\s+`)
)

// ResolveName picks the AOI name: a sanitized property value if the
// configured field yields one, else the configured default, else a short
// random identifier.
func ResolveName(props map[string]interface{}, cfg Config) string {
	name := cfg.Name
	if name == "" {
		name = uuid.NewString()[:6]
	}

	if cfg.Field == "" {
		return name
	}
	value, ok := props[cfg.Field].(string)
	if !ok {
		return name
	}
	if sanitized := SanitizeName(value); sanitized != "" {
		name = sanitized
	}
	return name
}

// SanitizeName strips non-ASCII bytes and collapses whitespace and invalid
// characters (anything outside word chars, hyphen, underscore, period,
// space) into single hyphens. Returns "" when nothing survives.
func SanitizeName(s string) string {
	s = strings.Map(func(r rune) rune {
		if r > 127 {
			return -1
		}
		return r
	}, s)

	s = invalidNameChars.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	return nameWhitespace.ReplaceAllString(s, "-")
}
