package service

import (
	"regexp"
	"strconv"
	"strings"
)

// FilePart is an in-memory file received from a multipart form.
type FilePart struct {
	Filename    string
	ContentType string
	Data        []byte
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// normalizeCategory lowercases a category and replaces whitespace runs with
// hyphens, e.g. "Heavy Equipment" -> "heavy-equipment".
func normalizeCategory(category string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(category)), "-")
}

// parseNullableFloat parses a numeric form value. Absent or unparseable text
// becomes nil so the column is stored as NULL, never as zero.
func parseNullableFloat(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// parseCheckbox interprets the form encoding of a boolean toggle.
func parseCheckbox(raw string) bool {
	return raw == "true"
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
