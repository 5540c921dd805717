package storage

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Sanitize normalizes an arbitrary user-supplied filename into a safe object
// key fragment: decompose unicode, drop combining marks, collapse whitespace
// runs to a single underscore, drop everything outside [A-Za-z0-9_.-], and
// lowercase. Total and idempotent; may return an empty string.
func Sanitize(name string) string {
	var b strings.Builder
	pendingSpace := false
	for _, r := range norm.NFD.String(name) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		if unicode.IsSpace(r) {
			pendingSpace = true
			continue
		}
		if pendingSpace {
			b.WriteByte('_')
			pendingSpace = false
		}
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '.', r == '-':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(unicode.ToLower(r))
		}
	}
	// trailing whitespace still maps to an underscore
	if pendingSpace {
		b.WriteByte('_')
	}
	return b.String()
}
