// Package naming derives valid Go identifiers from raw filesystem names.
package naming

import "strings"

// Style selects the casing convention for a derived identifier.
type Style int

const (
	// FieldStyle produces lowerCamelCase, used for file field names.
	FieldStyle Style = iota

	// TypeStyle produces UpperCamelCase, used for folder declarations.
	TypeStyle
)

// Sanitize converts an arbitrary filesystem name into a valid Go identifier.
// Every character outside [A-Za-z0-9] acts as a word separator; each word is
// capitalized with the rest lower-cased, except the very first word in
// FieldStyle whose first character is lower-cased. An identifier that would
// start with a digit or collide with a Go keyword is prefixed with "_", and
// a name consisting entirely of separators falls back to a fixed
// placeholder. The function is pure: the same (raw, style) pair always
// yields the same identifier.
func Sanitize(raw string, style Style) string {
	var b strings.Builder
	wordStart := false
	for _, r := range raw {
		if !isAlnum(r) {
			wordStart = true
			continue
		}
		switch {
		case b.Len() == 0:
			if style == FieldStyle {
				b.WriteRune(toLower(r))
			} else {
				b.WriteRune(toUpper(r))
			}
		case wordStart:
			b.WriteRune(toUpper(r))
		default:
			b.WriteRune(toLower(r))
		}
		wordStart = false
	}

	if b.Len() == 0 {
		if style == FieldStyle {
			return "unnamed"
		}
		return "Unnamed"
	}

	out := b.String()
	if out[0] >= '0' && out[0] <= '9' {
		out = "_" + out
	}
	if goKeywords[out] {
		// Only FieldStyle can produce these; keywords are all lower-case.
		out = "_" + out
	}
	return out
}

var goKeywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true,
	"continue": true, "default": true, "defer": true, "else": true,
	"fallthrough": true, "for": true, "func": true, "go": true,
	"goto": true, "if": true, "import": true, "interface": true,
	"map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true,
	"var": true,
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
