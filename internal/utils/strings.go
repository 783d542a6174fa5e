package utils

import (
	"strings"
	"unicode"
)

// TrimOrEmpty normalizes user input without turning nil into "nil".
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// TitleCaseName capitalizes the first letter of every space-separated token
// and lowercases the rest, e.g. "OLA  NORDMANN" -> "Ola Nordmann".
func TitleCaseName(s string) string {
	fields := strings.Fields(strings.ToLower(s))
	for i, f := range fields {
		r := []rune(f)
		r[0] = unicode.ToUpper(r[0])
		fields[i] = string(r)
	}
	return strings.Join(fields, " ")
}

// SafeFilenamePart replaces filesystem-hostile characters so a value can be
// embedded in a generated filename.
func SafeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	return replacer.Replace(s)
}
