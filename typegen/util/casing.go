package util

import (
	"strings"
	"unicode"
)

// ToSnakeCase converts PascalCase or camelCase to snake_case.
// Acronyms stay together: "HTTPSConnection" -> "https_connection"
func ToSnakeCase(s string) string {
	var sb strings.Builder
	runes := []rune(s)

	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			// Inside an acronym only the last capital before a lowercase rune starts a word
			prevUpper := unicode.IsUpper(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if (!prevUpper || nextLower) && runes[i-1] != '_' {
				sb.WriteRune('_')
			}
		}
		sb.WriteRune(r)
	}

	return strings.ToLower(sb.String())
}

// LowerFirst lowercases the first rune only: "FirstName" -> "firstName"
func LowerFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// UpperFirst uppercases the first rune only
func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
