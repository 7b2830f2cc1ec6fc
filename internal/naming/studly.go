// Package naming converts attribute keys into the exported Go identifiers
// used by override methods.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// OverridePrefix is the method name prefix of override methods.
const OverridePrefix = "Override"

// Studly converts a snake, kebab, space or camel cased key into StudlyCase.
// Examples:
//   - "first_name" -> "FirstName"
//   - "is-active" -> "IsActive"
//   - "createdAt" -> "CreatedAt"
//   - "userID" -> "UserID"
func Studly(s string) string {
	tokens := Tokenize(s)

	var result strings.Builder

	result.Grow(len(s))

	for _, token := range tokens {
		r, size := utf8.DecodeRuneInString(token)
		result.WriteRune(unicode.ToUpper(r))
		result.WriteString(token[size:])
	}

	return result.String()
}

// OverrideName returns the override method name for key.
func OverrideName(key string) string {
	return OverridePrefix + Studly(key)
}

// KeyOf extracts the studly key from an override method name.
// It returns false when name does not follow the override convention.
func KeyOf(name string) (string, bool) {
	key, ok := strings.CutPrefix(name, OverridePrefix)
	if !ok || key == "" {
		return "", false
	}

	r, _ := utf8.DecodeRuneInString(key)
	if !unicode.IsUpper(r) {
		return "", false
	}

	return key, true
}

// Tokenize splits an identifier into words.
// Examples:
//   - "OrderID" -> ["Order", "ID"]
//   - "customer_name" -> ["customer", "name"]
//   - "XMLParser" -> ["XML", "Parser"]
func Tokenize(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i := range runes {
		r := runes[i]

		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && shouldStartNewToken(runes, i) && current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// shouldStartNewToken reports whether a new word starts at position i.
func shouldStartNewToken(runes []rune, i int) bool {
	r := runes[i]
	prev := runes[i-1]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(prev)

	// "orderID" splits before 'I'
	if isUpper && !isPrevUpper && !isSeparator(prev) {
		return true
	}

	// "XMLParser" splits before 'P'
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return isUpper && isPrevUpper && hasNextLower
}
