// Package riasec implements the RIASEC trait-code primitives: code synthesis
// from raw trait scores and the similarity functions both matchers rank with.
package riasec

import "strings"

// Letters is the valid trait alphabet, in canonical order.
var Letters = []string{"R", "I", "A", "S", "E", "C"}

// MaxCodeLength is the longest code either matcher consumes.
const MaxCodeLength = 3

// Clean normalizes a raw code: whitespace stripped, truncated to three
// characters, upper-cased.
func Clean(code string) string {
	code = strings.ReplaceAll(code, " ", "")
	if len(code) > MaxCodeLength {
		code = code[:MaxCodeLength]
	}
	return strings.ToUpper(code)
}

// Validate checks a code against the alphabet and the configured length
// bounds. Validation is case-insensitive.
func Validate(code string, minLen, maxLen int) bool {
	if len(code) < minLen || len(code) > maxLen {
		return false
	}
	code = strings.ToUpper(code)
	for _, ch := range code {
		if !strings.ContainsRune("RIASEC", ch) {
			return false
		}
	}
	return true
}
