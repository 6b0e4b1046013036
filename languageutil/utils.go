package languageutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Title upper-cases the first letter of every word. A caser is built per call
// since casers keep state and must not be shared across goroutines.
func Title(s string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(s, "_", " "))
}

func Lower(s string) string {
	return cases.Lower(language.English).String(s)
}
