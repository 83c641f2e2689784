package models

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeTerm canonicalizes a search query before counting: trimmed,
// inner whitespace collapsed, title-cased so "bitcoin" and "Bitcoin"
// share one counter.
func NormalizeTerm(term string) string {
	fields := strings.Fields(term)
	if len(fields) == 0 {
		return ""
	}
	// cases.Caser carries state; one per call.
	return cases.Title(language.English).String(strings.Join(fields, " "))
}
