package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Name folds case and collapses internal whitespace so
// "LeBron  James" and "lebron james" hit the same roster entry.
func Name(s string) string {
	lowered := cases.Lower(language.English).String(s)
	return strings.Join(strings.Fields(lowered), " ")
}

// TeamCode upper-cases a team abbreviation.
func TeamCode(s string) string {
	return cases.Upper(language.English).String(strings.TrimSpace(s))
}
