package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Title converts a slug such as "white-tiger" into "White Tiger".
func Title(slug string) string {
	slug = strings.TrimSpace(strings.NewReplacer("-", " ", "_", " ").Replace(slug))
	if slug == "" {
		return ""
	}
	return cases.Title(language.Und).String(strings.Join(strings.Fields(slug), " "))
}
