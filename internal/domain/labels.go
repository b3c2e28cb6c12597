package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeLabel case-folds and trims a tag or cuisine so comparisons are
// case-insensitive across scripts.
func NormalizeLabel(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// NormalizeLabels folds every entry, drops blanks and removes duplicates while
// keeping first-seen order.
func NormalizeLabels(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, raw := range in {
		v := NormalizeLabel(raw)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// DisplayCategory renders an ingredient category in title case.
func DisplayCategory(s string) string {
	return cases.Title(language.English).String(strings.TrimSpace(s))
}
