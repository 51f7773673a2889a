package dataprocessing

import (
	"strings"
	"unicode"
)

// UncategorizedLabel groups rows whose category is blank or whose sale has no
// matching menu item.
const UncategorizedLabel = "Uncategorized"

// categoryAliases maps title-cased forms to their canonical vocabulary entry.
// Applied after the string pipeline, so "NON_VEG", "non-veg" and "Non_Veg"
// all land on "Non-veg".
var categoryAliases = map[string]string{
	"Non-Veg": "Non-veg",
}

// NormalizeCategory folds a free-text category into the controlled
// vocabulary: trim, underscores to hyphens, title-case, then alias lookup.
// Blank input yields UncategorizedLabel.
func NormalizeCategory(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "_", "-")
	s = titleCase(s)
	if canonical, ok := categoryAliases[s]; ok {
		return canonical
	}
	if s == "" {
		return UncategorizedLabel
	}
	return s
}

// titleCase upper-cases the first letter of every letter run and lower-cases
// the rest, so "NON-VEG" becomes "Non-Veg" and "veg" becomes "Veg".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		switch {
		case !unicode.IsLetter(r):
			b.WriteRune(r)
			prevLetter = false
		case prevLetter:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(unicode.ToUpper(r))
			prevLetter = true
		}
	}
	return b.String()
}
