package analysis

import "strings"

// ExtractThemes returns the theme tags present in the text, in table order.
//
// A theme matches when any of its keywords occurs as a case-insensitive
// substring. There is no scoring or ranking — a theme is either present or
// absent, and zero matches is a valid result.
func ExtractThemes(text string) []string {
	lower := strings.ToLower(text)

	var found []string
	for _, t := range themeTable {
		for _, kw := range t.keywords {
			if strings.Contains(lower, kw) {
				found = append(found, t.tag)
				break
			}
		}
	}
	return found
}
