package search

import "strings"

// composeQuery builds the upstream keyword string. A free-text keyword takes
// priority, with cuisine filters appended as alternation terms; cuisines
// alone are joined as alternation; with neither, a generic "restaurant"
// term keeps the upstream search scoped.
func composeQuery(keyword string, cuisines []string) string {
	keyword = strings.TrimSpace(keyword)

	terms := make([]string, 0, len(cuisines))
	for _, c := range cuisines {
		if c = strings.TrimSpace(c); c != "" {
			terms = append(terms, strings.ToLower(c))
		}
	}
	alternation := strings.Join(terms, "|")

	switch {
	case keyword != "" && alternation != "":
		return keyword + " " + alternation
	case keyword != "":
		return keyword
	case alternation != "":
		return alternation
	default:
		return "restaurant"
	}
}
