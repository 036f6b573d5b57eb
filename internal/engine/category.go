package engine

import "strings"

// Category is a browse section. Keyword narrows a user query; Feed is the
// standalone query used when the section is opened without one.
type Category struct {
	Name    string
	Keyword string
	Feed    string
}

// Categories in display order; the first one is the default feed.
var Categories = []Category{
	{Name: "home", Keyword: "", Feed: `(vlog|gaming|tech|challenge|commentary|analysis) -vevo -lyrics -"official music video"`},
	{Name: "trending", Keyword: "trending", Feed: "trending videos today"},
	{Name: "gaming", Keyword: "gaming", Feed: "gaming highlights gameplay"},
	{Name: "tech", Keyword: "tech", Feed: "tech review unboxing"},
	{Name: "music", Keyword: "music", Feed: "official music video"},
	{Name: "sensitive", Keyword: "", Feed: "creepy unsolved mysteries deep web"},
}

// LookupCategory finds a category by name, ignoring case.
func LookupCategory(name string) (Category, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range Categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// ApplyCategory narrows query with the hint's keyword. Unknown hints are ignored.
// An empty query with a known hint becomes that category's feed query.
func ApplyCategory(query, hint string) string {
	c, ok := LookupCategory(hint)
	if !ok {
		return query
	}
	if query == "" {
		return c.Feed
	}
	if c.Keyword == "" || strings.Contains(strings.ToLower(query), c.Keyword) {
		return query
	}
	return query + " " + c.Keyword
}
