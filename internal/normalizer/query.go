package normalizer

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MinQueryLen is the minimum trimmed query length that triggers a search.
const MinQueryLen = 3

// reStreetInCity captures queries of the form "<street> en <city>",
// e.g. "calle lisboa en leganes".
var reStreetInCity = regexp.MustCompile(`(?i)^(.+?)\s+en\s+(.+)$`)

var reSpaces = regexp.MustCompile(`\s+`)

// Query is a preprocessed address search input. When the "<street> en <city>"
// pattern is present, Street and City carry the two halves and HasCity is
// true; otherwise Street holds the whole trimmed text.
type Query struct {
	Raw     string
	Street  string
	City    string
	HasCity bool
}

// ParseQuery trims and splits a free-text address query.
func ParseQuery(raw string) Query {
	trimmed := strings.TrimSpace(reSpaces.ReplaceAllString(raw, " "))
	q := Query{Raw: trimmed, Street: trimmed}

	if m := reStreetInCity.FindStringSubmatch(trimmed); m != nil {
		q.Street = strings.TrimSpace(m[1])
		q.City = strings.TrimSpace(m[2])
		q.HasCity = true
	}
	return q
}

// TooShort reports whether the raw input is below the search threshold.
func TooShort(raw string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(raw)) < MinQueryLen
}
