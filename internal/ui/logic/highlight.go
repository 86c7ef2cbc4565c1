package logic

import (
	"regexp"
	"strings"
)

// Span is one run of text, flagged as matching the current query or not.
// Offsets are byte positions into the option label.
type Span struct {
	Start   int
	End     int
	IsMatch bool
}

// SearchTerms splits a query on whitespace and escapes regex
// metacharacters in each term so user input can never change the pattern
// semantics.
func SearchTerms(query string) []string {
	fields := strings.Fields(query)
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		terms = append(terms, regexp.QuoteMeta(f))
	}
	return terms
}

// Match returns the matched/unmatched spans for text against the search
// terms: ordered left to right, non-overlapping, covering text exactly.
// With no terms the whole text is a single unmatched span.
func Match(terms []string, text string) []Span {
	if text == "" {
		return nil
	}
	if len(terms) == 0 {
		return []Span{{Start: 0, End: len(text)}}
	}

	re, err := regexp.Compile("(?i)(" + strings.Join(terms, "|") + ")")
	if err != nil {
		// Terms are QuoteMeta'd, so this only fires on a caller bypassing
		// SearchTerms; degrade to an unmatched span.
		return []Span{{Start: 0, End: len(text)}}
	}

	var spans []Span
	last := 0
	for _, loc := range re.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			spans = append(spans, Span{Start: last, End: loc[0]})
		}
		spans = append(spans, Span{Start: loc[0], End: loc[1], IsMatch: true})
		last = loc[1]
	}
	if last < len(text) {
		spans = append(spans, Span{Start: last, End: len(text)})
	}
	return spans
}
