package logic

import "strings"

// FilterOptions returns the options whose label contains every
// whitespace-separated term of query, case-insensitively, preserving the
// input order. An empty query keeps every option.
func FilterOptions(query string, options []string) []string {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return append([]string(nil), options...)
	}

	matched := make([]string, 0, len(options))
	for _, opt := range options {
		lower := strings.ToLower(opt)
		all := true
		for _, term := range terms {
			if !strings.Contains(lower, term) {
				all = false
				break
			}
		}
		if all {
			matched = append(matched, opt)
		}
	}
	return matched
}
