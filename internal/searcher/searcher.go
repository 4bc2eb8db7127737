// Package searcher finds lines of in-memory contents that contain a query
package searcher

import (
	"iter"
	"strings"
)

// Func is the shape shared by Search and SearchCaseInsensitive.
type Func func(query, contents string) []string

// For returns the search variant matching the case mode.
func For(ignoreCase bool) Func {
	if ignoreCase {
		return SearchCaseInsensitive
	}
	return Search
}

// Search returns the lines of contents containing query, in source order.
// Returned lines are substrings of contents.
func Search(query, contents string) []string {
	result := []string{}
	for line := range lines(contents) {
		if strings.Contains(line, query) {
			result = append(result, line)
		}
	}
	return result
}

// SearchCaseInsensitive is Search with both sides lowercased for matching only;
// the lines are returned in their original case.
func SearchCaseInsensitive(query, contents string) []string {
	query = strings.ToLower(query)

	result := []string{}
	for line := range lines(contents) {
		if strings.Contains(strings.ToLower(line), query) {
			result = append(result, line)
		}
	}
	return result
}

// lines yields contents split on '\n' without the terminator.
// A '\r' is dropped only as part of a "\r\n" terminator.
func lines(contents string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.Lines(contents) {
			if l, ok := strings.CutSuffix(line, "\n"); ok {
				line = strings.TrimSuffix(l, "\r")
			}
			if !yield(line) {
				return
			}
		}
	}
}
