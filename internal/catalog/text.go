package catalog

import (
	"strings"

	"golang.org/x/text/cases"
)

// FoldText returns the case-folded form of s used for case-insensitive matching.
// A Caser is stateful, so a fresh one is taken per call.
func FoldText(s string) string {
	return cases.Fold().String(s)
}

// ContainsText reports whether the already-folded query occurs in any field
func ContainsText(foldedQuery string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(FoldText(f), foldedQuery) {
			return true
		}
	}
	return false
}
