package diag

import (
	"sort"
	"strings"
)

const (
	// maxSuggestDistance is the maximum edit distance considered a
	// plausible typo of a known symbol lexeme.
	maxSuggestDistance = 2
	// maxSuggestions caps how many near-miss lexemes a report carries.
	maxSuggestions = 3
)

type candidate struct {
	lexeme   string
	distance int
}

// suggestLexemes returns up to maxSuggestions symbol-table lexemes
// within edit distance of lexeme, closest first. Used to turn "no
// symbol matched" style failures into a "did you mean" hint.
func suggestLexemes(lexeme string, known []string) []string {
	var found []candidate
	target := strings.ToLower(lexeme)
	for _, k := range known {
		d := levenshtein(target, strings.ToLower(k))
		if d > 0 && d <= maxSuggestDistance {
			found = append(found, candidate{lexeme: k, distance: d})
		}
	}
	sort.SliceStable(found, func(i, j int) bool {
		return found[i].distance < found[j].distance
	})
	if len(found) > maxSuggestions {
		found = found[:maxSuggestions]
	}
	out := make([]string, len(found))
	for i, c := range found {
		out[i] = c.lexeme
	}
	return out
}

// levenshtein computes the classic single-character edit distance
// between two strings.
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	row := make([]int, len(b)+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= len(a); i++ {
		prevDiag := row[0]
		row[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			up, left, diag := row[j], row[j-1], prevDiag
			prevDiag = row[j]
			row[j] = minThree(up+1, left+1, diag+cost)
		}
	}
	return row[len(b)]
}

func minThree(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
