// Package match implements the approximate string matching used by tool
// search: a Damerau-Levenshtein edit distance and a windowed fuzzy matcher
// built on top of it.
package match

import (
	"golang.org/x/text/cases"
)

// Fold returns the Unicode case-folded form of s. All matching in this
// module compares folded strings; callers fold both sides before invoking
// Matcher.Matches.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// Distance returns the minimum number of single-character insertions,
// deletions, and substitutions needed to transform a into b. When
// transpositions is true, swapping two adjacent characters also counts as
// a single edit.
func Distance(a, b string, transpositions bool) int {
	return distance([]rune(a), []rune(b), transpositions)
}

func distance(a, b []rune, transpositions bool) int {
	la, lb := len(a), len(b)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	d := make([][]int, la+1)
	for i := range d {
		d[i] = make([]int, lb+1)
		d[i][0] = i
	}
	for j := 0; j <= lb; j++ {
		d[0][j] = j
	}

	for i := 1; i <= la; i++ {
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			best := min(
				d[i-1][j]+1,      // deletion
				d[i][j-1]+1,      // insertion
				d[i-1][j-1]+cost, // substitution
			)
			if transpositions && i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				best = min(best, d[i-2][j-2]+1)
			}
			d[i][j] = best
		}
	}

	return d[la][lb]
}
