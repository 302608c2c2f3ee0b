package match

// DefaultThreshold is the maximum edit distance at which a window of the
// candidate still counts as a fuzzy match.
const DefaultThreshold = 1

// Matcher reports whether a short query plausibly occurs inside a longer
// candidate: it slides a query-sized window over the candidate and accepts
// when any window is within Threshold edits (transpositions included) of
// the query.
//
// The window scan is O(len(candidate)) windows of O(len(query)^2) distance
// checks each, which is fine at catalog scale where queries are short.
type Matcher struct {
	// Threshold is the maximum edit distance for a window to match.
	// Zero means DefaultThreshold.
	Threshold int
}

// Matches reports whether any contiguous window of candidate with the same
// rune length as query is within the edit distance threshold of query.
// Both strings must already be case-folded by the caller. An empty query
// or a candidate shorter than the query never matches.
func (m Matcher) Matches(query, candidate string) bool {
	threshold := m.Threshold
	if threshold == 0 {
		threshold = DefaultThreshold
	}

	q := []rune(query)
	c := []rune(candidate)
	if len(q) == 0 || len(c) < len(q) {
		return false
	}

	for i := 0; i+len(q) <= len(c); i++ {
		if distance(q, c[i:i+len(q)], true) <= threshold {
			return true
		}
	}
	return false
}
