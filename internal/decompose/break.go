package decompose

import "regexp"

// BreakWord splits surface on the configured BREAK patterns, returning
// every way of cutting it into pieces that individually need checking
// (spec.md §4.F). Each pattern is tried at every match position; the
// walk recurses on both the left and right remainders, capped at
// maxBreakDepth to bound pathological inputs (e.g. a string of nothing
// but hyphens).
//
// With no BREAK patterns configured the only split is the word itself.
func BreakWord(patterns []*regexp.Regexp, surface string) [][]string {
	return breakWord(patterns, surface, 0)
}

func breakWord(patterns []*regexp.Regexp, surface string, depth int) [][]string {
	results := [][]string{{surface}}
	if depth >= maxBreakDepth || surface == "" {
		return results
	}

	for _, pat := range patterns {
		for _, loc := range pat.FindAllStringIndex(surface, -1) {
			start, end := loc[0], loc[1]
			left := surface[:start]
			right := surface[end:]

			switch {
			case left == "" && right == "":
				continue // whole string is the break token itself
			case left == "":
				for _, sub := range breakWord(patterns, right, depth+1) {
					results = append(results, sub)
				}
			case right == "":
				for _, sub := range breakWord(patterns, left, depth+1) {
					results = append(results, sub)
				}
			default:
				leftParts := breakWord(patterns, left, depth+1)
				rightParts := breakWord(patterns, right, depth+1)
				for _, lp := range leftParts {
					for _, rp := range rightParts {
						combined := make([]string, 0, len(lp)+len(rp))
						combined = append(combined, lp...)
						combined = append(combined, rp...)
						results = append(results, combined)
					}
				}
			}
		}
	}
	return results
}
