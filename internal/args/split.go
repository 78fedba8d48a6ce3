package args

import "strings"

// splitAny splits s on every occurrence of any delimiter, scanning left to
// right and always taking the earliest match. Delimiters do not merge and
// empty segments survive, so "a;;b" split on ";" yields ["a", "", "b"].
// When two delimiters match at the same position the one listed first wins.
func splitAny(s string, delims []string) []string {
	var out []string
	rest := s
	for {
		idx, width := -1, 0
		for _, d := range delims {
			if d == "" {
				continue
			}
			if i := strings.Index(rest, d); i >= 0 && (idx == -1 || i < idx) {
				idx, width = i, len(d)
			}
		}
		if idx == -1 {
			return append(out, rest)
		}
		out = append(out, rest[:idx])
		rest = rest[idx+width:]
	}
}
