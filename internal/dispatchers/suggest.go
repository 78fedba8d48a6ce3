package dispatchers

import (
	"sort"
	"strings"
)

// editDistance is a case-insensitive Levenshtein distance over two
// rolling rows; the full matrix is never materialized.
func editDistance(a, b string) int {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if len(a) == 0 || len(b) == 0 {
		return len(a) + len(b)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

// FindSimilarCommands returns up to maxResults child-command names of
// node within a small edit distance of input, closest first.
func FindSimilarCommands(input string, node *DispatchNode, maxResults int) []string {
	if node == nil || len(node.Children) == 0 {
		return nil
	}

	const maxDistance = 3

	type candidate struct {
		name string
		dist int
	}
	var near []candidate

	for name := range node.Children {
		if d := editDistance(input, name); d > 0 && d <= maxDistance {
			near = append(near, candidate{name: name, dist: d})
		}
	}

	sort.Slice(near, func(i, j int) bool {
		if near[i].dist != near[j].dist {
			return near[i].dist < near[j].dist
		}
		return near[i].name < near[j].name
	})
	if len(near) > maxResults {
		near = near[:maxResults]
	}

	names := make([]string, len(near))
	for i, c := range near {
		names[i] = c.name
	}
	return names
}
