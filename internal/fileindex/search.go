package fileindex

import (
	"os"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Result is one file search hit.
type Result struct {
	// Path is the absolute path to the file.
	Path string
	// DisplayPath is the path with the home directory shortened to ~.
	DisplayPath string
	// Score ranks the match; higher is better.
	Score int
}

// Search ranks the indexed paths against query and returns at most
// limit results, best first. An empty query returns the first limit
// paths unscored, matching the finder's "just opened" view.
func (ix *Index) Search(query string, limit int) []Result {
	paths := ix.Paths()
	home, _ := os.UserHomeDir()

	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		if len(paths) > limit {
			paths = paths[:limit]
		}
		results := make([]Result, 0, len(paths))
		for _, p := range paths {
			results = append(results, Result{Path: p, DisplayPath: displayPath(p, home)})
		}
		return results
	}

	var results []Result
	for _, p := range paths {
		target := strings.ToLower(displayPath(p, home))
		score, ok := scoreMatch(query, target)
		if !ok {
			continue
		}
		results = append(results, Result{Path: p, DisplayPath: displayPath(p, home), Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// scoreMatch scores query against target. Substring hits rank above
// subsequence hits; within each class, shorter edit distance to the
// file's base name wins.
func scoreMatch(query, target string) (int, bool) {
	base := target
	if i := strings.LastIndexByte(target, '/'); i >= 0 {
		base = target[i+1:]
	}

	const substringBonus = 1000
	dist := levenshtein.ComputeDistance(query, base)

	if strings.Contains(target, query) {
		score := substringBonus - dist
		if strings.Contains(base, query) {
			// Matches in the file name itself beat matches that only
			// hit the directory part.
			score += substringBonus
		}
		return score, true
	}
	if isSubsequence(query, target) {
		return -dist, true
	}
	return 0, false
}

// isSubsequence reports whether all runes of query appear in target in
// order (the usual fuzzy-finder acceptance test).
func isSubsequence(query, target string) bool {
	ti := 0
	tr := []rune(target)
	for _, q := range query {
		found := false
		for ; ti < len(tr); ti++ {
			if tr[ti] == q {
				found = true
				ti++
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// displayPath shortens home-relative paths to ~/... for display.
func displayPath(path, home string) string {
	if home != "" && strings.HasPrefix(path, home) {
		return "~" + strings.TrimPrefix(path, home)
	}
	return path
}
