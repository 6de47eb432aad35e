// Package fuzzy provides typo-tolerant matching and ranking for task search.
package fuzzy

import (
	"sort"
	"strings"

	"taskflow-backend/internal/task/domain"
)

// LevenshteinDistance calculates the edit distance between two strings:
// the number of single-character insertions, deletions, or substitutions
// required to change one into the other.
func LevenshteinDistance(s1, s2 string) int {
	s1 = normalize(s1)
	s2 = normalize(s2)

	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	r1 := []rune(s1)
	r2 := []rune(s2)
	m := len(r1)
	n := len(r2)

	d := make([][]int, m+1)
	for i := range d {
		d[i] = make([]int, n+1)
	}
	for i := 0; i <= m; i++ {
		d[i][0] = i
	}
	for j := 0; j <= n; j++ {
		d[0][j] = j
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			d[i][j] = min3(
				d[i-1][j]+1,      // deletion
				d[i][j-1]+1,      // insertion
				d[i-1][j-1]+cost, // substitution
			)
		}
	}

	return d[m][n]
}

// Match checks whether query fuzzy-matches text within the given maximum edit
// distance. Substring containment and word-prefix matches always count.
func Match(query, text string, threshold int) bool {
	query = normalize(query)
	text = normalize(text)

	if strings.Contains(text, query) {
		return true
	}

	for _, word := range strings.Fields(text) {
		if LevenshteinDistance(query, word) <= threshold {
			return true
		}
		if strings.HasPrefix(word, query) {
			return true
		}
	}

	return false
}

// Score rates how relevant a task is to a query. Title matches outweigh
// description matches; exact containment outweighs fuzzy word hits.
func Score(query string, task *domain.Task) float64 {
	query = normalize(query)
	score := 0.0

	title := normalize(task.Title)
	if strings.Contains(title, query) {
		score += 100.0
		if containsWord(title, query) {
			score += 50.0
		}
	} else {
		for _, word := range strings.Fields(title) {
			if dist := LevenshteinDistance(query, word); dist <= 2 {
				score += 50.0 - float64(dist)*15
			}
			if strings.HasPrefix(word, query) {
				score += 40.0
			}
		}
	}

	desc := normalize(task.Description)
	if desc != "" {
		if strings.Contains(desc, query) {
			score += 60.0
		} else {
			for _, word := range strings.Fields(desc) {
				if dist := LevenshteinDistance(query, word); dist <= 2 {
					score += 25.0 - float64(dist)*8
				}
			}
		}
	}

	return score
}

// MatchTask checks whether a task matches the query at a typo tolerance scaled
// to the query length.
func MatchTask(query string, task *domain.Task) bool {
	threshold := 2
	if len(query) <= 3 {
		threshold = 1
	} else if len(query) >= 8 {
		threshold = 3
	}

	if Match(query, task.Title, threshold) {
		return true
	}
	return task.Description != "" && Match(query, task.Description, threshold)
}

// RankTasks returns the tasks matching the query, most relevant first.
func RankTasks(query string, tasks []*domain.Task) []*domain.Task {
	type scored struct {
		task  *domain.Task
		score float64
	}

	matched := make([]scored, 0, len(tasks))
	for _, t := range tasks {
		if MatchTask(query, t) {
			matched = append(matched, scored{task: t, score: Score(query, t)})
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].score > matched[j].score
	})

	result := make([]*domain.Task, len(matched))
	for i, s := range matched {
		result[i] = s.task
	}
	return result
}

func min3(a, b, c int) int {
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

// normalize lowercases and collapses whitespace.
func normalize(s string) string {
	s = strings.ToLower(s)
	return strings.Join(strings.Fields(s), " ")
}

func containsWord(text, query string) bool {
	for _, word := range strings.Fields(text) {
		if word == query {
			return true
		}
	}
	return false
}
