package textstats

import (
	"regexp"
	"sort"
	"strings"

	"github.com/Shahnasha/audio-summarizer/models"
)

var wordPattern = regexp.MustCompile(`\b[a-zA-Z]{3,}\b`)

// ExtractKeywords frequency-counts non-stopword tokens of 3 or more
// letters and returns the topN most frequent. Ties are broken by first
// occurrence in the text.
func ExtractKeywords(text string, topN int) []models.Keyword {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, w := range words {
		if _, stop := stopWords[w]; stop {
			continue
		}
		if _, seen := counts[w]; !seen {
			firstSeen[w] = i
		}
		counts[w]++
	}

	unique := make([]string, 0, len(counts))
	for w := range counts {
		unique = append(unique, w)
	}
	sort.Slice(unique, func(a, b int) bool {
		if counts[unique[a]] != counts[unique[b]] {
			return counts[unique[a]] > counts[unique[b]]
		}
		return firstSeen[unique[a]] < firstSeen[unique[b]]
	})

	if len(unique) > topN {
		unique = unique[:topN]
	}

	keywords := make([]models.Keyword, len(unique))
	for i, w := range unique {
		keywords[i] = models.Keyword{Word: w, Count: counts[w]}
	}
	return keywords
}
