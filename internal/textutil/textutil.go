// Package textutil holds small text helpers shared by the summarisation
// pipeline and the presentation layer.
package textutil

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"
)

const ellipsis = "..."

// Truncate cuts text down to max runes, ellipsis included. Returns the text
// unchanged when it already fits.
func Truncate(text string, max int) string {
	if text == "" {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	cut := max - len(ellipsis)
	if cut < 0 {
		cut = 0
	}
	return string(runes[:cut]) + ellipsis
}

// FormatDateRange renders a dd.mm.yyyy range, collapsed to a single date when
// both ends fall on the same calendar day.
func FormatDateRange(start, end time.Time) string {
	const layout = "02.01.2006"
	if start.Year() == end.Year() && start.YearDay() == end.YearDay() {
		return start.Format(layout)
	}
	return fmt.Sprintf("%s - %s", start.Format(layout), end.Format(layout))
}

// PostLink builds the canonical t.me permalink for a post in a public channel.
func PostLink(username string, tgPostID int64) string {
	return fmt.Sprintf("https://t.me/%s/%d", username, tgPostID)
}

// Stop words excluded from keyword extraction. The ingested channels are
// mostly Russian, so the set covers both languages.
var stopWords = map[string]struct{}{}

func init() {
	words := []string{
		"и", "в", "на", "с", "по", "для", "от", "до", "из", "за", "под", "над",
		"при", "про", "о", "об", "а", "но", "или", "что", "как", "где", "когда",
		"почему", "это", "то", "так", "все", "еще", "уже", "только", "даже",
		"тоже", "также",
		"the", "and", "for", "that", "with", "this", "from", "have", "are",
		"was", "were", "will", "been", "not", "you", "your", "they", "their",
	}
	for _, w := range words {
		stopWords[w] = struct{}{}
	}
}

type wordCount struct {
	word  string
	count int
}

// TopKeywords returns the max most frequent words of length >= minLen across
// the given texts, lower-cased and stripped of surrounding punctuation, stop
// words excluded. Ties break by dictionary order for a stable result.
func TopKeywords(texts []string, minLen, max int) []string {
	counts := make(map[string]int)
	for _, text := range texts {
		for _, raw := range strings.Fields(strings.ToLower(text)) {
			word := strings.TrimFunc(raw, func(r rune) bool {
				return unicode.IsPunct(r) || unicode.IsSymbol(r)
			})
			if len([]rune(word)) < minLen {
				continue
			}
			if _, stop := stopWords[word]; stop {
				continue
			}
			counts[word]++
		}
	}

	ranked := make([]wordCount, 0, len(counts))
	for w, c := range counts {
		ranked = append(ranked, wordCount{word: w, count: c})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].word < ranked[j].word
	})

	if len(ranked) > max {
		ranked = ranked[:max]
	}
	keywords := make([]string, len(ranked))
	for i, wc := range ranked {
		keywords[i] = wc.word
	}
	return keywords
}
