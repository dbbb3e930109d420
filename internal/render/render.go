// Package render formats pipeline results for the CLI: plain text layouts
// and indented JSON.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"tg_summariser/internal/domain"
)

// Text output shows at most this many digests.
const maxRenderedDigests = 10

// FoldersText lists folders as "id: name" lines.
func FoldersText(folders []domain.Folder) string {
	if len(folders) == 0 {
		return "No folders found"
	}

	var b strings.Builder
	b.WriteString("Available folders:\n")
	for _, f := range folders {
		fmt.Fprintf(&b, "  %d: %s\n", f.ID, f.Name)
	}
	return strings.TrimRight(b.String(), "\n")
}

// SummaryText lays out a folder summary: header, topics, narrative, then up
// to 10 recent digests with permalinks.
func SummaryText(s *domain.FolderSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Folder summary: %s\n", s.FolderName)
	fmt.Fprintf(&b, "Total posts: %d\n", s.TotalPosts)
	fmt.Fprintf(&b, "Period: %s\n", s.DateRange)

	b.WriteString("\nMain topics:\n")
	for _, topic := range s.MainTopics {
		fmt.Fprintf(&b, "  - %s\n", topic)
	}

	b.WriteString("\nOverall summary:\n")
	b.WriteString(s.OverallSummary)
	b.WriteString("\n")

	if len(s.Posts) > 0 {
		b.WriteString("\nRecent posts:\n")
		digests := s.Posts
		if len(digests) > maxRenderedDigests {
			digests = digests[:maxRenderedDigests]
		}
		for i, post := range digests {
			fmt.Fprintf(&b, "  %d. [%s] %s\n", i+1, post.Date.Format("02.01.2006 15:04"), post.ChannelTitle)
			fmt.Fprintf(&b, "     %s\n", post.Summary)
			if post.Link != nil {
				fmt.Fprintf(&b, "     %s\n", *post.Link)
			}
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// SummaryJSON renders a folder summary as indented JSON.
func SummaryJSON(s *domain.FolderSummary) (string, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal summary: %w", err)
	}
	return string(data), nil
}

// AnswerText lays out a question answer.
func AnswerText(a *domain.Answer) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Question: %s\n\n", a.Question)
	fmt.Fprintf(&b, "Answer: %s\n\n", a.Answer)
	fmt.Fprintf(&b, "Confidence: %.2f\n", a.Confidence)
	fmt.Fprintf(&b, "Related posts: %d", len(a.RelatedPosts))
	return b.String()
}

// SearchText lays out a search result summary.
func SearchText(term string, s *domain.FolderSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Search term: %q\n", term)
	fmt.Fprintf(&b, "Posts found: %d\n", s.TotalPosts)
	fmt.Fprintf(&b, "Period: %s\n", s.DateRange)

	b.WriteString("\nSummary:\n")
	b.WriteString(s.OverallSummary)
	b.WriteString("\n")

	b.WriteString("\nMain topics:\n")
	for _, topic := range s.MainTopics {
		fmt.Fprintf(&b, "  - %s\n", topic)
	}

	return strings.TrimRight(b.String(), "\n")
}
