package render

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tg_summariser/internal/domain"
)

func ptr(s string) *string { return &s }

func sampleSummary() *domain.FolderSummary {
	date := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	return &domain.FolderSummary{
		FolderName: "Tech News",
		TotalPosts: 2,
		DateRange:  "15.03.2024",
		MainTopics: []string{"golang", "telegram"},
		Posts: []domain.PostDigest{
			{PostID: 1, ChannelTitle: "Tech News Daily", Date: date, Summary: "Go 1.25 released", Link: ptr("https://t.me/technews/100")},
			{PostID: 2, ChannelTitle: "Private Channel", Date: date, Summary: "No text"},
		},
		OverallSummary: "Analysed 2 posts from 2 channels.",
	}
}

func TestFoldersText(t *testing.T) {
	folders := []domain.Folder{
		{ID: 1, Name: "Tech News"},
		{ID: 2, Name: "Crypto"},
	}

	out := FoldersText(folders)

	assert.Contains(t, out, "Available folders:")
	assert.Contains(t, out, "1: Tech News")
	assert.Contains(t, out, "2: Crypto")
}

func TestFoldersTextEmpty(t *testing.T) {
	assert.Equal(t, "No folders found", FoldersText(nil))
}

func TestSummaryText(t *testing.T) {
	out := SummaryText(sampleSummary())

	assert.Contains(t, out, "Folder summary: Tech News")
	assert.Contains(t, out, "Total posts: 2")
	assert.Contains(t, out, "Period: 15.03.2024")
	assert.Contains(t, out, "- golang")
	assert.Contains(t, out, "- telegram")
	assert.Contains(t, out, "Analysed 2 posts from 2 channels.")
	assert.Contains(t, out, "1. [15.03.2024 12:00] Tech News Daily")
	assert.Contains(t, out, "https://t.me/technews/100")
}

func TestSummaryTextCapsDigests(t *testing.T) {
	s := sampleSummary()
	s.Posts = nil
	date := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	for i := 1; i <= 15; i++ {
		s.Posts = append(s.Posts, domain.PostDigest{
			PostID:       int64(i),
			ChannelTitle: "Tech News Daily",
			Date:         date,
			Summary:      fmt.Sprintf("post %d", i),
		})
	}

	out := SummaryText(s)

	assert.Contains(t, out, "post 10")
	assert.NotContains(t, out, "post 11")
}

func TestSummaryTextLinklessPost(t *testing.T) {
	out := SummaryText(sampleSummary())

	lines := strings.Split(out, "\n")
	last := lines[len(lines)-1]
	assert.Contains(t, last, "No text")
}

func TestSummaryJSON(t *testing.T) {
	out, err := SummaryJSON(sampleSummary())
	require.NoError(t, err)

	var decoded domain.FolderSummary
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "Tech News", decoded.FolderName)
	assert.Len(t, decoded.Posts, 2)
	assert.Equal(t, []string{"golang", "telegram"}, decoded.MainTopics)
}

func TestAnswerText(t *testing.T) {
	a := &domain.Answer{
		Question:     "what about golang",
		Answer:       "Go 1.25 was released.",
		RelatedPosts: []int64{1, 3},
		Confidence:   0.8,
	}

	out := AnswerText(a)

	assert.Contains(t, out, "Question: what about golang")
	assert.Contains(t, out, "Answer: Go 1.25 was released.")
	assert.Contains(t, out, "Confidence: 0.80")
	assert.Contains(t, out, "Related posts: 2")
}

func TestSearchText(t *testing.T) {
	s := sampleSummary()
	s.FolderName = "Tech News - Search: golang"

	out := SearchText("golang", s)

	assert.Contains(t, out, `Search term: "golang"`)
	assert.Contains(t, out, "Posts found: 2")
	assert.Contains(t, out, "Period: 15.03.2024")
	assert.Contains(t, out, "- golang")
	assert.Contains(t, out, "Analysed 2 posts from 2 channels.")
}
