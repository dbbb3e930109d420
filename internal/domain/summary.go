package domain

import "time"

// PostDigest is a truncated, display-ready rendering of a single post.
type PostDigest struct {
	PostID       int64     `json:"post_id"`
	ChannelTitle string    `json:"channel_title"`
	Date         time.Time `json:"date"`
	Summary      string    `json:"summary"`
	Link         *string   `json:"link,omitempty"`
}

// FolderSummary is the result of summarising one folder.
type FolderSummary struct {
	FolderName     string       `json:"folder_name"`
	TotalPosts     int          `json:"total_posts"`
	DateRange      string       `json:"date_range"`
	MainTopics     []string     `json:"main_topics"`
	Posts          []PostDigest `json:"posts"`
	OverallSummary string       `json:"overall_summary"`
}

// Answer is the result of asking a question about the posts in a folder.
//
// Confidence is a placeholder constant, not a computed measure: 0.8 when the
// remote model produced an answer, 0.0 on every empty or failure path.
type Answer struct {
	Question     string  `json:"question"`
	Answer       string  `json:"answer"`
	RelatedPosts []int64 `json:"related_posts"`
	Confidence   float64 `json:"confidence"`
}
