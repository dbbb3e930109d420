package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"tg_summariser/internal/domain"
	"tg_summariser/internal/textutil"
)

const (
	// At most this many posts are handed to the remote model per call on the
	// date-filtered paths; the search path analyses every match.
	maxAnalysedPosts = 20
	maxRelatedPosts  = 5

	// Local fallback heuristic: top-N frequent words of a minimum length.
	heuristicTopics = 5
	minTopicWordLen = 4

	defaultSearchLimit = 30

	// Placeholder confidence for answered questions; not a computed measure.
	answeredConfidence = 0.8

	unknownChannelTitle = "Unknown channel"
	noTextPlaceholder   = "No text"
	digestTextLimit     = 200

	noPostsNarrative       = "No posts found in the given period."
	aiUnavailableNarrative = "AI service is unavailable. Showing post digests only."
	askUnavailableAnswer   = "AI service is unavailable. Try again later."
	askNoPostsAnswer       = "No posts were found in the given period to analyse."
)

// Options controls how many posts a pipeline operation fetches and whether
// the remote model is consulted.
type Options struct {
	Limit     int
	DaysBack  int
	IncludeAI bool
}

func DefaultOptions() Options {
	return Options{Limit: 50, DaysBack: 7, IncludeAI: true}
}

// Summariser orchestrates the post store and the completion client. It holds
// no per-call state; every operation is an independent one-shot over freshly
// fetched data.
type Summariser struct {
	store  PostStore
	ai     Completion
	logger *slog.Logger
}

func NewSummariser(store PostStore, ai Completion, logger *slog.Logger) *Summariser {
	return &Summariser{
		store:  store,
		ai:     ai,
		logger: logger.With("component", "summariser"),
	}
}

// Folders lists all folders in the store.
func (s *Summariser) Folders(ctx context.Context) ([]domain.Folder, error) {
	return s.store.Folders(ctx)
}

// FolderInfo returns one folder, or nil when absent.
func (s *Summariser) FolderInfo(ctx context.Context, id int64) (*domain.Folder, error) {
	return s.store.Folder(ctx, id)
}

// SummariseFolder builds a FolderSummary for the folder's recent posts.
// Returns (nil, nil) when the folder does not exist. Remote-completion
// failures degrade into the narrative; store failures propagate.
func (s *Summariser) SummariseFolder(ctx context.Context, folderID int64, opts Options) (*domain.FolderSummary, error) {
	folder, err := s.store.Folder(ctx, folderID)
	if err != nil {
		return nil, fmt.Errorf("resolve folder: %w", err)
	}
	if folder == nil {
		s.logger.Warn("folder not found", "folder_id", folderID)
		return nil, nil
	}

	posts, err := s.store.PostsByFolder(ctx, folderID, opts.Limit, opts.DaysBack)
	if err != nil {
		return nil, fmt.Errorf("load posts: %w", err)
	}
	if len(posts) == 0 {
		return emptySummary(folder.Name, "No data", noPostsNarrative), nil
	}

	channels, err := s.store.Channels(ctx, folderID)
	if err != nil {
		return nil, fmt.Errorf("load channels: %w", err)
	}

	analysed := posts
	if len(analysed) > maxAnalysedPosts {
		analysed = analysed[:maxAnalysedPosts]
	}

	var topics []string
	var narrative string
	if opts.IncludeAI {
		topics, narrative = s.aiTopicsAndNarrative(ctx, posts, analysed)
	} else {
		topics = s.localTopics(posts)
		narrative = fmt.Sprintf("Analysed %d posts from %d channels.", len(posts), len(channels))
	}

	return &domain.FolderSummary{
		FolderName:     folder.Name,
		TotalPosts:     len(posts),
		DateRange:      dateRange(posts),
		MainTopics:     topics,
		Posts:          buildDigests(analysed, channelMap(channels)),
		OverallSummary: narrative,
	}, nil
}

// AskAboutPosts answers a free-text question over the folder's recent posts.
// The result is always present; failure paths carry zero confidence.
func (s *Summariser) AskAboutPosts(ctx context.Context, folderID int64, question string, opts Options) (*domain.Answer, error) {
	folder, err := s.store.Folder(ctx, folderID)
	if err != nil {
		return nil, fmt.Errorf("resolve folder: %w", err)
	}
	if folder == nil {
		return failedAnswer(question, fmt.Sprintf("Folder %d not found.", folderID)), nil
	}

	posts, err := s.store.PostsByFolder(ctx, folderID, opts.Limit, opts.DaysBack)
	if err != nil {
		return nil, fmt.Errorf("load posts: %w", err)
	}
	if len(posts) == 0 {
		return failedAnswer(question, askNoPostsAnswer), nil
	}

	if !s.ai.Healthy(ctx) {
		return failedAnswer(question, askUnavailableAnswer), nil
	}

	analysed := posts
	if len(analysed) > maxAnalysedPosts {
		analysed = analysed[:maxAnalysedPosts]
	}

	answer, err := s.ai.AnswerQuestion(ctx, analysed, question, 0)
	if err != nil {
		s.logger.Error("answering question failed", "folder_id", folderID, "error", err)
		return failedAnswer(question, fmt.Sprintf("Error answering question: %v", err)), nil
	}

	return &domain.Answer{
		Question:     question,
		Answer:       answer,
		RelatedPosts: relatedPosts(posts, question),
		Confidence:   answeredConfidence,
	}, nil
}

// SearchAndSummarise summarises the posts in a folder matching a substring
// search. Unlike SummariseFolder, every matched post is analysed, not just
// the first 20. Returns (nil, nil) when the folder does not exist.
func (s *Summariser) SearchAndSummarise(ctx context.Context, folderID int64, term string, limit int) (*domain.FolderSummary, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	folder, err := s.store.Folder(ctx, folderID)
	if err != nil {
		return nil, fmt.Errorf("resolve folder: %w", err)
	}
	if folder == nil {
		s.logger.Warn("folder not found", "folder_id", folderID)
		return nil, nil
	}
	name := fmt.Sprintf("%s - Search: %s", folder.Name, term)

	posts, err := s.store.SearchPosts(ctx, folderID, term, limit)
	if err != nil {
		return nil, fmt.Errorf("search posts: %w", err)
	}
	if len(posts) == 0 {
		return emptySummary(name, "No results", fmt.Sprintf("No posts found for '%s'.", term)), nil
	}

	channels, err := s.store.Channels(ctx, folderID)
	if err != nil {
		return nil, fmt.Errorf("load channels: %w", err)
	}

	fallback := fmt.Sprintf("Found %d posts for '%s'.", len(posts), term)
	topics, narrative := s.aiTopicsAndNarrativeWithFallback(ctx, posts, posts, fallback)

	return &domain.FolderSummary{
		FolderName:     name,
		TotalPosts:     len(posts),
		DateRange:      dateRange(posts),
		MainTopics:     topics,
		Posts:          buildDigests(posts, channelMap(channels)),
		OverallSummary: narrative,
	}, nil
}

// aiTopicsAndNarrative runs the AI path with the standard unavailable/error
// narratives.
func (s *Summariser) aiTopicsAndNarrative(ctx context.Context, all, analysed []domain.Post) ([]string, string) {
	if !s.ai.Healthy(ctx) {
		return s.localTopics(all), aiUnavailableNarrative
	}

	topics, err := s.ai.ExtractTopics(ctx, analysed)
	if err == nil {
		var narrative string
		narrative, err = s.ai.GenerateSummary(ctx, analysed, 0)
		if err == nil {
			return topics, narrative
		}
	}

	s.logger.Error("AI summary failed, using local fallback", "error", err)
	return s.localTopics(all), fmt.Sprintf("Error generating AI summary: %v", err)
}

// aiTopicsAndNarrativeWithFallback is the search variant: unavailability and
// failures both degrade to the given fallback narrative.
func (s *Summariser) aiTopicsAndNarrativeWithFallback(ctx context.Context, all, analysed []domain.Post, fallback string) ([]string, string) {
	if !s.ai.Healthy(ctx) {
		return s.localTopics(all), fallback
	}

	topics, err := s.ai.ExtractTopics(ctx, analysed)
	if err == nil {
		var narrative string
		narrative, err = s.ai.GenerateSummary(ctx, analysed, 0)
		if err == nil {
			return topics, narrative
		}
	}

	s.logger.Error("AI summary failed, using local fallback", "error", err)
	return s.localTopics(all), fallback
}

// localTopics is the no-AI fallback: most frequent meaningful words across
// the post texts.
func (s *Summariser) localTopics(posts []domain.Post) []string {
	texts := make([]string, 0, len(posts))
	for _, post := range posts {
		if post.Text != nil {
			texts = append(texts, *post.Text)
		}
	}
	return textutil.TopKeywords(texts, minTopicWordLen, heuristicTopics)
}

func emptySummary(name, dateRange, narrative string) *domain.FolderSummary {
	return &domain.FolderSummary{
		FolderName:     name,
		TotalPosts:     0,
		DateRange:      dateRange,
		MainTopics:     []string{},
		Posts:          []domain.PostDigest{},
		OverallSummary: narrative,
	}
}

func failedAnswer(question, answer string) *domain.Answer {
	return &domain.Answer{
		Question:     question,
		Answer:       answer,
		RelatedPosts: []int64{},
		Confidence:   0,
	}
}

func channelMap(channels []domain.Channel) map[int64]domain.Channel {
	m := make(map[int64]domain.Channel, len(channels))
	for _, c := range channels {
		m[c.ID] = c
	}
	return m
}

// buildDigests renders posts as display-ready digests. The permalink is the
// stored link when present, the constructed t.me link when the channel has a
// username, and absent otherwise.
func buildDigests(posts []domain.Post, channels map[int64]domain.Channel) []domain.PostDigest {
	digests := make([]domain.PostDigest, 0, len(posts))
	for _, post := range posts {
		channel, known := channels[post.ChannelID]

		title := unknownChannelTitle
		if known && channel.Title != nil && *channel.Title != "" {
			title = *channel.Title
		}

		summary := noTextPlaceholder
		if post.Text != nil && *post.Text != "" {
			summary = textutil.Truncate(*post.Text, digestTextLimit)
		}

		var link *string
		switch {
		case post.Link != nil && *post.Link != "":
			link = post.Link
		case known && channel.Username != nil && *channel.Username != "":
			l := textutil.PostLink(*channel.Username, post.TGPostID)
			link = &l
		}

		digests = append(digests, domain.PostDigest{
			PostID:       post.ID,
			ChannelTitle: title,
			Date:         post.Date,
			Summary:      summary,
			Link:         link,
		})
	}
	return digests
}

// dateRange spans the earliest to the latest post date over all fetched
// posts, not just the analysed prefix.
func dateRange(posts []domain.Post) string {
	min, max := posts[0].Date, posts[0].Date
	for _, post := range posts[1:] {
		if post.Date.Before(min) {
			min = post.Date
		}
		if post.Date.After(max) {
			max = post.Date
		}
	}
	return textutil.FormatDateRange(min, max)
}

// relatedPosts returns the IDs of posts whose text shares at least one
// whitespace token with the question, case-folded, capped to 5.
func relatedPosts(posts []domain.Post, question string) []int64 {
	questionWords := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(question)) {
		questionWords[w] = struct{}{}
	}

	related := make([]int64, 0, maxRelatedPosts)
	for _, post := range posts {
		if post.Text == nil {
			continue
		}
		for _, w := range strings.Fields(strings.ToLower(*post.Text)) {
			if _, ok := questionWords[w]; ok {
				related = append(related, post.ID)
				break
			}
		}
		if len(related) == maxRelatedPosts {
			break
		}
	}
	return related
}
