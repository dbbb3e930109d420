// Package ai wraps an OpenAI-style chat-completion endpoint. One concrete
// binding; the pipeline depends on it through the service.Completion
// interface, so the transport stays swappable.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"tg_summariser/internal/domain"
	"tg_summariser/internal/textutil"
)

const (
	// At most this many posts are rendered into a prompt context.
	maxContextPosts = 20
	// Per-post text preview length inside the context.
	contextTextLimit = 200
	maxTopics        = 7

	noPostsMessage    = "No posts to analyse."
	noTextPlaceholder = "No text"

	defaultSummaryLength = 1000
	defaultAnswerLength  = 1500
)

type Config struct {
	BaseURL     string
	Model       string
	APIKey      string
	Timeout     time.Duration
	MaxRetries  int
	Temperature float64
	MaxTokens   int
}

type Client struct {
	httpClient  *http.Client
	baseURL     string
	model       string
	apiKey      string
	maxRetries  int
	temperature float64
	maxTokens   int
	logger      *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		model:       cfg.Model,
		apiKey:      cfg.APIKey,
		maxRetries:  cfg.MaxRetries,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		logger:      logger.With("component", "ai"),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
	Stream      bool          `json:"stream"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Healthy probes the model-listing endpoint. Failures are reported as false,
// never as an error: the probe picks between the AI-backed and local paths.
func (c *Client) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/models", nil)
	if err != nil {
		return false
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("health check failed", "error", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("health check failed", "status", resp.StatusCode)
		return false
	}
	return true
}

// GenerateSummary asks the model for a narrative digest of the posts,
// truncated to maxLength characters (default 1000 when non-positive).
func (c *Client) GenerateSummary(ctx context.Context, posts []domain.Post, maxLength int) (string, error) {
	if maxLength <= 0 {
		maxLength = defaultSummaryLength
	}
	if len(posts) == 0 {
		return noPostsMessage, nil
	}

	prompt := fmt.Sprintf(`Analyse the following posts from Telegram channels and produce a digest.

Posts:
%s

Task: describe, in no more than %d characters, the main topics, events and
trends discussed in these posts. Highlight the key points and common
tendencies.

The answer should be structured and informative.`,
		postsContext(posts), maxLength)

	reply, err := c.complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate summary: %w", err)
	}
	return clip(reply, maxLength), nil
}

// AnswerQuestion asks the model a single free-text question about the posts,
// truncated to maxLength characters (default 1500 when non-positive).
func (c *Client) AnswerQuestion(ctx context.Context, posts []domain.Post, question string, maxLength int) (string, error) {
	if maxLength <= 0 {
		maxLength = defaultAnswerLength
	}
	if len(posts) == 0 {
		return noPostsMessage, nil
	}

	prompt := fmt.Sprintf(`You have access to the following posts from Telegram channels:

%s

Question: %s

Task: answer the question based on the information in the posts above. If the
posts contain no information to answer it, say so honestly. Keep the answer
informative and under %d characters.`,
		postsContext(posts), question, maxLength)

	reply, err := c.complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("answer question: %w", err)
	}
	return clip(reply, maxLength), nil
}

// ExtractTopics asks the model for the main topics across the posts. The
// reply is expected to embed a JSON string array; when it does not, a line
// heuristic recovers candidate topics from the free text. At most 7 topics
// are returned.
func (c *Client) ExtractTopics(ctx context.Context, posts []domain.Post) ([]string, error) {
	if len(posts) == 0 {
		return nil, nil
	}

	prompt := fmt.Sprintf(`Analyse the following posts and pick out 5-7 main topics:

%s

Task: identify the key topics discussed in the posts. Return the list as a
JSON array of strings.
Example: ["topic 1", "topic 2", "topic 3"]`,
		postsContext(posts))

	reply, err := c.complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("extract topics: %w", err)
	}

	if topics, ok := parseTopicsJSON(reply); ok {
		return topics, nil
	}
	return topicsFromText(reply), nil
}

// complete posts the prompt to the chat-completion endpoint, retrying
// transient failures with exponential backoff before giving up.
func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	payload := chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
		Stream:      false,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		reply, err := c.doRequest(ctx, body)
		if err == nil {
			return reply, nil
		}
		lastErr = err

		if attempt == c.maxRetries {
			break
		}

		backoff := time.Duration(1<<attempt) * time.Second
		c.logger.Warn("completion request failed, retrying",
			"attempt", attempt+1,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(backoff):
		}
	}

	return "", fmt.Errorf("after %d attempts: %w", c.maxRetries+1, lastErr)
}

func (c *Client) doRequest(ctx context.Context, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("empty choices in response")
	}
	return chatResp.Choices[0].Message.Content, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "TgSummariser/1.0")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}

// postsContext renders up to 20 posts as numbered, timestamped previews.
func postsContext(posts []domain.Post) string {
	if len(posts) > maxContextPosts {
		posts = posts[:maxContextPosts]
	}

	lines := make([]string, 0, len(posts))
	for i, post := range posts {
		preview := noTextPlaceholder
		if post.Text != nil && *post.Text != "" {
			preview = textutil.Truncate(*post.Text, contextTextLimit)
		}
		lines = append(lines, fmt.Sprintf("%d. [%s] %s",
			i+1, post.Date.Format("02.01.2006 15:04"), preview))
	}
	return strings.Join(lines, "\n")
}

// parseTopicsJSON locates a JSON array between the first '[' and the last ']'
// of the reply.
func parseTopicsJSON(reply string) ([]string, bool) {
	start := strings.Index(reply, "[")
	end := strings.LastIndex(reply, "]")
	if start == -1 || end == -1 || end < start {
		return nil, false
	}

	var topics []string
	if err := json.Unmarshal([]byte(reply[start:end+1]), &topics); err != nil {
		return nil, false
	}
	if len(topics) > maxTopics {
		topics = topics[:maxTopics]
	}
	return topics, true
}

// topicsFromText recovers topics from a free-text reply: one candidate per
// non-empty line, boilerplate prefixes skipped, enumeration characters
// stripped, length bounded to 4..99.
func topicsFromText(reply string) []string {
	var topics []string
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "Task:") ||
			strings.HasPrefix(line, "Answer:") ||
			strings.HasPrefix(line, "Analysis:") {
			continue
		}
		topic := strings.TrimLeft(line, "0123456789.-* ")
		if n := len([]rune(topic)); n > 3 && n < 100 {
			topics = append(topics, topic)
		}
		if len(topics) == maxTopics {
			break
		}
	}
	return topics
}

// clip cuts text to max runes without an ellipsis, mirroring how the remote
// reply length contract is enforced.
func clip(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
