package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"tg_summariser/internal/domain"
)

// PostStore is the read-only view over the ingested schema that the pipeline
// needs.
type PostStore interface {
	Folders(ctx context.Context) ([]domain.Folder, error)
	Folder(ctx context.Context, id int64) (*domain.Folder, error)
	Channels(ctx context.Context, folderID int64) ([]domain.Channel, error)
	PostsByFolder(ctx context.Context, folderID int64, limit, daysBack int) ([]domain.Post, error)
	SearchPosts(ctx context.Context, folderID int64, term string, limit int) ([]domain.Post, error)
}

// Completion is the remote chat-completion capability. Healthy is a
// best-effort liveness probe; the generate/answer/topics calls propagate
// failures after the client's own retries so the pipeline can degrade.
type Completion interface {
	Healthy(ctx context.Context) bool
	GenerateSummary(ctx context.Context, posts []domain.Post, maxLength int) (string, error)
	AnswerQuestion(ctx context.Context, posts []domain.Post, question string, maxLength int) (string, error)
	ExtractTopics(ctx context.Context, posts []domain.Post) ([]string, error)
}
