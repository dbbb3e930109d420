package scheduler

import (
	"context"
	"log/slog"
	"time"

	"tg_summariser/internal/domain"
	"tg_summariser/internal/service"
)

// Summariser produces folder digests for the periodic loop.
type Summariser interface {
	SummariseFolder(ctx context.Context, folderID int64, opts service.Options) (*domain.FolderSummary, error)
}

// Publisher fans produced digests out. May be nil to disable fan-out.
type Publisher interface {
	Publish(ctx context.Context, folderID int64, summary *domain.FolderSummary) error
	Close() error
}

// Scheduler re-summarises one folder at a fixed interval and publishes the
// result. Backs the watch subcommand.
type Scheduler struct {
	summariser Summariser
	publisher  Publisher
	folderID   int64
	opts       service.Options
	interval   time.Duration
	logger     *slog.Logger
}

func NewScheduler(
	summariser Summariser,
	publisher Publisher,
	folderID int64,
	opts service.Options,
	interval time.Duration,
	logger *slog.Logger,
) *Scheduler {
	return &Scheduler{
		summariser: summariser,
		publisher:  publisher,
		folderID:   folderID,
		opts:       opts,
		interval:   interval,
		logger:     logger.With("folder_id", folderID),
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runDigest(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runDigest(ctx)
		}
	}
}

func (s *Scheduler) runDigest(ctx context.Context) {
	digestCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	summary, err := s.summariser.SummariseFolder(digestCtx, s.folderID, s.opts)
	if err != nil {
		s.logger.Error("digest run failed", "error", err)
		return
	}
	if summary == nil {
		s.logger.Warn("folder no longer exists, skipping digest")
		return
	}

	s.logger.Info("digest produced",
		"total_posts", summary.TotalPosts,
		"date_range", summary.DateRange,
	)

	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(digestCtx, s.folderID, summary); err != nil {
		s.logger.Error("publish digest failed", "error", err)
	}
}
