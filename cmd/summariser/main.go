package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"tg_summariser/internal/ai"
	"tg_summariser/internal/config"
	"tg_summariser/internal/publisher"
	"tg_summariser/internal/render"
	"tg_summariser/internal/scheduler"
	"tg_summariser/internal/service"
	"tg_summariser/internal/storage/sqlite"
)

var (
	dbFlag      string
	configFlag  string
	verboseFlag bool

	rootCmd = &cobra.Command{
		Use:           "summariser",
		Short:         "AI summariser for collected Telegram posts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func main() {
	rootCmd.PersistentFlags().StringVar(&dbFlag, "db", "", "path to the posts SQLite database (required)")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	_ = rootCmd.MarkPersistentFlagRequired("db")

	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(summariseCmd())
	rootCmd.AddCommand(askCmd())
	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(watchCmd())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app bundles everything a subcommand needs.
type app struct {
	cfg        *config.Config
	store      *sqlite.Store
	summariser *service.Summariser
	logger     *slog.Logger
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		a.logger.Warn("closing store", "error", err)
	}
}

func newApp() (*app, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if verboseFlag {
		level = "debug"
	}
	logger := setupLogger(level)

	if _, err := os.Stat(dbFlag); err != nil {
		return nil, fmt.Errorf("database not found: %s", dbFlag)
	}

	store, err := sqlite.Open(dbFlag)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	client := ai.New(ai.Config{
		BaseURL:     cfg.AI.BaseURL,
		Model:       cfg.AI.Model,
		APIKey:      cfg.AI.APIKey,
		Timeout:     cfg.AI.Timeout,
		MaxRetries:  cfg.AI.MaxRetries,
		Temperature: cfg.AI.Temperature,
		MaxTokens:   cfg.AI.MaxTokens,
	}, logger)

	return &app{
		cfg:        cfg,
		store:      store,
		summariser: service.NewSummariser(store, client, logger),
		logger:     logger,
	}, nil
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List folders available in the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			folders, err := a.summariser.Folders(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Println(render.FoldersText(folders))
			return nil
		},
	}
}

func summariseCmd() *cobra.Command {
	var (
		folderID int64
		limit    int
		daysBack int
		noAI     bool
		output   string
		format   string
	)

	cmd := &cobra.Command{
		Use:   "summarise",
		Short: "Summarise recent posts of a folder",
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "json" {
				return fmt.Errorf("unknown format: %s", format)
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			summary, err := a.summariser.SummariseFolder(cmd.Context(), folderID, service.Options{
				Limit:     limit,
				DaysBack:  daysBack,
				IncludeAI: !noAI,
			})
			if err != nil {
				return err
			}
			if summary == nil {
				return fmt.Errorf("folder %d not found", folderID)
			}

			var out string
			if format == "json" {
				out, err = render.SummaryJSON(summary)
				if err != nil {
					return err
				}
			} else {
				out = render.SummaryText(summary)
			}

			return writeOutput(out, output)
		},
	}

	defaults := service.DefaultOptions()
	cmd.Flags().Int64Var(&folderID, "folder", 0, "folder ID (required)")
	cmd.Flags().IntVar(&limit, "limit", defaults.Limit, "maximum number of posts to load")
	cmd.Flags().IntVar(&daysBack, "days-back", defaults.DaysBack, "only consider posts from the last N days")
	cmd.Flags().BoolVar(&noAI, "no-ai", false, "skip the AI service and use local heuristics")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write result to file instead of stdout")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text or json")
	_ = cmd.MarkFlagRequired("folder")

	return cmd
}

func askCmd() *cobra.Command {
	var (
		folderID int64
		question string
		limit    int
		daysBack int
		output   string
	)

	cmd := &cobra.Command{
		Use:   "ask",
		Short: "Ask a free-form question about a folder's posts",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			answer, err := a.summariser.AskAboutPosts(cmd.Context(), folderID, question, service.Options{
				Limit:    limit,
				DaysBack: daysBack,
			})
			if err != nil {
				return err
			}

			return writeOutput(render.AnswerText(answer), output)
		},
	}

	defaults := service.DefaultOptions()
	cmd.Flags().Int64Var(&folderID, "folder", 0, "folder ID (required)")
	cmd.Flags().StringVarP(&question, "question", "q", "", "question to answer (required)")
	cmd.Flags().IntVar(&limit, "limit", defaults.Limit, "maximum number of posts to load")
	cmd.Flags().IntVar(&daysBack, "days-back", defaults.DaysBack, "only consider posts from the last N days")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write result to file instead of stdout")
	_ = cmd.MarkFlagRequired("folder")
	_ = cmd.MarkFlagRequired("question")

	return cmd
}

func searchCmd() *cobra.Command {
	var (
		folderID int64
		term     string
		limit    int
		output   string
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search a folder's posts and summarise the matches",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			summary, err := a.summariser.SearchAndSummarise(cmd.Context(), folderID, term, limit)
			if err != nil {
				return err
			}
			if summary == nil {
				return fmt.Errorf("folder %d not found", folderID)
			}

			return writeOutput(render.SearchText(term, summary), output)
		},
	}

	cmd.Flags().Int64Var(&folderID, "folder", 0, "folder ID (required)")
	cmd.Flags().StringVarP(&term, "term", "t", "", "search term (required)")
	cmd.Flags().IntVar(&limit, "limit", 30, "maximum number of matches")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write result to file instead of stdout")
	_ = cmd.MarkFlagRequired("folder")
	_ = cmd.MarkFlagRequired("term")

	return cmd
}

func watchCmd() *cobra.Command {
	var (
		folderID int64
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Periodically re-summarise a folder and publish the digest",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			if interval == 0 {
				interval = a.cfg.Watch.Interval
			}

			var pub scheduler.Publisher
			if a.cfg.RabbitMQ.Enabled {
				rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
					URL:        a.cfg.RabbitMQ.URL,
					Exchange:   a.cfg.RabbitMQ.Exchange,
					RoutingKey: a.cfg.RabbitMQ.RoutingKey,
					QueueName:  a.cfg.RabbitMQ.QueueName,
				}, a.logger)
				if err != nil {
					return fmt.Errorf("connect to rabbitmq: %w", err)
				}
				defer rabbitMQ.Close()
				pub = rabbitMQ
			}

			sched := scheduler.NewScheduler(
				a.summariser,
				pub,
				folderID,
				service.DefaultOptions(),
				interval,
				a.logger,
			)

			a.logger.Info("starting folder watch", "interval", interval)

			if err := sched.Start(cmd.Context()); err != nil && err != cmd.Context().Err() {
				return err
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&folderID, "folder", 0, "folder ID (required)")
	cmd.Flags().DurationVar(&interval, "interval", 0, "re-summarise interval (default from config)")
	_ = cmd.MarkFlagRequired("folder")

	return cmd
}

func writeOutput(content, path string) error {
	if path == "" {
		fmt.Println(content)
		return nil
	}

	if err := os.WriteFile(path, []byte(content+"\n"), 0o644); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}

	fmt.Printf("Result saved to %s\n", path)
	return nil
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stderr, opts)
	return slog.New(handler)
}
