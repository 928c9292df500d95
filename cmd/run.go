package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/persona/internal/app"
	"github.com/abhisek/persona/internal/imageload"
	"github.com/abhisek/persona/internal/journal"
	"github.com/abhisek/persona/internal/logger"
	"github.com/abhisek/persona/internal/quiz"
)

// runApp loads configuration, wires dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, closeLog, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = closeLog() }()

	session, err := quiz.NewSession(quiz.DefaultQuestions())
	if err != nil {
		return err
	}

	runID := uuid.New().String()
	opts := app.Options{
		Session: session,
		Fetcher: imageload.NewHTTPFetcher(nil, cfg.Fetch.UserAgent),
		Logger:  log,
		RunID:   runID,
	}

	if cfg.Journal.Path != "" {
		j, err := journal.Open(cfg.Journal.Path)
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		defer j.Close()
		opts.Recorder = j
	}

	log.Info("quiz started",
		zap.String("run_id", runID),
		zap.Int("questions", session.Len()),
		zap.Bool("journal", opts.Recorder != nil),
	)
	return app.Run(opts)
}
