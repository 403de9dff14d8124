package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"bioquiz/internal/app"
	"bioquiz/internal/llm"
	"bioquiz/internal/quizgen"
)

// runApp wires the provider and generator and starts the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	logger, closeLog, err := buildLogger(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	provider, err := llm.NewProviderFromEnv(ctx, logger)
	if err != nil {
		return fmt.Errorf("LLM provider not configured: %w", err)
	}

	cfg := quizgen.DefaultConfig()
	cfg.ExtendedKinds, _ = cmd.Flags().GetBool("extended")
	count, _ := cmd.Flags().GetInt("count")

	return app.Run(app.Options{
		Generator: quizgen.New(provider, cfg),
		Count:     count,
	})
}

// buildLogger returns a slog.Logger for provider calls. Logs go to the
// --log file when given, otherwise they are discarded so they cannot
// corrupt the TUI.
func buildLogger(cmd *cobra.Command) (*slog.Logger, func(), error) {
	path, _ := cmd.Flags().GetString("log")
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, nil)), func() { _ = f.Close() }, nil
}
