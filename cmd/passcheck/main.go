package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/vaultpass/passcheck-go/internal/cli"
	"github.com/vaultpass/passcheck-go/internal/config"
	"github.com/vaultpass/passcheck-go/internal/crypto"
)

func main() {
	// Logs go to stderr so they never interleave with the menu.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	_ = godotenv.Load()
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gen, err := crypto.NewSecureGenerator()
	if err != nil {
		slog.Error("password generator unavailable", "error", err)
		os.Exit(1)
	}

	done := make(chan error, 1)
	go func() {
		done <- cli.New(os.Stdin, os.Stdout, gen, cfg.GenerateLength).Run(ctx)
	}()

	// Reading stdin cannot be interrupted, so a signal ends the process directly.
	select {
	case err := <-done:
		if err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("shell stopped", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		os.Stdout.WriteString("\n")
	}
}
