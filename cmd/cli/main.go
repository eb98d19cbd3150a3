package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/dyslexiaid/dyslexiaid-go/internal/client/api"
	"github.com/dyslexiaid/dyslexiaid-go/internal/client/cli"
	"github.com/dyslexiaid/dyslexiaid-go/internal/client/session"
	"github.com/dyslexiaid/dyslexiaid-go/internal/config"
)

func main() {
	_ = godotenv.Load()

	cfg := config.LoadClient()

	store, err := session.Open(cfg.StatePath)
	if err != nil {
		slog.Error("could not open local state", "path", cfg.StatePath, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := cli.New(api.NewClient(cfg.ServerURL), store, os.Stdin, os.Stdout)
	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		slog.Error("client error", "error", err)
		os.Exit(1)
	}
}
