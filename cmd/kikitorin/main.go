package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	audioimpl "github.com/foxseedlab/kikitorin/external/audio"
	configloader "github.com/foxseedlab/kikitorin/external/config"
	fetchimpl "github.com/foxseedlab/kikitorin/external/fetch"
	jobsimpl "github.com/foxseedlab/kikitorin/external/jobs"
	storageimpl "github.com/foxseedlab/kikitorin/external/storage"
	transcriberimpl "github.com/foxseedlab/kikitorin/external/transcriber"
	"github.com/foxseedlab/kikitorin/internal/config"
	"github.com/foxseedlab/kikitorin/internal/transcriber"
	"github.com/samber/do/v2"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: kikitorin <clip.mp3>")
		os.Exit(2)
	}

	slog.Info("startup: loading configuration")
	cfg := mustLoadConfig()
	initLogger(cfg)
	slog.Info("startup: configuration loaded", "env", cfg.Env, "provider", cfg.Provider)

	injector := setupDI(cfg)
	run(injector, os.Args[1])
}

func mustLoadConfig() *config.Config {
	cfg, err := configloader.Load()
	if err != nil {
		slog.Error("config validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

func initLogger(cfg *config.Config) {
	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))
}

func setupDI(cfg *config.Config) do.Injector {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	storageimpl.RegisterDI(injector)
	jobsimpl.RegisterDI(injector)
	fetchimpl.RegisterDI(injector)
	audioimpl.RegisterDI(injector)
	transcriberimpl.RegisterDI(injector)

	return injector
}

func run(injector do.Injector, path string) {
	provider, err := do.Invoke[transcriber.Provider](injector)
	if err != nil {
		slog.Error("failed to resolve transcription provider", "error", err)
		os.Exit(1)
	}

	clip, err := os.ReadFile(path)
	if err != nil {
		slog.Error("failed to read clip", "path", path, "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	text, ok, err := provider.Transcribe(ctx, clip)
	if err != nil {
		slog.Error("transcription failed", "path", path, "error", err)
		os.Exit(1)
	}
	if !ok {
		slog.Info("no speech recognized", "path", path)
		os.Exit(1)
	}
	fmt.Println(text)
}
