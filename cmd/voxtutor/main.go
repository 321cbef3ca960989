package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/bowerhall/voxtutor/internal/auth"
	"github.com/bowerhall/voxtutor/internal/bot"
	"github.com/bowerhall/voxtutor/internal/config"
	"github.com/bowerhall/voxtutor/internal/dialogue"
	"github.com/bowerhall/voxtutor/internal/llm"
	"github.com/bowerhall/voxtutor/internal/logger"
	"github.com/bowerhall/voxtutor/internal/media"
	"github.com/bowerhall/voxtutor/internal/session"
	"github.com/bowerhall/voxtutor/internal/storage"
	"github.com/bowerhall/voxtutor/internal/voice"
)

func init() {
	godotenv.Load()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", "error", err)
	}

	model, err := llm.New(llm.Config{
		Provider: cfg.LLM.Provider,
		APIKey:   cfg.LLM.APIKey,
		Model:    cfg.LLM.Model,
		BaseURL:  cfg.LLM.BaseURL,
	})
	if err != nil {
		logger.Fatal("failed to create llm", "error", err)
	}

	transcriber := llm.NewTranscriber(llm.TranscriberConfig{
		APIKey:      cfg.Transcription.APIKey,
		BaseURL:     cfg.Transcription.BaseURL,
		Model:       cfg.Transcription.Model,
		Language:    cfg.Transcription.Language,
		Temperature: cfg.Transcription.Temperature,
	})

	if err := os.MkdirAll(cfg.Media.Dir, 0o755); err != nil {
		logger.Fatal("failed to create media dir", "error", err, "dir", cfg.Media.Dir)
	}

	sessions := session.NewStore()
	gate := auth.NewGate(cfg.AllowedUserIDs)
	engine := dialogue.NewEngine(model, sessions)

	// voice archive (optional)
	var archive *storage.Client
	if cfg.Storage.Enabled {
		archive, err = storage.NewClient(storage.Config{
			Endpoint:  cfg.Storage.Endpoint,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			Bucket:    cfg.Storage.Bucket,
			UseSSL:    cfg.Storage.UseSSL,
		})
		if err != nil {
			logger.Error("failed to create storage client", "error", err)
		} else {
			initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			if err := archive.Init(initCtx); err != nil {
				logger.Error("failed to init storage bucket", "error", err)
				archive = nil
			} else {
				logger.Info("voice archive enabled", "endpoint", cfg.Storage.Endpoint)
			}
			cancel()
		}
	}

	pipeline := voice.NewPipeline(
		voice.Config{Dir: cfg.Media.Dir, TargetExt: "." + cfg.Media.Format},
		media.NewHTTPDownloader(),
		media.FFmpeg{Quality: cfg.Media.Quality},
		transcriber,
		engine,
		archive,
	)

	sweeper := media.NewSweeper(cfg.Media.Dir, cfg.Media.MaxAge)
	if err := sweeper.Start(); err != nil {
		logger.Error("failed to start media sweeper", "error", err)
	}
	defer sweeper.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	deps := bot.Deps{
		Gate:     gate,
		Sessions: sessions,
		Engine:   engine,
		Pipeline: pipeline,
	}

	var enabledProviders []string

	if cfg.Bots.Telegram.Enabled {
		b, err := bot.New(bot.Config{Provider: "telegram", Token: cfg.Bots.Telegram.Token}, deps)
		if err != nil {
			logger.Fatal("failed to create telegram bot", "error", err)
		}

		enabledProviders = append(enabledProviders, "telegram")

		go b.Start(ctx)
	}

	if cfg.Bots.Discord.Enabled {
		b, err := bot.New(bot.Config{Provider: "discord", Token: cfg.Bots.Discord.Token}, deps)
		if err != nil {
			logger.Fatal("failed to create discord bot", "error", err)
		}

		enabledProviders = append(enabledProviders, "discord")

		go b.Start(ctx)
	}

	if len(enabledProviders) == 0 {
		logger.Fatal("no bot providers enabled, set TELEGRAM_TOKEN or DISCORD_TOKEN")
	}

	logger.Info("voxtutor started",
		"bots", enabledProviders,
		"llm", cfg.LLM.Provider,
		"allowed_users", len(cfg.AllowedUserIDs),
		"media_dir", cfg.Media.Dir,
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down")
	cancel()
}
