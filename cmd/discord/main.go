package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"soundbyte/internal/clips"
	"soundbyte/internal/command"
	corecmd "soundbyte/internal/command/core"
	"soundbyte/internal/command/sound"
	"soundbyte/internal/config"
	"soundbyte/internal/discord"
	"soundbyte/internal/ingest"
	"soundbyte/internal/storage"
	"soundbyte/internal/version"
	"soundbyte/internal/web"
)

func main() {
	log.Printf("[INFO] Starting %v bot...", version.AppName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New()
	if err != nil {
		log.Fatal(err)
	}

	store, err := storage.New(cfg.StoragePath)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	registry := clips.NewRegistry()
	registry.Load(cfg.ClipsPath)
	if names, err := store.ClipNames(); err != nil {
		log.Printf("[WARN] Failed to load persisted clip names: %v", err)
	} else {
		registry.Restore(names)
	}

	bot := discord.NewBot(cfg, store, registry)
	ingestor := ingest.New(cfg.ClipsPath, cfg.DownloadTimeout, registry)

	command.Register(
		&sound.PlayCommand{Voice: bot, Player: bot.Player()},
		command.WithGuildOnly(),
		command.WithCooldown(2*time.Second),
		command.WithCommandLogger(),
	)
	command.Register(
		&sound.UploadCommand{Ingestor: ingestor},
		command.WithGuildOnly(),
		command.WithCooldown(5*time.Second),
		command.WithCommandLogger(),
	)
	command.Register(
		&sound.NameCommand{Player: bot.Player(), Store: store},
		command.WithGuildOnly(),
		command.WithCommandLogger(),
	)
	command.Register(
		&sound.ListCommand{Registry: registry},
		command.WithCooldown(2*time.Second),
	)
	command.Register(
		&corecmd.AboutCommand{},
		command.WithCooldown(5*time.Second),
	)

	go web.Run(ctx, cfg.HTTPAddr, registry)

	errCh := make(chan error, 1)
	go func() {
		if err := bot.Run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Printf("[INFO] Received signal %s, shutting down...", s)
		cancel()
	case err := <-errCh:
		if err != nil {
			log.Println("[ERR] Discord bot error:", err)
		}
		cancel()
	}

	log.Println("[INFO] Discord bot exited cleanly")
}
