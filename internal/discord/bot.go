package discord

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"soundbyte/internal/bot"
	"soundbyte/internal/clips"
	"soundbyte/internal/command"
	"soundbyte/internal/config"
	"soundbyte/internal/player"
	"soundbyte/internal/storage"
	"soundbyte/internal/version"
)

// Bot is the Discord front end: one gateway session plus the prefix-command
// dispatcher.
type Bot struct {
	dg       *discordgo.Session
	cfg      *config.Config
	store    *storage.Storage
	registry *clips.Registry
	player   *player.Player
}

func NewBot(cfg *config.Config, store *storage.Storage, registry *clips.Registry) *Bot {
	b := &Bot{
		cfg:      cfg,
		store:    store,
		registry: registry,
	}
	b.player = player.New(player.Config{
		Dial:        b.joinVoice,
		Registry:    registry,
		Dir:         cfg.ClipsPath,
		JoinTimeout: 30 * time.Second,
	})
	return b
}

func (b *Bot) Player() *player.Player {
	return b.player
}

// Run opens the gateway session and blocks until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	b.dg = dg
	b.configureIntents()
	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onMessageCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()
	defer b.player.StopAll()

	<-ctx.Done()
	log.Println("[INFO] Shutdown signal received. Cleaning up...")
	return nil
}

func (b *Bot) configureIntents() {
	b.dg.Identify.Intents = discordgo.IntentGuilds |
		discordgo.IntentGuildMessages |
		discordgo.IntentGuildVoiceStates |
		discordgo.IntentMessageContent
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Printf("[INFO] ✅ %s is running as %s.", version.AppName, s.State.User.Username)
}

// onMessageCreate classifies an inbound message and routes it to the
// matching command. Messages from bots and unrecognized text are ignored.
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	name, args, ok := ParseCommand(m.Content, b.cfg.CommandPrefix)
	if !ok {
		return
	}

	cmd, found := command.Get(name)
	if !found {
		return
	}

	ctx := &command.MessageContext{
		Session: s,
		Event:   m,
		Args:    args,
		Storage: b.store,
	}
	if err := cmd.Run(ctx); err != nil {
		log.Printf("[ERR] Error running command %s: %v", name, err)
		bot.Message(s, m.ChannelID, fmt.Sprintf("Error running command: %v", err))
	}
}
