package core

import (
	"fmt"
	"strings"
	"time"

	embed "github.com/clinet/discordgo-embed"

	"soundbyte/internal/bot"
	"soundbyte/internal/command"
	"soundbyte/internal/version"
)

type AboutCommand struct{}

func (c *AboutCommand) Name() string        { return "about" }
func (c *AboutCommand) Description() string { return "Show info about the bot" }
func (c *AboutCommand) Aliases() []string   { return []string{} }
func (c *AboutCommand) Group() string       { return "core" }

func (c *AboutCommand) Run(ctx interface{}) error {
	mctx, ok := ctx.(*command.MessageContext)
	if !ok {
		return nil
	}

	buildDate := "unknown"
	if version.BuildDate != "" {
		if t, err := time.Parse(time.RFC3339, version.BuildDate); err == nil {
			buildDate = t.Format("2006-01-02")
		}
	}

	goVer := "unknown"
	if version.GoVersion != "" {
		goVer = strings.TrimPrefix(version.GoVersion, "go")
	}

	msg := embed.NewEmbed().
		SetColor(bot.EmbedColor).
		SetDescription(fmt.Sprintf("ℹ️ About\n\n**%s** — %s", version.AppName, version.AppDescription)).
		AddField("Release", fmt.Sprintf("%s (Go %s)", buildDate, goVer))

	bot.MessageEmbed(mctx.Session, mctx.Event.ChannelID, msg.MessageEmbed)
	return nil
}
