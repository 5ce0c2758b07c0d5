package sound

import (
	"strings"

	embed "github.com/clinet/discordgo-embed"

	"soundbyte/internal/bot"
	"soundbyte/internal/clips"
	"soundbyte/internal/command"
)

type ListCommand struct {
	Registry *clips.Registry
}

func (c *ListCommand) Name() string        { return "list" }
func (c *ListCommand) Description() string { return "List all known clips" }
func (c *ListCommand) Aliases() []string   { return []string{} }
func (c *ListCommand) Group() string       { return "sound" }

func (c *ListCommand) Run(ctx interface{}) error {
	mctx, ok := ctx.(*command.MessageContext)
	if !ok {
		return nil
	}

	s, e := mctx.Session, mctx.Event

	// list takes no arguments; anything else is not this command.
	if len(mctx.Args) != 0 {
		return nil
	}

	var lines []string
	for label := range c.Registry.List() {
		lines = append(lines, label)
	}

	if len(lines) == 0 {
		bot.Reply(s, e.Message, "No clips uploaded yet. Use `upload` with an audio attachment.")
		return nil
	}

	msg := embed.NewEmbed().
		SetColor(bot.EmbedColor).
		SetTitle("🎧 Clips").
		SetDescription(strings.Join(lines, "\n"))

	bot.MessageEmbed(s, e.ChannelID, msg.MessageEmbed)
	return nil
}
