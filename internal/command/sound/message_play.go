package sound

import (
	"errors"
	"fmt"
	"strings"

	"soundbyte/internal/bot"
	"soundbyte/internal/clips"
	"soundbyte/internal/command"
	"soundbyte/internal/player"
)

type PlayCommand struct {
	Voice  bot.VoiceFinder
	Player *player.Player
}

func (c *PlayCommand) Name() string        { return "play" }
func (c *PlayCommand) Description() string { return "Play a stored clip in your voice channel" }
func (c *PlayCommand) Aliases() []string   { return []string{} }
func (c *PlayCommand) Group() string       { return "sound" }

func (c *PlayCommand) Run(ctx interface{}) error {
	context, ok := ctx.(*command.MessageContext)
	if !ok {
		return nil
	}

	s, e := context.Session, context.Event

	// Display names may contain spaces, so the whole remainder is the token.
	token := strings.Join(context.Args, " ")
	if token == "" {
		bot.Reply(s, e.Message, "Please provide a valid file name.")
		return nil
	}

	channelID := ""
	if voiceState, err := c.Voice.FindUserVoiceState(e.GuildID, e.Author.ID); err == nil {
		channelID = voiceState.ChannelID
	}

	clip, err := c.Player.Play(e.GuildID, channelID, token)
	switch {
	case errors.Is(err, clips.ErrNotFound):
		bot.Reply(s, e.Message, fmt.Sprintf("No clip matches %q. Try `list`.", token))
	case errors.Is(err, player.ErrNoVoiceChannel):
		bot.Reply(s, e.Message, "You need to be in a voice channel!")
	case errors.Is(err, player.ErrFileMissing):
		bot.Reply(s, e.Message, fmt.Sprintf("The file for %q is missing. Try uploading it again.", token))
	case errors.Is(err, player.ErrConnect):
		bot.Reply(s, e.Message, "Failed to join the voice channel.")
	case err != nil:
		return err
	default:
		// Streaming has begun; completion is not implied.
		bot.Reply(s, e.Message, fmt.Sprintf("Now playing: %s", clip.Label()))
	}
	return nil
}
