package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"soundbyte/internal/bot"
	"soundbyte/internal/player"
)

// voiceConn adapts a discordgo voice connection to the player.Conn interface.
type voiceConn struct {
	vc *discordgo.VoiceConnection
}

func (c *voiceConn) Speaking(b bool) error { return c.vc.Speaking(b) }
func (c *voiceConn) Send() chan<- []byte   { return c.vc.OpusSend }
func (c *voiceConn) Disconnect() error     { return c.vc.Disconnect() }

// joinVoice joins a guild voice channel, blocking until the connection is
// ready. The player bounds the wait.
func (b *Bot) joinVoice(guildID, channelID string) (player.Conn, error) {
	vc, err := b.dg.ChannelVoiceJoin(guildID, channelID, false, true)
	if err != nil {
		return nil, fmt.Errorf("failed to join voice channel: %w", err)
	}
	return &voiceConn{vc: vc}, nil
}

// FindUserVoiceState finds the voice state of a user.
func (b *Bot) FindUserVoiceState(guildID, userID string) (*bot.VoiceState, error) {
	guild, err := b.dg.State.Guild(guildID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving guild: %w", err)
	}

	for _, vs := range guild.VoiceStates {
		if vs.UserID == userID {
			return &bot.VoiceState{
				ChannelID: vs.ChannelID,
				UserID:    vs.UserID,
			}, nil
		}
	}
	return nil, fmt.Errorf("user not in any voice channel")
}
