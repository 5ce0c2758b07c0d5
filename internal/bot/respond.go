package bot

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

const EmbedColor = 0x1e66b0

// Reply sends content as a reply to the triggering message.
func Reply(s *discordgo.Session, m *discordgo.Message, content string) {
	_, err := s.ChannelMessageSendReply(m.ChannelID, content, m.Reference())
	if err != nil {
		log.Printf("[ERR] Failed to send reply: %v", err)
	}
}

// Message sends content to a channel.
func Message(s *discordgo.Session, channelID, content string) {
	if _, err := s.ChannelMessageSend(channelID, content); err != nil {
		log.Printf("[ERR] Failed to send message: %v", err)
	}
}

// MessageEmbed sends an embed to a channel.
func MessageEmbed(s *discordgo.Session, channelID string, embed *discordgo.MessageEmbed) {
	if _, err := s.ChannelMessageSendEmbed(channelID, embed); err != nil {
		log.Printf("[ERR] Failed to send embed: %v", err)
	}
}
