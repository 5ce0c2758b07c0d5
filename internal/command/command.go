package command

import (
	"github.com/bwmarrin/discordgo"

	"soundbyte/internal/storage"
)

// Command is one text command the bot responds to.
type Command interface {
	Name() string
	Description() string
	Aliases() []string
	Group() string
	Run(ctx interface{}) error
}

// MessageContext - what runtime hands you when executing a message command.
type MessageContext struct {
	Session *discordgo.Session
	Event   *discordgo.MessageCreate
	Args    []string
	Storage *storage.Storage
}
