package sound

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"soundbyte/internal/bot"
	"soundbyte/internal/clips"
	"soundbyte/internal/command"
	"soundbyte/internal/player"
	"soundbyte/internal/storage"
)

type NameCommand struct {
	Player *player.Player
	Store  *storage.Storage
}

func (c *NameCommand) Name() string        { return "name" }
func (c *NameCommand) Description() string { return "Name the clip that is currently playing" }
func (c *NameCommand) Aliases() []string   { return []string{} }
func (c *NameCommand) Group() string       { return "sound" }

func (c *NameCommand) Run(ctx interface{}) error {
	mctx, ok := ctx.(*command.MessageContext)
	if !ok {
		return nil
	}

	s, e := mctx.Session, mctx.Event

	newName := strings.TrimSpace(strings.Join(mctx.Args, " "))
	if newName == "" {
		bot.Reply(s, e.Message, "Please provide a name.")
		return nil
	}

	clip, err := c.Player.NameActive(e.GuildID, newName)
	switch {
	case errors.Is(err, player.ErrNoActiveSession):
		bot.Reply(s, e.Message, "Nothing is playing right now, so there is nothing to name.")
	case errors.Is(err, clips.ErrNameTaken):
		bot.Reply(s, e.Message, fmt.Sprintf("The name %q is already taken.", newName))
	case err != nil:
		return err
	default:
		if c.Store != nil {
			if err := c.Store.SetClipName(clip.FileName, newName); err != nil {
				log.Printf("[WARN] Failed to persist name %q for %s: %v", newName, clip.FileName, err)
			}
		}
		bot.Reply(s, e.Message, fmt.Sprintf("Got it, %s is now known as %q.", clip.FileName, newName))
	}
	return nil
}
