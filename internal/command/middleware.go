package command

import (
	"log"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"soundbyte/internal/storage"
)

type Middleware func(Command) Command

type wrappedCommand struct {
	Command
	wrap func(ctx interface{}) error
}

func (w *wrappedCommand) Run(ctx interface{}) error {
	if w.wrap != nil {
		return w.wrap(ctx)
	}
	return w.Command.Run(ctx)
}

func Apply(cmd Command, mws ...Middleware) Command {
	for _, mw := range mws {
		cmd = mw(cmd)
	}
	return cmd
}

// WithGuildOnly drops commands issued outside a guild (DMs).
func WithGuildOnly() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{
			Command: cmd,
			wrap: func(ctx interface{}) error {
				if v, ok := ctx.(*MessageContext); ok && v.Event.GuildID == "" {
					return nil
				}
				return cmd.Run(ctx)
			},
		}
	}
}

// WithCooldown silently drops a user's repeat invocations arriving faster
// than one per the given interval.
func WithCooldown(every time.Duration) Middleware {
	var mu sync.Mutex
	limiters := make(map[string]*rate.Limiter)

	return func(cmd Command) Command {
		return &wrappedCommand{
			Command: cmd,
			wrap: func(ctx interface{}) error {
				v, ok := ctx.(*MessageContext)
				if !ok {
					return cmd.Run(ctx)
				}

				key := v.Event.Author.ID + ":" + cmd.Name()
				mu.Lock()
				lim, ok := limiters[key]
				if !ok {
					lim = rate.NewLimiter(rate.Every(every), 1)
					limiters[key] = lim
				}
				mu.Unlock()

				if !lim.Allow() {
					log.Printf("[INFO] Cooldown: dropping %s from %s", cmd.Name(), v.Event.Author.Username)
					return nil
				}
				return cmd.Run(ctx)
			},
		}
	}
}

// WithCommandLogger records the invocation in the guild's command history.
func WithCommandLogger() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{
			Command: cmd,
			wrap: func(ctx interface{}) error {
				if v, ok := ctx.(*MessageContext); ok && v.Storage != nil {
					param := ""
					if len(v.Args) > 0 {
						param = v.Args[0]
					}
					rec := storage.CommandHistoryRecord{
						ChannelID: v.Event.ChannelID,
						UserID:    v.Event.Author.ID,
						Username:  v.Event.Author.Username,
						Command:   cmd.Name(),
						Param:     param,
						Datetime:  time.Now(),
					}
					if err := v.Storage.AppendCommandToHistory(v.Event.GuildID, rec); err != nil {
						log.Printf("[WARN] Failed to log command %s: %v", cmd.Name(), err)
					}
				}
				return cmd.Run(ctx)
			},
		}
	}
}
