package sound

import (
	"context"
	"errors"
	"fmt"
	"log"

	"soundbyte/internal/bot"
	"soundbyte/internal/command"
	"soundbyte/internal/ingest"
)

type UploadCommand struct {
	Ingestor *ingest.Ingestor
}

func (c *UploadCommand) Name() string        { return "upload" }
func (c *UploadCommand) Description() string { return "Upload an audio clip attachment" }
func (c *UploadCommand) Aliases() []string   { return []string{} }
func (c *UploadCommand) Group() string       { return "sound" }

func (c *UploadCommand) Run(ctx interface{}) error {
	mctx, ok := ctx.(*command.MessageContext)
	if !ok {
		return nil
	}

	s, e := mctx.Session, mctx.Event

	if len(mctx.Args) == 0 {
		bot.Reply(s, e.Message, "Please provide a valid file name.")
		return nil
	}
	fileName := mctx.Args[0]

	if len(e.Attachments) != 1 {
		bot.Reply(s, e.Message, "Attach exactly one audio file to upload.")
		return nil
	}
	att := e.Attachments[0]

	// The download finishes (or fails) before we acknowledge anything.
	err := c.Ingestor.Ingest(context.Background(), att.URL, fileName, att.ContentType)
	switch {
	case errors.Is(err, ingest.ErrUnsupportedMedia):
		bot.Reply(s, e.Message, "Only audio attachments are supported.")
	case errors.Is(err, ingest.ErrEmptyFileName):
		bot.Reply(s, e.Message, "Please provide a valid file name.")
	case err != nil:
		log.Printf("[ERR] Upload of %s failed: %v", fileName, err)
		bot.Reply(s, e.Message, fmt.Sprintf("Upload of %s failed. Try again.", fileName))
	default:
		bot.Reply(s, e.Message, fmt.Sprintf("Uploaded %s. Play it with `play %s`.", fileName, fileName))
	}
	return nil
}
