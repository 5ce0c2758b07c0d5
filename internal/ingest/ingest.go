package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"soundbyte/internal/clips"
)

var (
	ErrEmptyFileName    = errors.New("file name is required")
	ErrUnsupportedMedia = errors.New("attachment is not an audio file")
)

// Ingestor downloads attachment payloads into the clips directory and
// registers them. The write completes (or fails) before Ingest returns, so
// the caller only acknowledges a finished upload.
type Ingestor struct {
	client   *http.Client
	dir      string
	registry *clips.Registry
}

func New(dir string, timeout time.Duration, registry *clips.Registry) *Ingestor {
	return &Ingestor{
		client:   &http.Client{Timeout: timeout},
		dir:      dir,
		registry: registry,
	}
}

// Ingest fetches url and stores it as a clip under fileName. contentType
// must carry the audio media-type prefix.
func (ing *Ingestor) Ingest(ctx context.Context, url, fileName, contentType string) error {
	if strings.TrimSpace(fileName) == "" {
		return ErrEmptyFileName
	}
	if !strings.HasPrefix(contentType, "audio/") {
		return ErrUnsupportedMedia
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := ing.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to download %s: unexpected status %s", url, resp.Status)
	}

	if err := os.MkdirAll(ing.dir, 0755); err != nil {
		return fmt.Errorf("failed to create clips dir: %w", err)
	}

	// Strip any path components a hostile uploader might smuggle in.
	name := filepath.Base(fileName)
	dest := filepath.Join(ing.dir, name)

	tmp, err := os.CreateTemp(ing.dir, ".upload-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write %s: %w", dest, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close %s: %w", dest, err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to move %s into place: %w", dest, err)
	}

	ing.registry.Register(name)
	log.Printf("[INFO] Uploaded clip %s (%s)", name, contentType)
	return nil
}
