package ingest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"soundbyte/internal/clips"
)

func newTestServer(t *testing.T, body []byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestIngestStoresAndRegisters(t *testing.T) {
	dir := t.TempDir()
	registry := clips.NewRegistry()
	srv := newTestServer(t, []byte("fake mp3 bytes"))

	ing := New(dir, 5*time.Second, registry)
	err := ing.Ingest(context.Background(), srv.URL, "song1.mp3", "audio/mpeg")
	if err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "song1.mp3"))
	if err != nil {
		t.Fatalf("clip file not written: %v", err)
	}
	if string(data) != "fake mp3 bytes" {
		t.Errorf("clip content = %q, want downloaded bytes", data)
	}

	clip, err := registry.Find("song1.mp3")
	if err != nil {
		t.Fatalf("clip not registered: %v", err)
	}
	if clip.DisplayName != "song1.mp3" {
		t.Errorf("DisplayName = %q, want %q", clip.DisplayName, "song1.mp3")
	}
}

func TestIngestRejectsNonAudio(t *testing.T) {
	dir := t.TempDir()
	registry := clips.NewRegistry()
	srv := newTestServer(t, []byte("png bytes"))

	ing := New(dir, 5*time.Second, registry)
	err := ing.Ingest(context.Background(), srv.URL, "pic.png", "image/png")
	if !errors.Is(err, ErrUnsupportedMedia) {
		t.Fatalf("Ingest err = %v, want ErrUnsupportedMedia", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "pic.png")); !os.IsNotExist(err) {
		t.Errorf("file was written despite rejection")
	}
	if registry.Len() != 0 {
		t.Errorf("registry has %d entries, want 0", registry.Len())
	}
}

func TestIngestRejectsMissingContentType(t *testing.T) {
	ing := New(t.TempDir(), 5*time.Second, clips.NewRegistry())

	err := ing.Ingest(context.Background(), "http://unused", "song.mp3", "")
	if !errors.Is(err, ErrUnsupportedMedia) {
		t.Errorf("Ingest err = %v, want ErrUnsupportedMedia", err)
	}
}

func TestIngestRejectsEmptyFileName(t *testing.T) {
	ing := New(t.TempDir(), 5*time.Second, clips.NewRegistry())

	err := ing.Ingest(context.Background(), "http://unused", "  ", "audio/mpeg")
	if !errors.Is(err, ErrEmptyFileName) {
		t.Errorf("Ingest err = %v, want ErrEmptyFileName", err)
	}
}

func TestIngestSurfacesDownloadFailure(t *testing.T) {
	dir := t.TempDir()
	registry := clips.NewRegistry()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)

	ing := New(dir, 5*time.Second, registry)
	err := ing.Ingest(context.Background(), srv.URL, "song1.mp3", "audio/mpeg")
	if err == nil {
		t.Fatal("Ingest succeeded on a 404 download")
	}

	if _, statErr := os.Stat(filepath.Join(dir, "song1.mp3")); !os.IsNotExist(statErr) {
		t.Errorf("file was written despite failed download")
	}
	if registry.Len() != 0 {
		t.Errorf("registry has %d entries, want 0", registry.Len())
	}
}

func TestIngestStripsPathComponents(t *testing.T) {
	dir := t.TempDir()
	registry := clips.NewRegistry()
	srv := newTestServer(t, []byte("bytes"))

	ing := New(dir, 5*time.Second, registry)
	err := ing.Ingest(context.Background(), srv.URL, "../escape.mp3", "audio/mpeg")
	if err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "escape.mp3")); err != nil {
		t.Errorf("sanitized file missing: %v", err)
	}
	if _, err := registry.Find("escape.mp3"); err != nil {
		t.Errorf("sanitized name not registered: %v", err)
	}
}
