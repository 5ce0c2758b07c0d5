package storage

import (
	"path/filepath"
	"testing"
	"time"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "datastore.json"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestClipNamesRoundTrip(t *testing.T) {
	s := newTestStorage(t)

	names, err := s.ClipNames()
	if err != nil {
		t.Fatalf("ClipNames failed: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("fresh store has %d names, want 0", len(names))
	}

	if err := s.SetClipName("song1.mp3", "Favorite"); err != nil {
		t.Fatalf("SetClipName failed: %v", err)
	}
	if err := s.SetClipName("b.mp3", "Boing"); err != nil {
		t.Fatalf("SetClipName failed: %v", err)
	}

	names, err = s.ClipNames()
	if err != nil {
		t.Fatalf("ClipNames failed: %v", err)
	}
	if names["song1.mp3"] != "Favorite" || names["b.mp3"] != "Boing" {
		t.Errorf("ClipNames = %v, want both persisted names", names)
	}
}

func TestCommandHistoryIsBounded(t *testing.T) {
	s := newTestStorage(t)

	for i := 0; i < commandHistoryLimit+5; i++ {
		rec := CommandHistoryRecord{
			ChannelID: "c1",
			UserID:    "u1",
			Username:  "user",
			Command:   "play",
			Param:     "song1.mp3",
			Datetime:  time.Now(),
		}
		if err := s.AppendCommandToHistory("g1", rec); err != nil {
			t.Fatalf("AppendCommandToHistory failed: %v", err)
		}
	}

	history, err := s.FetchCommandHistory("g1")
	if err != nil {
		t.Fatalf("FetchCommandHistory failed: %v", err)
	}
	if len(history) != commandHistoryLimit {
		t.Errorf("history length = %d, want %d", len(history), commandHistoryLimit)
	}
}

func TestHistoryIsPerGuild(t *testing.T) {
	s := newTestStorage(t)

	rec := CommandHistoryRecord{Command: "list", Datetime: time.Now()}
	if err := s.AppendCommandToHistory("g1", rec); err != nil {
		t.Fatalf("AppendCommandToHistory failed: %v", err)
	}

	other, err := s.FetchCommandHistory("g2")
	if err != nil {
		t.Fatalf("FetchCommandHistory failed: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("g2 history length = %d, want 0", len(other))
	}
}
