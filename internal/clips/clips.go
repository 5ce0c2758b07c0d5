package clips

import (
	"errors"
	"iter"
	"log"
	"os"
	"slices"
	"strings"
	"sync"
)

var (
	ErrNotFound  = errors.New("no clip matches that name")
	ErrNameTaken = errors.New("that display name is already taken")
)

// Clip is a stored audio file plus its resolvable names.
type Clip struct {
	FileName    string
	DisplayName string
}

// Label returns the human-facing name of the clip.
func (c Clip) Label() string {
	if c.DisplayName != "" {
		return c.DisplayName
	}
	return c.FileName
}

// Registry is the single source of truth for known clips. Lookups return the
// first match, so duplicate registrations are tolerated.
type Registry struct {
	mu      sync.Mutex
	entries []Clip
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Load rescans dir and replaces the registry with one entry per file found,
// display name defaulting to the file name. A scan failure is logged and
// leaves the previous state untouched.
func (r *Registry) Load(dir string) {
	files, err := os.ReadDir(dir)
	if err != nil {
		log.Printf("[WARN] Failed to scan clips dir %s: %v", dir, err)
		return
	}

	entries := make([]Clip, 0, len(files))
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		entries = append(entries, Clip{FileName: f.Name(), DisplayName: f.Name()})
	}

	r.mu.Lock()
	r.entries = entries
	r.mu.Unlock()

	log.Printf("[INFO] Loaded %d clip(s) from %s", len(entries), dir)
}

// Register appends a clip with its display name defaulting to the file name.
// No uniqueness check: the filesystem namespace already makes file names
// unique, and a re-upload is last-write-wins on disk.
func (r *Registry) Register(fileName string) {
	r.mu.Lock()
	r.entries = append(r.entries, Clip{FileName: fileName, DisplayName: fileName})
	r.mu.Unlock()
}

// Rename records newName as an additional display name for fileName. The old
// name stays resolvable. Returns ErrNameTaken when another clip already uses
// newName, compared case-insensitively.
func (r *Registry) Rename(fileName, newName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.entries {
		if c.FileName != fileName && strings.EqualFold(c.DisplayName, newName) {
			return ErrNameTaken
		}
	}

	r.entries = append(r.entries, Clip{FileName: fileName, DisplayName: newName})
	return nil
}

// Find returns the first clip whose file name or display name equals token.
// Matching is case-sensitive.
func (r *Registry) Find(token string) (Clip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.entries {
		if c.FileName == token || c.DisplayName == token {
			return c, nil
		}
	}
	return Clip{}, ErrNotFound
}

// List yields display strings in registry order. The sequence snapshots the
// registry on each range, so it is restartable.
func (r *Registry) List() iter.Seq[string] {
	return func(yield func(string) bool) {
		r.mu.Lock()
		snapshot := slices.Clone(r.entries)
		r.mu.Unlock()

		for _, c := range snapshot {
			if !yield(c.Label()) {
				return
			}
		}
	}
}

// Len reports the number of registry entries.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Restore re-applies persisted display names after a Load. Names for files
// no longer on disk are skipped, and collisions follow Rename rules.
func (r *Registry) Restore(names map[string]string) {
	for file, name := range names {
		if _, err := r.Find(file); err != nil {
			continue
		}
		if err := r.Rename(file, name); err != nil {
			log.Printf("[WARN] Skipping persisted name %q for %s: %v", name, file, err)
		}
	}
}
