// Package jsonstore is JSON-backed storage. Single file, human-readable,
// portable. No locking; fine for a local single-user app.
package jsonstore

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/tickdone/tick/internal/logging"
	"github.com/tickdone/tick/internal/model"
)

// Store reads and writes the todo list at a fixed path. It implements
// store.Store: loads repair or drop what they cannot decode, saves
// swallow their errors. Either way the caller never sees a failure.
type Store struct {
	path string
	log  *log.Logger
}

func New(path string) *Store {
	return &Store{path: path, log: logging.New("store")}
}

// Load reads the slot and coerces whatever it finds into a valid list.
// Missing file, unreadable file, non-JSON content, or a JSON value that
// is not an array all read as an empty list. Array entries must be
// objects; field by field, a wrong-typed id is replaced with a fresh
// one, a wrong-typed text with "", a wrong-typed createdAt with the
// current time. Entries whose trimmed text ends up empty are dropped.
func (s *Store) Load() []model.Item {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Debug("load: read failed", "path", s.path, "err", err)
		}
		return []model.Item{}
	}
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		s.log.Debug("load: not valid JSON, starting empty", "path", s.path, "err", err)
		return []model.Item{}
	}
	arr, ok := raw.([]any)
	if !ok {
		s.log.Debug("load: top-level value is not an array, starting empty", "path", s.path)
		return []model.Item{}
	}
	items := make([]model.Item, 0, len(arr))
	for i, e := range arr {
		obj, ok := e.(map[string]any)
		if !ok {
			s.log.Debug("load: dropping non-object entry", "index", i)
			continue
		}
		var it model.Item
		if id, ok := obj["id"].(string); ok {
			it.ID = id
		} else {
			it.ID = model.NewID()
		}
		if text, ok := obj["text"].(string); ok {
			it.Text = text
		}
		if ts, ok := obj["createdAt"].(float64); ok {
			it.CreatedAt = int64(ts)
		} else {
			it.CreatedAt = model.Now()
		}
		if strings.TrimSpace(it.Text) == "" {
			s.log.Debug("load: dropping entry with empty text", "index", i)
			continue
		}
		items = append(items, it)
	}
	return items
}

// Save overwrites the slot with the full list. Failures are logged at
// debug level and otherwise ignored; the session continues in memory.
func (s *Store) Save(items []model.Item) {
	if items == nil {
		items = []model.Item{}
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		s.log.Debug("save: marshal failed", "err", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		s.log.Debug("save: mkdir failed", "path", s.path, "err", err)
		return
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		s.log.Debug("save: write failed", "path", s.path, "err", err)
	}
}
