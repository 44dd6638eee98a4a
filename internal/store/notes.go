package store

import (
	"context"
	"errors"
	"sync"

	"newtab/internal/logger"
	"newtab/internal/storage"
)

// NotesStore holds the free-text notes content under its own persisted
// record. Edit debouncing is the UI's concern; the store just commits
// whatever it is handed.
type NotesStore struct {
	mu      sync.RWMutex
	content string
	kv      storage.KV
	log     logger.Logger
}

// NewNotesStore creates an empty notes store.
func NewNotesStore(kv storage.KV, log logger.Logger) *NotesStore {
	return &NotesStore{kv: kv, log: log}
}

// Load rehydrates the notes record; a missing record means empty notes.
func (n *NotesStore) Load(ctx context.Context) error {
	data, err := n.kv.Get(ctx, storage.KeyNotes)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return err
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	n.content = string(data)
	return nil
}

// Get returns the notes content.
func (n *NotesStore) Get() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.content
}

// Set replaces the notes content and writes it through.
func (n *NotesStore) Set(ctx context.Context, content string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.content = content
	if err := n.kv.Set(ctx, storage.KeyNotes, []byte(content), 0); err != nil {
		n.log.Warn("failed to persist notes", logger.Error(err))
	}
}
