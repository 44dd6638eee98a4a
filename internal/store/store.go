package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"newtab/internal/domain"
	"newtab/internal/logger"
	"newtab/internal/storage"
)

// Store is the single source of truth for sites, groups, settings, search
// history and the active group selection. Every mutation is written through
// to the persistence adapter; writes are best-effort and never fail the
// mutation itself.
type Store struct {
	mu    sync.RWMutex
	state domain.AppState
	kv    storage.KV
	log   logger.Logger
}

// New creates a Store holding factory defaults. Call Load to rehydrate the
// persisted state before serving traffic.
func New(kv storage.KV, log logger.Logger) *Store {
	return &Store{
		state: domain.DefaultState(),
		kv:    kv,
		log:   log,
	}
}

// Load rehydrates the state record. A missing record means a fresh
// install; a corrupt record is logged and replaced with defaults rather
// than crashing the process.
func (s *Store) Load(ctx context.Context) error {
	data, err := s.kv.Get(ctx, storage.KeyState)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return err
	}

	var state domain.AppState
	if err := json.Unmarshal(data, &state); err != nil {
		s.log.Warn("persisted state is corrupt, falling back to defaults",
			logger.Error(err))
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = normalizeState(state)
	return nil
}

// Fresh reports whether a persisted state record exists. The seed importer
// uses it to decide whether to bootstrap.
func (s *Store) Fresh(ctx context.Context) bool {
	_, err := s.kv.Get(ctx, storage.KeyState)
	return errors.Is(err, storage.ErrNotFound)
}

// persist writes the full state through to the KV. Must be called with the
// write lock held. Failures degrade to a warning; the in-memory state stays
// authoritative for the session.
func (s *Store) persist(ctx context.Context) {
	data, err := json.Marshal(s.state)
	if err != nil {
		s.log.Error("failed to marshal state", logger.Error(err))
		return
	}
	if err := s.kv.Set(ctx, storage.KeyState, data, 0); err != nil {
		s.log.Warn("failed to persist state", logger.Error(err))
	}
}

// normalizeState repairs invariants on whatever was loaded: the reserved
// groups must exist, the quote category filter must be non-empty, and nil
// slices become empty ones.
func normalizeState(state domain.AppState) domain.AppState {
	state.Groups = ensureReservedGroups(state.Groups)
	if len(state.Settings.HitokotoTypes) == 0 {
		state.Settings.HitokotoTypes = domain.DefaultHitokotoTypes()
	}
	if state.Sites == nil {
		state.Sites = []domain.Site{}
	}
	if state.SearchHistory == nil {
		state.SearchHistory = []string{}
	}
	if state.Settings.CustomSearchEngines == nil {
		state.Settings.CustomSearchEngines = []domain.SearchEngine{}
	}
	if state.ActiveGroup == "" {
		state.ActiveGroup = domain.GroupAll
	}
	return state
}

// ensureReservedGroups re-inserts "all" and "default" if absent, keeping
// them at the head in their canonical order.
func ensureReservedGroups(groups []domain.SiteGroup) []domain.SiteGroup {
	hasAll, hasDefault := false, false
	for _, g := range groups {
		switch g.ID {
		case domain.GroupAll:
			hasAll = true
		case domain.GroupDefault:
			hasDefault = true
		}
	}
	if hasAll && hasDefault {
		return groups
	}

	defaults := domain.DefaultGroups()
	restored := make([]domain.SiteGroup, 0, len(groups)+2)
	if !hasAll {
		restored = append(restored, defaults[0])
	}
	if !hasDefault {
		restored = append(restored, defaults[1])
	}
	return append(restored, groups...)
}

// ─────────────────────────────────────────────────────────────────
// Read accessors (all return copies)
// ─────────────────────────────────────────────────────────────────

// State returns a copy of the full application state.
func (s *Store) State() domain.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := s.state
	state.Sites = copySites(s.state.Sites)
	state.Groups = copyGroups(s.state.Groups)
	state.SearchHistory = copyStrings(s.state.SearchHistory)
	state.Settings = copySettings(s.state.Settings)
	return state
}

// Sites returns the sites in display order.
func (s *Store) Sites() []domain.Site {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySites(s.state.Sites)
}

// Groups returns all groups, reserved ones included.
func (s *Store) Groups() []domain.SiteGroup {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyGroups(s.state.Groups)
}

// Settings returns the current settings aggregate.
func (s *Store) Settings() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySettings(s.state.Settings)
}

// SearchHistory returns the most-recent-first query history.
func (s *Store) SearchHistory() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyStrings(s.state.SearchHistory)
}

// ActiveGroup returns the current group filter ("all" = no restriction).
func (s *Store) ActiveGroup() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.ActiveGroup
}

// The copy helpers preserve empty-vs-nil: an empty collection stays an
// empty (non-nil) slice so JSON round trips and deep comparisons hold.

func copySites(in []domain.Site) []domain.Site {
	out := make([]domain.Site, len(in))
	copy(out, in)
	return out
}

func copyGroups(in []domain.SiteGroup) []domain.SiteGroup {
	out := make([]domain.SiteGroup, len(in))
	copy(out, in)
	return out
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func copyEngines(in []domain.SearchEngine) []domain.SearchEngine {
	out := make([]domain.SearchEngine, len(in))
	copy(out, in)
	return out
}

func copySettings(in domain.Settings) domain.Settings {
	out := in
	out.HitokotoTypes = copyStrings(in.HitokotoTypes)
	out.CustomSearchEngines = copyEngines(in.CustomSearchEngines)
	return out
}
