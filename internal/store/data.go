package store

import (
	"context"
	"encoding/json"
	"fmt"

	"newtab/internal/domain"
)

// ExportData returns the transferable snapshot: sites, groups and
// settings. Search history stays local and is not part of backups.
func (s *Store) ExportData() domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.Snapshot{
		Sites:    copySites(s.state.Sites),
		Groups:   copyGroups(s.state.Groups),
		Settings: copySettings(s.state.Settings),
	}
}

// rawSnapshot defers settings decoding so absent fields can fall back to
// defaults instead of zero values.
type rawSnapshot struct {
	Sites    []domain.Site      `json:"sites"`
	Groups   []domain.SiteGroup `json:"groups"`
	Settings json.RawMessage    `json:"settings"`
}

// ImportData replaces sites and groups wholesale with the payload's arrays
// and overlays the payload's settings on top of factory defaults, so a
// backup taken before a settings field existed still imports with a sane
// value for it. A malformed payload leaves the store untouched.
func (s *Store) ImportData(ctx context.Context, data []byte) error {
	var raw rawSnapshot
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("bad backup format: %w", err)
	}

	settings := domain.DefaultSettings()
	if len(raw.Settings) > 0 {
		if err := json.Unmarshal(raw.Settings, &settings); err != nil {
			return fmt.Errorf("bad settings format: %w", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if raw.Sites == nil {
		raw.Sites = []domain.Site{}
	}
	s.state.Sites = raw.Sites
	s.state.Groups = ensureReservedGroups(raw.Groups)
	if len(settings.HitokotoTypes) == 0 {
		settings.HitokotoTypes = domain.DefaultHitokotoTypes()
	}
	if settings.CustomSearchEngines == nil {
		settings.CustomSearchEngines = []domain.SearchEngine{}
	}
	s.state.Settings = settings
	s.persist(ctx)
	return nil
}

// ResetSettings restores factory settings. Sites, groups and history are
// untouched.
func (s *Store) ResetSettings(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Settings = domain.DefaultSettings()
	s.persist(ctx)
}

// ResetAll restores the complete factory state: no sites, the two reserved
// groups, default settings, empty history, "all" active.
func (s *Store) ResetAll(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = domain.DefaultState()
	s.persist(ctx)
}
