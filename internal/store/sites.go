package store

import (
	"context"

	"newtab/internal/domain"
)

// SiteInput carries the caller-supplied fields for a new site.
type SiteInput struct {
	Name    string `json:"name"`
	URL     string `json:"url"`
	Icon    string `json:"icon,omitempty"`
	GroupID string `json:"groupId"`
}

// SitePatch is a partial site update; nil fields are left untouched.
type SitePatch struct {
	Name    *string `json:"name,omitempty"`
	URL     *string `json:"url,omitempty"`
	Icon    *string `json:"icon,omitempty"`
	GroupID *string `json:"groupId,omitempty"`
}

// AddSite appends a new site with a freshly generated id. URL
// well-formedness is the caller's responsibility.
func (s *Store) AddSite(ctx context.Context, in SiteInput) domain.Site {
	site := domain.Site{
		ID:      domain.NewID(),
		Name:    in.Name,
		URL:     in.URL,
		Icon:    in.Icon,
		GroupID: in.GroupID,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Sites = append(s.state.Sites, site)
	s.persist(ctx)
	return site
}

// UpdateSite merges the patch into the matching site. Unknown ids are a
// silent no-op.
func (s *Store) UpdateSite(ctx context.Context, id string, patch SitePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Sites {
		if s.state.Sites[i].ID != id {
			continue
		}
		if patch.Name != nil {
			s.state.Sites[i].Name = *patch.Name
		}
		if patch.URL != nil {
			s.state.Sites[i].URL = *patch.URL
		}
		if patch.Icon != nil {
			s.state.Sites[i].Icon = *patch.Icon
		}
		if patch.GroupID != nil {
			s.state.Sites[i].GroupID = *patch.GroupID
		}
		s.persist(ctx)
		return
	}
}

// DeleteSite removes the matching site. Idempotent.
func (s *Store) DeleteSite(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.state.Sites[:0]
	for _, site := range s.state.Sites {
		if site.ID != id {
			kept = append(kept, site)
		}
	}
	s.state.Sites = kept
	s.persist(ctx)
}

// ReorderSites replaces the whole sites sequence with the caller-supplied
// order. The store does not check that the new list is a permutation of the
// old one; whatever is passed becomes the new truth. This is the only way
// display order changes.
func (s *Store) ReorderSites(ctx context.Context, sites []domain.Site) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Sites = copySites(sites)
	s.persist(ctx)
}

// AddGroup appends a user group; its order slot is the current group count.
// Group names are not required to be unique.
func (s *Store) AddGroup(ctx context.Context, name string) domain.SiteGroup {
	s.mu.Lock()
	defer s.mu.Unlock()

	group := domain.SiteGroup{
		ID:    domain.NewID(),
		Name:  name,
		Order: len(s.state.Groups),
	}
	s.state.Groups = append(s.state.Groups, group)
	s.persist(ctx)
	return group
}

// UpdateGroup renames a group. Unknown ids are a silent no-op.
func (s *Store) UpdateGroup(ctx context.Context, id, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Groups {
		if s.state.Groups[i].ID == id {
			s.state.Groups[i].Name = name
			s.persist(ctx)
			return
		}
	}
}

// DeleteGroup removes a user group and reassigns its member sites to the
// default group. The reserved groups are filtered out defensively even when
// passed directly.
func (s *Store) DeleteGroup(ctx context.Context, id string) {
	if id == domain.GroupAll || id == domain.GroupDefault {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.state.Groups[:0]
	for _, group := range s.state.Groups {
		if group.ID != id {
			kept = append(kept, group)
		}
	}
	s.state.Groups = kept

	for i := range s.state.Sites {
		if s.state.Sites[i].GroupID == id {
			s.state.Sites[i].GroupID = domain.GroupDefault
		}
	}
	s.persist(ctx)
}

// SetActiveGroup records the current group filter. "all" means no
// restriction.
func (s *Store) SetActiveGroup(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ActiveGroup = id
	s.persist(ctx)
}
