package store

import (
	"context"

	"newtab/internal/domain"
)

// SettingsPatch is a partial settings update; nil fields are untouched.
//
// The merge is shallow: the nested Wallpaper and WebDAV blocks replace the
// stored object wholesale when present. Callers must always send the full
// nested block back, exactly as the dashboard UI does.
type SettingsPatch struct {
	Theme                  *string                 `json:"theme,omitempty"`
	ThemeColor             *string                 `json:"themeColor,omitempty"`
	Wallpaper              *domain.WallpaperConfig `json:"wallpaper,omitempty"`
	CardRadius             *int                    `json:"cardRadius,omitempty"`
	CardOpacity            *float64                `json:"cardOpacity,omitempty"`
	CardGlassEffect        *bool                   `json:"cardGlassEffect,omitempty"`
	CardBlur               *int                    `json:"cardBlur,omitempty"`
	CardSize               *string                 `json:"cardSize,omitempty"`
	AddButtonPosition      *string                 `json:"addButtonPosition,omitempty"`
	ShowRandomWallpaperBtn *bool                   `json:"showRandomWallpaperBtn,omitempty"`
	ShowWeather            *bool                   `json:"showWeather,omitempty"`
	WeatherCity            *string                 `json:"weatherCity,omitempty"`
	ShowTodo               *bool                   `json:"showTodo,omitempty"`
	ShowNotes              *bool                   `json:"showNotes,omitempty"`
	HitokotoTypes          *[]string               `json:"hitokotoTypes,omitempty"`
	SearchEngine           *string                 `json:"searchEngine,omitempty"`
	CustomSearchEngines    *[]domain.SearchEngine  `json:"customSearchEngines,omitempty"`
	WebDAV                 *domain.WebDAVConfig    `json:"webdav,omitempty"`
}

// UpdateSettings shallow-merges the patch into the settings aggregate.
// Clearing the quote category filter restores the default categories; the
// filter is never empty.
func (s *Store) UpdateSettings(ctx context.Context, patch SettingsPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := &s.state.Settings
	if patch.Theme != nil {
		st.Theme = *patch.Theme
	}
	if patch.ThemeColor != nil {
		st.ThemeColor = *patch.ThemeColor
	}
	if patch.Wallpaper != nil {
		st.Wallpaper = *patch.Wallpaper
	}
	if patch.CardRadius != nil {
		st.CardRadius = *patch.CardRadius
	}
	if patch.CardOpacity != nil {
		st.CardOpacity = *patch.CardOpacity
	}
	if patch.CardGlassEffect != nil {
		st.CardGlassEffect = *patch.CardGlassEffect
	}
	if patch.CardBlur != nil {
		st.CardBlur = *patch.CardBlur
	}
	if patch.CardSize != nil {
		st.CardSize = *patch.CardSize
	}
	if patch.AddButtonPosition != nil {
		st.AddButtonPosition = *patch.AddButtonPosition
	}
	if patch.ShowRandomWallpaperBtn != nil {
		st.ShowRandomWallpaperBtn = *patch.ShowRandomWallpaperBtn
	}
	if patch.ShowWeather != nil {
		st.ShowWeather = *patch.ShowWeather
	}
	if patch.WeatherCity != nil {
		st.WeatherCity = *patch.WeatherCity
	}
	if patch.ShowTodo != nil {
		st.ShowTodo = *patch.ShowTodo
	}
	if patch.ShowNotes != nil {
		st.ShowNotes = *patch.ShowNotes
	}
	if patch.HitokotoTypes != nil {
		if len(*patch.HitokotoTypes) == 0 {
			st.HitokotoTypes = domain.DefaultHitokotoTypes()
		} else {
			st.HitokotoTypes = copyStrings(*patch.HitokotoTypes)
		}
	}
	if patch.SearchEngine != nil {
		st.SearchEngine = *patch.SearchEngine
	}
	if patch.CustomSearchEngines != nil {
		st.CustomSearchEngines = copyEngines(*patch.CustomSearchEngines)
	}
	if patch.WebDAV != nil {
		st.WebDAV = *patch.WebDAV
	}

	s.persist(ctx)
}

// EngineInput carries the caller-supplied fields for a custom engine.
type EngineInput struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Icon string `json:"icon"`
}

// AddSearchEngine appends a custom search engine with a fresh id. Built-in
// engines are fixed and live outside the store.
func (s *Store) AddSearchEngine(ctx context.Context, in EngineInput) domain.SearchEngine {
	engine := domain.SearchEngine{
		ID:       domain.NewID(),
		Name:     in.Name,
		URL:      in.URL,
		Icon:     in.Icon,
		IsCustom: true,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Settings.CustomSearchEngines = append(s.state.Settings.CustomSearchEngines, engine)
	s.persist(ctx)
	return engine
}

// RemoveSearchEngine removes a custom engine. Built-ins are unaffected
// because they never appear in CustomSearchEngines.
func (s *Store) RemoveSearchEngine(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.state.Settings.CustomSearchEngines[:0]
	for _, engine := range s.state.Settings.CustomSearchEngines {
		if engine.ID != id {
			kept = append(kept, engine)
		}
	}
	s.state.Settings.CustomSearchEngines = kept
	s.persist(ctx)
}

// maxSearchHistory bounds the query history length.
const maxSearchHistory = 20

// AddSearchHistory prepends the query, dropping any earlier duplicate and
// truncating to the bound.
func (s *Store) AddSearchHistory(ctx context.Context, query string) {
	if query == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	history := make([]string, 0, len(s.state.SearchHistory)+1)
	history = append(history, query)
	for _, q := range s.state.SearchHistory {
		if q != query {
			history = append(history, q)
		}
	}
	if len(history) > maxSearchHistory {
		history = history[:maxSearchHistory]
	}
	s.state.SearchHistory = history
	s.persist(ctx)
}

// ClearSearchHistory empties the query history.
func (s *Store) ClearSearchHistory(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SearchHistory = []string{}
	s.persist(ctx)
}
