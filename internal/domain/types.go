package domain

import "github.com/google/uuid"

// Reserved group ids.
//
// GroupAll is a virtual "show everything" filter: it never contains sites
// and can never be deleted. GroupDefault is the fallback container that
// adopts sites whose group gets deleted; it can never be deleted either.
const (
	GroupAll     = "all"
	GroupDefault = "default"
)

// Site is a user-added link shown as a card on the dashboard.
// Position inside the sites slice is the display order.
type Site struct {
	// ID is an opaque unique identifier generated client-side.
	ID string `json:"id"`

	// Name is the label rendered on the card.
	Name string `json:"name"`

	// URL is the link target. Callers are expected to normalize it
	// (see NormalizeURL); the store does not validate well-formedness.
	URL string `json:"url"`

	// Icon is an optional icon URL.
	Icon string `json:"icon,omitempty"`

	// GroupID is a soft foreign key to a SiteGroup. It is only enforced
	// on group deletion, when member sites fall back to GroupDefault.
	GroupID string `json:"groupId"`
}

// SiteGroup is a named bucket of sites.
type SiteGroup struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Order int    `json:"order"`
}

// SearchEngine describes a search target. URL is a prefix the raw query
// gets appended to after escaping (ex: "https://www.google.com/search?q=").
type SearchEngine struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	Icon     string `json:"icon"`
	IsCustom bool   `json:"isCustom,omitempty"`
}

// WallpaperSource selects where the dashboard background comes from.
type WallpaperSource string

const (
	WallpaperBing  WallpaperSource = "bing"
	WallpaperLocal WallpaperSource = "local"
	WallpaperColor WallpaperSource = "color"
)

// WallpaperConfig is the nested wallpaper block of Settings.
// Settings updates replace this object wholesale (no deep merge), so
// callers must always send the full block back.
type WallpaperConfig struct {
	Source WallpaperSource `json:"source"`
	URL    string          `json:"url,omitempty"`
	Color  string          `json:"color,omitempty"`
	Blur   int             `json:"blur"`
}

// WebDAVConfig holds the backup endpoint credentials.
// Same replace-on-write rule as WallpaperConfig.
type WebDAVConfig struct {
	URL      string `json:"url"`
	Username string `json:"username"`
	Password string `json:"password"`
	AutoSync bool   `json:"autoSync"`
}

// Settings is the single per-installation preferences aggregate.
type Settings struct {
	Theme                  string          `json:"theme"` // "light" | "dark" | "system"
	ThemeColor             string          `json:"themeColor"`
	Wallpaper              WallpaperConfig `json:"wallpaper"`
	CardRadius             int             `json:"cardRadius"`
	CardOpacity            float64         `json:"cardOpacity"`
	CardGlassEffect        bool            `json:"cardGlassEffect"`
	CardBlur               int             `json:"cardBlur"`
	CardSize               string          `json:"cardSize"` // "small" | "medium" | "large"
	AddButtonPosition      string          `json:"addButtonPosition"`
	ShowRandomWallpaperBtn bool            `json:"showRandomWallpaperBtn"`
	ShowWeather            bool            `json:"showWeather"`
	WeatherCity            string          `json:"weatherCity"`
	ShowTodo               bool            `json:"showTodo"`
	ShowNotes              bool            `json:"showNotes"`
	HitokotoTypes          []string        `json:"hitokotoTypes"`
	SearchEngine           string          `json:"searchEngine"`
	CustomSearchEngines    []SearchEngine  `json:"customSearchEngines"`
	WebDAV                 WebDAVConfig    `json:"webdav"`
}

// Snapshot is the export/import unit: sites, groups and settings.
// Search history is intentionally excluded from backups.
type Snapshot struct {
	Sites    []Site      `json:"sites"`
	Groups   []SiteGroup `json:"groups"`
	Settings Settings    `json:"settings"`
}

// AppState is the full persisted record, rehydrated at startup and written
// through on every mutation.
type AppState struct {
	Sites         []Site      `json:"sites"`
	Groups        []SiteGroup `json:"groups"`
	Settings      Settings    `json:"settings"`
	SearchHistory []string    `json:"searchHistory"`
	ActiveGroup   string      `json:"activeGroup"`
}

// Todo is a single entry of the todo widget. Todos live in their own
// persisted record, separate from AppState.
type Todo struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	CreatedAt int64  `json:"createdAt"` // unix milliseconds
}

// NewID generates an opaque unique id for sites, groups, engines and todos.
// Collisions are accepted as negligible; there is no central allocator.
func NewID() string {
	return uuid.NewString()
}
