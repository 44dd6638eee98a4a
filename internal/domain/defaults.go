package domain

// HitokotoCategories maps quote category codes to their display names.
// The keys are the only valid values for Settings.HitokotoTypes.
var HitokotoCategories = map[string]string{
	"a": "动画",
	"b": "漫画",
	"c": "游戏",
	"d": "文学",
	"e": "原创",
	"f": "来自网络",
	"g": "其他",
	"h": "影视",
	"i": "诗词",
	"j": "网易云",
	"k": "哲学",
	"l": "抖机灵",
}

// DefaultHitokotoTypes is restored whenever the category filter would
// become empty; the filter must always contain at least one category.
func DefaultHitokotoTypes() []string {
	return []string{"a", "d", "i", "k"}
}

// DefaultSearchEngines are the built-in engines. They are immutable and
// cannot be removed; user-added engines live in
// Settings.CustomSearchEngines.
func DefaultSearchEngines() []SearchEngine {
	return []SearchEngine{
		{ID: "google", Name: "Google", URL: "https://www.google.com/search?q=", Icon: "https://www.google.com/favicon.ico"},
		{ID: "bing", Name: "Bing", URL: "https://www.bing.com/search?q=", Icon: "https://www.bing.com/favicon.ico"},
		{ID: "baidu", Name: "百度", URL: "https://www.baidu.com/s?wd=", Icon: "https://www.baidu.com/favicon.ico"},
		{ID: "duckduckgo", Name: "DuckDuckGo", URL: "https://duckduckgo.com/?q=", Icon: "https://duckduckgo.com/favicon.ico"},
	}
}

// DefaultGroups returns the two reserved groups present on a fresh install.
func DefaultGroups() []SiteGroup {
	return []SiteGroup{
		{ID: GroupAll, Name: "全部", Order: 0},
		{ID: GroupDefault, Name: "默认", Order: 1},
	}
}

// DefaultSettings returns the factory settings for a fresh install.
func DefaultSettings() Settings {
	return Settings{
		Theme:      "system",
		ThemeColor: "#14b8a6",
		Wallpaper: WallpaperConfig{
			Source: WallpaperBing,
			Blur:   0,
		},
		CardRadius:             12,
		CardOpacity:            0.8,
		CardGlassEffect:        false,
		CardBlur:               10,
		CardSize:               "medium",
		AddButtonPosition:      "both",
		ShowRandomWallpaperBtn: true,
		ShowWeather:            true,
		WeatherCity:            "",
		ShowTodo:               false,
		ShowNotes:              false,
		HitokotoTypes:          DefaultHitokotoTypes(),
		SearchEngine:           "google",
		CustomSearchEngines:    []SearchEngine{},
		WebDAV:                 WebDAVConfig{},
	}
}

// DefaultState returns the factory AppState: no sites, the two reserved
// groups, default settings, empty history and the "all" filter active.
func DefaultState() AppState {
	return AppState{
		Sites:         []Site{},
		Groups:        DefaultGroups(),
		Settings:      DefaultSettings(),
		SearchHistory: []string{},
		ActiveGroup:   GroupAll,
	}
}
