package storage

const (
	// KeyState holds the full AppState snapshot.
	KeyState = "newtab:state"
	// KeyTodos holds the todo widget items.
	KeyTodos = "newtab:todos"
	// KeyNotes holds the free-text notes content.
	KeyNotes = "newtab:notes"
	// KeyQuoteCache is the single-slot quote cache (30 minute TTL).
	KeyQuoteCache = "newtab:cache:hitokoto"
	// KeyWallpaperCache is the daily wallpaper cache (24 hour TTL).
	KeyWallpaperCache = "newtab:cache:wallpaper"
)
