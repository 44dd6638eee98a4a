package deps

import (
	"time"

	"github.com/redis/go-redis/v9"

	"newtab/internal/favicon"
	"newtab/internal/logger"
	"newtab/internal/quote"
	"newtab/internal/storage"
	"newtab/internal/store"
	"newtab/internal/sync"
	"newtab/internal/wallpaper"
	"newtab/internal/weather"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	TimeNow   func() time.Time // for testing, defaults to time.Now

	Store *store.Store      // sites, groups, settings, search history
	Todos *store.TodoStore  // todo widget state
	Notes *store.NotesStore // notes widget state
	KV    storage.KV        // shared persistence adapter (widget caches)

	RedisClient *redis.Client // nil when running on the in-memory adapter

	Quote     *quote.Client
	Weather   *weather.Client
	Wallpaper *wallpaper.Client
	Favicon   *favicon.Resolver
	Sync      *sync.Orchestrator

	SyncTrigger chan struct{} // manual auto-sync kick (nil if auto sync disabled)

	AllowedOrigins []string // CORS allow-list, empty = any origin
}
