package sync

import (
	"context"
	"time"

	"newtab/internal/logger"
	"newtab/internal/store"
)

// AutoSyncer periodically uploads the snapshot while auto sync is
// enabled in settings. The flag is re-read on every tick, so toggling it
// does not require a restart.
type AutoSyncer struct {
	orch          *Orchestrator
	store         *store.Store
	log           logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewAutoSyncer creates an auto syncer. manualTrigger may be nil.
func NewAutoSyncer(
	orch *Orchestrator,
	st *store.Store,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *AutoSyncer {
	return &AutoSyncer{
		orch:          orch,
		store:         st,
		log:           log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start begins the periodic upload loop.
func (a *AutoSyncer) Start(ctx context.Context) {
	ticker := time.NewTicker(a.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				a.run(ctx)
			case <-a.manualTrigger:
				a.log.Info("manual sync triggered")
				a.run(ctx)
			case <-a.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop stops the loop.
func (a *AutoSyncer) Stop() {
	close(a.stopCh)
}

func (a *AutoSyncer) run(ctx context.Context) {
	cfg := a.store.Settings().WebDAV
	if !cfg.AutoSync || cfg.URL == "" {
		return
	}
	if err := a.orch.Up(ctx); err != nil {
		a.log.Warn("auto sync failed", logger.Error(err))
	}
}
