// Package sync pushes the exported snapshot to a WebDAV endpoint and
// pulls it back. One backup object per endpoint, last writer wins.
package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"newtab/internal/domain"
	"newtab/internal/logger"
	"newtab/internal/store"
	"newtab/internal/webdav"
)

// Status is the transient outcome of the most recent sync attempt.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusSyncing Status = "syncing"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// statusHold is how long a terminal status stays visible before the
// orchestrator reports idle again.
const statusHold = 3 * time.Second

// ErrNotConfigured is returned when no WebDAV endpoint is set.
var ErrNotConfigured = errors.New("webdav is not configured")

// Remote is the backup transport. Satisfied by *webdav.Client.
type Remote interface {
	Test(ctx context.Context) bool
	Upload(ctx context.Context, payload []byte) bool
	Download(ctx context.Context) []byte
}

// Orchestrator drives backup and restore against the endpoint currently
// held in settings. The client is rebuilt from settings on every call so
// credential changes take effect immediately.
type Orchestrator struct {
	store *store.Store
	log   logger.Logger
	dial  func(cfg domain.WebDAVConfig) Remote
	hold  time.Duration

	mu     sync.Mutex
	status Status
	rev    int
}

// New creates an orchestrator bound to the store.
func New(st *store.Store, log logger.Logger) *Orchestrator {
	return &Orchestrator{
		store: st,
		log:   log,
		dial: func(cfg domain.WebDAVConfig) Remote {
			return webdav.New(cfg.URL, cfg.Username, cfg.Password, log)
		},
		hold:   statusHold,
		status: StatusIdle,
	}
}

// Status reports the current sync state.
func (o *Orchestrator) Status() Status {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status
}

// TestConnection probes the given endpoint without touching settings.
func (o *Orchestrator) TestConnection(ctx context.Context, cfg domain.WebDAVConfig) bool {
	if cfg.URL == "" {
		return false
	}
	return o.dial(cfg).Test(ctx)
}

// Up exports the current snapshot and uploads it.
func (o *Orchestrator) Up(ctx context.Context) error {
	remote, err := o.remote()
	if err != nil {
		return err
	}
	o.setStatus(StatusSyncing)

	payload, err := json.Marshal(o.store.ExportData())
	if err != nil {
		o.finish(StatusError)
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if !remote.Upload(ctx, payload) {
		o.finish(StatusError)
		return errors.New("upload to webdav failed")
	}

	o.log.Info("snapshot uploaded to webdav")
	o.finish(StatusSuccess)
	return nil
}

// Down downloads the remote backup and imports it. A payload the store
// rejects leaves local state untouched.
func (o *Orchestrator) Down(ctx context.Context) error {
	remote, err := o.remote()
	if err != nil {
		return err
	}
	o.setStatus(StatusSyncing)

	data := remote.Download(ctx)
	if data == nil {
		o.finish(StatusError)
		return errors.New("download from webdav failed")
	}

	if err := o.store.ImportData(ctx, data); err != nil {
		o.finish(StatusError)
		return fmt.Errorf("restore failed: %w", err)
	}

	o.log.Info("snapshot restored from webdav")
	o.finish(StatusSuccess)
	return nil
}

func (o *Orchestrator) remote() (Remote, error) {
	cfg := o.store.Settings().WebDAV
	if cfg.URL == "" {
		return nil, ErrNotConfigured
	}
	return o.dial(cfg), nil
}

func (o *Orchestrator) setStatus(s Status) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.status = s
	o.rev++
}

// finish records a terminal status and schedules the fall back to idle,
// unless a newer attempt has taken over by then.
func (o *Orchestrator) finish(s Status) {
	o.mu.Lock()
	o.status = s
	o.rev++
	rev := o.rev
	o.mu.Unlock()

	time.AfterFunc(o.hold, func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		if o.rev == rev {
			o.status = StatusIdle
		}
	})
}
