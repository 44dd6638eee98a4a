package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newtab/internal/domain"
	"newtab/internal/favicon"
	"newtab/internal/httpserver/deps"
	"newtab/internal/httpserver/routes"
	"newtab/internal/logger"
	"newtab/internal/quote"
	"newtab/internal/storage"
	"newtab/internal/store"
	appsync "newtab/internal/sync"
	"newtab/internal/wallpaper"
	"newtab/internal/weather"
)

func newAPI(t *testing.T) (*httptest.Server, *store.Store) {
	t.Helper()

	kv := storage.NewMemory()
	log := logger.NewNop()

	st := store.New(kv, log)
	require.NoError(t, st.Load(context.Background()))
	todos := store.NewTodoStore(kv, log)
	require.NoError(t, todos.Load(context.Background()))
	notes := store.NewNotesStore(kv, log)
	require.NoError(t, notes.Load(context.Background()))

	d := deps.Deps{
		Logger:    log,
		StartTime: time.Now(),
		TimeNow:   time.Now,
		Store:     st,
		Todos:     todos,
		Notes:     notes,
		KV:        kv,
		Quote:     quote.New("http://127.0.0.1:0", kv, log),
		Weather:   weather.New("http://127.0.0.1:0", log),
		Wallpaper: wallpaper.New("http://127.0.0.1:0", log),
		Favicon:   favicon.NewResolver(log),
		Sync:      appsync.New(st, log),
	}

	r := chi.NewRouter()
	routes.RegisterAll(r, d)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, st
}

func call(t *testing.T, method, url string, payload any) (*http.Response, []byte) {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req, err := http.NewRequest(method, url, &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	return resp, data
}

// Exercises the dashboard lifecycle end to end: seed sites into groups,
// delete a group, verify its sites land in the default group, then check
// the snapshot round trip.
func TestDashboardFlow(t *testing.T) {
	srv, st := newAPI(t)

	resp, data := call(t, http.MethodPost, srv.URL+"/api/groups", map[string]string{"name": "work"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var work domain.SiteGroup
	require.NoError(t, json.Unmarshal(data, &work))

	for _, name := range []string{"Jira", "CI", "Wiki"} {
		resp, _ = call(t, http.MethodPost, srv.URL+"/api/sites", map[string]string{
			"name":    name,
			"url":     name + ".example.com",
			"groupId": work.ID,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, _ = call(t, http.MethodDelete, srv.URL+"/api/groups/"+work.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	for _, site := range st.Sites() {
		assert.Equal(t, domain.GroupDefault, site.GroupID)
	}

	// Reserved groups survive a delete attempt.
	resp, _ = call(t, http.MethodDelete, srv.URL+"/api/groups/"+domain.GroupAll, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, st.Groups(), 2)

	_, exported := call(t, http.MethodGet, srv.URL+"/api/data/export", nil)
	assert.NotContains(t, string(exported), "searchHistory")

	resp, _ = call(t, http.MethodPost, srv.URL+"/api/data/reset", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, st.Sites())

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/data/import", bytes.NewReader(exported))
	require.NoError(t, err)
	r2, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = r2.Body.Close()
	require.Equal(t, http.StatusOK, r2.StatusCode)
	assert.Len(t, st.Sites(), 3)
}

// Settings patches merge one level deep; the wallpaper block is replaced
// wholesale while untouched fields keep their values.
func TestSettingsPatchOverHTTP(t *testing.T) {
	srv, st := newAPI(t)

	resp, _ := call(t, http.MethodPatch, srv.URL+"/api/settings", map[string]any{
		"themeColor": "#ff0000",
		"wallpaper":  map[string]string{"source": "color", "color": "#000000"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := st.Settings()
	assert.Equal(t, "#ff0000", got.ThemeColor)
	assert.Equal(t, domain.WallpaperColor, got.Wallpaper.Source)
	// Unpatched wallpaper fields reset with the block.
	assert.Zero(t, got.Wallpaper.Blur)
	// Untouched top-level settings keep their defaults.
	assert.Equal(t, domain.DefaultSettings().SearchEngine, got.SearchEngine)

	resp, _ = call(t, http.MethodPost, srv.URL+"/api/settings/reset", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, domain.DefaultSettings(), st.Settings())
}

// backupServer is a minimal WebDAV endpoint for the sync round trip.
type backupServer struct {
	mu      sync.Mutex
	content []byte
}

func (b *backupServer) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		switch r.Method {
		case "PROPFIND":
			w.WriteHeader(http.StatusMultiStatus)
		case http.MethodPut:
			data, _ := io.ReadAll(r.Body)
			b.content = data
			w.WriteHeader(http.StatusCreated)
		case http.MethodGet:
			if b.content == nil {
				http.NotFound(w, r)
				return
			}
			_, _ = w.Write(b.content)
		}
	}
}

// Two independent instances share state through a WebDAV endpoint.
func TestWebDAVSyncBetweenInstances(t *testing.T) {
	dav := httptest.NewServer((&backupServer{}).handler())
	defer dav.Close()

	webdavSettings := map[string]any{
		"webdav": map[string]any{
			"url":      dav.URL,
			"username": "user",
			"password": "pass",
			"autoSync": false,
		},
	}

	source, sourceStore := newAPI(t)
	resp, _ := call(t, http.MethodPatch, source.URL+"/api/settings", webdavSettings)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := call(t, http.MethodPost, source.URL+"/api/webdav/test", map[string]string{
		"url": dav.URL, "username": "user", "password": "pass",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"ok":true`)

	sourceStore.AddSite(context.Background(), store.SiteInput{
		Name: "Shared", URL: "https://shared.example.com", GroupID: domain.GroupDefault,
	})
	resp, _ = call(t, http.MethodPost, source.URL+"/api/webdav/sync-up", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	target, targetStore := newAPI(t)
	resp, _ = call(t, http.MethodPatch, target.URL+"/api/settings", webdavSettings)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = call(t, http.MethodPost, target.URL+"/api/webdav/sync-down", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, targetStore.Sites(), 1)
	assert.Equal(t, "Shared", targetStore.Sites()[0].Name)
}
