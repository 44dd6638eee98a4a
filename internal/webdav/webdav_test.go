package webdav

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newtab/internal/logger"
)

// fakeDAV is an in-memory WebDAV endpoint holding a single object.
type fakeDAV struct {
	mu      sync.Mutex
	content []byte
	failPut bool
}

func (f *fakeDAV) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case "PROPFIND":
			w.WriteHeader(http.StatusMultiStatus)
		case http.MethodPut:
			f.mu.Lock()
			defer f.mu.Unlock()
			if f.failPut {
				http.Error(w, "disk full", http.StatusInternalServerError)
				return
			}
			body, _ := io.ReadAll(r.Body)
			f.content = body
			w.WriteHeader(http.StatusCreated)
		case http.MethodGet:
			f.mu.Lock()
			defer f.mu.Unlock()
			if f.content == nil {
				http.NotFound(w, r)
				return
			}
			_, _ = w.Write(f.content)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}
}

func TestTestAcceptsMultiStatus(t *testing.T) {
	dav := &fakeDAV{}
	srv := httptest.NewServer(dav.handler())
	defer srv.Close()

	c := New(srv.URL, "user", "pass", logger.NewNop())
	assert.True(t, c.Test(context.Background()))
}

func TestTestUnreachableEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(srv.URL, "user", "wrong", logger.NewNop())
	assert.False(t, c.Test(context.Background()))
}

func TestUploadDownloadRoundTrip(t *testing.T) {
	dav := &fakeDAV{}
	srv := httptest.NewServer(dav.handler())
	defer srv.Close()

	c := New(srv.URL+"/", "user", "pass", logger.NewNop())
	payload := []byte(`{"sites":[],"groups":[]}`)

	require.True(t, c.Upload(context.Background(), payload))
	assert.Equal(t, payload, c.Download(context.Background()))
}

func TestFailedUploadLeavesRemoteIntact(t *testing.T) {
	dav := &fakeDAV{}
	srv := httptest.NewServer(dav.handler())
	defer srv.Close()

	c := New(srv.URL, "user", "pass", logger.NewNop())
	original := []byte(`{"v":1}`)
	require.True(t, c.Upload(context.Background(), original))

	dav.failPut = true
	assert.False(t, c.Upload(context.Background(), []byte(`{"v":2}`)))

	// The previously stored backup is still what comes back.
	assert.Equal(t, original, c.Download(context.Background()))
}

func TestDownloadMissingBackup(t *testing.T) {
	dav := &fakeDAV{}
	srv := httptest.NewServer(dav.handler())
	defer srv.Close()

	c := New(srv.URL, "user", "pass", logger.NewNop())
	assert.Nil(t, c.Download(context.Background()))
}

func TestRequestsCarryBasicAuth(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(srv.URL, "alice", "s3cret", logger.NewNop())
	c.Test(context.Background())

	// alice:s3cret in base64.
	assert.Equal(t, "Basic YWxpY2U6czNjcmV0", gotAuth)
}
