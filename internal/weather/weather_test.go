package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newtab/internal/logger"
)

const samplePayload = `{
  "current_condition": [
    {"temp_C": "21", "weatherCode": "113", "weatherDesc": [{"value": "Sunny"}]}
  ],
  "nearest_area": [
    {"areaName": [{"value": "Shanghai"}], "region": [{"value": "Shanghai Shi"}]}
  ]
}`

func TestFetchParsesUpstreamShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "j1", r.URL.Query().Get("format"))
		_, _ = w.Write([]byte(samplePayload))
	}))
	defer srv.Close()

	client := New(srv.URL, logger.NewNop())
	got := client.Fetch(context.Background(), "Shanghai")
	require.NotNil(t, got)

	assert.Equal(t, "Shanghai", got.City)
	assert.Equal(t, 21, got.Temp)
	assert.Equal(t, "Sunny", got.Description)
	assert.Equal(t, "☀️", got.Icon)
}

func TestFetchFallsBackToRegionName(t *testing.T) {
	payload := `{
	  "current_condition": [{"temp_C": "5", "weatherCode": "119", "weatherDesc": [{"value": "Cloudy"}]}],
	  "nearest_area": [{"areaName": [], "region": [{"value": "Bavaria"}]}]
	}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(payload))
	}))
	defer srv.Close()

	got := New(srv.URL, logger.NewNop()).Fetch(context.Background(), "")
	require.NotNil(t, got)
	assert.Equal(t, "Bavaria", got.City)
	assert.Equal(t, "☁️", got.Icon)
}

func TestFetchMalformedPayloadReturnsNil(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "<html></html>"},
		{"missing current_condition", `{"nearest_area":[{"areaName":[{"value":"X"}]}]}`},
		{"missing nearest_area", `{"current_condition":[{"temp_C":"1","weatherCode":"113","weatherDesc":[{"value":"S"}]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			assert.Nil(t, New(srv.URL, logger.NewNop()).Fetch(context.Background(), ""))
		})
	}
}

func TestFetchUpstreamErrorReturnsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	assert.Nil(t, New(srv.URL, logger.NewNop()).Fetch(context.Background(), "London"))
}

func TestIconForCode(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"113", "☀️"},
		{"116", "⛅"},
		{"122", "☁️"},
		{"296", "🌧️"},
		{"338", "🌨️"},
		{"389", "⛈️"},
		{"248", "🌫️"},
		{"999", defaultIcon},
		{"", defaultIcon},
		{"abc", defaultIcon},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, iconForCode(tt.code), "code %q", tt.code)
	}
}

func TestFetchNonNumericTempDefaultsToZero(t *testing.T) {
	payload := `{
	  "current_condition": [{"temp_C": "n/a", "weatherCode": "113", "weatherDesc": [{"value": "Sunny"}]}],
	  "nearest_area": [{"areaName": [{"value": "Nowhere"}]}]
	}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(payload))
	}))
	defer srv.Close()

	got := New(srv.URL, logger.NewNop()).Fetch(context.Background(), "")
	require.NotNil(t, got)
	assert.Equal(t, 0, got.Temp)
}
