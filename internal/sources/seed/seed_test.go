package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newtab/internal/domain"
	"newtab/internal/logger"
	"newtab/internal/storage"
	"newtab/internal/store"
)

const sampleSeed = `---
groups:
  - name: Dev
    sites:
      - name: GitHub
        url: github.com
        icon: https://github.com/favicon.ico
      - url: docs.rs
  - name: ""
    sites:
      - name: Dropped with its group
        url: example.com
  - name: News
    sites:
      - name: No URL entry
`

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoaderExpandsEnvReferences(t *testing.T) {
	t.Setenv("SEED_TEST_URL", "https://internal.example.com")
	path := writeSeed(t, `---
groups:
  - name: Infra
    sites:
      - name: Dashboard
        url: ${SEED_TEST_URL}
`)

	cfg, err := NewLoader(path).Load()
	require.NoError(t, err)
	require.Len(t, cfg.Groups, 1)
	assert.Equal(t, "https://internal.example.com", cfg.Groups[0].Sites[0].URL)
}

func TestLoaderMissingFile(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "missing.yaml")).Load()
	assert.Error(t, err)
}

func TestMapperNormalizesAndDrops(t *testing.T) {
	cfg, err := NewLoader(writeSeed(t, sampleSeed)).Load()
	require.NoError(t, err)

	groups, err := NewMapper().Map(cfg)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	dev := groups[0]
	assert.Equal(t, "Dev", dev.Name)
	require.Len(t, dev.Sites, 2)
	assert.Equal(t, "https://github.com", dev.Sites[0].URL)
	// Nameless entries take their hostname.
	assert.Equal(t, "docs.rs", dev.Sites[1].Name)

	// The URL-less entry is dropped, leaving News empty but present.
	assert.Equal(t, "News", groups[1].Name)
	assert.Empty(t, groups[1].Sites)
}

func TestMapperRejectsEmptySeed(t *testing.T) {
	_, err := NewMapper().Map(File{Groups: []GroupEntry{{Name: "Empty"}}})
	assert.Error(t, err)
}

func TestImporterRun(t *testing.T) {
	st := store.New(storage.NewMemory(), logger.NewNop())
	require.NoError(t, st.Load(context.Background()))

	imp := NewImporter(writeSeed(t, sampleSeed), st, logger.NewNop())
	require.NoError(t, imp.Run(context.Background()))

	sites := st.Sites()
	require.Len(t, sites, 2)
	assert.Equal(t, "GitHub", sites[0].Name)
	assert.Equal(t, sites[0].GroupID, sites[1].GroupID)

	// Two reserved groups plus Dev and News.
	assert.Len(t, st.Groups(), 4)
}

func TestImporterReusesExistingGroupByName(t *testing.T) {
	st := store.New(storage.NewMemory(), logger.NewNop())
	require.NoError(t, st.Load(context.Background()))

	path := writeSeed(t, `---
groups:
  - name: Default
    sites:
      - name: Home
        url: home.example.com
`)
	require.NoError(t, NewImporter(path, st, logger.NewNop()).Run(context.Background()))

	require.Len(t, st.Sites(), 1)
	assert.Equal(t, domain.GroupDefault, st.Sites()[0].GroupID)
	assert.Len(t, st.Groups(), 2)
}
