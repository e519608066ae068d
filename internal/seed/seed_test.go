package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduadvisor/backoffice/internal/app/models"
	"github.com/eduadvisor/backoffice/internal/app/repositories/memstore"
)

type recordingLoader struct {
	got []models.Consultant
}

func (r *recordingLoader) Load(_ context.Context, seed []models.Consultant) error {
	r.got = seed
	return nil
}

func writeRoster(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "consultants.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadCatalog(t *testing.T) {
	c, err := LoadCatalog()
	require.NoError(t, err)
	require.NotEmpty(t, c.Colleges)
	require.NotEmpty(t, c.Courses)
	for _, college := range c.Colleges {
		assert.NotEmpty(t, college.ID)
		assert.NotEmpty(t, college.Name)
	}
}

func TestLoadRoster(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		path := writeRoster(t, `
consultants:
  - user_id: DEMO1
    name: Demo One
    password: change-me-1
  - user_id: DEMO2
    name: Demo Two
    password: change-me-2
`)
		roster, err := LoadRoster(path)
		require.NoError(t, err)
		require.Len(t, roster, 2)
		assert.Equal(t, "DEMO1", roster[0].UserID)
		assert.Equal(t, "Demo Two", roster[1].Name)
	})

	t.Run("MissingFile", func(t *testing.T) {
		roster, err := LoadRoster(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Empty(t, roster)
	})

	t.Run("Duplicate", func(t *testing.T) {
		path := writeRoster(t, `
consultants:
  - {user_id: A, name: A, password: p}
  - {user_id: A, name: B, password: q}
`)
		_, err := LoadRoster(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate")
	})

	t.Run("IncompleteEntry", func(t *testing.T) {
		path := writeRoster(t, `
consultants:
  - {user_id: A, name: A}
`)
		_, err := LoadRoster(path)
		require.Error(t, err)
	})
}

func TestCreateDefaultData(t *testing.T) {
	ctx := context.Background()
	stores := memstore.New()
	loader := &recordingLoader{}
	path := writeRoster(t, "consultants:\n  - {user_id: DEMO1, name: Demo One, password: change-me}\n")

	require.NoError(t, CreateDefaultData(ctx, stores.Catalog, loader, path, zerolog.Nop()))

	empty, err := stores.Catalog.IsEmpty(ctx)
	require.NoError(t, err)
	assert.False(t, empty)
	require.Len(t, loader.got, 1)
	assert.Equal(t, "DEMO1", loader.got[0].UserID)

	colleges, err := stores.Catalog.ListColleges(ctx)
	require.NoError(t, err)
	before := len(colleges)

	// A second run leaves the catalog alone.
	require.NoError(t, CreateDefaultData(ctx, stores.Catalog, loader, path, zerolog.Nop()))
	colleges, err = stores.Catalog.ListColleges(ctx)
	require.NoError(t, err)
	assert.Len(t, colleges, before)
}
