package repositories

import (
	"github.com/stretchr/testify/require"
	"path/filepath"
	"testing"
)

func newTestDbContext(t *testing.T) *DbContext {
	t.Helper()

	connectionString := filepath.Join(t.TempDir(), "test.db") + "?_pragma=busy_timeout(5000)"
	dbCtx, err := NewDbContext(connectionString, 1)
	require.NoError(t, err)
	require.NoError(t, dbCtx.Migrate())

	t.Cleanup(func() { _ = dbCtx.Close() })
	return dbCtx
}
