package repositories

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationSource(t *testing.T) {
	src, err := MigrationSource()
	require.NoError(t, err)
	defer src.Close()

	version, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)

	up, _, err := src.ReadUp(version)
	require.NoError(t, err)
	defer up.Close()
	body, err := io.ReadAll(up)
	require.NoError(t, err)
	assert.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS town_lookups")
	assert.Contains(t, string(body), "idx_town_lookups_requested_at")

	down, _, err := src.ReadDown(version)
	require.NoError(t, err)
	defer down.Close()
	body, err = io.ReadAll(down)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "DROP TABLE IF EXISTS town_lookups"))
}

func TestMigrateRejectsNilDB(t *testing.T) {
	assert.Error(t, Migrate(nil, Up))
}
