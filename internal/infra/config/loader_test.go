package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "taskgrid.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := NewLoader("").Load()
	require.NoError(t, err)

	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, "UTC", cfg.Tenant)
	assert.Equal(t, "UTC", cfg.Client)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.toml")

	cfg, err := NewLoader(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Locale)
}

func TestLoad_FileOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
locale = "ru"
tenant = "Europe/Moscow"

[log]
level = "debug"

[columns]
owner = "Assignee"

[sortKeys]
owner = ["assignee", "rowId"]
`)

	cfg, err := NewLoader(path).Load()
	require.NoError(t, err)

	assert.Equal(t, "ru", cfg.Locale)
	assert.Equal(t, "Europe/Moscow", cfg.Tenant)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "Assignee", cfg.Columns["owner"])
	assert.Equal(t, []string{"assignee", "rowId"}, cfg.SortKeys["owner"])
}

func TestLoad_ClientDefaultsToTenant(t *testing.T) {
	path := writeConfig(t, `tenant = "Pacific/Auckland"`)

	cfg, err := NewLoader(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "Pacific/Auckland", cfg.Client)
}

func TestLoad_PartialFileKeepsRemainingDefaults(t *testing.T) {
	path := writeConfig(t, `locale = "ru"`)

	cfg, err := NewLoader(path).Load()
	require.NoError(t, err)

	assert.Equal(t, "ru", cfg.Locale)
	assert.Equal(t, "UTC", cfg.Tenant)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_MalformedFileFails(t *testing.T) {
	path := writeConfig(t, `locale = [broken`)

	_, err := NewLoader(path).Load()
	assert.Error(t, err)
}
