package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveConfigCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	oldHome := os.Getenv("HOME")
	os.Setenv("HOME", dir)
	defer os.Setenv("HOME", oldHome)

	cfg := Config{
		Accent: "#a7754e",
	}

	err := cfg.Save()
	require.NoError(t, err)

	// Verify file exists and has correct permissions
	path := Path()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLoadConfigNonExistent(t *testing.T) {
	dir := t.TempDir()
	oldHome := os.Getenv("HOME")
	os.Setenv("HOME", dir)
	defer os.Setenv("HOME", oldHome)

	_, err := Load("")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoadConfigRejectsOpenPermissions(t *testing.T) {
	dir := t.TempDir()
	oldHome := os.Getenv("HOME")
	os.Setenv("HOME", dir)
	defer os.Setenv("HOME", oldHome)

	cfg := Config{Accent: "#ffffff"}
	require.NoError(t, cfg.Save())
	require.NoError(t, os.Chmod(Path(), 0644))

	_, err := Load("")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "permissions too open")
}

func TestSaveLoadRoundtripWithAllFields(t *testing.T) {
	dir := t.TempDir()
	oldHome := os.Getenv("HOME")
	os.Setenv("HOME", dir)
	defer os.Setenv("HOME", oldHome)

	original := Config{
		Accent: "#a7754e",
		Hover:  "#c78854",
		Mouse:  true,
	}

	err := original.Save()
	require.NoError(t, err)

	loaded, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, original.Accent, loaded.Accent)
	assert.Equal(t, original.Hover, loaded.Hover)
	assert.Equal(t, original.Mouse, loaded.Mouse)
}

func TestLoadConfigFromExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo-config")
	data := []byte("accent: \"#112233\"\nmouse: true\n")
	require.NoError(t, os.WriteFile(path, data, 0600))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "#112233", loaded.Accent)
	assert.True(t, loaded.Mouse)
}
