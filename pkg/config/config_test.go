package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	// t.Setenv registers the restore, Unsetenv clears for the lookup
	for _, key := range []string{"VM_ADDRESS", "VM_DATA", "VM_DEBUG"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8080", cfg.Address)
	assert.Equal(t, "./data", cfg.DataDir)
	assert.False(t, cfg.Debug)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("VM_ADDRESS", "127.0.0.1:9000")
	t.Setenv("VM_DATA", "/srv/variantmap")
	t.Setenv("VM_DEBUG", "true")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Address)
	assert.Equal(t, "/srv/variantmap", cfg.DataDir)
	assert.True(t, cfg.Debug)
}

func TestLoadViewConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "view.yaml")
	body := `title: Cohort A
sample_names:
  S1: Patient A
class_colors:
  DEL: "#112233"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	view, err := LoadViewConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Cohort A", view.Title)
	assert.Equal(t, map[string]string{"S1": "Patient A"}, view.SampleNames)
	assert.Equal(t, map[string]string{"DEL": "#112233"}, view.ClassColors)
}

func TestLoadViewConfigErrors(t *testing.T) {
	_, err := LoadViewConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "view.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: [broken"), 0o644))
	_, err = LoadViewConfig(path)
	assert.Error(t, err)
}
