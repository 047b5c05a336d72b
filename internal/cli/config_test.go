package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "espalier.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "explicit missing path should fail")

	// Implicit probe falls back to defaults when no file exists.
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Listen)
	assert.Equal(t, "hover", cfg.Transform.DefaultTrigger)
	assert.Equal(t, "b-modal", cfg.Transform.ModalTag)
}

func TestLoadConfig_Overlay(t *testing.T) {
	path := writeConfig(t, `
listen: ":9090"
log_json: true
redis:
  addr: localhost:6379
  ttl: 30m
  prefix: "custom:"
transform:
  default_trigger: click
  modal_animation_class: fancy-zoom
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Listen)
	assert.True(t, cfg.LogJSON)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 30*time.Minute, cfg.Redis.TTL)
	assert.Equal(t, "custom:", cfg.Redis.Prefix)

	// Overridden fields change, untouched ones keep their defaults.
	assert.Equal(t, "click", cfg.Transform.DefaultTrigger)
	assert.Equal(t, "fancy-zoom", cfg.Transform.ModalAnimationClass)
	assert.Equal(t, "top", cfg.Transform.DefaultPlacement)
	assert.Equal(t, "span", cfg.Transform.InlineTag)
}

func TestLoadConfig_RejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "lisen: \":9090\"\n")

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
