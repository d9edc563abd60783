package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/adires/htma-shows/internal/scraper"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	require.Equal(t, scraper.DefaultBaseURL, cfg.BaseURL)
	require.Equal(t, 30*time.Second, cfg.Timeout())
	require.NotEmpty(t, cfg.DataDir)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "htma.yaml")
	content := `
base_url: https://mirror.example.com
timeout_seconds: 10
endpoints:
  comedy: /standup
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "https://mirror.example.com", cfg.BaseURL)
	require.Equal(t, 10*time.Second, cfg.Timeout())
	require.Equal(t, "/standup", cfg.Endpoints["comedy"])

	opts, err := cfg.ScraperOptions()
	require.NoError(t, err)
	require.Len(t, opts, 4)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "htma.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_url: https://file.example.com\n"), 0644))

	t.Setenv("HTMA_BASE_URL", "https://env.example.com")
	t.Setenv("HTMA_TIMEOUT_SECONDS", "5")

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "https://env.example.com", cfg.BaseURL)
	require.Equal(t, 5*time.Second, cfg.Timeout())
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "htma.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_url: [unclosed"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestScraperOptionsRejectsUnknownCategory(t *testing.T) {
	cfg := Default()
	cfg.Endpoints = map[string]string{"opera": "/opera"}

	_, err := cfg.ScraperOptions()
	require.Error(t, err)
}
