package conf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
address = ":9090"
cors_origins = ["https://example.com"]
cooldown_minutes = 10
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.Address)
	require.Equal(t, []string{"https://example.com"}, cfg.CorsOrigins)
	require.Equal(t, 10*time.Minute, cfg.CooldownWindow())
	// untouched fields keep their defaults
	require.Equal(t, Default().UploadDir, cfg.UploadDir)
}

func TestLoadRejectsMalformedToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("address = [broken"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadNonPositiveCooldownFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("cooldown_minutes = -1"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Default().CooldownMinutes, cfg.CooldownMinutes)
}
