package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfigDir(t *testing.T) {
	home := filepath.Join("/", "home", "maria")

	tests := []struct {
		name     string
		explicit string
		want     string
	}{
		{"unset uses default under home", "", filepath.Join(home, defaultConfigDir)},
		{"explicit absolute path", "/var/lib/vaxtrack", "/var/lib/vaxtrack"},
		{"explicit relative path stays relative", "data/vax", "data/vax"},
		// spelling the default name explicitly is still explicit
		{"explicit default name stays cwd-relative", defaultConfigDir, defaultConfigDir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveConfigDir(tt.explicit, home))
		})
	}
}

func TestMustLoad_ExplicitConfigDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CONFIG_DIR", dir)
	t.Setenv("DATA_PATH", "")

	cfg := MustLoad()

	require.NotNil(t, cfg)
	assert.Equal(t, dir, cfg.ConfigDir)
	assert.Equal(t, filepath.Join(dir, defaultDataFile), cfg.DataPath)
}

func TestMustLoad_DataPathOverride(t *testing.T) {
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "custom.db")
	t.Setenv("CONFIG_DIR", dir)
	t.Setenv("DATA_PATH", dataPath)

	cfg := MustLoad()

	require.NotNil(t, cfg)
	assert.Equal(t, dataPath, cfg.DataPath)
}
