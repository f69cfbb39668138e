package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sebastienrousseau/commons/pkg/config"
)

type FileConfig struct {
	Name     string `yaml:"name"`
	Capacity int    `yaml:"capacity"`
	Debug    bool   `yaml:"debug"`
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	t.Run("valid file", func(t *testing.T) {
		t.Parallel()

		path := writeConfigFile(t, "name: app\ncapacity: 128\ndebug: true\n")

		cfg, err := config.LoadFile[FileConfig](path)
		require.NoError(t, err)
		assert.Equal(t, "app", cfg.Name)
		assert.Equal(t, 128, cfg.Capacity)
		assert.True(t, cfg.Debug)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := config.LoadFile[FileConfig]("testdata/does_not_exist.yaml")
		assert.ErrorIs(t, err, config.ErrReadingFile)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		path := writeConfigFile(t, "name: [unterminated\n")

		_, err := config.LoadFile[FileConfig](path)
		assert.ErrorIs(t, err, config.ErrParsingFile)
	})

	t.Run("zero value for absent keys", func(t *testing.T) {
		t.Parallel()

		path := writeConfigFile(t, "name: app\n")

		cfg, err := config.LoadFile[FileConfig](path)
		require.NoError(t, err)
		assert.Equal(t, "app", cfg.Name)
		assert.Equal(t, 0, cfg.Capacity)
	})
}

func TestMustLoadFile(t *testing.T) {
	t.Parallel()

	t.Run("returns parsed config", func(t *testing.T) {
		t.Parallel()

		path := writeConfigFile(t, "name: app\ncapacity: 16\n")

		cfg := config.MustLoadFile[FileConfig](path)
		assert.Equal(t, 16, cfg.Capacity)
	})

	t.Run("panics on missing file", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			config.MustLoadFile[FileConfig]("testdata/does_not_exist.yaml")
		})
	})
}
