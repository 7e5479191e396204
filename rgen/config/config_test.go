package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults apply when no config file exists", func(t *testing.T) {
		viper.Reset()
		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(t.TempDir()))
		t.Cleanup(func() { _ = os.Chdir(wd) })

		cfg, err := LoadConfig("")
		require.NoError(t, err)

		assert.Equal(t, "resources", cfg.Generator.ResourcesDir)
		assert.Equal(t, "resources", cfg.Generator.PackageName)
		assert.Equal(t, "r_gen.go", cfg.Generator.OutputFile)
		assert.Empty(t, cfg.Generator.IgnorePatterns)
		assert.False(t, cfg.Generator.Verbose)
	})

	t.Run("values load from an explicit config file", func(t *testing.T) {
		viper.Reset()
		path := filepath.Join(t.TempDir(), "rgen.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
generator:
  resourcesDir: assets
  packageName: assets
  outputFile: assets_gen.go
  ignorePatterns:
    - "*.tmp"
  verbose: true
`), 0o644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, "assets", cfg.Generator.ResourcesDir)
		assert.Equal(t, "assets", cfg.Generator.PackageName)
		assert.Equal(t, "assets_gen.go", cfg.Generator.OutputFile)
		assert.Equal(t, []string{"*.tmp"}, cfg.Generator.IgnorePatterns)
		assert.True(t, cfg.Generator.Verbose)
	})

	t.Run("malformed config file is an error", func(t *testing.T) {
		viper.Reset()
		path := filepath.Join(t.TempDir(), "rgen.yaml")
		require.NoError(t, os.WriteFile(path, []byte("generator: ["), 0o644))

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}
