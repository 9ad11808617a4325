package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/ensure/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(LoadOptions{})
		require.NoError(t, err)

		assert.Equal(t, "auto", cfg.Output.Format)
		assert.False(t, cfg.Output.NoColor)
		assert.True(t, cfg.Logging.File)
		assert.Equal(t, ReadErrorsAbsent, cfg.Reconcile.ReadErrors)
		assert.False(t, cfg.Reconcile.FailOnReadError())

		mode, err := cfg.Reconcile.Mode()
		require.NoError(t, err)
		assert.Equal(t, fs.FileMode(0644), mode)
	})

	t.Run("missing user file is ignored", func(t *testing.T) {
		cfg, err := Load(LoadOptions{ConfigFile: filepath.Join(t.TempDir(), "nope.toml")})
		require.NoError(t, err)
		assert.Equal(t, "auto", cfg.Output.Format)
	})

	t.Run("user file overrides defaults", func(t *testing.T) {
		path := writeConfig(t, `
[output]
format = "json"

[reconcile]
read_errors = "fail"
file_mode = "0600"
`)
		cfg, err := Load(LoadOptions{ConfigFile: path})
		require.NoError(t, err)

		assert.Equal(t, "json", cfg.Output.Format)
		assert.True(t, cfg.Reconcile.FailOnReadError())
		mode, err := cfg.Reconcile.Mode()
		require.NoError(t, err)
		assert.Equal(t, fs.FileMode(0600), mode)
		// untouched keys keep their defaults
		assert.True(t, cfg.Logging.File)
	})

	t.Run("environment overrides user file", func(t *testing.T) {
		path := writeConfig(t, "[output]\nformat = \"json\"\n")
		t.Setenv("ENSURE_OUTPUT_FORMAT", "text")
		t.Setenv("ENSURE_RECONCILE_READ_ERRORS", "fail")
		t.Setenv("ENSURE_LOGGING_FILE", "false")

		cfg, err := Load(LoadOptions{ConfigFile: path})
		require.NoError(t, err)

		assert.Equal(t, "text", cfg.Output.Format)
		assert.Equal(t, ReadErrorsFail, cfg.Reconcile.ReadErrors)
		assert.False(t, cfg.Logging.File)
	})

	t.Run("overrides win", func(t *testing.T) {
		t.Setenv("ENSURE_OUTPUT_FORMAT", "text")

		cfg, err := Load(LoadOptions{Overrides: map[string]interface{}{
			"output.format":   "json",
			"output.no_color": true,
		}})
		require.NoError(t, err)

		assert.Equal(t, "json", cfg.Output.Format)
		assert.True(t, cfg.Output.NoColor)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := writeConfig(t, "[output\nformat = ")
		_, err := Load(LoadOptions{ConfigFile: path})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("invalid values", func(t *testing.T) {
		tests := []struct {
			name    string
			content string
			key     string
		}{
			{"format", "[output]\nformat = \"xml\"\n", "output.format"},
			{"read errors", "[reconcile]\nread_errors = \"ignore\"\n", "reconcile.read_errors"},
			{"file mode not octal", "[reconcile]\nfile_mode = \"rw-r--r--\"\n", "reconcile.file_mode"},
			{"file mode too large", "[reconcile]\nfile_mode = \"7777\"\n", "reconcile.file_mode"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := Load(LoadOptions{ConfigFile: writeConfig(t, tt.content)})
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
				assert.Equal(t, tt.key, errors.GetErrorDetails(err)["key"])
			})
		}
	})
}

func TestGenerate(t *testing.T) {
	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	out, err := Generate(cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "[reconcile]")
	assert.Contains(t, out, "read_errors")

	// The rendered output is valid TOML that decodes back to the same values
	var decoded Config
	require.NoError(t, toml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, *cfg, decoded)
}

func TestGetDefaultsContent(t *testing.T) {
	content := GetDefaultsContent()
	assert.Contains(t, content, "[output]")
	assert.Contains(t, content, "file_mode")

	// The annotated defaults load to the same configuration as no file at all
	fromFile, err := Load(LoadOptions{ConfigFile: writeConfig(t, content)})
	require.NoError(t, err)
	fromEmbedded, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, fromEmbedded, fromFile)
}
