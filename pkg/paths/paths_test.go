package paths

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/etc/ensure")
		t.Setenv(EnvStateDir, "/var/lib/ensure")

		p := New()
		assert.Equal(t, "/etc/ensure", p.ConfigDir())
		assert.Equal(t, "/var/lib/ensure", p.StateDir())
		assert.Equal(t, filepath.Join("/etc/ensure", "config.toml"), p.ConfigFilePath())
		assert.Equal(t, filepath.Join("/var/lib/ensure", "ensure.log"), p.LogFilePath())
	})

	t.Run("xdg defaults", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "")
		t.Setenv(EnvStateDir, "")

		p := New()
		assert.Equal(t, filepath.Join(xdg.ConfigHome, "ensure"), p.ConfigDir())
		assert.Equal(t, filepath.Join(xdg.StateHome, "ensure"), p.StateDir())
	})
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"absolute", "/etc/motd", "/etc/motd"},
		{"tilde only", "~", "/home/tester"},
		{"tilde slash", "~/conf", filepath.Join("/home/tester", "conf")},
		{"other user", "~bob/conf", "~bob/conf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandHome(tt.input))
		})
	}
}
