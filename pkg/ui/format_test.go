package ui_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/ensure/pkg/errors"
	"github.com/arthur-debert/ensure/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected ui.Format
		wantErr  bool
	}{
		{"parse auto", "auto", ui.FormatAuto, false},
		{"parse empty string as auto", "", ui.FormatAuto, false},
		{"parse term", "term", ui.FormatTerminal, false},
		{"parse terminal", "terminal", ui.FormatTerminal, false},
		{"parse text", "text", ui.FormatText, false},
		{"parse plain", "plain", ui.FormatText, false},
		{"parse json", "json", ui.FormatJSON, false},
		{"parse mixed case JSON", "Json", ui.FormatJSON, false},
		{"parse invalid format", "yaml", ui.FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, err := ui.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				assert.Contains(t, err.Error(), "unknown format: yaml")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}
}

func TestResolve(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	tests := []struct {
		name    string
		format  string
		noColor bool
		out     io.Writer
		want    ui.Format
	}{
		{"auto on a buffer is text", "auto", false, &bytes.Buffer{}, ui.FormatText},
		{"auto on a regular file is text", "auto", false, f, ui.FormatText},
		{"term is kept off a terminal", "term", false, &bytes.Buffer{}, ui.FormatTerminal},
		{"no_color turns term into text", "term", true, &bytes.Buffer{}, ui.FormatText},
		{"no_color keeps json", "json", true, &bytes.Buffer{}, ui.FormatJSON},
		{"plain alias", "plain", false, &bytes.Buffer{}, ui.FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, err := ui.Resolve(tt.format, tt.noColor, tt.out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, format)
		})
	}

	t.Run("unknown name", func(t *testing.T) {
		_, err := ui.Resolve("yaml", false, &bytes.Buffer{})
		assert.Error(t, err)
	})
}

func TestColorTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	t.Run("NO_COLOR disables colors", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		assert.False(t, ui.ColorTerminal(os.Stdout))
	})

	t.Run("regular file is not a terminal", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		assert.False(t, ui.ColorTerminal(f))
	})

	t.Run("buffer is not a terminal", func(t *testing.T) {
		assert.False(t, ui.ColorTerminal(&bytes.Buffer{}))
	})
}
