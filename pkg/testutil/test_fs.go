package testutil

import (
	"testing"

	"github.com/arthur-debert/ensure/pkg/filesystem"
	"github.com/arthur-debert/ensure/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// NewTestFSWithFiles creates an in-memory filesystem seeded with files.
func NewTestFSWithFiles(t *testing.T, files map[string]string) types.FS {
	t.Helper()
	mem := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(mem, path, []byte(content), 0644))
	}
	return filesystem.NewAferoFS(mem)
}

// NewReadOnlyFS creates a filesystem seeded with files that rejects writes.
func NewReadOnlyFS(t *testing.T, files map[string]string) types.FS {
	t.Helper()
	mem := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(mem, path, []byte(content), 0644))
	}
	return filesystem.NewAferoFS(afero.NewReadOnlyFs(mem))
}
