package testutil

import (
	"io/fs"

	"github.com/arthur-debert/ensure/pkg/types"
)

// MockFS wraps a types.FS, records calls and optionally fails them.
type MockFS struct {
	types.FS

	ReadErr  error
	WriteErr error

	Reads  int
	Writes int

	LastWriteMode fs.FileMode
}

// NewMockFS wraps base. A nil base is replaced by NewTestFS.
func NewMockFS(base types.FS) *MockFS {
	if base == nil {
		base = NewTestFS()
	}
	return &MockFS{FS: base}
}

// ReadFile counts the call and returns ReadErr when set.
func (m *MockFS) ReadFile(name string) ([]byte, error) {
	m.Reads++
	if m.ReadErr != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: m.ReadErr}
	}
	return m.FS.ReadFile(name)
}

// WriteFile counts the call and returns WriteErr when set.
func (m *MockFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	m.Writes++
	m.LastWriteMode = perm
	if m.WriteErr != nil {
		return &fs.PathError{Op: "open", Path: name, Err: m.WriteErr}
	}
	return m.FS.WriteFile(name, data, perm)
}

// Touched reports whether any read or write happened.
func (m *MockFS) Touched() bool {
	return m.Reads > 0 || m.Writes > 0
}
