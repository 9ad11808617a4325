package types

import (
	"io/fs"
)

// FS is the filesystem interface required for reconciliation. A missing
// file must be reported with an error matching fs.ErrNotExist.
type FS interface {
	ReadFile(name string) ([]byte, error)

	// WriteFile creates or truncates name. perm only applies on creation.
	WriteFile(name string, data []byte, perm fs.FileMode) error
}
