// Package testutil provides utilities for testing ensure components.
//
// Key components:
//   - NewTestFS / NewReadOnlyFS: afero-backed in-memory filesystems
//   - MockFS: wraps any types.FS, counts calls and injects errors
//
// Tests should prefer the in-memory filesystems; only pkg/filesystem and
// the CLI tests touch the real filesystem, always under t.TempDir().
package testutil
