package config

import (
	"io/fs"
	"strconv"

	"github.com/arthur-debert/ensure/pkg/errors"
	"github.com/arthur-debert/ensure/pkg/ui"
)

// Read error policies
const (
	ReadErrorsAbsent = "absent"
	ReadErrorsFail   = "fail"
)

// Config is the effective configuration
type Config struct {
	Output    Output    `koanf:"output" toml:"output"`
	Logging   Logging   `koanf:"logging" toml:"logging"`
	Reconcile Reconcile `koanf:"reconcile" toml:"reconcile"`
}

// Output controls result rendering
type Output struct {
	Format  string `koanf:"format" toml:"format"`
	NoColor bool   `koanf:"no_color" toml:"no_color"`
}

// Logging controls log destinations
type Logging struct {
	File bool `koanf:"file" toml:"file"`
}

// Reconcile controls how targets are reconciled
type Reconcile struct {
	ReadErrors string `koanf:"read_errors" toml:"read_errors"`
	FileMode   string `koanf:"file_mode" toml:"file_mode"`
}

// Mode parses FileMode as an octal permission
func (r Reconcile) Mode() (fs.FileMode, error) {
	mode, err := strconv.ParseUint(r.FileMode, 8, 32)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrConfigValid, "invalid reconcile.file_mode %q", r.FileMode).
			WithDetail("key", "reconcile.file_mode")
	}
	if mode > 0o777 {
		return 0, errors.Newf(errors.ErrConfigValid, "reconcile.file_mode %q is not a permission", r.FileMode).
			WithDetail("key", "reconcile.file_mode")
	}
	return fs.FileMode(mode), nil
}

// FailOnReadError reports whether unreadable targets fail the invocation
func (r Reconcile) FailOnReadError() bool {
	return r.ReadErrors == ReadErrorsFail
}

// Validate checks values that the decoder cannot
func (c *Config) Validate() error {
	if _, err := ui.ParseFormat(c.Output.Format); err != nil {
		return errors.Newf(errors.ErrConfigValid, "unknown output.format %q", c.Output.Format).
			WithDetail("key", "output.format")
	}

	switch c.Reconcile.ReadErrors {
	case ReadErrorsAbsent, ReadErrorsFail:
	default:
		return errors.Newf(errors.ErrConfigValid, "reconcile.read_errors must be %q or %q, got %q",
			ReadErrorsAbsent, ReadErrorsFail, c.Reconcile.ReadErrors).
			WithDetail("key", "reconcile.read_errors")
	}

	if _, err := c.Reconcile.Mode(); err != nil {
		return err
	}
	return nil
}
