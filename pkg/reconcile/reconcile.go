package reconcile

import (
	stderrors "errors"
	"fmt"
	"io/fs"

	"github.com/arthur-debert/ensure/pkg/errors"
	"github.com/arthur-debert/ensure/pkg/filesystem"
	"github.com/arthur-debert/ensure/pkg/logging"
	"github.com/arthur-debert/ensure/pkg/types"
	"github.com/rs/zerolog"
)

// Result messages
const (
	MsgCheckMode = "Run in checking mode, no changes."
	MsgUnchanged = "Target file %s already exists with given content."
	MsgWritten   = "Success with write file %s with given content."
	MsgFailed    = "Something going wrong!"
)

// DefaultFileMode is used for files the reconciler creates
const DefaultFileMode fs.FileMode = 0644

// Options configures a Reconciler
type Options struct {
	// FS defaults to the OS filesystem
	FS types.FS

	// FileMode applies to newly created files only
	FileMode fs.FileMode

	// FailOnReadError turns read errors other than "not found" into a
	// failed outcome instead of treating the target as absent
	FailOnReadError bool
}

// Reconciler converges files to a desired content
type Reconciler struct {
	fs              types.FS
	fileMode        fs.FileMode
	failOnReadError bool
	logger          zerolog.Logger
}

// New creates a Reconciler
func New(opts Options) *Reconciler {
	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	mode := opts.FileMode
	if mode == 0 {
		mode = DefaultFileMode
	}
	return &Reconciler{
		fs:              fsys,
		fileMode:        mode,
		failOnReadError: opts.FailOnReadError,
		logger:          logging.GetLogger("reconcile"),
	}
}

// Reconcile ensures the file at path holds exactly desired, using the OS
// filesystem and default options
func Reconcile(path, desired string, dryRun bool) (*types.Outcome, error) {
	return New(Options{}).Reconcile(types.NewTarget(path, desired), dryRun)
}

// Reconcile converges target to its desired content. When dryRun is set the
// filesystem is neither read nor written.
//
// A non-nil error is returned together with a failed outcome when the
// write fails; callers must treat it as fatal. An empty path is rejected
// with an INVALID_INPUT error and a nil outcome.
func (r *Reconciler) Reconcile(target *types.Target, dryRun bool) (*types.Outcome, error) {
	if target == nil || target.Path == "" {
		return nil, errors.New(errors.ErrInvalidInput, "path must not be empty")
	}

	logger := r.logger.With().Str("path", target.Path).Bool("dryRun", dryRun).Logger()
	done := logging.LogOperationStart(logger, "reconcile")
	defer done()

	outcome := &types.Outcome{
		Path:   target.Path,
		DryRun: dryRun,
		State:  types.StateUnread,
	}

	if dryRun {
		logger.Info().Msg("Check mode, skipping read and write")
		return r.finish(outcome, types.StateUnchanged, false, MsgCheckMode), nil
	}

	existing, err := r.read(target.Path)
	if err != nil {
		if r.failOnReadError {
			logger.Error().Err(err).Msg("Failed to read target")
			r.finish(outcome, types.StateFailed, false, MsgFailed)
			return outcome, errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", target.Path).
				WithDetail("path", target.Path)
		}
		logger.Warn().Err(err).Msg("Target is unreadable, treating it as absent")
		existing = types.Absent()
	}
	target.Existing = existing

	if existing.Matches(target.Desired) {
		logger.Info().Msg("Target already has the desired content")
		return r.finish(outcome, types.StateUnchanged, false, fmt.Sprintf(MsgUnchanged, target.Path)), nil
	}

	logger.Debug().
		Bool("existed", existing.Present).
		Int("currentLen", len(existing.Value)).
		Int("desiredLen", len(target.Desired)).
		Msg("Content differs, writing target")

	if err := r.fs.WriteFile(target.Path, []byte(target.Desired), r.fileMode); err != nil {
		logger.Error().Err(err).Msg("Failed to write target")
		r.finish(outcome, types.StateFailed, false, MsgFailed)
		return outcome, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", target.Path).
			WithDetail("path", target.Path)
	}

	logger.Info().Msg("Wrote desired content")
	return r.finish(outcome, types.StateWritten, true, fmt.Sprintf(MsgWritten, target.Path)), nil
}

// read returns the current content. A missing file is an absent value, not
// an error; any other failure is returned for the caller's policy to decide.
func (r *Reconciler) read(path string) (types.Content, error) {
	data, err := r.fs.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return types.Absent(), nil
		}
		return types.Absent(), err
	}
	return types.Present(string(data)), nil
}

func (r *Reconciler) finish(o *types.Outcome, state types.State, changed bool, msg string) *types.Outcome {
	o.State = state
	o.Changed = changed
	o.Succeeded = state != types.StateFailed
	o.Message = msg
	return o
}
