package display

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/ensure/pkg/errors"
	"github.com/arthur-debert/ensure/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestNewOutcomeView(t *testing.T) {
	tests := []struct {
		name      string
		outcome   types.Outcome
		wantLabel string
		wantStyle string
	}{
		{"written", types.Outcome{State: types.StateWritten, Changed: true, Succeeded: true}, "changed", "Success"},
		{"unchanged", types.Outcome{State: types.StateUnchanged, Succeeded: true}, "ok", "Unchanged"},
		{"dry run", types.Outcome{State: types.StateUnchanged, Succeeded: true, DryRun: true}, "skipped", "Warning"},
		{"failed", types.Outcome{State: types.StateFailed}, "failed", "Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := tt.outcome
			o.Path = "/etc/motd"
			o.Message = "msg"

			view := NewOutcomeView(&o, nil)
			assert.Equal(t, tt.wantLabel, view.Label)
			assert.Equal(t, tt.wantStyle, view.Style)
			assert.Equal(t, "/etc/motd", view.Path)
			assert.Equal(t, "msg", view.Message)
			assert.Empty(t, view.Cause)
		})
	}
}

func TestNewOutcomeViewCause(t *testing.T) {
	o := &types.Outcome{Path: "/etc/motd", State: types.StateFailed, Message: "Something going wrong!"}
	cause := errors.Wrap(stderrors.New("permission denied"), errors.ErrFileWrite, "failed to write /etc/motd")

	view := NewOutcomeView(o, cause)
	assert.Equal(t, "failed to write /etc/motd: permission denied", view.Cause)
}

func TestNewErrorView(t *testing.T) {
	view := NewErrorView(errors.New(errors.ErrNotFound, "content file missing.txt not found"))
	assert.Equal(t, errors.ErrNotFound, view.Code)
	assert.Equal(t, "content file missing.txt not found", view.Message)

	view = NewErrorView(stderrors.New("boom"))
	assert.Empty(t, view.Code)
	assert.Equal(t, "boom", view.Message)
}
