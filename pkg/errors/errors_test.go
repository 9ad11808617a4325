package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/ensure/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_found_error",
			code:    errors.ErrNotFound,
			message: "file not found",
			wantStr: "[NOT_FOUND] file not found",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "path must not be empty",
			wantStr: "[INVALID_INPUT] path must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrArgsInvalid, "missing required arguments: %s", "content")
	assert.Equal(t, "[ARGS_INVALID] missing required arguments: content", err.Error())
}

func TestWrap(t *testing.T) {
	base := stderrors.New("permission denied")

	t.Run("wraps error", func(t *testing.T) {
		err := errors.Wrap(base, errors.ErrFileWrite, "failed to write")
		require.NotNil(t, err)
		assert.Equal(t, "[FILE_WRITE] failed to write: permission denied", err.Error())
		assert.True(t, stderrors.Is(err, base))
		assert.Equal(t, base, stderrors.Unwrap(err))
	})

	t.Run("nil error returns nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrFileWrite, "unused"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrFileWrite, "unused %s", "x"))
	})

	t.Run("wrapf formats message", func(t *testing.T) {
		err := errors.Wrapf(base, errors.ErrFileRead, "failed to read %s", "/etc/x")
		assert.Equal(t, "[FILE_READ] failed to read /etc/x: permission denied", err.Error())
	})
}

func TestIsMatchesCode(t *testing.T) {
	err := errors.Wrap(stderrors.New("boom"), errors.ErrFileWrite, "failed")
	assert.True(t, stderrors.Is(err, errors.New(errors.ErrFileWrite, "")))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrFileRead, "")))
}

func TestErrorCodeHelpers(t *testing.T) {
	err := errors.New(errors.ErrConfigValid, "bad format").WithDetail("key", "output.format")
	wrapped := fmt.Errorf("loading: %w", err)

	assert.True(t, errors.IsErrorCode(wrapped, errors.ErrConfigValid))
	assert.False(t, errors.IsErrorCode(wrapped, errors.ErrConfigLoad))
	assert.Equal(t, errors.ErrConfigValid, errors.GetErrorCode(wrapped))
	assert.Equal(t, "output.format", errors.GetErrorDetails(wrapped)["key"])

	plain := stderrors.New("plain")
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(plain))
	assert.Nil(t, errors.GetErrorDetails(plain))
	assert.False(t, errors.IsErrorCode(nil, errors.ErrUnknown))
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"plain error", stderrors.New("disk full"), "disk full"},
		{"coded error", errors.New(errors.ErrInvalidInput, "path must not be empty"), "path must not be empty"},
		{
			name: "wrapped plain error",
			err:  errors.Wrap(stderrors.New("permission denied"), errors.ErrFileWrite, "failed to write /etc/motd"),
			want: "failed to write /etc/motd: permission denied",
		},
		{
			name: "nested coded errors",
			err: errors.Wrap(errors.New(errors.ErrConfigValid, "bad mode"),
				errors.ErrConfigLoad, "failed to load configuration"),
			want: "failed to load configuration: bad mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.UserMessage(tt.err))
		})
	}
}
