// Package ui renders reconciliation results as styled terminal output,
// plain text or JSON.
package ui

import (
	"io"

	"github.com/arthur-debert/ensure/pkg/errors"
	"github.com/arthur-debert/ensure/pkg/types"
	"github.com/arthur-debert/ensure/pkg/ui/json"
)

// Renderer writes results in one output format
type Renderer interface {
	// RenderOutcome renders an outcome and the error returned with it,
	// nil when the reconciliation succeeded
	RenderOutcome(outcome *types.Outcome, cause error) error

	// RenderError renders an error that left no outcome
	RenderError(err error) error

	// RenderMessage renders an informational line
	RenderMessage(msg string) error
}

// NewRenderer creates the renderer of a resolved format, see Resolve
func NewRenderer(format Format, out io.Writer) (Renderer, error) {
	switch format {
	case FormatTerminal:
		return newTerminalRenderer(out), nil
	case FormatText:
		return newTextRenderer(out), nil
	case FormatJSON:
		return json.New(out), nil
	case FormatAuto:
		return nil, errors.New(errors.ErrInternal, "auto format must be resolved before rendering")
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %s", format)
	}
}
