// Package display turns results into view models shared by the renderers
package display

import (
	"github.com/arthur-debert/ensure/pkg/errors"
	"github.com/arthur-debert/ensure/pkg/types"
)

// OutcomeTemplate renders one reconciliation outcome with lipbalm tags
const OutcomeTemplate = `{{if .DryRun}}<Warning>[dry run]</Warning> {{end}}<{{.Style}}>{{.Symbol}} {{.Label}}</{{.Style}}> <FilePath>{{esc .Path}}</FilePath>
  <Muted>{{esc .Message}}</Muted>
{{if .Cause}}  <Error>{{esc .Cause}}</Error>
{{end}}`

// ErrorTemplate renders an error line, with its code when one is known
const ErrorTemplate = `<Error>Error:</Error> {{esc .Message}}{{if .Code}} <Muted>({{.Code}})</Muted>{{end}}
`

// MessageTemplate renders an informational line
const MessageTemplate = `<Info>{{esc .}}</Info>
`

// OutcomeView is the display model of an outcome
type OutcomeView struct {
	Path    string
	Message string
	Cause   string
	Label   string
	Symbol  string
	Style   string
	DryRun  bool
}

// NewOutcomeView maps an outcome's state to its label and style. cause is
// the error returned with a failed outcome and may be nil.
func NewOutcomeView(o *types.Outcome, cause error) OutcomeView {
	view := OutcomeView{
		Path:    o.Path,
		Message: o.Message,
		DryRun:  o.DryRun,
	}
	if cause != nil {
		view.Cause = errors.UserMessage(cause)
	}

	switch {
	case o.State == types.StateFailed || !o.Succeeded:
		view.Label, view.Symbol, view.Style = "failed", "✗", "Error"
	case o.State == types.StateWritten:
		view.Label, view.Symbol, view.Style = "changed", "✓", "Success"
	case o.DryRun:
		view.Label, view.Symbol, view.Style = "skipped", "-", "Warning"
	default:
		view.Label, view.Symbol, view.Style = "ok", "=", "Unchanged"
	}
	return view
}

// ErrorView is the display model of an error without an outcome
type ErrorView struct {
	Message string
	Code    errors.ErrorCode
}

// NewErrorView drops the code of errors that carry none
func NewErrorView(err error) ErrorView {
	view := ErrorView{Message: errors.UserMessage(err)}
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		view.Code = code
	}
	return view
}
