// Package json writes results as indented JSON documents, one per call.
// The host result and the --format json output both go through it.
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/ensure/pkg/errors"
	"github.com/arthur-debert/ensure/pkg/types"
)

// Renderer encodes documents to a writer
type Renderer struct {
	encoder *json.Encoder
}

// New creates a renderer writing to out
func New(out io.Writer) *Renderer {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	// Paths and messages are shown as is, "<" and "&" included
	encoder.SetEscapeHTML(false)
	return &Renderer{encoder: encoder}
}

// errorDoc is the JSON form of an error
type errorDoc struct {
	Code    errors.ErrorCode `json:"code"`
	Message string           `json:"message"`
}

func newErrorDoc(err error) *errorDoc {
	if err == nil {
		return nil
	}
	return &errorDoc{
		Code:    errors.GetErrorCode(err),
		Message: errors.UserMessage(err),
	}
}

// outcomeDoc is an outcome with the error that failed it
type outcomeDoc struct {
	*types.Outcome
	Error *errorDoc `json:"error,omitempty"`
}

// Encode writes v as one document
func (r *Renderer) Encode(v interface{}) error {
	if err := r.encoder.Encode(v); err != nil {
		return errors.Wrap(err, errors.ErrOutputRender, "failed to encode output")
	}
	return nil
}

// RenderOutcome writes the outcome fields, plus an "error" object when
// cause is set
func (r *Renderer) RenderOutcome(outcome *types.Outcome, cause error) error {
	return r.Encode(outcomeDoc{Outcome: outcome, Error: newErrorDoc(cause)})
}

// RenderError writes {"error": {"code": ..., "message": ...}}
func (r *Renderer) RenderError(err error) error {
	return r.Encode(map[string]*errorDoc{"error": newErrorDoc(err)})
}

// RenderMessage writes {"message": msg}
func (r *Renderer) RenderMessage(msg string) error {
	return r.Encode(map[string]string{"message": msg})
}
