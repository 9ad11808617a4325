package host

import (
	"io"

	"github.com/arthur-debert/ensure/pkg/errors"
	"github.com/arthur-debert/ensure/pkg/types"
	"github.com/arthur-debert/ensure/pkg/ui/json"
)

// FailMsg is the msg of a failed reconciliation
const FailMsg = "Your request finish with fail :("

// Exit codes
const (
	ExitOK     = 0
	ExitFailed = 1
)

// Result is the JSON document read by the runtime
type Result struct {
	Changed bool   `json:"changed"`
	Message string `json:"message,omitempty"`
	Failed  bool   `json:"failed,omitempty"`
	Msg     string `json:"msg,omitempty"`
}

// NewResult maps an outcome to the runtime result
func NewResult(outcome *types.Outcome) Result {
	result := Result{
		Changed: outcome.Changed,
		Message: outcome.Message,
	}
	if outcome.Failed() {
		result.Failed = true
		result.Msg = FailMsg
	}
	return result
}

// EmitResult writes the result for outcome and returns the exit code
func EmitResult(w io.Writer, outcome *types.Outcome) int {
	result := NewResult(outcome)
	if err := emit(w, result); err != nil {
		return ExitFailed
	}
	if result.Failed {
		return ExitFailed
	}
	return ExitOK
}

// EmitFailure writes a failure that happened before reconciliation
func EmitFailure(w io.Writer, err error) int {
	_ = emit(w, Result{Failed: true, Msg: errors.UserMessage(err)})
	return ExitFailed
}

func emit(w io.Writer, result Result) error {
	return json.New(w).Encode(result)
}
