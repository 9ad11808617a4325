package types

// State is the reconciliation state of a target within one invocation
type State string

const (
	// StateUnread is the initial state, nothing has been looked at yet
	StateUnread State = "unread"

	// StateUnchanged means no write happened (content matched, or dry run)
	StateUnchanged State = "unchanged"

	// StateWritten means the desired content was written
	StateWritten State = "written"

	// StateFailed means the invocation failed and nothing was changed
	StateFailed State = "failed"
)

// IsTerminal reports whether no further transition is possible
func (s State) IsTerminal() bool {
	return s == StateUnchanged || s == StateWritten || s == StateFailed
}

// Outcome is the result of one reconciliation attempt.
// Changed is true if and only if the file content differs from what it was
// before the invocation.
type Outcome struct {
	Path      string `json:"path"`
	Changed   bool   `json:"changed"`
	Succeeded bool   `json:"succeeded"`
	Message   string `json:"message"`
	State     State  `json:"state"`
	DryRun    bool   `json:"dry_run,omitempty"`
}

// Failed is the inverse of Succeeded, used by renderers and the host result
func (o *Outcome) Failed() bool {
	return !o.Succeeded
}
