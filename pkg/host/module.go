package host

import (
	"io"

	"github.com/arthur-debert/ensure/pkg/logging"
	"github.com/arthur-debert/ensure/pkg/reconcile"
	"github.com/arthur-debert/ensure/pkg/types"
)

// Module runs one reconciliation for the host runtime
type Module struct {
	Reconciler *reconcile.Reconciler
	Out        io.Writer

	// CheckMode forces check mode whatever the arguments say
	CheckMode bool
}

// NewModule creates a module writing its result to out
func NewModule(r *reconcile.Reconciler, out io.Writer) *Module {
	return &Module{Reconciler: r, Out: out}
}

// Run reads args, reconciles and emits the result. The returned exit code
// is non-zero when validation or the write failed.
func (m *Module) Run(args io.Reader) int {
	logger := logging.GetLogger("host")

	raw, err := LoadArgs(args)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load module arguments")
		return EmitFailure(m.Out, err)
	}

	params, err := ValidateArgs(raw)
	if err != nil {
		logger.Error().Err(err).Msg("Invalid module arguments")
		return EmitFailure(m.Out, err)
	}

	logger.Debug().
		Str("path", params.Path).
		Bool("checkMode", params.CheckMode || m.CheckMode).
		Msg("Running module")

	checkMode := params.CheckMode || m.CheckMode
	outcome, err := m.Reconciler.Reconcile(types.NewTarget(params.Path, params.Content), checkMode)
	if outcome == nil {
		return EmitFailure(m.Out, err)
	}
	if err != nil {
		logger.Error().Err(err).Msg("Reconciliation failed")
	}
	return EmitResult(m.Out, outcome)
}
