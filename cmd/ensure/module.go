package ensure

import (
	"io"
	"os"

	"github.com/arthur-debert/ensure/pkg/errors"
	"github.com/arthur-debert/ensure/pkg/host"
	"github.com/spf13/cobra"
)

func newModuleCmd(opts *globalOptions) *cobra.Command {
	// The runtime reads stdout as a result document, so every failure,
	// configuration errors included, is emitted as one
	emitFailure := func(cmd *cobra.Command, err error) error {
		return &ExitError{Code: host.EmitFailure(cmd.OutOrStdout(), err), Err: err}
	}

	return &cobra.Command{
		Use:     "module ARGS_FILE",
		Short:   MsgModuleShort,
		Long:    MsgModuleLong,
		Example: MsgModuleExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.setup(cmd); err != nil {
				return emitFailure(cmd, err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			in, closeArgs, err := openArgs(cmd.InOrStdin(), args[0])
			if err != nil {
				return emitFailure(cmd, err)
			}
			defer closeArgs()

			reconciler, err := opts.reconciler()
			if err != nil {
				return emitFailure(cmd, err)
			}

			module := host.NewModule(reconciler, cmd.OutOrStdout())
			module.CheckMode = opts.dryRun
			if code := module.Run(in); code != host.ExitOK {
				return &ExitError{Code: code}
			}
			return nil
		},
	}
}

// openArgs opens the arguments file, "-" being stdin
func openArgs(stdin io.Reader, name string) (io.Reader, func(), error) {
	if name == "-" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, errors.Newf(errors.ErrNotFound, MsgErrArgsMissing, name)
		}
		return nil, nil, errors.Wrapf(err, errors.ErrFileRead, MsgErrOpenArgs, name)
	}
	return f, func() { _ = f.Close() }, nil
}
