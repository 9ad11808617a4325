package ensure

import (
	"io"
	"os"

	"github.com/arthur-debert/ensure/pkg/errors"
	"github.com/arthur-debert/ensure/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newFileCmd(opts *globalOptions) *cobra.Command {
	var (
		path        string
		content     string
		contentFile string
	)

	cmd := &cobra.Command{
		Use:     "file",
		Short:   MsgFileShort,
		Long:    MsgFileLong,
		Example: MsgFileExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := opts.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			// From here on failures are rendered in the chosen format
			fail := func(cause error) error {
				if rerr := renderer.RenderError(cause); rerr != nil {
					return rerr
				}
				return &ExitError{Code: 1, Err: cause}
			}

			desired := content
			if contentFile != "" {
				data, err := readContent(cmd.InOrStdin(), contentFile)
				if err != nil {
					return fail(err)
				}
				desired = data
			}

			reconciler, err := opts.reconciler()
			if err != nil {
				return fail(err)
			}

			log.Info().
				Str("path", path).
				Bool("dry_run", opts.dryRun).
				Msg("Ensuring file content")

			outcome, err := reconciler.Reconcile(types.NewTarget(path, desired), opts.dryRun)
			if outcome == nil {
				return fail(err)
			}
			if rerr := renderer.RenderOutcome(outcome, err); rerr != nil {
				return rerr
			}
			if err != nil || outcome.Failed() {
				return &ExitError{Code: 1, Err: err}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "", MsgFlagPath)
	cmd.Flags().StringVar(&content, "content", "", MsgFlagContent)
	cmd.Flags().StringVar(&contentFile, "content-file", "", MsgFlagContentFile)
	_ = cmd.MarkFlagRequired("path")
	cmd.MarkFlagsMutuallyExclusive("content", "content-file")
	cmd.MarkFlagsOneRequired("content", "content-file")

	return cmd
}

// readContent reads the desired content from name, "-" being stdin
func readContent(stdin io.Reader, name string) (string, error) {
	if name == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrFileRead, MsgErrReadContent, "stdin")
		}
		return string(data), nil
	}

	data, err := os.ReadFile(name)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Newf(errors.ErrNotFound, MsgErrContentMissing, name).
				WithDetail("path", name)
		}
		return "", errors.Wrapf(err, errors.ErrFileRead, MsgErrReadContent, name).
			WithDetail("path", name)
	}
	return string(data), nil
}
