package ensure

import (
	"fmt"

	"github.com/arthur-debert/ensure/pkg/ui"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

func newDocsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "docs",
		Short:   MsgDocsShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			format, err := opts.outputFormat(out)
			if err != nil {
				return err
			}

			switch format {
			case ui.FormatJSON:
				renderer, err := ui.NewRenderer(format, out)
				if err != nil {
					return err
				}
				return renderer.RenderMessage(MsgDocs)
			case ui.FormatTerminal:
				_, err = fmt.Fprint(out, renderMarkdown(MsgDocs))
			default:
				_, err = fmt.Fprint(out, MsgDocs)
			}
			return err
		},
	}
}

// renderMarkdown renders markdown for the terminal with glamour, falling
// back to the raw content on error
func renderMarkdown(content string) string {
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
