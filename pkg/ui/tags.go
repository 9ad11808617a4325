package ui

import (
	"io"

	"github.com/arthur-debert/ensure/pkg/errors"
	"github.com/arthur-debert/ensure/pkg/types"
	"github.com/arthur-debert/ensure/pkg/ui/display"
	"github.com/arthur-debert/ensure/pkg/ui/lipbalm"
	"github.com/arthur-debert/ensure/pkg/ui/styles"
)

// tagRenderer renders the display templates through lipbalm. Without
// styles the tags are stripped, which is the text format.
type tagRenderer struct {
	out    io.Writer
	styles lipbalm.StyleMap
}

func newTerminalRenderer(out io.Writer) *tagRenderer {
	return &tagRenderer{out: out, styles: lipbalm.StyleMap(styles.Registry())}
}

func newTextRenderer(out io.Writer) *tagRenderer {
	return &tagRenderer{out: out}
}

func (r *tagRenderer) RenderOutcome(outcome *types.Outcome, cause error) error {
	return r.render(display.OutcomeTemplate, display.NewOutcomeView(outcome, cause))
}

func (r *tagRenderer) RenderError(err error) error {
	return r.render(display.ErrorTemplate, display.NewErrorView(err))
}

func (r *tagRenderer) RenderMessage(msg string) error {
	return r.render(display.MessageTemplate, msg)
}

func (r *tagRenderer) render(tmpl string, data interface{}) error {
	var (
		out string
		err error
	)
	if r.styles == nil {
		out, err = lipbalm.RenderPlain(tmpl, data)
	} else {
		out, err = lipbalm.Render(tmpl, data, r.styles)
	}
	if err != nil {
		return errors.Wrap(err, errors.ErrOutputRender, "failed to render output")
	}
	_, err = io.WriteString(r.out, out)
	return err
}
