package ensure

import (
	"os"
	"strings"
	"text/template"

	"github.com/arthur-debert/ensure/pkg/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// usageFuncs returns the help template functions. Styling is applied only
// when help goes to a color terminal.
func usageFuncs(color bool) template.FuncMap {
	style := func(p pterm.Style) func(string) string {
		return func(s string) string {
			if !color {
				return s
			}
			return p.Sprint(s)
		}
	}
	bold := style(pterm.Style{pterm.Bold})
	return template.FuncMap{
		"heading": func(s string) string { return bold(strings.ToUpper(s)) },
		"group":   bold,
		"command": style(pterm.Style{pterm.FgCyan}),
	}
}

// initTemplateFormatting registers the help template functions with cobra
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(usageFuncs(ui.ColorTerminal(os.Stdout)))
}
