/*
Package lipbalm provides a simple template engine for rich terminal rendering.

Lipbalm combines Go's text/template with lipgloss styling through XML-like tags,
enabling declarative terminal output that adapts to terminal capabilities.

# Core Functions

  - Render: Processes Go templates then expands style tags
  - RenderPlain: Processes Go templates then strips style tags
  - ExpandTags: Only expands style tags (no template processing)
  - StripTags: Removes all style tags for plain text output

# Usage with Go templating

	styles := lipbalm.StyleMap{
		"Success":  lipgloss.NewStyle().Bold(true),
		"FilePath": lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
	template := `<Success>changed</Success> <FilePath>{{esc .Path}}</FilePath>`
	output, err := lipbalm.Render(template, outcome, styles)

Values that may contain markup characters must go through the esc template
function, otherwise the tag parser gives up and returns the text untouched.

# Tags

The tag name must correspond to a key in the StyleMap. Unknown tags are
dropped and their content kept.

	<my-style>This text will be styled.</my-style>

# Special Tags

The <no-format> tag only renders when the terminal doesn't support color:

	<Success>changed</Success><no-format> ✓</no-format>

Tag parsing uses etree. Markup etree rejects, such as text holding control
characters, is rendered unstyled: tags are removed and entities decoded. Color
support comes from the lipgloss renderer set with SetDefaultRenderer and
the NO_COLOR environment variable.
*/
package lipbalm
