package lipbalm

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strings"
	"text/template"

	"github.com/beevik/etree"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// StyleMap maps tag names to styles
type StyleMap map[string]lipgloss.Style

const (
	noFormatTag = "no-format"
	rootTag     = "lipbalm-root"
)

var defaultRenderer *lipgloss.Renderer

// SetDefaultRenderer sets the renderer whose color profile decides whether
// styles are applied
func SetDefaultRenderer(r *lipgloss.Renderer) {
	defaultRenderer = r
}

func colorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	r := defaultRenderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return r.ColorProfile() != termenv.Ascii
}

var (
	escaper   = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	unescaper = strings.NewReplacer("&amp;", "&", "&lt;", "<", "&gt;", ">")

	// Escaped text holds no "<", so anything shaped like a tag is one
	tagPattern = regexp.MustCompile(`</?[A-Za-z][A-Za-z0-9_-]*>`)
)

// Escape escapes text so it survives tag parsing
func Escape(s string) string {
	return escaper.Replace(s)
}

func execute(tmpl string, data interface{}) (string, error) {
	t, err := template.New("lipbalm").Funcs(template.FuncMap{"esc": Escape}).Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("template parse error: %w", err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("template execution error: %w", err)
	}
	return buf.String(), nil
}

// Render executes a Go template and expands the style tags of the result
func Render(tmpl string, data interface{}, styles StyleMap) (string, error) {
	out, err := execute(tmpl, data)
	if err != nil {
		return "", err
	}
	return ExpandTags(out, styles)
}

// RenderPlain executes a Go template and strips the style tags of the result
func RenderPlain(tmpl string, data interface{}) (string, error) {
	out, err := execute(tmpl, data)
	if err != nil {
		return "", err
	}
	return StripTags(out), nil
}

// ExpandTags replaces style tags with styled text
func ExpandTags(input string, styles StyleMap) (string, error) {
	root, ok := parse(input)
	if !ok {
		return fallbackStrip(input), nil
	}
	color := colorEnabled()
	return walk(root, func(tag, inner string) string {
		if tag == noFormatTag {
			if color {
				return ""
			}
			return inner
		}
		if style, found := styles[tag]; found && color {
			return style.Render(inner)
		}
		return inner
	}), nil
}

// StripTags removes all tags, keeping their content
func StripTags(input string) string {
	root, ok := parse(input)
	if !ok {
		return fallbackStrip(input)
	}
	return walk(root, func(_, inner string) string { return inner })
}

// fallbackStrip removes tags and entities from text the XML parser
// rejected, for example because it holds control characters
func fallbackStrip(input string) string {
	return unescaper.Replace(tagPattern.ReplaceAllString(input, ""))
}

func parse(input string) (*etree.Element, bool) {
	if input == "" {
		return nil, false
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromString("<" + rootTag + ">" + input + "</" + rootTag + ">"); err != nil {
		return nil, false
	}
	root := doc.SelectElement(rootTag)
	return root, root != nil
}

func walk(el *etree.Element, apply func(tag, inner string) string) string {
	var sb strings.Builder
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			sb.WriteString(t.Data)
		case *etree.Element:
			sb.WriteString(apply(t.Tag, walk(t, apply)))
		}
	}
	return sb.String()
}
