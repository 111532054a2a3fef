package diagram

import "github.com/codefix-ai/flowviz/pkg/schema"

// Supported output formats.
const (
	FormatMermaid = "mermaid"
	FormatDOT     = "dot"
)

// Formats lists the supported format names in presentation order.
func Formats() []string {
	return []string{FormatMermaid, FormatDOT}
}

// Render dispatches to the renderer for the named format. Unknown formats are
// a boundary error, reported before the renderers (which never fail) are
// reached.
func Render(format string, g *schema.Graph) (string, error) {
	switch format {
	case FormatMermaid:
		return RenderMermaid(g), nil
	case FormatDOT:
		return RenderDOT(g), nil
	default:
		return "", schema.NewErrorf(schema.ErrCodeUnknownFormat,
			"unknown format %q, use %q or %q", format, FormatMermaid, FormatDOT)
	}
}
