package console

import "github.com/charmbracelet/glamour"

// NewRenderer returns a markdown-to-terminal renderer. Rendering failures
// fall back to the raw markdown so a styling problem never hides the plan.
func NewRenderer() func(string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return func(md string) string { return md }
	}
	return func(md string) string {
		out, err := r.Render(md)
		if err != nil {
			return md
		}
		return out
	}
}
