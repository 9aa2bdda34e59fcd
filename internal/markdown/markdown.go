// Package markdown renders markdown text for terminal display.
package markdown

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

var (
	rendererMu sync.Mutex
	renderers  = map[int]*glamour.TermRenderer{}
)

// Render formats markdown text for terminal output. Rendering failures fall
// back to the raw input.
func Render(width int, input string) string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.TrimRight(input, "\r\n")
	if strings.TrimSpace(input) == "" {
		return ""
	}
	if width < 1 {
		width = 1
	}

	renderer := markdownRenderer(width)
	if renderer == nil {
		return input
	}
	rendered, err := renderer.Render(input)
	if err != nil {
		return input
	}
	return strings.TrimRight(rendered, "\r\n")
}

func markdownRenderer(width int) *glamour.TermRenderer {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	if cached, ok := renderers[width]; ok {
		return cached
	}
	style := styles.ASCIIStyleConfig
	style.Item.BlockPrefix = "- "
	created, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	renderers[width] = created
	return created
}
