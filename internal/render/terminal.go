package render

import (
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/dravis-client/models"
	"github.com/charmbracelet/glamour"
)

const defaultWordWrap = 80

// Terminal renders markdown for an ANSI terminal using glamour. It is safe
// for concurrent use.
type Terminal struct {
	mu       sync.Mutex
	renderer *glamour.TermRenderer
}

// NewTerminal builds a glamour renderer styled for theme and wrapped at width
// columns. A non-positive width selects 80 columns.
func NewTerminal(theme models.Theme, width int) (*Terminal, error) {
	if width <= 0 {
		width = defaultWordWrap
	}

	style := "light"
	if theme.IsDark() {
		style = "dark"
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("error creating terminal renderer: %w", err)
	}

	return &Terminal{renderer: r}, nil
}

// Render returns raw formatted for the terminal. If glamour fails the raw
// text is returned unchanged.
func (t *Terminal) Render(raw string) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	out, err := t.renderer.Render(raw)
	if err != nil {
		return raw
	}
	return strings.TrimRight(out, "\n")
}
