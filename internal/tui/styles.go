package tui

import (
	"github.com/MKhiriev/dravis-client/models"
	"github.com/charmbracelet/lipgloss"
)

type palette struct {
	text    lipgloss.Color
	muted   lipgloss.Color
	accent  lipgloss.Color
	surface lipgloss.Color
}

var (
	darkPalette  = palette{text: "#E4E4E7", muted: "#71717A", accent: "#A78BFA", surface: "#27272A"}
	lightPalette = palette{text: "#18181B", muted: "#A1A1AA", accent: "#6D28D9", surface: "#F4F4F5"}

	onlineColor   = lipgloss.Color("#22C55E")
	offlineColor  = lipgloss.Color("#EF4444")
	checkingColor = lipgloss.Color("#F59E0B")
)

type styles struct {
	app        lipgloss.Style
	title      lipgloss.Style
	tab        lipgloss.Style
	activeTab  lipgloss.Style
	help       lipgloss.Style
	info       lipgloss.Style
	inline     lipgloss.Style
	user       lipgloss.Style
	assistant  lipgloss.Style
	selected   lipgloss.Style
	overlayBox lipgloss.Style
	online     lipgloss.Style
	offline    lipgloss.Style
	checking   lipgloss.Style
}

func newStyles(theme models.Theme) styles {
	p := lightPalette
	if theme.IsDark() {
		p = darkPalette
	}

	return styles{
		app:        lipgloss.NewStyle().Padding(1, 2).Foreground(p.text),
		title:      lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		tab:        lipgloss.NewStyle().Padding(0, 1).Foreground(p.muted),
		activeTab:  lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(p.accent).Background(p.surface),
		help:       lipgloss.NewStyle().Faint(true),
		info:       lipgloss.NewStyle().Foreground(p.accent),
		inline:     lipgloss.NewStyle().Bold(true).Foreground(offlineColor),
		user:       lipgloss.NewStyle().Bold(true).Foreground(p.text),
		assistant:  lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		selected:   lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		overlayBox: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.accent).Padding(1, 2),
		online:     lipgloss.NewStyle().Foreground(onlineColor),
		offline:    lipgloss.NewStyle().Foreground(offlineColor),
		checking:   lipgloss.NewStyle().Foreground(checkingColor),
	}
}
