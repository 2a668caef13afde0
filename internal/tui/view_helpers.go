package tui

import (
	"fmt"
	"strings"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(data)
		b.WriteString("\n")
	} else {
		b.WriteString("-\n")
	}

	b.WriteString("\n")
	b.WriteString(uiDivider)

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("\n")
		b.WriteString(hotKeys)
	}

	return b.String()
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func formatSizeMB(sizeMB float64) string {
	const kbPerMB = 1024

	switch {
	case sizeMB <= 0:
		return "-"
	case sizeMB >= 1:
		return fmt.Sprintf("%.1f MB", sizeMB)
	default:
		return fmt.Sprintf("%.0f KB", sizeMB*kbPerMB)
	}
}
