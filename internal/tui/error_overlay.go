package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View(s styles) string {
	content := "Error\n\n" + m.message + "\n\nenter / esc close"
	return s.overlayBox.Render(content)
}
