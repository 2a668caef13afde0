package tui

type confirmModel struct {
	message string
}

func (m confirmModel) View(s styles) string {
	content := "Delete \"" + m.message + "\"?\n\n"
	content += "y yes    n no"
	return s.overlayBox.Render(content)
}
