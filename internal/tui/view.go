package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/dravis-client/internal/app"
	"github.com/MKhiriev/dravis-client/models"
	"github.com/charmbracelet/lipgloss"
)

func (m appModel) View() string {
	if !m.started {
		return m.styles.app.Render(m.spinner.View() + " Connecting to DRAVIS...")
	}

	var body string
	switch m.overlay {
	case overlayAlert:
		body = errorOverlayModel{message: m.alertText}.View(m.styles)
	case overlayConfirmDelete:
		body = confirmModel{message: m.confirmDoc.Metadata.Filename}.View(m.styles)
	case overlayExplanation:
		body = m.viewExplanation()
	case overlayBuildInfo:
		body = renderBuildInfoWindow(m.buildInfo, m.styles)
	default:
		switch m.orch.State().ActiveTab {
		case models.TabDocuments:
			body = m.viewDocuments()
		case models.TabQuiz:
			body = m.viewQuiz()
		default:
			body = m.viewChat()
		}
	}

	return m.styles.app.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.viewHeader(),
		m.viewTabs(),
		"",
		body,
		"",
		m.viewNotice(),
		m.styles.help.Render(m.helpLine()),
	))
}

func (m appModel) viewHeader() string {
	state := m.orch.State()

	var health string
	switch state.Health.Status {
	case models.HealthOnline:
		label := "● online · " + state.Health.Model
		if state.Health.Degraded {
			label += " (degraded)"
		}
		health = m.styles.online.Render(label)
	case models.HealthOffline:
		health = m.styles.offline.Render("● offline · " + state.Health.Model)
	default:
		health = m.styles.checking.Render("● checking...")
	}

	docs := "docs off"
	if m.orch.UseDocuments() {
		docs = "docs on"
	}
	meta := m.styles.help.Render(fmt.Sprintf("mode: %s · %s · %s", m.orch.Mode(), docs, state.Theme))

	return lipgloss.JoinHorizontal(lipgloss.Top, m.styles.title.Render("DRAVIS"), "  ", health, "  ", meta)
}

func (m appModel) viewTabs() string {
	active := m.orch.State().ActiveTab
	tabs := make([]string, 0, len(models.Tabs))
	for _, t := range models.Tabs {
		label := tabLabel(t)
		if t == active {
			tabs = append(tabs, m.styles.activeTab.Render(label))
		} else {
			tabs = append(tabs, m.styles.tab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m appModel) viewChat() string {
	var b strings.Builder
	if len(m.orch.Messages()) == 0 {
		b.WriteString(m.styles.help.Render("Start a conversation below."))
	} else {
		b.WriteString(m.transcript.View())
	}
	b.WriteString("\n")
	if m.orch.Pending() {
		b.WriteString(m.spinner.View() + " DRAVIS is thinking...")
	}
	b.WriteString("\n")
	b.WriteString(m.chatInput.View())
	return b.String()
}

func (m appModel) viewDocuments() string {
	var b strings.Builder

	if status := m.orch.DocumentsStatus(); status != "" {
		b.WriteString(m.styles.help.Render(status))
		b.WriteString("\n")
	} else {
		for i, doc := range m.orch.Documents() {
			line := fmt.Sprintf("%-40s %8s  %s",
				fitText(doc.Metadata.Filename, 40),
				formatSizeMB(doc.Metadata.FileSizeMB),
				formatUploadTime(doc.Metadata.UploadTime))
			if i == m.docIdx {
				b.WriteString(m.styles.selected.Render("› " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
	}

	if m.uploading {
		b.WriteString("\n")
		b.WriteString(m.uploadInput.View())
		b.WriteString("\n")
	}
	return b.String()
}

func (m appModel) viewQuiz() string {
	var b strings.Builder
	b.WriteString(m.quizInput.View())
	b.WriteString("\n\n")

	if m.quiz == nil {
		b.WriteString(m.styles.help.Render("Generate a practice quiz on any topic."))
		return b.String()
	}

	b.WriteString(m.styles.title.Render(m.quiz.Topic))
	b.WriteString("\n")
	for i, q := range m.quiz.Questions {
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, q.Question)
		for j, opt := range q.Options {
			fmt.Fprintf(&b, "   %c) %s\n", 'a'+j, opt)
		}
	}
	return b.String()
}

func (m appModel) viewExplanation() string {
	text := m.explanation.Explanation
	if m.terminal != nil {
		text = m.terminal.Render(text)
	}
	content := m.styles.title.Render(m.explanation.Filename) + "\n\n" + text + "\n\n" +
		m.styles.help.Render("enter / esc close")
	return m.styles.overlayBox.Render(content)
}

func (m appModel) viewNotice() string {
	switch m.notice.Level {
	case models.NoticeInfo:
		return m.styles.info.Render(m.notice.Text)
	case models.NoticeInline, models.NoticeAlert:
		return m.styles.inline.Render(m.notice.Text)
	}
	return ""
}

func (m appModel) helpLine() string {
	if m.overlay != overlayNone {
		return ""
	}

	common := "tab: switch · ctrl+t: theme · ctrl+n: new chat · ctrl+e: export · f1: about · ctrl+c: quit"
	switch m.orch.State().ActiveTab {
	case models.TabDocuments:
		if m.uploading {
			return "enter: upload · esc: cancel"
		}
		return "u: upload · enter/x: explain · d: delete · ctrl+o: use documents · " + common
	case models.TabQuiz:
		return "enter: generate · " + common
	default:
		return "enter: send · ctrl+k: mode · ctrl+y: copy reply · ctrl+g: copy html · pgup/pgdn: scroll · " + common
	}
}

func tabLabel(t models.Tab) string {
	switch t {
	case models.TabDocuments:
		return "Documents"
	case models.TabQuiz:
		return "Quiz"
	default:
		return "Chat"
	}
}

func formatUploadTime(ts models.Timestamp) string {
	if ts.IsZero() {
		return app.MsgModelPlaceholder
	}
	return ts.Local().Format("2006-01-02 15:04")
}
