package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/dravis-client/internal/app"
	"github.com/MKhiriev/dravis-client/internal/logger"
	"github.com/MKhiriev/dravis-client/internal/orchestrator"
	"github.com/MKhiriev/dravis-client/internal/render"
	"github.com/MKhiriev/dravis-client/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	noticeTTL        = 5 * time.Second
	defaultQuizSize  = 5
	defaultQuizLevel = "medium"
	chromeHeight     = 9
)

type overlayKind int

const (
	overlayNone overlayKind = iota
	overlayAlert
	overlayConfirmDelete
	overlayExplanation
	overlayBuildInfo
)

type appModel struct {
	ctx       context.Context
	orch      Controller
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
	copyText  func(string) error

	started bool
	width   int
	height  int

	styles        styles
	theme         models.Theme
	terminal      *render.Terminal
	terminalTheme models.Theme
	terminalWidth int

	chatInput   textinput.Model
	transcript  viewport.Model
	shownCount  int
	shownWidth  int
	spinner     spinner.Model
	uploadInput textinput.Model
	uploading   bool
	quizInput   textinput.Model
	quiz        *models.Quiz

	docIdx int
	notice models.Notice

	overlay     overlayKind
	alertText   string
	confirmDoc  models.DocumentEntry
	explanation models.ExplanationResult
}

func newAppModel(ctx context.Context, orch Controller, buildInfo models.AppBuildInfo, logger *logger.Logger) appModel {
	chat := textinput.New()
	chat.Placeholder = "Ask DRAVIS anything..."
	chat.Prompt = "› "
	chat.Focus()

	upload := textinput.New()
	upload.Placeholder = "/path/to/document.pdf"
	upload.Prompt = "file: "

	quiz := textinput.New()
	quiz.Placeholder = "Quiz topic"
	quiz.Prompt = "topic: "

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return appModel{
		ctx:         ctx,
		orch:        orch,
		buildInfo:   buildInfo,
		logger:      logger,
		copyText:    clipboard.WriteAll,
		theme:       models.ThemeLight,
		styles:      newStyles(models.ThemeLight),
		chatInput:   chat,
		transcript:  viewport.New(80, 20),
		shownCount:  -1,
		spinner:     sp,
		uploadInput: upload,
		quizInput:   quiz,
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.cmdStart())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()

	case startedMsg:
		m.started = true
		m.applyTheme()
		cmds = append(cmds, m.showNotice(msg.notice))

	case intentDoneMsg:
		cmds = append(cmds, m.handleResult(msg))

	case healthUpdatedMsg:
		// header is redrawn from orchestrator state

	case clearNoticeMsg:
		if m.notice == msg.notice {
			m.notice = models.Notice{}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.handleKey(msg)
		cmds = append(cmds, cmd)

	default:
		var cmd tea.Cmd
		m, cmd = m.updateFocused(msg)
		cmds = append(cmds, cmd)
	}

	m.syncTranscript()
	return m, tea.Batch(cmds...)
}

func (m appModel) handleKey(msg tea.KeyMsg) (appModel, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}
	if m.overlay != overlayNone {
		return m.updateOverlay(msg)
	}
	if !m.started {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.tab):
		return m.switchTab(1), nil
	case key.Matches(msg, keys.backtab):
		return m.switchTab(-1), nil
	case key.Matches(msg, keys.toggleTheme):
		return m, m.cmdDispatch(orchestrator.IntentToggleTheme, nil)
	case key.Matches(msg, keys.newChat):
		m.quiz = nil
		return m, m.cmdDispatch(orchestrator.IntentNewConversation, nil)
	case key.Matches(msg, keys.export):
		return m, m.cmdDispatch(orchestrator.IntentExportConversation, nil)
	case key.Matches(msg, keys.refresh):
		return m, m.cmdDispatch(orchestrator.IntentRefreshHealth, nil)
	case key.Matches(msg, keys.docsContext):
		return m, m.cmdDispatch(orchestrator.IntentToggleDocumentsContext, nil)
	case key.Matches(msg, keys.cycleMode):
		return m, m.cmdDispatch(orchestrator.IntentSetMode, nextMode(m.orch.Mode()))
	case key.Matches(msg, keys.copyReply):
		return m, m.copyLastReply()
	case key.Matches(msg, keys.copyTranscript):
		return m, m.copyTranscriptHTML()
	case key.Matches(msg, keys.buildInfo):
		m.overlay = overlayBuildInfo
		return m, nil
	}

	switch m.orch.State().ActiveTab {
	case models.TabDocuments:
		return m.updateDocuments(msg)
	case models.TabQuiz:
		return m.updateQuiz(msg)
	default:
		return m.updateChat(msg)
	}
}

func (m appModel) updateOverlay(msg tea.KeyMsg) (appModel, tea.Cmd) {
	if m.overlay == overlayConfirmDelete {
		switch {
		case key.Matches(msg, keys.yes):
			m.overlay = overlayNone
			return m, m.cmdDispatch(orchestrator.IntentDeleteDocument,
				orchestrator.DeleteDocument{DocID: m.confirmDoc.DocID, Confirmed: true})
		case key.Matches(msg, keys.no):
			m.overlay = overlayNone
			return m, m.cmdDispatch(orchestrator.IntentDeleteDocument,
				orchestrator.DeleteDocument{DocID: m.confirmDoc.DocID})
		}
		return m, nil
	}

	if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
		m.overlay = overlayNone
	}
	return m, nil
}

func (m appModel) updateChat(msg tea.KeyMsg) (appModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.enter):
		text := m.chatInput.Value()
		if strings.TrimSpace(text) == "" {
			return m, nil
		}
		m.chatInput.Reset()
		return m, m.cmdDispatch(orchestrator.IntentSendMessage, text)
	case key.Matches(msg, keys.pageUp), key.Matches(msg, keys.pageDown):
		var cmd tea.Cmd
		m.transcript, cmd = m.transcript.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}

func (m appModel) updateDocuments(msg tea.KeyMsg) (appModel, tea.Cmd) {
	if m.uploading {
		switch {
		case key.Matches(msg, keys.esc):
			m.closeUpload()
			return m, nil
		case key.Matches(msg, keys.enter):
			path := strings.TrimSpace(m.uploadInput.Value())
			if path == "" {
				return m, nil
			}
			return m, m.cmdUpload(path)
		}
		var cmd tea.Cmd
		m.uploadInput, cmd = m.uploadInput.Update(msg)
		return m, cmd
	}

	docs := m.orch.Documents()
	switch {
	case key.Matches(msg, keys.up):
		if m.docIdx > 0 {
			m.docIdx--
		}
	case key.Matches(msg, keys.down):
		if m.docIdx < len(docs)-1 {
			m.docIdx++
		}
	case key.Matches(msg, keys.upload):
		m.uploading = true
		m.uploadInput.Reset()
		return m, m.uploadInput.Focus()
	case key.Matches(msg, keys.explain):
		if doc, ok := selectedDocument(docs, m.docIdx); ok {
			return m, m.cmdDispatch(orchestrator.IntentExplainDocument, doc.DocID)
		}
	case key.Matches(msg, keys.delete):
		if doc, ok := selectedDocument(docs, m.docIdx); ok {
			m.confirmDoc = doc
			m.overlay = overlayConfirmDelete
		}
	}
	return m, nil
}

func (m appModel) updateQuiz(msg tea.KeyMsg) (appModel, tea.Cmd) {
	if key.Matches(msg, keys.enter) {
		return m, m.cmdDispatch(orchestrator.IntentGenerateQuiz, models.QuizRequest{
			Topic:        strings.TrimSpace(m.quizInput.Value()),
			NumQuestions: defaultQuizSize,
			Difficulty:   defaultQuizLevel,
			UseDocuments: m.orch.UseDocuments(),
		})
	}

	var cmd tea.Cmd
	m.quizInput, cmd = m.quizInput.Update(msg)
	return m, cmd
}

// updateFocused forwards non-key messages such as cursor blinks to the
// focused input.
func (m appModel) updateFocused(msg tea.Msg) (appModel, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.uploading:
		m.uploadInput, cmd = m.uploadInput.Update(msg)
	case m.quizInput.Focused():
		m.quizInput, cmd = m.quizInput.Update(msg)
	default:
		m.chatInput, cmd = m.chatInput.Update(msg)
	}
	return m, cmd
}

func (m *appModel) handleResult(msg intentDoneMsg) tea.Cmd {
	res := msg.result
	if msg.err != nil {
		m.logger.Debug().Err(msg.err).
			Str("func", "appModel.handleResult").
			Str("intent", string(msg.intent)).
			Msg("intent finished with error")
	}

	switch msg.intent {
	case orchestrator.IntentToggleTheme:
		m.applyTheme()
	case orchestrator.IntentUploadDocument:
		if msg.err == nil {
			m.closeUpload()
		}
	case orchestrator.IntentDeleteDocument:
		if n := len(m.orch.Documents()); m.docIdx >= n && n > 0 {
			m.docIdx = n - 1
		}
	case orchestrator.IntentExplainDocument:
		if res.Explanation != nil {
			m.explanation = *res.Explanation
			m.overlay = overlayExplanation
		}
	case orchestrator.IntentGenerateQuiz:
		m.quiz = res.Quiz
	}

	if res.Notice.Level == models.NoticeAlert {
		m.alertText = res.Notice.Text
		m.overlay = overlayAlert
		return nil
	}
	return m.showNotice(res.Notice)
}

func (m *appModel) showNotice(n models.Notice) tea.Cmd {
	if n.IsZero() {
		return nil
	}
	m.notice = n
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg { return clearNoticeMsg{notice: n} })
}

func (m appModel) switchTab(step int) appModel {
	current := m.orch.State().ActiveTab
	idx := 0
	for i, t := range models.Tabs {
		if t == current {
			idx = i
		}
	}
	next := models.Tabs[(idx+step+len(models.Tabs))%len(models.Tabs)]

	if _, err := m.orch.Dispatch(m.ctx, orchestrator.IntentSwitchTab, next); err != nil {
		return m
	}

	m.chatInput.Blur()
	m.quizInput.Blur()
	switch next {
	case models.TabChat:
		m.chatInput.Focus()
	case models.TabQuiz:
		m.quizInput.Focus()
	}
	return m
}

func (m *appModel) closeUpload() {
	m.uploading = false
	m.uploadInput.Reset()
	m.uploadInput.Blur()
}

func (m *appModel) applyTheme() {
	theme := m.orch.State().Theme
	m.theme = theme
	m.styles = newStyles(theme)
	m.shownCount = -1
}

func (m *appModel) resize() {
	m.transcript.Width = max(m.width-4, 20)
	m.transcript.Height = max(m.height-chromeHeight, 3)
	m.chatInput.Width = max(m.width-8, 10)
	m.uploadInput.Width = max(m.width-12, 10)
	m.quizInput.Width = max(m.width-12, 10)
	m.shownCount = -1
}

// syncTranscript re-renders the chat viewport when the history, the width or
// the theme changed.
func (m *appModel) syncTranscript() {
	msgs := m.orch.Messages()
	if len(msgs) == m.shownCount && m.transcript.Width == m.shownWidth {
		return
	}

	if m.terminal == nil || m.terminalTheme != m.theme || m.terminalWidth != m.transcript.Width {
		t, err := render.NewTerminal(m.theme, m.transcript.Width)
		if err != nil {
			m.logger.Err(err).Str("func", "appModel.syncTranscript").Msg("terminal renderer unavailable")
			t = nil
		}
		m.terminal, m.terminalTheme, m.terminalWidth = t, m.theme, m.transcript.Width
	}

	m.transcript.SetContent(m.renderMessages(msgs))
	m.transcript.GotoBottom()
	m.shownCount = len(msgs)
	m.shownWidth = m.transcript.Width
}

func (m appModel) renderMessages(msgs []models.Message) string {
	var b strings.Builder
	for i, msg := range msgs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		if msg.Role == models.RoleUser {
			b.WriteString(m.styles.user.Render("You"))
			b.WriteString("\n")
			b.WriteString(msg.Text)
			continue
		}
		b.WriteString(m.styles.assistant.Render("DRAVIS"))
		b.WriteString("\n")
		if m.terminal != nil {
			b.WriteString(m.terminal.Render(msg.Text))
		} else {
			b.WriteString(msg.Text)
		}
	}
	return b.String()
}

func (m appModel) copyLastReply() tea.Cmd {
	reply, ok := m.orch.LastReply()
	if !ok {
		return func() tea.Msg {
			return intentDoneMsg{result: orchestrator.Result{Notice: models.Notice{Level: models.NoticeInfo, Text: app.MsgNothingToCopy}}}
		}
	}
	return m.cmdCopy(reply)
}

func (m appModel) copyTranscriptHTML() tea.Cmd {
	transcript := m.orch.Transcript()
	if len(transcript) == 0 {
		return func() tea.Msg {
			return intentDoneMsg{result: orchestrator.Result{Notice: models.Notice{Level: models.NoticeInfo, Text: app.MsgNothingToCopy}}}
		}
	}

	var b strings.Builder
	for _, msg := range transcript {
		fmt.Fprintf(&b, "<div class=\"message %s\">%s</div>\n", msg.Role, msg.Markup)
	}
	return m.cmdCopy(b.String())
}

func (m appModel) cmdCopy(text string) tea.Cmd {
	copyText := m.copyText
	return func() tea.Msg {
		notice := models.Notice{Level: models.NoticeInfo, Text: app.MsgCopied}
		if err := copyText(text); err != nil {
			notice = models.Notice{Level: models.NoticeInline, Text: app.MsgCopyFailed}
		}
		return intentDoneMsg{result: orchestrator.Result{Notice: notice}}
	}
}

func (m appModel) cmdStart() tea.Cmd {
	ctx, orch := m.ctx, m.orch
	return func() tea.Msg {
		return startedMsg{notice: orch.Start(ctx)}
	}
}

func (m appModel) cmdDispatch(intent orchestrator.Intent, payload any) tea.Cmd {
	ctx, orch := m.ctx, m.orch
	return func() tea.Msg {
		res, err := orch.Dispatch(ctx, intent, payload)
		return intentDoneMsg{intent: intent, result: res, err: err}
	}
}

func (m appModel) cmdUpload(path string) tea.Cmd {
	ctx, orch := m.ctx, m.orch
	return func() tea.Msg {
		content, err := readUploadFile(path)
		if err != nil {
			return intentDoneMsg{
				intent: orchestrator.IntentUploadDocument,
				result: orchestrator.Result{Notice: models.Notice{Level: models.NoticeInline, Text: err.Error()}},
				err:    err,
			}
		}

		payload := orchestrator.UploadDocument{Filename: filepath.Base(path), Content: content}
		res, err := orch.Dispatch(ctx, orchestrator.IntentUploadDocument, payload)
		return intentDoneMsg{intent: orchestrator.IntentUploadDocument, result: res, err: err}
	}
}

func readUploadFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("file not found: %s", path)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", filepath.Base(path), err)
	}
	return content, nil
}

func selectedDocument(docs []models.DocumentEntry, idx int) (models.DocumentEntry, bool) {
	if idx < 0 || idx >= len(docs) {
		return models.DocumentEntry{}, false
	}
	return docs[idx], true
}

func nextMode(current models.ChatMode) models.ChatMode {
	for i, mode := range models.ChatModes {
		if mode == current {
			return models.ChatModes[(i+1)%len(models.ChatModes)]
		}
	}
	return models.ChatModeNormal
}
