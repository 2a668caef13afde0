package tui

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/MKhiriev/dravis-client/internal/app"
	"github.com/MKhiriev/dravis-client/internal/logger"
	"github.com/MKhiriev/dravis-client/internal/orchestrator"
	"github.com/MKhiriev/dravis-client/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dispatched struct {
	intent  orchestrator.Intent
	payload any
}

// fakeController records dispatched intents and serves canned state.
type fakeController struct {
	mu         sync.Mutex
	state      models.ClientState
	messages   []models.Message
	documents  []models.DocumentEntry
	dispatches []dispatched
	results    map[orchestrator.Intent]orchestrator.Result
}

func newFakeController() *fakeController {
	return &fakeController{
		state: models.ClientState{
			Theme:     models.ThemeDark,
			ActiveTab: models.TabChat,
			Health:    models.Health{Status: models.HealthOnline, Model: "llama3"},
		},
		results: make(map[orchestrator.Intent]orchestrator.Result),
	}
}

func (f *fakeController) Start(context.Context) models.Notice { return models.Notice{} }

func (f *fakeController) Dispatch(_ context.Context, intent orchestrator.Intent, payload any) (orchestrator.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dispatches = append(f.dispatches, dispatched{intent: intent, payload: payload})
	if intent == orchestrator.IntentSwitchTab {
		f.state.ActiveTab = payload.(models.Tab)
	}
	return f.results[intent], nil
}

func (f *fakeController) ApplyHealth(h models.Health) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Health = h
}

func (f *fakeController) State() models.ClientState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *fakeController) Messages() []models.Message { return f.messages }

func (f *fakeController) Transcript() []models.DisplayMessage {
	out := make([]models.DisplayMessage, len(f.messages))
	for i, m := range f.messages {
		out[i] = models.DisplayMessage{Role: m.Role, Markup: "<p>" + m.Text + "</p>"}
	}
	return out
}

func (f *fakeController) LastReply() (string, bool) {
	for i := len(f.messages) - 1; i >= 0; i-- {
		if f.messages[i].Role == models.RoleAssistant {
			return f.messages[i].Text, true
		}
	}
	return "", false
}

func (f *fakeController) Pending() bool                     { return false }
func (f *fakeController) Mode() models.ChatMode             { return models.ChatModeNormal }
func (f *fakeController) UseDocuments() bool                { return false }
func (f *fakeController) Documents() []models.DocumentEntry { return f.documents }

func (f *fakeController) DocumentsStatus() string {
	if len(f.documents) == 0 {
		return app.MsgNoDocuments
	}
	return ""
}

func (f *fakeController) last() dispatched {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.dispatches[len(f.dispatches)-1]
}

func startedModel(t *testing.T, orch *fakeController) appModel {
	t.Helper()
	m := newAppModel(context.Background(), orch, models.NewAppBuildInfo("1.0.0", "2026-10-01", "abc123"), logger.Nop())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	next, _ = next.(appModel).Update(startedMsg{})
	return next.(appModel)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestAppModel_Started_AppliesTheme(t *testing.T) {
	m := startedModel(t, newFakeController())

	assert.True(t, m.started)
	assert.Equal(t, models.ThemeDark, m.theme)
	assert.Contains(t, m.View(), "DRAVIS")
	assert.Contains(t, m.View(), "llama3")
}

func TestAppModel_EnterSendsMessage(t *testing.T) {
	orch := newFakeController()
	m := startedModel(t, orch)
	m.chatInput.SetValue("hello there")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg := cmd()

	done, ok := msg.(intentDoneMsg)
	require.True(t, ok)
	assert.Equal(t, orchestrator.IntentSendMessage, done.intent)
	assert.Equal(t, dispatched{intent: orchestrator.IntentSendMessage, payload: "hello there"}, orch.last())
	assert.Empty(t, next.(appModel).chatInput.Value())
}

func TestAppModel_EnterWithBlankInputDoesNothing(t *testing.T) {
	orch := newFakeController()
	m := startedModel(t, orch)
	m.chatInput.SetValue("   ")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Empty(t, orch.dispatches)
}

func TestAppModel_TabSwitchesLocally(t *testing.T) {
	orch := newFakeController()
	m := startedModel(t, orch)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, models.TabDocuments, orch.State().ActiveTab)
	assert.Contains(t, next.(appModel).View(), app.MsgNoDocuments)

	next, _ = next.(appModel).Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, models.TabChat, orch.State().ActiveTab)
	assert.True(t, next.(appModel).chatInput.Focused())
}

func TestAppModel_DeleteAsksForConfirmation(t *testing.T) {
	orch := newFakeController()
	orch.state.ActiveTab = models.TabDocuments
	orch.documents = []models.DocumentEntry{{DocID: "d1", Metadata: models.DocumentMetadata{Filename: "notes.pdf"}}}
	m := startedModel(t, orch)

	next, cmd := m.Update(runes("d"))
	assert.Nil(t, cmd)
	m = next.(appModel)
	assert.Equal(t, overlayConfirmDelete, m.overlay)
	assert.Contains(t, m.View(), "notes.pdf")

	next, cmd = m.Update(runes("n"))
	require.NotNil(t, cmd)
	cmd()
	assert.Equal(t, overlayNone, next.(appModel).overlay)
	assert.Equal(t, orchestrator.DeleteDocument{DocID: "d1"}, orch.last().payload)

	m.overlay = overlayConfirmDelete
	_, cmd = m.Update(runes("y"))
	require.NotNil(t, cmd)
	cmd()
	assert.Equal(t, orchestrator.DeleteDocument{DocID: "d1", Confirmed: true}, orch.last().payload)
}

func TestAppModel_AlertNoticeOpensOverlay(t *testing.T) {
	m := startedModel(t, newFakeController())

	next, _ := m.Update(intentDoneMsg{
		intent: orchestrator.IntentExportConversation,
		result: orchestrator.Result{Notice: models.Notice{Level: models.NoticeAlert, Text: "Export failed"}},
		err:    errors.New("boom"),
	})
	m = next.(appModel)
	assert.Equal(t, overlayAlert, m.overlay)
	assert.Contains(t, m.View(), "Export failed")

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, overlayNone, next.(appModel).overlay)
}

func TestAppModel_InfoNoticeIsShownAndCleared(t *testing.T) {
	m := startedModel(t, newFakeController())
	notice := models.Notice{Level: models.NoticeInfo, Text: app.MsgNothingToExport}

	next, cmd := m.Update(intentDoneMsg{result: orchestrator.Result{Notice: notice}})
	require.NotNil(t, cmd)
	m = next.(appModel)
	assert.Equal(t, notice, m.notice)
	assert.Contains(t, m.View(), app.MsgNothingToExport)

	next, _ = m.Update(clearNoticeMsg{notice: notice})
	assert.True(t, next.(appModel).notice.IsZero())
}

func TestAppModel_ExplanationOverlay(t *testing.T) {
	m := startedModel(t, newFakeController())

	next, _ := m.Update(intentDoneMsg{
		intent: orchestrator.IntentExplainDocument,
		result: orchestrator.Result{Explanation: &models.ExplanationResult{Filename: "notes.pdf", Explanation: "Summary"}},
	})
	m = next.(appModel)
	assert.Equal(t, overlayExplanation, m.overlay)
	assert.Contains(t, m.View(), "notes.pdf")
}

func TestAppModel_CopyLastReply(t *testing.T) {
	orch := newFakeController()
	orch.messages = []models.Message{
		{Role: models.RoleUser, Text: "hi"},
		{Role: models.RoleAssistant, Text: "hello **there**"},
	}
	m := startedModel(t, orch)

	var copied string
	m.copyText = func(s string) error {
		copied = s
		return nil
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	require.NotNil(t, cmd)
	done := cmd().(intentDoneMsg)
	assert.Equal(t, "hello **there**", copied)
	assert.Equal(t, app.MsgCopied, done.result.Notice.Text)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlG})
	require.NotNil(t, cmd)
	cmd()
	assert.Contains(t, copied, `<div class="message assistant"><p>hello **there**</p></div>`)
}

func TestAppModel_CopyWithoutReply(t *testing.T) {
	m := startedModel(t, newFakeController())
	m.copyText = func(string) error {
		t.Fatal("clipboard must not be touched")
		return nil
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	require.NotNil(t, cmd)
	assert.Equal(t, app.MsgNothingToCopy, cmd().(intentDoneMsg).result.Notice.Text)
}

func TestAppModel_BuildInfo(t *testing.T) {
	m := startedModel(t, newFakeController())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyF1})
	view := next.(appModel).View()
	assert.Contains(t, view, "1.0.0")
	assert.Contains(t, view, "abc123")
}

func TestAppModel_TranscriptRendered(t *testing.T) {
	orch := newFakeController()
	orch.messages = []models.Message{
		{Role: models.RoleUser, Text: "what is a verb?"},
		{Role: models.RoleAssistant, Text: "A word for an action"},
	}
	m := startedModel(t, orch)

	view := m.View()
	assert.Contains(t, view, "what is a verb?")
	assert.Contains(t, view, "action")
}

func TestAppModel_QuizRequest(t *testing.T) {
	orch := newFakeController()
	orch.state.ActiveTab = models.TabQuiz
	m := startedModel(t, orch)
	m.quizInput.SetValue(" irregular verbs ")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	cmd()
	assert.Equal(t, models.QuizRequest{Topic: "irregular verbs", NumQuestions: 5, Difficulty: "medium"}, orch.last().payload)
}
