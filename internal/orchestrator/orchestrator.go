// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package orchestrator

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/dravis-client/internal/app"
	"github.com/MKhiriev/dravis-client/internal/logger"
	"github.com/MKhiriev/dravis-client/internal/render"
	"github.com/MKhiriev/dravis-client/internal/service"
	"github.com/MKhiriev/dravis-client/models"
)

// Renderer turns raw assistant text into display output.
type Renderer interface {
	Render(raw string) string
}

type handler func(ctx context.Context, payload any) (Result, error)

// Orchestrator owns the client state and routes intents to the services.
type Orchestrator struct {
	conversation service.ConversationSession
	documents    service.DocumentStore
	export       service.ExportService
	health       service.HealthService
	theme        service.ThemeService
	quiz         service.QuizGenerator
	auth         service.Authenticator

	renderer Renderer
	logger   *logger.Logger

	handlers map[Intent]handler

	mu    sync.RWMutex
	state models.ClientState
}

// Option configures an [Orchestrator].
type Option func(*Orchestrator)

// WithRenderer replaces the default [render.Markup] transcript renderer.
func WithRenderer(r Renderer) Option {
	return func(o *Orchestrator) {
		o.renderer = r
	}
}

// New builds an orchestrator over services. The intent table is ready on
// return; [Orchestrator.Start] performs the startup sequence.
func New(services *service.ClientServices, logger *logger.Logger, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		conversation: services.Conversation,
		documents:    services.Documents,
		export:       services.Export,
		health:       services.Health,
		theme:        services.Theme,
		quiz:         services.Quiz,
		auth:         services.Auth,
		renderer:     render.NewMarkup(),
		logger:       logger.WithComponent("orchestrator"),
		state: models.ClientState{
			Theme:     models.ThemeLight,
			ActiveTab: models.TabChat,
			Health:    models.Health{Status: models.HealthChecking},
		},
	}
	for _, opt := range opts {
		opt(o)
	}

	o.handlers = map[Intent]handler{
		IntentNewConversation:        o.newConversation,
		IntentSendMessage:            o.sendMessage,
		IntentSwitchTab:              o.switchTab,
		IntentToggleTheme:            o.toggleTheme,
		IntentUploadDocument:         o.uploadDocument,
		IntentExplainDocument:        o.explainDocument,
		IntentDeleteDocument:         o.deleteDocument,
		IntentExportConversation:     o.exportConversation,
		IntentRefreshHealth:          o.refreshHealth,
		IntentGenerateQuiz:           o.generateQuiz,
		IntentToggleDocumentsContext: o.toggleDocumentsContext,
		IntentSetMode:                o.setMode,
	}
	return o
}

// Start runs the startup sequence: apply the persisted theme, probe the
// backend, load the document registry and start a fresh conversation. Probe
// and listing failures are folded into state; the returned notice reports a
// failed listing.
func (o *Orchestrator) Start(ctx context.Context) models.Notice {
	theme := o.theme.Load(ctx)
	authenticated := o.auth.Authenticated(ctx)

	o.mu.Lock()
	o.state.Theme = theme
	o.state.Authenticated = authenticated
	o.state.Health = models.Health{Status: models.HealthChecking}
	o.mu.Unlock()

	o.ApplyHealth(o.health.Probe(ctx))

	var notice models.Notice
	if err := o.documents.Load(ctx); err != nil {
		o.logger.Err(err).Str("func", "Orchestrator.Start").Msg("document listing failed")
		notice = models.Notice{Level: models.NoticeInline, Text: service.UserMessage(err, app.MsgLoadDocumentsFailed)}
	}

	o.conversation.Reset()

	o.logger.Info().
		Str("func", "Orchestrator.Start").
		Str("theme", string(theme)).
		Str("health", string(o.State().Health.Status)).
		Msg("client session started")
	return notice
}

// Dispatch runs the handler registered for intent. The returned error is the
// underlying failure, if any; the Result carries what the user should see.
// Silent no-ops (an empty message, a cancelled delete) return a zero Result
// and a nil error.
func (o *Orchestrator) Dispatch(ctx context.Context, intent Intent, payload any) (Result, error) {
	h, ok := o.handlers[intent]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownIntent, intent)
	}

	res, err := h(ctx, payload)
	if err != nil {
		o.logger.Debug().Err(err).
			Str("func", "Orchestrator.Dispatch").
			Str("intent", string(intent)).
			Msg("intent failed")
	}
	return res, err
}

// State returns a snapshot of the client state.
func (o *Orchestrator) State() models.ClientState {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.state
}

// ApplyHealth records a probe result.
func (o *Orchestrator) ApplyHealth(h models.Health) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.state.Health = h
}

// Transcript returns the conversation history rendered for display.
func (o *Orchestrator) Transcript() []models.DisplayMessage {
	msgs := o.conversation.Messages()
	out := make([]models.DisplayMessage, len(msgs))
	for i, m := range msgs {
		out[i] = models.DisplayMessage{Role: m.Role, Markup: o.renderer.Render(m.Text)}
	}
	return out
}

// Messages returns the raw conversation history.
func (o *Orchestrator) Messages() []models.Message {
	return o.conversation.Messages()
}

// LastReply returns the text of the most recent assistant message.
func (o *Orchestrator) LastReply() (string, bool) {
	msgs := o.conversation.Messages()
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Role == models.RoleAssistant {
			return msgs[i].Text, true
		}
	}
	return "", false
}

// ConversationID returns the backend-assigned conversation id, if any.
func (o *Orchestrator) ConversationID() (string, bool) {
	return o.conversation.ID()
}

// Pending reports whether a message is in flight.
func (o *Orchestrator) Pending() bool {
	return o.conversation.Pending()
}

// Mode returns the current chat mode.
func (o *Orchestrator) Mode() models.ChatMode {
	return o.conversation.Mode()
}

// UseDocuments reports whether document context is enabled.
func (o *Orchestrator) UseDocuments() bool {
	return o.conversation.UseDocuments()
}

// Documents returns the registry in display order.
func (o *Orchestrator) Documents() []models.DocumentEntry {
	return o.documents.List()
}

// DocumentsStatus returns the placeholder shown instead of the document list,
// or "" when there are documents to show.
func (o *Orchestrator) DocumentsStatus() string {
	switch {
	case !o.documents.Loaded():
		return app.MsgLoadingDocuments
	case len(o.documents.List()) == 0:
		return app.MsgNoDocuments
	}
	return ""
}

func payloadAs[T any](payload any) (T, error) {
	v, ok := payload.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: want %T, got %T", ErrInvalidPayload, zero, payload)
	}
	return v, nil
}
