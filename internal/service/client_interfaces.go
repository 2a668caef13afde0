package service

import (
	"context"
	"time"

	"github.com/MKhiriev/dravis-client/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ConversationSession owns the identity and history of the current
// conversation and the request/response cycle of sending a message.
type ConversationSession interface {
	// Reset starts a new conversation: the id is cleared and history
	// dropped. A reply still in flight for the previous conversation is
	// discarded when it arrives.
	Reset()

	// Send appends the trimmed text as a user message, posts it to the
	// backend and appends the assistant reply. Blank text returns
	// [ErrEmptyMessage]; a send while another is pending returns
	// [ErrSessionBusy]. Neither appends anything nor issues a request.
	// On a backend failure a fixed apology is appended as the assistant
	// reply and the classified transport error is returned.
	Send(ctx context.Context, text string) (string, error)

	// ID returns the backend-assigned conversation id, if any.
	ID() (string, bool)

	// Messages returns a copy of the conversation history.
	Messages() []models.Message

	// Pending reports whether a send is in flight.
	Pending() bool

	// SetMode selects the answering style sent with every message.
	SetMode(mode models.ChatMode) error

	// Mode returns the current answering style.
	Mode() models.ChatMode

	// SetUseDocuments toggles whether uploaded documents are used as
	// context for subsequent messages.
	SetUseDocuments(use bool)

	// UseDocuments reports whether document context is enabled.
	UseDocuments() bool
}

// DocumentStore tracks the documents acknowledged by the backend.
type DocumentStore interface {
	// Load fills the registry from the configured [DocumentLister]. Until
	// it has completed Loaded reports false.
	Load(ctx context.Context) error

	// Loaded reports whether the startup listing has completed.
	Loaded() bool

	// List returns the registry ordered by upload time ascending, with
	// insertion order breaking ties.
	List() []models.DocumentEntry

	// Upload sends content to the backend and registers the returned id.
	// On failure the registry is left untouched.
	Upload(ctx context.Context, content []byte, filename string) (string, error)

	// Explain requests an explanation of a registered document. It never
	// mutates the registry.
	Explain(ctx context.Context, docID string) (models.ExplanationResult, error)

	// Delete removes a registered document after confirmation. A backend
	// 404 counts as confirmed non-existence and also removes the entry.
	Delete(ctx context.Context, docID string, confirmed bool) error
}

// DocumentLister supplies the initial registry contents.
type DocumentLister interface {
	ListDocuments(ctx context.Context) ([]models.DocumentEntry, error)
}

// ExportService fetches conversation transcripts and delivers them as files.
type ExportService interface {
	// Export requests the transcript of conversationID and writes it as
	// conversation_<id>.md. It returns the written path.
	Export(ctx context.Context, conversationID string) (string, error)
}

// HealthService probes backend liveness.
type HealthService interface {
	// Probe never fails: transport failures are folded into the returned
	// status.
	Probe(ctx context.Context) models.Health
}

// HealthJob periodically re-probes the backend.
type HealthJob interface {
	// Start launches the background probe loop. onUpdate receives every
	// probe result. Any previously running job is stopped first.
	Start(ctx context.Context, interval time.Duration, onUpdate func(models.Health))

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}

// ThemeService persists the theme preference.
type ThemeService interface {
	// Load returns the persisted theme, or light when none is stored.
	Load(ctx context.Context) models.Theme
	// Save persists theme.
	Save(ctx context.Context, theme models.Theme) error
}

// QuizGenerator produces practice quizzes.
type QuizGenerator interface {
	GenerateQuiz(ctx context.Context, req models.QuizRequest) (models.Quiz, error)
}

// Authenticator decides whether the user may use the client.
type Authenticator interface {
	Authenticated(ctx context.Context) bool
}
