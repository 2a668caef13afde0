package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/dravis-client/internal/adapter"
	"github.com/MKhiriev/dravis-client/internal/app"
	"github.com/MKhiriev/dravis-client/internal/logger"
	"github.com/MKhiriev/dravis-client/models"
)

type conversationSession struct {
	backend adapter.BackendAdapter
	logger  *logger.Logger

	// busy guards the single outstanding send. It is not cleared by Reset,
	// so a send in flight across a reset still blocks the next one.
	busy atomic.Bool

	mu           sync.Mutex
	id           string
	messages     []models.Message
	generation   uint64
	mode         models.ChatMode
	useDocuments bool
}

// NewConversationSession returns an empty [ConversationSession] in normal
// mode with document context disabled.
func NewConversationSession(backend adapter.BackendAdapter, logger *logger.Logger) ConversationSession {
	return &conversationSession{
		backend: backend,
		logger:  logger.WithComponent("conversation"),
		mode:    models.ChatModeNormal,
	}
}

func (s *conversationSession) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.id = ""
	s.messages = nil
	s.generation++
}

func (s *conversationSession) Send(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyMessage
	}
	if !s.busy.CompareAndSwap(false, true) {
		return "", ErrSessionBusy
	}
	defer s.busy.Store(false)

	s.mu.Lock()
	s.messages = append(s.messages, models.Message{Role: models.RoleUser, Text: text})
	generation := s.generation
	req := models.ChatRequest{
		Message:      text,
		Mode:         s.mode,
		UseDocuments: s.useDocuments,
	}
	if s.id != "" {
		id := s.id
		req.ConversationID = &id
	}
	s.mu.Unlock()

	resp, err := s.backend.Chat(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		s.logger.Debug().
			Str("func", "conversationSession.Send").
			Msg("dropping reply for a conversation that was reset")
		return "", ErrSessionSuperseded
	}

	if err != nil {
		s.logger.Err(err).
			Str("func", "conversationSession.Send").
			Str("conversation_id", s.id).
			Msg("chat request failed")
		s.messages = append(s.messages, models.Message{Role: models.RoleAssistant, Text: app.MsgChatFailed})
		return "", fmt.Errorf("send message: %w", err)
	}

	s.adoptID(resp.ConversationID)

	reply := resp.Response
	if strings.TrimSpace(reply) == "" {
		reply = app.MsgNoResponse
	}
	s.messages = append(s.messages, models.Message{Role: models.RoleAssistant, Text: reply})

	return reply, nil
}

// adoptID records the backend-assigned id once. s.mu must be held.
func (s *conversationSession) adoptID(id string) {
	switch {
	case id == "":
	case s.id == "":
		s.id = id
		s.logger.Info().
			Str("func", "conversationSession.adoptID").
			Str("conversation_id", id).
			Msg("conversation established")
	case s.id != id:
		s.logger.Warn().
			Str("func", "conversationSession.adoptID").
			Str("conversation_id", s.id).
			Str("returned_id", id).
			Msg("backend returned a different conversation id, ignoring")
	}
}

func (s *conversationSession) ID() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id, s.id != ""
}

func (s *conversationSession) Messages() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *conversationSession) Pending() bool {
	return s.busy.Load()
}

func (s *conversationSession) SetMode(mode models.ChatMode) error {
	if !mode.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidChatMode, mode)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode
	return nil
}

func (s *conversationSession) Mode() models.ChatMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

func (s *conversationSession) SetUseDocuments(use bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.useDocuments = use
}

func (s *conversationSession) UseDocuments() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.useDocuments
}
