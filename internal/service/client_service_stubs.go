package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/dravis-client/models"
)

type unavailableQuizGenerator struct{}

// NewUnavailableQuizGenerator returns the default [QuizGenerator]. It
// validates the request and then reports [ErrQuizUnavailable].
func NewUnavailableQuizGenerator() QuizGenerator {
	return unavailableQuizGenerator{}
}

func (unavailableQuizGenerator) GenerateQuiz(_ context.Context, req models.QuizRequest) (models.Quiz, error) {
	if strings.TrimSpace(req.Topic) == "" {
		return models.Quiz{}, ErrEmptyQuizTopic
	}
	return models.Quiz{}, ErrQuizUnavailable
}

type staticAuthenticator struct {
	authenticated bool
}

// NewStaticAuthenticator returns an [Authenticator] with a fixed answer.
func NewStaticAuthenticator(authenticated bool) Authenticator {
	return staticAuthenticator{authenticated: authenticated}
}

func (a staticAuthenticator) Authenticated(context.Context) bool {
	return a.authenticated
}
