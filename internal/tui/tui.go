// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal user interface of the dravis client.
//
// Every user action is translated into an orchestrator intent; the UI never
// talks to the backend or the services directly.
package tui

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/dravis-client/internal/logger"
	"github.com/MKhiriev/dravis-client/internal/orchestrator"
	"github.com/MKhiriev/dravis-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Controller is the part of [orchestrator.Orchestrator] the UI drives.
type Controller interface {
	Start(ctx context.Context) models.Notice
	Dispatch(ctx context.Context, intent orchestrator.Intent, payload any) (orchestrator.Result, error)
	ApplyHealth(h models.Health)

	State() models.ClientState
	Messages() []models.Message
	Transcript() []models.DisplayMessage
	LastReply() (string, bool)
	Pending() bool
	Mode() models.ChatMode
	UseDocuments() bool
	Documents() []models.DocumentEntry
	DocumentsStatus() string
}

// TUI runs the bubbletea program.
type TUI struct {
	orch      Controller
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	mu      sync.Mutex
	program *tea.Program
}

// New returns a TUI driving orch.
func New(orch Controller, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if orch == nil {
		return nil, errors.New("tui: orchestrator is nil")
	}
	return &TUI{orch: orch, buildInfo: buildInfo, logger: logger.WithComponent("tui")}, nil
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.orch, t.buildInfo, t.logger)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	t.mu.Lock()
	t.program = p
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.program = nil
		t.mu.Unlock()
	}()

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// ApplyHealth records a background probe result and redraws the header.
// Safe to call from any goroutine.
func (t *TUI) ApplyHealth(h models.Health) {
	t.orch.ApplyHealth(h)

	t.mu.Lock()
	p := t.program
	t.mu.Unlock()

	if p != nil {
		p.Send(healthUpdatedMsg{health: h})
	}
}
