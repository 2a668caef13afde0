// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Theme is the visual theme of the client.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggled returns the opposite theme.
func (t Theme) Toggled() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// IsDark reports whether t is [ThemeDark].
func (t Theme) IsDark() bool {
	return t == ThemeDark
}

// Tab is a top-level view of the client. Exactly one tab is active at a time.
type Tab string

const (
	TabChat      Tab = "chat"
	TabDocuments Tab = "documents"
	TabQuiz      Tab = "quiz"
)

// Tabs lists every tab in navigation order.
var Tabs = []Tab{TabChat, TabDocuments, TabQuiz}

// IsValid reports whether t is one of [Tabs].
func (t Tab) IsValid() bool {
	for _, known := range Tabs {
		if t == known {
			return true
		}
	}
	return false
}

// HealthStatus is the tri-state backend liveness indicator.
type HealthStatus string

const (
	// HealthChecking is the state before the first probe completes.
	HealthChecking HealthStatus = "checking"
	// HealthOnline means the backend answered with a 2xx status, whether or
	// not its body could be parsed.
	HealthOnline HealthStatus = "online"
	// HealthOffline means the probe failed at the network level or the
	// backend answered with a non-2xx status.
	HealthOffline HealthStatus = "offline"
)

// Health is the outcome of a liveness probe as shown to the user.
type Health struct {
	Status HealthStatus
	// Model is the display name of the backend model. It is always
	// populated, with a placeholder when the backend did not report one.
	Model string
	// Degraded is set when the backend answered 2xx but the body did not
	// match the expected shape.
	Degraded bool
}

// BackendInfo is the body of GET /. All fields are optional.
type BackendInfo struct {
	Model  string `json:"model,omitempty"`
	Status string `json:"status,omitempty"`
}

// ClientState is the process-wide client state owned by the orchestrator.
// Components receive copies; only the orchestrator mutates it.
type ClientState struct {
	Theme         Theme
	ActiveTab     Tab
	Authenticated bool
	Health        Health
}
