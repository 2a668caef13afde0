// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Role identifies the author of a conversation message.
type Role string

const (
	// RoleUser marks a message typed by the user.
	RoleUser Role = "user"
	// RoleAssistant marks a message produced by the assistant backend, or a
	// synthetic failure explanation added by the client in its place.
	RoleAssistant Role = "assistant"
)

// String implements [fmt.Stringer].
func (r Role) String() string {
	return string(r)
}

// Message is a single entry of the client-side conversation history.
// Messages are append-only: once recorded, neither Role nor Text change.
type Message struct {
	Role Role
	Text string
}

// DisplayMessage is a [Message] whose text has been passed through a renderer
// and is ready to be shown to the user.
type DisplayMessage struct {
	Role   Role
	Markup string
}
