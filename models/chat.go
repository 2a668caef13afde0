// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ChatMode selects the assistant's answering style on the backend.
type ChatMode string

const (
	ChatModeNormal     ChatMode = "normal"
	ChatModeExamPrep   ChatMode = "exam_prep"
	ChatModePractice   ChatMode = "practice"
	ChatModeVocabulary ChatMode = "vocabulary"
)

// ChatModes lists every mode accepted by the backend in display order.
var ChatModes = []ChatMode{ChatModeNormal, ChatModeExamPrep, ChatModePractice, ChatModeVocabulary}

// IsValid reports whether m is one of [ChatModes].
func (m ChatMode) IsValid() bool {
	for _, known := range ChatModes {
		if m == known {
			return true
		}
	}
	return false
}

// ChatRequest is the body of POST /chat.
//
// ConversationID is a pointer so that an unassigned conversation is encoded
// as JSON null rather than an empty string.
type ChatRequest struct {
	Message        string   `json:"message"`
	ConversationID *string  `json:"conversation_id"`
	Mode           ChatMode `json:"mode,omitempty"`
	UseDocuments   bool     `json:"use_documents,omitempty"`
}

// ChatResponse is the success body of POST /chat. Both fields are optional on
// the wire; an absent response is replaced by a placeholder by the session.
type ChatResponse struct {
	Response       string `json:"response"`
	ConversationID string `json:"conversation_id,omitempty"`
}
