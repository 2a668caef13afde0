// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// dravis client services, orchestrator and terminal UI.
//
// All Msg* constants are human-readable strings shown to the user. Keeping
// them in one place ensures consistent wording throughout the client.
package app

const (
	// MsgChatFailed is appended as the assistant reply when a message could
	// not be exchanged with the backend.
	MsgChatFailed = "Sorry, I couldn't reach the assistant. Please try again."

	// MsgNoResponse replaces an absent or empty assistant reply.
	MsgNoResponse = "(no response)"

	// MsgNoDocuments is shown when the document registry is empty.
	MsgNoDocuments = "No documents uploaded yet"

	// MsgLoadingDocuments is shown until the startup document listing has
	// completed.
	MsgLoadingDocuments = "Loading documents..."

	// MsgLoadDocumentsFailed is the fallback when the startup document
	// listing fails.
	MsgLoadDocumentsFailed = "Could not load documents"

	// MsgUploadFailed is the fallback when an upload fails without a
	// backend detail.
	MsgUploadFailed = "Upload failed"

	// MsgExplainFailed is the fallback when an explanation cannot be loaded.
	MsgExplainFailed = "Could not explain document"

	// MsgDeleteFailed is the fallback when a delete fails without a backend
	// detail.
	MsgDeleteFailed = "Delete failed"

	// MsgNothingToExport is shown when export is requested before the
	// backend has assigned a conversation id.
	MsgNothingToExport = "Nothing to export yet"

	// MsgExportFailed is the fallback alert when an export fails.
	MsgExportFailed = "Export failed"

	// MsgUnknownModel is displayed when the backend is online but did not
	// report a model name.
	MsgUnknownModel = "unknown model"

	// MsgModelPlaceholder is displayed in place of a model name while the
	// backend is offline.
	MsgModelPlaceholder = "—"

	// MsgQuizUnavailable is shown when quiz generation is requested without a
	// quiz backend.
	MsgQuizUnavailable = "Quiz generation is not available yet"

	// MsgNothingToCopy is shown when there is no reply to copy yet.
	MsgNothingToCopy = "Nothing to copy yet"

	// MsgCopyFailed is shown when the system clipboard is unavailable.
	MsgCopyFailed = "Clipboard is not available"

	// MsgCopied confirms that the last reply was copied to the clipboard.
	MsgCopied = "Copied last reply to clipboard"

	// MsgSessionBusy is shown when a message is submitted while the previous
	// reply is still pending.
	MsgSessionBusy = "Still waiting for the previous reply"

	// MsgThemeSaveFailed is shown when the theme preference cannot be
	// persisted. The toggle still applies for the current run.
	MsgThemeSaveFailed = "Could not save theme preference"

	// MsgUploaded confirms an upload. It is formatted with the file name.
	MsgUploaded = "Uploaded %s"

	// MsgDeleted confirms a delete.
	MsgDeleted = "Document deleted"

	// MsgDocumentUnknown is shown for operations on a document that is not
	// in the registry.
	MsgDocumentUnknown = "Document is no longer available"

	// MsgExported confirms an export. It is formatted with the written path.
	MsgExported = "Transcript saved to %s"

	// MsgEmptyQuizTopic is shown when a quiz is requested without a topic.
	MsgEmptyQuizTopic = "Enter a quiz topic first"

	// MsgDocumentsContextOn and MsgDocumentsContextOff confirm the document
	// context toggle.
	MsgDocumentsContextOn  = "Answers will use uploaded documents"
	MsgDocumentsContextOff = "Answers will ignore uploaded documents"

	// MsgModeChanged confirms a chat mode change. It is formatted with the
	// mode.
	MsgModeChanged = "Mode: %s"

	// MsgInvalidMode is shown for an unknown chat mode.
	MsgInvalidMode = "Unknown chat mode"
)
