package orchestrator

import "github.com/MKhiriev/dravis-client/models"

// Intent names a user action the orchestrator can dispatch.
type Intent string

// Intents and the payload each one expects.
const (
	IntentNewConversation        Intent = "new_conversation"         // nil
	IntentSendMessage            Intent = "send_message"             // string
	IntentSwitchTab              Intent = "switch_tab"               // models.Tab
	IntentToggleTheme            Intent = "toggle_theme"             // nil
	IntentUploadDocument         Intent = "upload_document"          // UploadDocument
	IntentExplainDocument        Intent = "explain_document"         // string doc id
	IntentDeleteDocument         Intent = "delete_document"          // DeleteDocument
	IntentExportConversation     Intent = "export_conversation"      // nil
	IntentRefreshHealth          Intent = "refresh_health"           // nil
	IntentGenerateQuiz           Intent = "generate_quiz"            // models.QuizRequest
	IntentToggleDocumentsContext Intent = "toggle_documents_context" // nil
	IntentSetMode                Intent = "set_mode"                 // models.ChatMode
)

// UploadDocument is the payload of [IntentUploadDocument].
type UploadDocument struct {
	Filename string
	Content  []byte
}

// DeleteDocument is the payload of [IntentDeleteDocument]. Confirmed must be
// set by an explicit user confirmation.
type DeleteDocument struct {
	DocID     string
	Confirmed bool
}

// Result is the outcome of a dispatched intent.
type Result struct {
	// Notice is what the user should see. It is zero for silent outcomes.
	Notice models.Notice
	// Reply is the assistant reply of a successful send.
	Reply string
	// Explanation is set by a successful explain.
	Explanation *models.ExplanationResult
	// ExportPath is set by a successful export.
	ExportPath string
	// Quiz is set by a successful quiz generation.
	Quiz *models.Quiz
}

func info(text string) Result {
	return Result{Notice: models.Notice{Level: models.NoticeInfo, Text: text}}
}

func inline(text string) Result {
	return Result{Notice: models.Notice{Level: models.NoticeInline, Text: text}}
}

func alert(text string) Result {
	return Result{Notice: models.Notice{Level: models.NoticeAlert, Text: text}}
}
