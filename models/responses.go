package models

// ErrorResponse is the optional body of a non-2xx backend response.
// FastAPI reports failures as {"detail": "..."}.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// QuizRequest describes a quiz the user asked for on the quiz tab.
type QuizRequest struct {
	Topic        string `json:"topic"`
	NumQuestions int    `json:"num_questions"`
	Difficulty   string `json:"difficulty"`
	UseDocuments bool   `json:"use_documents"`
}

// Quiz is a generated set of questions.
type Quiz struct {
	Topic     string         `json:"topic"`
	Questions []QuizQuestion `json:"questions"`
}

// QuizQuestion is a single multiple-choice question.
type QuizQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}
