package domain

// Response is a single submitted vote. Answer is expected, not required, to match
// one of the parent questionnaire's choices.
type Response struct {
	ID              string `json:"id"`
	QuestionnaireID string `json:"questionnaire_id"`
	Answer          string `json:"answer"`
	SubmittedAt     string `json:"submitted_at"`
}
