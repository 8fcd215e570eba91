package types

// ------------------------------
// Response Types
// ------------------------------

// MessageResponse is the plain acknowledgement most mutating endpoints return.
type MessageResponse struct {
	Message string `json:"message"`
}

// SetText stores a plain-text acknowledgement.
func (m *MessageResponse) SetText(s string) { m.Message = s }

// RegisterResponse acknowledges a registration; the account still needs OTP verification.
type RegisterResponse struct {
	Message string `json:"message"`
	Email   string `json:"email,omitempty"`
}

// SetText stores a plain-text acknowledgement.
func (r *RegisterResponse) SetText(s string) { r.Message = s }

// AuthResponse carries the session credential issued on login or verification.
type AuthResponse struct {
	Token   string `json:"token"`
	User    *User  `json:"user,omitempty"`
	Message string `json:"message,omitempty"`
}

// AssessmentStatus reports where an assessment is in its schedule.
type AssessmentStatus struct {
	AssessmentID string `json:"assessmentId,omitempty"`
	Status       string `json:"status"`
	CanAttempt   bool   `json:"canAttempt,omitempty"`
}

// SubmissionCheck reports whether a student has already submitted.
type SubmissionCheck struct {
	Submitted bool              `json:"submitted"`
	Result    *AssessmentResult `json:"result,omitempty"`
}

// Roadmap is an AI-generated learning plan.
type Roadmap struct {
	Domain string   `json:"domain,omitempty"`
	Steps  []string `json:"roadmap"`
}

// GeneratedAssessment is an AI-drafted assessment.
type GeneratedAssessment struct {
	Title     string     `json:"title,omitempty"`
	Questions []Question `json:"questions"`
}

// Explanation is the AI rationale for a correct answer.
type Explanation struct {
	Explanation string `json:"explanation"`
}

// SetText stores a plain-text explanation.
func (e *Explanation) SetText(s string) { e.Explanation = s }

// Evaluation is the AI grading of a set of answers.
type Evaluation struct {
	Score      int      `json:"score"`
	TotalMarks int      `json:"totalMarks,omitempty"`
	Percentage float64  `json:"percentage,omitempty"`
	Feedback   []string `json:"feedback,omitempty"`
}
