package types

// ------------------------------
// Request Types
// ------------------------------

// RegisterRequest holds the fields for a new account.
type RegisterRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Role           string `json:"role"`
	Department     string `json:"department,omitempty"`
	ClassName      string `json:"className,omitempty"`
	PhoneNumber    string `json:"phoneNumber,omitempty"`
	GraduationYear string `json:"graduationYear,omitempty"`
	Batch          string `json:"batch,omitempty"`
	PlacementCell  string `json:"placementCellId,omitempty"`
}

// VerifyOTPRequest confirms the one-time password mailed at registration.
type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// LoginRequest holds account credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ResendOTPRequest asks for a fresh one-time password.
type ResendOTPRequest struct {
	Email string `json:"email"`
}

// AlumniApprovalRequest submits an alumni profile for professor approval.
type AlumniApprovalRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Department     string `json:"department"`
	GraduationYear string `json:"graduationYear,omitempty"`
	Batch          string `json:"batch,omitempty"`
	Company        string `json:"currentCompany,omitempty"`
	PhoneNumber    string `json:"phoneNumber,omitempty"`
	ProfessorID    string `json:"placementCellId"`
}

// CreateAssessmentRequest holds a new assessment definition.
type CreateAssessmentRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Domain      string     `json:"domain,omitempty"`
	Difficulty  string     `json:"difficulty,omitempty"`
	Type        string     `json:"type,omitempty"`
	StartTime   string     `json:"startTime"`
	EndTime     string     `json:"endTime"`
	Duration    int        `json:"duration,omitempty"`
	Questions   []Question `json:"questions"`
	AssignedTo  []string   `json:"assignedTo,omitempty"`
}

// SubmitAssessmentRequest carries a student's answers.
type SubmitAssessmentRequest struct {
	StudentID string   `json:"studentId,omitempty"`
	Answers   []Answer `json:"answers"`
}

// SendMessageRequest is a direct message to another user.
type SendMessageRequest struct {
	ReceiverID string `json:"receiverId"`
	Message    string `json:"message"`
}

// RoadmapRequest asks the AI service for a learning roadmap.
type RoadmapRequest struct {
	Domain    string `json:"domain"`
	TimeFrame string `json:"timeframe,omitempty"`
	Level     string `json:"skillLevel,omitempty"`
}

// GenerateAssessmentRequest asks the AI service to draft an assessment.
type GenerateAssessmentRequest struct {
	Domain        string `json:"domain"`
	Difficulty    string `json:"difficulty,omitempty"`
	NumQuestions  int    `json:"numberOfQuestions,omitempty"`
	Topic         string `json:"topic,omitempty"`
	AssessmentFor string `json:"assessmentFor,omitempty"`
}

// ExplainRequest asks why an answer is correct.
type ExplainRequest struct {
	Question      string `json:"question"`
	CorrectAnswer string `json:"correctAnswer"`
}

// EvaluateRequest asks the AI service to grade a set of answers.
type EvaluateRequest struct {
	AssessmentID string     `json:"assessmentId,omitempty"`
	Questions    []Question `json:"questions"`
	Answers      []Answer   `json:"answers"`
}
