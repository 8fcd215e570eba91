package types

import "github.com/go-openapi/strfmt"

// ------------------------------
// Core Domain Entities
// ------------------------------

// Timestamps are strfmt.DateTime: the backend emits both RFC3339 and
// zone-less local times ("2024-01-15T10:30:00"), and a 2xx must decode
// either way.

// User is the account record returned by the auth endpoints and stored
// alongside the token in the session store.
type User struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	Department     string `json:"department,omitempty"`
	ClassName      string `json:"className,omitempty"`
	GraduationYear string `json:"graduationYear,omitempty"`
	Verified       bool   `json:"verified,omitempty"`
}

// UserSummary is a lightweight user record returned by user search.
type UserSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role,omitempty"`
	Department string `json:"department,omitempty"`
}

// AlumniRequest is an alumni account awaiting (or past) professor approval.
type AlumniRequest struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Email          string           `json:"email"`
	Department     string           `json:"department,omitempty"`
	GraduationYear string           `json:"graduationYear,omitempty"`
	Company        string           `json:"currentCompany,omitempty"`
	ProfessorID    string           `json:"placementCellId,omitempty"`
	Status         string           `json:"status"`
	CreatedAt      *strfmt.DateTime `json:"createdAt,omitempty"`
}

// Question is a single multiple-choice item of an assessment.
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation,omitempty"`
	Marks         int      `json:"marks,omitempty"`
}

// Assessment is a timed set of questions assigned to students.
type Assessment struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Domain      string           `json:"domain,omitempty"`
	Difficulty  string           `json:"difficulty,omitempty"`
	Type        string           `json:"type,omitempty"`
	CreatedBy   string           `json:"createdBy,omitempty"`
	StartTime   strfmt.DateTime  `json:"startTime"`
	EndTime     strfmt.DateTime  `json:"endTime"`
	Duration    int              `json:"duration,omitempty"`
	TotalMarks  int              `json:"totalMarks,omitempty"`
	Questions   []Question       `json:"questions"`
	AssignedTo  []string         `json:"assignedTo,omitempty"`
	CreatedAt   *strfmt.DateTime `json:"createdAt,omitempty"`
}

// Answer is a student's choice for one question.
type Answer struct {
	QuestionIndex  int `json:"questionIndex"`
	SelectedAnswer int `json:"selectedAnswer"`
}

// AssessmentResult is a graded submission.
type AssessmentResult struct {
	ID           string          `json:"id"`
	AssessmentID string          `json:"assessmentId"`
	StudentID    string          `json:"studentId"`
	Answers      []Answer        `json:"answers"`
	Score        int             `json:"score"`
	TotalMarks   int             `json:"totalMarks"`
	Percentage   float64         `json:"percentage"`
	SubmittedAt  strfmt.DateTime `json:"submittedAt"`
}

// StudentResult is an AssessmentResult joined with the student's identity.
type StudentResult struct {
	AssessmentResult
	StudentName  string `json:"studentName"`
	StudentEmail string `json:"studentEmail,omitempty"`
}

// ChatMessage is one direct message between two users.
type ChatMessage struct {
	ID         string          `json:"id"`
	SenderID   string          `json:"senderId"`
	ReceiverID string          `json:"receiverId"`
	Message    string          `json:"message"`
	Timestamp  strfmt.DateTime `json:"timestamp"`
	Read       bool            `json:"read,omitempty"`
}
