package client

import "github.com/Reksit/Hack4.0/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Requests
	RegisterRequest           = types.RegisterRequest
	VerifyOTPRequest          = types.VerifyOTPRequest
	LoginRequest              = types.LoginRequest
	ResendOTPRequest          = types.ResendOTPRequest
	AlumniApprovalRequest     = types.AlumniApprovalRequest
	CreateAssessmentRequest   = types.CreateAssessmentRequest
	SubmitAssessmentRequest   = types.SubmitAssessmentRequest
	SendMessageRequest        = types.SendMessageRequest
	RoadmapRequest            = types.RoadmapRequest
	GenerateAssessmentRequest = types.GenerateAssessmentRequest
	ExplainRequest            = types.ExplainRequest
	EvaluateRequest           = types.EvaluateRequest

	// Domain entities
	User             = types.User
	UserSummary      = types.UserSummary
	AlumniRequest    = types.AlumniRequest
	Assessment       = types.Assessment
	Question         = types.Question
	Answer           = types.Answer
	AssessmentResult = types.AssessmentResult
	StudentResult    = types.StudentResult
	ChatMessage      = types.ChatMessage

	// Responses
	MessageResponse     = types.MessageResponse
	RegisterResponse    = types.RegisterResponse
	AuthResponse        = types.AuthResponse
	AssessmentStatus    = types.AssessmentStatus
	SubmissionCheck     = types.SubmissionCheck
	Roadmap             = types.Roadmap
	GeneratedAssessment = types.GeneratedAssessment
	Explanation         = types.Explanation
	Evaluation          = types.Evaluation
)
