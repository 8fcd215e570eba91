package client

import (
	"context"

	"github.com/Reksit/Hack4.0/client/internal/api"
)

// AssessmentAPI wraps the /assessments endpoints.
type AssessmentAPI struct{ c *Client }

// Create stores a new assessment: POST /assessments.
func (a AssessmentAPI) Create(ctx context.Context, req CreateAssessmentRequest) (*Assessment, error) {
	return api.CreateAssessment(ctx, a.c.rest, req)
}

// GetByID: GET /assessments/{id}.
func (a AssessmentAPI) GetByID(ctx context.Context, assessmentID string) (*Assessment, error) {
	return api.GetAssessment(ctx, a.c.rest, assessmentID)
}

// GetByStudent: GET /assessments/student/{studentId}.
func (a AssessmentAPI) GetByStudent(ctx context.Context, studentID string) ([]Assessment, error) {
	return api.ListStudentAssessments(ctx, a.c.rest, studentID)
}

// GetByProfessor: GET /assessments/professor/{professorId}.
func (a AssessmentAPI) GetByProfessor(ctx context.Context, professorID string) ([]Assessment, error) {
	return api.ListProfessorAssessments(ctx, a.c.rest, professorID)
}

// Submit posts a student's answers: POST /assessments/{id}/submit.
func (a AssessmentAPI) Submit(ctx context.Context, assessmentID string, req SubmitAssessmentRequest) (*AssessmentResult, error) {
	return api.SubmitAssessment(ctx, a.c.rest, assessmentID, req)
}

// GetResults: GET /assessments/{id}/results.
func (a AssessmentAPI) GetResults(ctx context.Context, assessmentID string) ([]AssessmentResult, error) {
	return api.GetResults(ctx, a.c.rest, assessmentID)
}

// GetResultsWithStudents: GET /assessments/{id}/results-with-students.
func (a AssessmentAPI) GetResultsWithStudents(ctx context.Context, assessmentID string) ([]StudentResult, error) {
	return api.GetResultsWithStudents(ctx, a.c.rest, assessmentID)
}

// GetStudentResults: GET /assessments/results/student/{studentId}.
func (a AssessmentAPI) GetStudentResults(ctx context.Context, studentID string) ([]AssessmentResult, error) {
	return api.GetStudentResults(ctx, a.c.rest, studentID)
}

// GetStatus: GET /assessments/{id}/status.
func (a AssessmentAPI) GetStatus(ctx context.Context, assessmentID string) (*AssessmentStatus, error) {
	return api.GetAssessmentStatus(ctx, a.c.rest, assessmentID)
}

// CheckSubmission reports whether a student already submitted:
// GET /assessments/{id}/submission/{studentId}.
func (a AssessmentAPI) CheckSubmission(ctx context.Context, assessmentID, studentID string) (*SubmissionCheck, error) {
	return api.CheckSubmission(ctx, a.c.rest, assessmentID, studentID)
}
