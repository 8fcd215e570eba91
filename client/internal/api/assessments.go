package api

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/Reksit/Hack4.0/client/internal/types"
)

// CreateAssessment stores a new assessment.
func CreateAssessment(ctx context.Context, rc *resty.Client, req types.CreateAssessmentRequest) (*types.Assessment, error) {
	var out types.Assessment
	if err := sendJSON(ctx, rc, http.MethodPost, "/assessments", "create assessment", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAssessment retrieves an assessment by ID.
func GetAssessment(ctx context.Context, rc *resty.Client, assessmentID string) (*types.Assessment, error) {
	var out types.Assessment
	if err := getByID(ctx, rc, "/assessments/{assessmentId}", "get assessment", "assessmentId", assessmentID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListStudentAssessments lists assessments assigned to a student.
func ListStudentAssessments(ctx context.Context, rc *resty.Client, studentID string) ([]types.Assessment, error) {
	var out []types.Assessment
	if err := getByID(ctx, rc, "/assessments/student/{studentId}", "list student assessments", "studentId", studentID, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListProfessorAssessments lists assessments created by a professor.
func ListProfessorAssessments(ctx context.Context, rc *resty.Client, professorID string) ([]types.Assessment, error) {
	var out []types.Assessment
	if err := getByID(ctx, rc, "/assessments/professor/{professorId}", "list professor assessments", "professorId", professorID, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SubmitAssessment posts a student's answers.
func SubmitAssessment(ctx context.Context, rc *resty.Client, assessmentID string, req types.SubmitAssessmentRequest) (*types.AssessmentResult, error) {
	if err := types.ValidateIDPresent(assessmentID, "assessmentId"); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var out types.AssessmentResult
	r := rc.R().SetPathParam("assessmentId", assessmentID).SetBody(req)
	if err := send(ctx, r, http.MethodPost, "/assessments/{assessmentId}/submit", "submit assessment", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetResults lists every result recorded for an assessment.
func GetResults(ctx context.Context, rc *resty.Client, assessmentID string) ([]types.AssessmentResult, error) {
	var out []types.AssessmentResult
	if err := getByID(ctx, rc, "/assessments/{assessmentId}/results", "get results", "assessmentId", assessmentID, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetResultsWithStudents lists results joined with student identity.
func GetResultsWithStudents(ctx context.Context, rc *resty.Client, assessmentID string) ([]types.StudentResult, error) {
	var out []types.StudentResult
	if err := getByID(ctx, rc, "/assessments/{assessmentId}/results-with-students", "get results with students", "assessmentId", assessmentID, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetStudentResults lists every result recorded for a student.
func GetStudentResults(ctx context.Context, rc *resty.Client, studentID string) ([]types.AssessmentResult, error) {
	var out []types.AssessmentResult
	if err := getByID(ctx, rc, "/assessments/results/student/{studentId}", "get student results", "studentId", studentID, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetAssessmentStatus reports the schedule status of an assessment.
func GetAssessmentStatus(ctx context.Context, rc *resty.Client, assessmentID string) (*types.AssessmentStatus, error) {
	var out types.AssessmentStatus
	if err := getByID(ctx, rc, "/assessments/{assessmentId}/status", "get assessment status", "assessmentId", assessmentID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CheckSubmission reports whether studentID already submitted assessmentID.
func CheckSubmission(ctx context.Context, rc *resty.Client, assessmentID, studentID string) (*types.SubmissionCheck, error) {
	if err := types.ValidateIDPresent(assessmentID, "assessmentId"); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(studentID, "studentId"); err != nil {
		return nil, err
	}
	var out types.SubmissionCheck
	r := rc.R().SetPathParams(map[string]string{
		"assessmentId": assessmentID,
		"studentId":    studentID,
	})
	if err := send(ctx, r, http.MethodGet, "/assessments/{assessmentId}/submission/{studentId}", "check submission", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// getByID issues a body-less GET whose path carries a single identifier.
func getByID(ctx context.Context, rc *resty.Client, path, op, param, id string, out any) error {
	if err := types.ValidateIDPresent(id, param); err != nil {
		return err
	}
	return send(ctx, rc.R().SetPathParam(param, id), http.MethodGet, path, op, out)
}
