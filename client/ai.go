package client

import (
	"context"

	"github.com/Reksit/Hack4.0/client/internal/api"
	"github.com/Reksit/Hack4.0/client/internal/types"
)

// AIAPI wraps the /ai generation endpoints.
type AIAPI struct{ c *Client }

// GenerateRoadmap: POST /ai/roadmap.
func (a AIAPI) GenerateRoadmap(ctx context.Context, req RoadmapRequest) (*Roadmap, error) {
	return api.GenerateRoadmap(ctx, a.c.rest, req)
}

// GenerateAssessment: POST /ai/assessment.
func (a AIAPI) GenerateAssessment(ctx context.Context, req GenerateAssessmentRequest) (*GeneratedAssessment, error) {
	return api.GenerateAssessment(ctx, a.c.rest, req)
}

// ExplainAnswer: POST /ai/explain with {question, correctAnswer}.
func (a AIAPI) ExplainAnswer(ctx context.Context, question, correctAnswer string) (*Explanation, error) {
	return api.ExplainAnswer(ctx, a.c.rest, types.ExplainRequest{Question: question, CorrectAnswer: correctAnswer})
}

// EvaluateAnswers: POST /ai/evaluate.
func (a AIAPI) EvaluateAnswers(ctx context.Context, req EvaluateRequest) (*Evaluation, error) {
	return api.EvaluateAnswers(ctx, a.c.rest, req)
}
