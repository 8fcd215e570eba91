package api

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/Reksit/Hack4.0/client/internal/types"
)

// GenerateRoadmap asks the AI service for a learning roadmap.
func GenerateRoadmap(ctx context.Context, rc *resty.Client, req types.RoadmapRequest) (*types.Roadmap, error) {
	var out types.Roadmap
	if err := sendJSON(ctx, rc, http.MethodPost, "/ai/roadmap", "generate roadmap", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateAssessment asks the AI service to draft an assessment.
func GenerateAssessment(ctx context.Context, rc *resty.Client, req types.GenerateAssessmentRequest) (*types.GeneratedAssessment, error) {
	var out types.GeneratedAssessment
	if err := sendJSON(ctx, rc, http.MethodPost, "/ai/assessment", "generate assessment", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExplainAnswer asks the AI service why correctAnswer answers question.
func ExplainAnswer(ctx context.Context, rc *resty.Client, req types.ExplainRequest) (*types.Explanation, error) {
	var out types.Explanation
	if err := sendJSON(ctx, rc, http.MethodPost, "/ai/explain", "explain answer", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EvaluateAnswers asks the AI service to grade answers.
func EvaluateAnswers(ctx context.Context, rc *resty.Client, req types.EvaluateRequest) (*types.Evaluation, error) {
	var out types.Evaluation
	if err := sendJSON(ctx, rc, http.MethodPost, "/ai/evaluate", "evaluate answers", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
