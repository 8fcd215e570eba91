package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Reksit/Hack4.0/client"
)

func newAICmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ai",
		Short: "AI roadmaps, generated assessments, explanations and grading",
	}
	cmd.AddCommand(newRoadmapCmd(a))
	cmd.AddCommand(newGenerateAssessmentCmd(a))
	cmd.AddCommand(newExplainCmd(a))
	cmd.AddCommand(newEvaluateCmd(a))
	return cmd
}

func newRoadmapCmd(a *app) *cobra.Command {
	var req client.RoadmapRequest

	cmd := &cobra.Command{
		Use:   "roadmap",
		Short: "Generate a learning roadmap",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a, cmd, func(ctx context.Context, c *client.Client) (*client.Roadmap, error) {
				return c.AI().GenerateRoadmap(ctx, req)
			})
		},
	}

	cmd.Flags().StringVar(&req.Domain, "domain", "", "Subject domain (required)")
	cmd.Flags().StringVar(&req.TimeFrame, "timeframe", "", "Time frame, e.g. 3 months")
	cmd.Flags().StringVar(&req.Level, "level", "", "Current skill level")
	_ = cmd.MarkFlagRequired("domain")

	return cmd
}

func newGenerateAssessmentCmd(a *app) *cobra.Command {
	var req client.GenerateAssessmentRequest

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Draft an assessment with the AI service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a, cmd, func(ctx context.Context, c *client.Client) (*client.GeneratedAssessment, error) {
				return c.AI().GenerateAssessment(ctx, req)
			})
		},
	}

	cmd.Flags().StringVar(&req.Domain, "domain", "", "Subject domain (required)")
	cmd.Flags().StringVar(&req.Difficulty, "difficulty", "", "Difficulty level")
	cmd.Flags().IntVar(&req.NumQuestions, "questions", 0, "Number of questions")
	cmd.Flags().StringVar(&req.Topic, "topic", "", "Topic within the domain")
	cmd.Flags().StringVar(&req.AssessmentFor, "for", "", "Intended audience")
	_ = cmd.MarkFlagRequired("domain")

	return cmd
}

func newExplainCmd(a *app) *cobra.Command {
	var question, answer string

	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Explain why an answer is correct",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a, cmd, func(ctx context.Context, c *client.Client) (*client.Explanation, error) {
				return c.AI().ExplainAnswer(ctx, question, answer)
			})
		},
	}

	cmd.Flags().StringVar(&question, "question", "", "Question text (required)")
	cmd.Flags().StringVar(&answer, "answer", "", "Correct answer (required)")
	_ = cmd.MarkFlagRequired("question")
	_ = cmd.MarkFlagRequired("answer")

	return cmd
}

func newEvaluateCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Grade answers with the AI service (body from --file)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var req client.EvaluateRequest
			if err := readJSONInput(cmd, file, &req); err != nil {
				return err
			}
			return run(a, cmd, func(ctx context.Context, c *client.Client) (*client.Evaluation, error) {
				return c.AI().EvaluateAnswers(ctx, req)
			})
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "JSON request body; '-' reads stdin (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
