package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Reksit/Hack4.0/client"
)

func newAssessmentCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assessment",
		Short: "Create, take and grade assessments",
	}
	cmd.AddCommand(newCreateAssessmentCmd(a))
	cmd.AddCommand(newSubmitAssessmentCmd(a))

	// Read-only lookups keyed by one ID.
	lookups := []struct {
		use, short string
		call       func(context.Context, *client.Client, string) (any, error)
	}{
		{"get <assessment-id>", "Show one assessment", func(ctx context.Context, c *client.Client, id string) (any, error) {
			return c.Assessments().GetByID(ctx, id)
		}},
		{"by-student <student-id>", "List assessments assigned to a student", func(ctx context.Context, c *client.Client, id string) (any, error) {
			return c.Assessments().GetByStudent(ctx, id)
		}},
		{"by-professor <professor-id>", "List assessments created by a professor", func(ctx context.Context, c *client.Client, id string) (any, error) {
			return c.Assessments().GetByProfessor(ctx, id)
		}},
		{"results <assessment-id>", "List results for an assessment", func(ctx context.Context, c *client.Client, id string) (any, error) {
			return c.Assessments().GetResults(ctx, id)
		}},
		{"results-with-students <assessment-id>", "List results with student details", func(ctx context.Context, c *client.Client, id string) (any, error) {
			return c.Assessments().GetResultsWithStudents(ctx, id)
		}},
		{"student-results <student-id>", "List every result for a student", func(ctx context.Context, c *client.Client, id string) (any, error) {
			return c.Assessments().GetStudentResults(ctx, id)
		}},
		{"status <assessment-id>", "Show whether an assessment can be attempted", func(ctx context.Context, c *client.Client, id string) (any, error) {
			return c.Assessments().GetStatus(ctx, id)
		}},
	}
	for _, l := range lookups {
		cmd.AddCommand(&cobra.Command{
			Use:   l.use,
			Short: l.short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(a, cmd, func(ctx context.Context, c *client.Client) (any, error) {
					return l.call(ctx, c, args[0])
				})
			},
		})
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "check-submission <assessment-id> <student-id>",
		Short: "Check whether a student has submitted",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a, cmd, func(ctx context.Context, c *client.Client) (*client.SubmissionCheck, error) {
				return c.Assessments().CheckSubmission(ctx, args[0], args[1])
			})
		},
	})
	return cmd
}

func newCreateAssessmentCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an assessment (body from --file)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var req client.CreateAssessmentRequest
			if err := readJSONInput(cmd, file, &req); err != nil {
				return err
			}
			return run(a, cmd, func(ctx context.Context, c *client.Client) (*client.Assessment, error) {
				return c.Assessments().Create(ctx, req)
			})
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "JSON request body; '-' reads stdin (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newSubmitAssessmentCmd(a *app) *cobra.Command {
	var file, answers, studentID string

	cmd := &cobra.Command{
		Use:   "submit <assessment-id>",
		Short: "Submit answers (--answers 0:1,1:3 or --file)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var req client.SubmitAssessmentRequest
			switch {
			case file != "" && answers != "":
				return fmt.Errorf("--file and --answers are mutually exclusive")
			case file != "":
				if err := readJSONInput(cmd, file, &req); err != nil {
					return err
				}
			default:
				parsed, err := parseAnswers(answers)
				if err != nil {
					return err
				}
				req.Answers = parsed
			}
			if studentID != "" {
				req.StudentID = studentID
			}
			return run(a, cmd, func(ctx context.Context, c *client.Client) (*client.AssessmentResult, error) {
				return c.Assessments().Submit(ctx, args[0], req)
			})
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "JSON request body; '-' reads stdin")
	cmd.Flags().StringVar(&answers, "answers", "", "Comma separated question:option pairs")
	cmd.Flags().StringVar(&studentID, "student-id", "", "Submitting student ID")

	return cmd
}

// parseAnswers reads "q:a,q:a" into answers. An empty string yields an empty
// (non-nil) slice, which is a valid blank submission.
func parseAnswers(s string) ([]client.Answer, error) {
	out := []client.Answer{}
	if strings.TrimSpace(s) == "" {
		return out, nil
	}
	for _, pair := range strings.Split(s, ",") {
		q, opt, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok {
			return nil, fmt.Errorf("answer %q: want question:option", pair)
		}
		qi, err := strconv.Atoi(q)
		if err != nil {
			return nil, fmt.Errorf("answer %q: question index: %w", pair, err)
		}
		oi, err := strconv.Atoi(opt)
		if err != nil {
			return nil, fmt.Errorf("answer %q: option index: %w", pair, err)
		}
		out = append(out, client.Answer{QuestionIndex: qi, SelectedAnswer: oi})
	}
	return out, nil
}
