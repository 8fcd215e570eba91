package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Reksit/Hack4.0/client"
)

func newAlumniCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alumni",
		Short: "Alumni approval workflow",
	}
	cmd.AddCommand(newRequestApprovalCmd(a))
	cmd.AddCommand(&cobra.Command{
		Use:   "pending <professor-id>",
		Short: "List approval requests waiting on a professor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a, cmd, func(ctx context.Context, c *client.Client) ([]client.AlumniRequest, error) {
				return c.Alumni().GetPendingRequests(ctx, args[0])
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "approve <request-id>",
		Short: "Approve an alumni request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a, cmd, func(ctx context.Context, c *client.Client) (*client.MessageResponse, error) {
				return c.Alumni().ApproveRequest(ctx, args[0])
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "reject <request-id>",
		Short: "Reject an alumni request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a, cmd, func(ctx context.Context, c *client.Client) (*client.MessageResponse, error) {
				return c.Alumni().RejectRequest(ctx, args[0])
			})
		},
	})
	return cmd
}

func newRequestApprovalCmd(a *app) *cobra.Command {
	var req client.AlumniApprovalRequest
	var file string

	cmd := &cobra.Command{
		Use:   "request-approval",
		Short: "Submit an alumni profile for approval (flags or --file)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file != "" {
				if err := readJSONInput(cmd, file, &req); err != nil {
					return err
				}
			}
			return run(a, cmd, func(ctx context.Context, c *client.Client) (*client.AlumniRequest, error) {
				return c.Alumni().RequestApproval(ctx, req)
			})
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "JSON request body; '-' reads stdin")
	cmd.Flags().StringVar(&req.Name, "name", "", "Full name")
	cmd.Flags().StringVar(&req.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&req.Department, "department", "", "Department")
	cmd.Flags().StringVar(&req.GraduationYear, "graduation-year", "", "Graduation year")
	cmd.Flags().StringVar(&req.Batch, "batch", "", "Batch")
	cmd.Flags().StringVar(&req.Company, "company", "", "Current company")
	cmd.Flags().StringVar(&req.PhoneNumber, "phone", "", "Phone number")
	cmd.Flags().StringVar(&req.ProfessorID, "professor-id", "", "Approving professor ID")

	return cmd
}
