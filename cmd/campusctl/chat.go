package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Reksit/Hack4.0/client"
)

func newChatCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Direct messages and user lookup",
	}
	cmd.AddCommand(newSendMessageCmd(a))
	cmd.AddCommand(&cobra.Command{
		Use:   "messages <user-id> <other-user-id>",
		Short: "Show the conversation between two users",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a, cmd, func(ctx context.Context, c *client.Client) ([]client.ChatMessage, error) {
				return c.Chat().GetMessages(ctx, args[0], args[1])
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "find-user <query>",
		Short: "Search users by name or email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a, cmd, func(ctx context.Context, c *client.Client) ([]client.UserSummary, error) {
				return c.Chat().FindUser(ctx, args[0])
			})
		},
	})
	return cmd
}

func newSendMessageCmd(a *app) *cobra.Command {
	var req client.SendMessageRequest

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a direct message",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a, cmd, func(ctx context.Context, c *client.Client) (*client.ChatMessage, error) {
				return c.Chat().SendMessage(ctx, req)
			})
		},
	}

	cmd.Flags().StringVar(&req.ReceiverID, "to", "", "Receiver user ID (required)")
	cmd.Flags().StringVarP(&req.Message, "message", "m", "", "Message text (required)")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}
