package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Reksit/Hack4.0/client"
	"github.com/Reksit/Hack4.0/client/session"
)

func newAuthCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Register, verify and log in; manage the local session",
	}
	cmd.AddCommand(newRegisterCmd(a))
	cmd.AddCommand(newVerifyOTPCmd(a))
	cmd.AddCommand(newLoginCmd(a))
	cmd.AddCommand(newResendOTPCmd(a))
	cmd.AddCommand(newLogoutCmd(a))
	cmd.AddCommand(newStatusCmd(a))
	return cmd
}

func newRegisterCmd(a *app) *cobra.Command {
	var req client.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account; an OTP is mailed for verification",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a, cmd, func(ctx context.Context, c *client.Client) (*client.RegisterResponse, error) {
				return c.Auth().Register(ctx, req)
			})
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "Full name (required)")
	cmd.Flags().StringVar(&req.Email, "email", "", "Email address (required)")
	cmd.Flags().StringVar(&req.Password, "password", "", "Password (required)")
	cmd.Flags().StringVar(&req.Role, "role", "", "Role: student, professor or alumni (required)")
	cmd.Flags().StringVar(&req.Department, "department", "", "Department")
	cmd.Flags().StringVar(&req.ClassName, "class", "", "Class name (students)")
	cmd.Flags().StringVar(&req.PhoneNumber, "phone", "", "Phone number")
	cmd.Flags().StringVar(&req.GraduationYear, "graduation-year", "", "Graduation year (alumni)")
	cmd.Flags().StringVar(&req.Batch, "batch", "", "Batch (alumni)")
	cmd.Flags().StringVar(&req.PlacementCell, "placement-cell", "", "Approving professor ID (alumni)")

	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("role")

	return cmd
}

func newVerifyOTPCmd(a *app) *cobra.Command {
	var email, otp string

	cmd := &cobra.Command{
		Use:   "verify-otp",
		Short: "Verify the emailed OTP; stores the session when a token is issued",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a, cmd, func(ctx context.Context, c *client.Client) (*client.AuthResponse, error) {
				resp, err := c.Auth().VerifyOTP(ctx, email, otp)
				if err != nil {
					return nil, err
				}
				if resp.Token != "" {
					if err := a.saveLogin(resp); err != nil {
						return nil, err
					}
				}
				return resp, nil
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address (required)")
	cmd.Flags().StringVar(&otp, "otp", "", "One-time password (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("otp")

	return cmd
}

func newLoginCmd(a *app) *cobra.Command {
	var req client.LoginRequest

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the issued token locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a, cmd, func(ctx context.Context, c *client.Client) (*client.AuthResponse, error) {
				resp, err := c.Auth().Login(ctx, req)
				if err != nil {
					return nil, err
				}
				if err := a.saveLogin(resp); err != nil {
					return nil, err
				}
				return resp, nil
			})
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "Email address (required)")
	cmd.Flags().StringVar(&req.Password, "password", "", "Password (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newResendOTPCmd(a *app) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "resend-otp",
		Short: "Request a fresh OTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a, cmd, func(ctx context.Context, c *client.Client) (*client.MessageResponse, error) {
				return c.Auth().ResendOTP(ctx, email)
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address (required)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored token and user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.close()
			store, err := a.sessionStore()
			if err != nil {
				return err
			}
			if err := session.Clear(store); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

// sessionStatus is what "auth status" prints.
type sessionStatus struct {
	LoggedIn  bool         `json:"loggedIn"`
	Subject   string       `json:"subject,omitempty"`
	ExpiresAt *time.Time   `json:"expiresAt,omitempty"`
	Expired   bool         `json:"expired,omitempty"`
	User      *client.User `json:"user,omitempty"`
}

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the locally stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.close()
			store, err := a.sessionStore()
			if err != nil {
				return err
			}
			token, ok, err := store.Get(session.TokenKey)
			if err != nil {
				return err
			}
			st := sessionStatus{LoggedIn: ok && token != ""}
			if st.LoggedIn {
				// Opaque tokens are still sent as-is; only JWTs can be described.
				if info, err := session.InspectToken(token); err != nil {
					log.Debug().Err(err).Msg("token is not a readable JWT")
				} else {
					st.Subject = info.Subject
					if !info.ExpiresAt.IsZero() {
						exp := info.ExpiresAt
						st.ExpiresAt = &exp
						st.Expired = info.Expired(time.Now())
					}
				}
			}
			var u client.User
			found, err := session.LoadUser(store, &u)
			if err != nil {
				return err
			}
			if found {
				st.User = &u
			}
			return printJSON(cmd.OutOrStdout(), st)
		},
	}
}

func (a *app) saveLogin(resp *client.AuthResponse) error {
	store, err := a.sessionStore()
	if err != nil {
		return err
	}
	var user any
	if resp.User != nil {
		user = resp.User
	}
	if err := session.SaveLogin(store, resp.Token, user); err != nil {
		return err
	}
	log.Debug().Bool("has_user", resp.User != nil).Msg("session stored")
	return nil
}
