package client

import (
	"context"

	"github.com/Reksit/Hack4.0/client/internal/api"
	"github.com/Reksit/Hack4.0/client/internal/types"
)

// AuthAPI wraps the /auth endpoints. The returned token is not stored:
// persisting it (see session.SaveLogin) is the caller's decision.
type AuthAPI struct{ c *Client }

// Register creates an account: POST /auth/register.
func (a AuthAPI) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	return api.Register(ctx, a.c.rest, req)
}

// VerifyOTP confirms a registration OTP: POST /auth/verify-otp.
func (a AuthAPI) VerifyOTP(ctx context.Context, email, otp string) (*AuthResponse, error) {
	return api.VerifyOTP(ctx, a.c.rest, types.VerifyOTPRequest{Email: email, OTP: otp})
}

// Login exchanges credentials for a token: POST /auth/login.
func (a AuthAPI) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	return api.Login(ctx, a.c.rest, req)
}

// ResendOTP mails a fresh OTP: POST /auth/resend-otp.
func (a AuthAPI) ResendOTP(ctx context.Context, email string) (*MessageResponse, error) {
	return api.ResendOTP(ctx, a.c.rest, types.ResendOTPRequest{Email: email})
}
