package api

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/Reksit/Hack4.0/client/internal/types"
)

// Register creates a new account; the backend mails an OTP to the address.
func Register(ctx context.Context, rc *resty.Client, req types.RegisterRequest) (*types.RegisterResponse, error) {
	var out types.RegisterResponse
	if err := sendJSON(ctx, rc, http.MethodPost, "/auth/register", "register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyOTP confirms the registration OTP.
func VerifyOTP(ctx context.Context, rc *resty.Client, req types.VerifyOTPRequest) (*types.AuthResponse, error) {
	var out types.AuthResponse
	if err := sendJSON(ctx, rc, http.MethodPost, "/auth/verify-otp", "verify otp", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for a session token.
func Login(ctx context.Context, rc *resty.Client, req types.LoginRequest) (*types.AuthResponse, error) {
	var out types.AuthResponse
	if err := sendJSON(ctx, rc, http.MethodPost, "/auth/login", "login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResendOTP asks the backend to mail a new OTP.
func ResendOTP(ctx context.Context, rc *resty.Client, req types.ResendOTPRequest) (*types.MessageResponse, error) {
	var out types.MessageResponse
	if err := sendJSON(ctx, rc, http.MethodPost, "/auth/resend-otp", "resend otp", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
