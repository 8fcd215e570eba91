package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	apierrors "github.com/Reksit/Hack4.0/client/internal/errors"
	"github.com/Reksit/Hack4.0/client/internal/types"
)

func TestLogin_Success(t *testing.T) {
	t.Parallel()
	var got captured
	srv := recordingServer(&got, http.StatusOK, `{"token":"tok-1","user":{"id":"u1","email":"ada@example.com","role":"student"}}`)
	defer srv.Close()

	resp, err := Login(context.Background(), newRC(srv), types.LoginRequest{Email: "ada@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Token != "tok-1" || resp.User == nil || resp.User.ID != "u1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if got.method != http.MethodPost || got.path != "/auth/login" {
		t.Fatalf("unexpected request %s %s", got.method, got.path)
	}
	var body types.LoginRequest
	if err := json.Unmarshal([]byte(got.body), &body); err != nil || body.Email != "ada@example.com" {
		t.Fatalf("unexpected body %q (%v)", got.body, err)
	}
}

func TestVerifyOTP_SendsEmailAndOTP(t *testing.T) {
	t.Parallel()
	var got captured
	srv := recordingServer(&got, http.StatusOK, `{"token":"tok-2"}`)
	defer srv.Close()

	if _, err := VerifyOTP(context.Background(), newRC(srv), types.VerifyOTPRequest{Email: "ada@example.com", OTP: "123456"}); err != nil {
		t.Fatalf("VerifyOTP: %v", err)
	}
	if got.path != "/auth/verify-otp" {
		t.Fatalf("path = %s", got.path)
	}
	var body map[string]string
	if err := json.Unmarshal([]byte(got.body), &body); err != nil {
		t.Fatalf("decode request body %q: %v", got.body, err)
	}
	if len(body) != 2 || body["email"] != "ada@example.com" || body["otp"] != "123456" {
		t.Fatalf("body = %v", body)
	}
}

func TestRegisterAndResendOTP_PlainTextAck(t *testing.T) {
	t.Parallel()
	var got captured
	srv := recordingServer(&got, http.StatusOK, `OTP sent to your email`)
	defer srv.Close()

	reg, err := Register(context.Background(), newRC(srv), types.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "pw", Role: "student"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if reg.Message != "OTP sent to your email" || got.path != "/auth/register" {
		t.Fatalf("register: %+v path=%s", reg, got.path)
	}

	ack, err := ResendOTP(context.Background(), newRC(srv), types.ResendOTPRequest{Email: "ada@example.com"})
	if err != nil {
		t.Fatalf("ResendOTP: %v", err)
	}
	var body map[string]string
	if err := json.Unmarshal([]byte(got.body), &body); err != nil {
		t.Fatalf("decode request body %q: %v", got.body, err)
	}
	if ack.Message != "OTP sent to your email" || got.path != "/auth/resend-otp" || len(body) != 1 || body["email"] != "ada@example.com" {
		t.Fatalf("resend: %+v path=%s body=%s", ack, got.path, got.body)
	}
}

func TestLogin_InvalidRequestSkipsNetwork(t *testing.T) {
	t.Parallel()
	var got captured
	srv := recordingServer(&got, http.StatusOK, `{}`)
	defer srv.Close()

	_, err := Login(context.Background(), newRC(srv), types.LoginRequest{Email: "nope"})
	if !errors.Is(err, types.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
	if got.method != "" {
		t.Fatal("validation failure must not reach the backend")
	}
}

func TestLogin_NonOKStatus(t *testing.T) {
	t.Parallel()
	var got captured
	srv := recordingServer(&got, http.StatusUnauthorized, `{"message":"bad credentials"}`)
	defer srv.Close()

	_, err := Login(context.Background(), newRC(srv), types.LoginRequest{Email: "ada@example.com", Password: "x"})
	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T %v", err, err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized || apiErr.Body != `{"message":"bad credentials"}` {
		t.Fatalf("unexpected APIError: %+v", apiErr)
	}
}

func TestAuth_HTTPDoError(t *testing.T) {
	t.Parallel()
	rc := failingRC()
	if _, err := Login(context.Background(), rc, types.LoginRequest{Email: "ada@example.com", Password: "x"}); err == nil {
		t.Fatal("expected Do error for Login")
	} else if apierrors.StatusCode(err) != 0 {
		t.Fatalf("transport failure must carry no status, got %d", apierrors.StatusCode(err))
	}
	if _, err := ResendOTP(context.Background(), rc, types.ResendOTPRequest{Email: "ada@example.com"}); err == nil {
		t.Fatal("expected Do error for ResendOTP")
	}
}
