package api

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/Reksit/Hack4.0/client/internal/types"
)

// SendMessage posts a direct message.
func SendMessage(ctx context.Context, rc *resty.Client, req types.SendMessageRequest) (*types.ChatMessage, error) {
	var out types.ChatMessage
	if err := sendJSON(ctx, rc, http.MethodPost, "/chat/send", "send message", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetMessages returns the conversation between two users.
func GetMessages(ctx context.Context, rc *resty.Client, userID1, userID2 string) ([]types.ChatMessage, error) {
	if err := types.ValidateIDPresent(userID1, "userId1"); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(userID2, "userId2"); err != nil {
		return nil, err
	}
	var out []types.ChatMessage
	r := rc.R().SetPathParams(map[string]string{"userId1": userID1, "userId2": userID2})
	if err := send(ctx, r, http.MethodGet, "/chat/messages/{userId1}/{userId2}", "get messages", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FindUser searches users by name or e-mail fragment. An empty query is
// passed through; the backend decides what it matches.
func FindUser(ctx context.Context, rc *resty.Client, query string) ([]types.UserSummary, error) {
	var out []types.UserSummary
	r := rc.R().SetQueryParam("q", query)
	if err := send(ctx, r, http.MethodGet, "/users/search", "find user", &out); err != nil {
		return nil, err
	}
	return out, nil
}
