package client

import (
	"context"

	"github.com/Reksit/Hack4.0/client/internal/api"
)

// ChatAPI wraps direct messaging and user search.
type ChatAPI struct{ c *Client }

// SendMessage: POST /chat/send.
func (a ChatAPI) SendMessage(ctx context.Context, req SendMessageRequest) (*ChatMessage, error) {
	return api.SendMessage(ctx, a.c.rest, req)
}

// GetMessages: GET /chat/messages/{userId1}/{userId2}.
func (a ChatAPI) GetMessages(ctx context.Context, userID1, userID2 string) ([]ChatMessage, error) {
	return api.GetMessages(ctx, a.c.rest, userID1, userID2)
}

// FindUser: GET /users/search?q={query}. The query is URL-encoded.
func (a ChatAPI) FindUser(ctx context.Context, query string) ([]UserSummary, error) {
	return api.FindUser(ctx, a.c.rest, query)
}
