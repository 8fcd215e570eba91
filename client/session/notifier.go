package session

import (
	"context"

	"github.com/rs/zerolog"
)

// DefaultLoginPath is where an expired session is sent to log in again.
const DefaultLoginPath = "/login"

// Notifier is told that the backend rejected the session. Production wiring
// binds it to navigation (or a prompt); tests bind it to a recorder.
type Notifier interface {
	SessionExpired(ctx context.Context, loginPath string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, loginPath string)

func (f NotifierFunc) SessionExpired(ctx context.Context, loginPath string) { f(ctx, loginPath) }

// LogNotifier logs the expiry and nothing else.
type LogNotifier struct {
	Logger zerolog.Logger
}

func (n LogNotifier) SessionExpired(_ context.Context, loginPath string) {
	n.Logger.Warn().Str("login_path", loginPath).Msg("session expired; log in again")
}
