package slack

import (
	"context"

	"github.com/slack-go/slack"
)

// Service is the chat workspace surface used for out-of-band notifications.
type Service interface {
	// LookupUserByEmail resolves the workspace user id for an email address.
	LookupUserByEmail(ctx context.Context, email string) (string, error)

	// PostMessageAsBot posts a Block Kit message to the given user as the bot
	// user. The text parameter is the notification fallback.
	PostMessageAsBot(ctx context.Context, userID string, blocks []slack.Block, text string) error
}
