package slack

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
)

// client implements Service on the Slack Web API.
type client struct {
	api *slack.Client
}

// New creates a new Slack service with the provided bot token.
func New(token string) (Service, error) {
	if token == "" {
		return nil, goerr.New("Slack bot token is required")
	}
	return &client{api: slack.New(token)}, nil
}

func (c *client) LookupUserByEmail(ctx context.Context, email string) (string, error) {
	user, err := c.api.GetUserByEmailContext(ctx, email)
	if err != nil {
		return "", goerr.Wrap(err, "failed to look up Slack user by email")
	}
	return user.ID, nil
}

func (c *client) PostMessageAsBot(ctx context.Context, userID string, blocks []slack.Block, text string) error {
	_, _, err := c.api.PostMessageContext(ctx, userID,
		slack.MsgOptionBlocks(blocks...),
		slack.MsgOptionText(text, false),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post Slack message", goerr.V("user_id", userID))
	}
	return nil
}
