package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/MannerMan/rocket-fuel/pkg/service/slack"
)

type Slack struct {
	botToken string
}

func (x *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-bot-token",
			Usage:       "Slack Bot User OAuth Token (for answer notifications)",
			Category:    "Slack",
			Sources:     cli.EnvVars("ROCKETFUEL_SLACK_BOT_TOKEN"),
			Destination: &x.botToken,
		},
	}
}

func (x Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("bot-token.len", len(x.botToken)),
	)
}

// IsConfigured reports whether a bot token was provided
func (x *Slack) IsConfigured() bool {
	return x.botToken != ""
}

// Configure creates a Slack service from the bot token
func (x *Slack) Configure() (slack.Service, error) {
	return slack.New(x.botToken)
}
