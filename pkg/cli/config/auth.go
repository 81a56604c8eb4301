package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"

	httpctrl "github.com/MannerMan/rocket-fuel/pkg/controller/http"
)

type Auth struct {
	secret string
}

func (x *Auth) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "auth-secret",
			Usage:       "HMAC secret for verifying bearer tokens",
			Category:    "Authentication",
			Sources:     cli.EnvVars("ROCKETFUEL_AUTH_SECRET"),
			Destination: &x.secret,
		},
	}
}

func (x Auth) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("secret.len", len(x.secret)),
	)
}

// Configure creates a token verifier from the shared secret
func (x *Auth) Configure() (*httpctrl.Verifier, error) {
	return httpctrl.NewVerifier(x.secret)
}
