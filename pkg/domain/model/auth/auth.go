package auth

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/MannerMan/rocket-fuel/pkg/domain/types"
)

// Principal is the resolved identity of the caller. Token validation happens
// at the HTTP edge; everything below trusts this value.
type Principal struct {
	UserID types.UserID
	Name   string
}

type ctxPrincipalKey struct{}

// ContextWithPrincipal returns a context carrying the principal.
func ContextWithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, ctxPrincipalKey{}, p)
}

// PrincipalFromContext returns the principal carried by ctx.
func PrincipalFromContext(ctx context.Context) (*Principal, error) {
	p, ok := ctx.Value(ctxPrincipalKey{}).(*Principal)
	if !ok || p == nil {
		return nil, goerr.New("no principal in context")
	}
	return p, nil
}
