package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/goerr/v2"

	"github.com/MannerMan/rocket-fuel/pkg/domain/model/auth"
	"github.com/MannerMan/rocket-fuel/pkg/domain/types"
)

// Verifier resolves a bearer token into a principal. The subject claim holds
// the numeric user id; token issuance lives outside this service.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) (*Verifier, error) {
	if secret == "" {
		return nil, goerr.New("auth secret is required")
	}
	return &Verifier{secret: []byte(secret)}, nil
}

func (v *Verifier) Verify(raw string) (*auth.Principal, error) {
	tok, err := jwt.Parse([]byte(raw),
		jwt.WithKey(jwa.HS256, v.secret),
		jwt.WithValidate(true),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse bearer token")
	}

	userID, err := strconv.ParseInt(tok.Subject(), 10, 64)
	if err != nil {
		return nil, goerr.Wrap(err, "bearer token subject is not a user id")
	}

	p := &auth.Principal{UserID: types.UserID(userID)}
	if name, ok := tok.Get("name"); ok {
		if s, ok := name.(string); ok {
			p.Name = s
		}
	}
	return p, nil
}

// principalMiddleware rejects requests without a valid bearer principal and
// puts the resolved principal into the request context.
func principalMiddleware(v *Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if v == nil {
				unauthorized(w)
				return
			}

			header := r.Header.Get("Authorization")
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || raw == "" {
				unauthorized(w)
				return
			}

			principal, err := v.Verify(raw)
			if err != nil {
				unauthorized(w)
				return
			}

			ctx := auth.ContextWithPrincipal(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
}
