package interfaces

import (
	"context"

	"github.com/MannerMan/rocket-fuel/pkg/domain/model"
	"github.com/MannerMan/rocket-fuel/pkg/domain/types"
)

// UserDirectory resolves user identities by numeric id. The directory is an
// external collaborator; this service never writes to it.
type UserDirectory interface {
	// GetUserByID returns the user record. Returns ErrNotFound when missing.
	GetUserByID(ctx context.Context, id types.UserID) (*model.User, error)
}
