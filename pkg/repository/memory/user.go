package memory

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/MannerMan/rocket-fuel/pkg/domain/interfaces"
	"github.com/MannerMan/rocket-fuel/pkg/domain/model"
	"github.com/MannerMan/rocket-fuel/pkg/domain/types"
)

type userRepository struct {
	m *Memory
}

func (r *userRepository) GetUserByID(ctx context.Context, id types.UserID) (*model.User, error) {
	release := r.m.acquireRead(ctx)
	defer release()

	u, ok := r.m.users[id]
	if !ok {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "user not found", goerr.V("user_id", id))
	}
	cp := *u
	return &cp, nil
}
