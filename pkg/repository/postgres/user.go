package postgres

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"gorm.io/gorm"

	"github.com/MannerMan/rocket-fuel/pkg/domain/interfaces"
	"github.com/MannerMan/rocket-fuel/pkg/domain/model"
	"github.com/MannerMan/rocket-fuel/pkg/domain/types"
)

type userRepository struct {
	p *Postgres
}

func (r *userRepository) GetUserByID(ctx context.Context, id types.UserID) (*model.User, error) {
	var u model.User
	err := r.p.conn(ctx).First(&u, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "user not found", goerr.V("user_id", id))
		}
		return nil, goerr.Wrap(err, "failed to get user", goerr.V("user_id", id))
	}
	return &u, nil
}
