package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/MannerMan/rocket-fuel/pkg/domain/interfaces"
	"github.com/MannerMan/rocket-fuel/pkg/domain/model"
)

func runUserDirectoryTest(t *testing.T, newRepo func(t *testing.T) (interfaces.Repository, *seeder)) {
	t.Helper()

	t.Run("GetUserByID returns seeded user", func(t *testing.T) {
		repo, seed := newRepo(t)
		ctx := context.Background()
		seed.user(t, &model.User{ID: 10, Name: "samwise", Email: "sam@example.com"})

		u, err := repo.User().GetUserByID(ctx, 10)
		gt.NoError(t, err).Required()
		gt.Value(t, u.Name).Equal("samwise")
		gt.Value(t, u.Email).Equal("sam@example.com")
	})

	t.Run("GetUserByID reports missing user", func(t *testing.T) {
		repo, _ := newRepo(t)
		ctx := context.Background()

		_, err := repo.User().GetUserByID(ctx, 404)
		gt.Value(t, err).NotNil()
		gt.Bool(t, errors.Is(err, interfaces.ErrNotFound)).True()
	})
}

func TestUserDirectoryMemory(t *testing.T) {
	runUserDirectoryTest(t, newMemoryRepo)
}

func TestUserDirectoryPostgres(t *testing.T) {
	runUserDirectoryTest(t, newPostgresRepo)
}
