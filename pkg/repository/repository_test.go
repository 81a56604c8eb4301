package repository_test

import (
	"context"
	"os"
	"testing"

	"github.com/m-mizutani/gt"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/MannerMan/rocket-fuel/pkg/domain/interfaces"
	"github.com/MannerMan/rocket-fuel/pkg/domain/model"
	"github.com/MannerMan/rocket-fuel/pkg/repository/memory"
	"github.com/MannerMan/rocket-fuel/pkg/repository/postgres"
)

// seeder fills the tables that the repository interface only reads.
type seeder struct {
	user func(t *testing.T, u *model.User)
	tag  func(t *testing.T, label string, usageCount int)
}

func newMemoryRepo(t *testing.T) (interfaces.Repository, *seeder) {
	t.Helper()

	m := memory.New()
	return m, &seeder{
		user: func(t *testing.T, u *model.User) {
			m.PutUser(u)
		},
		tag: func(t *testing.T, label string, usageCount int) {
			m.PutTag(label, usageCount)
		},
	}
}

// newPostgresRepo runs the shared suite against a real database. Set
// TEST_POSTGRES_DSN to enable; tables are wiped per subtest.
func newPostgresRepo(t *testing.T) (interfaces.Repository, *seeder) {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN is not set")
	}

	db, err := gorm.Open(gormpg.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	gt.NoError(t, err).Required()

	repo := postgres.NewWithDB(db)
	gt.NoError(t, repo.Migrate(context.Background())).Required()

	for _, table := range []string{"answer", "question", `"user"`, "tag"} {
		gt.NoError(t, db.Exec("DELETE FROM "+table).Error).Required()
	}

	return repo, &seeder{
		user: func(t *testing.T, u *model.User) {
			gt.NoError(t, db.Create(u).Error).Required()
		},
		tag: func(t *testing.T, label string, usageCount int) {
			gt.NoError(t, db.Create(&model.Tag{Label: label, UsageCount: usageCount}).Error).Required()
		},
	}
}
