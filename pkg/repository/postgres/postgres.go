package postgres

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/MannerMan/rocket-fuel/pkg/domain/interfaces"
	"github.com/MannerMan/rocket-fuel/pkg/domain/model"
)

// Postgres is the SQL-backed repository. Connections are pooled and rented
// per operation; Transaction pins a single connection for the operation set.
type Postgres struct {
	db       *gorm.DB
	question *questionRepository
	answer   *answerRepository
	tag      *tagRepository
	user     *userRepository
}

var _ interfaces.Repository = &Postgres{}

func New(dsn string) (*Postgres, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open postgres connection")
	}
	return NewWithDB(db), nil
}

// NewWithDB wraps an already opened gorm handle. Used by tests.
func NewWithDB(db *gorm.DB) *Postgres {
	p := &Postgres{db: db}
	p.question = &questionRepository{p: p}
	p.answer = &answerRepository{p: p}
	p.tag = &tagRepository{p: p}
	p.user = &userRepository{p: p}
	return p
}

// Migrate creates or updates the schema.
func (p *Postgres) Migrate(ctx context.Context) error {
	err := p.db.WithContext(ctx).AutoMigrate(
		&model.User{},
		&model.Question{},
		&model.Answer{},
		&model.Tag{},
	)
	if err != nil {
		return goerr.Wrap(err, "failed to migrate schema")
	}
	return nil
}

func (p *Postgres) Question() interfaces.QuestionRepository {
	return p.question
}

func (p *Postgres) Answer() interfaces.AnswerRepository {
	return p.answer
}

func (p *Postgres) Tag() interfaces.TagRepository {
	return p.tag
}

func (p *Postgres) User() interfaces.UserDirectory {
	return p.user
}

type ctxTxKey struct{}

// Transaction runs fn atomically on one pinned connection. Repository calls
// made with the ctx handed to fn join the transaction; any error rolls all of
// them back.
func (p *Postgres) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, ctxTxKey{}, tx))
	})
	if err != nil {
		return goerr.Wrap(err, "transaction failed")
	}
	return nil
}

// conn resolves the connection for ctx: the pinned transaction if one is
// bound, a pooled connection otherwise.
func (p *Postgres) conn(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(ctxTxKey{}).(*gorm.DB); ok {
		return tx
	}
	return p.db.WithContext(ctx)
}

func (p *Postgres) Close() error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return goerr.Wrap(err, "failed to resolve sql.DB")
	}
	if err := sqlDB.Close(); err != nil {
		return goerr.Wrap(err, "failed to close postgres connection")
	}
	return nil
}
