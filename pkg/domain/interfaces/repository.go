package interfaces

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
)

// ErrNotFound is returned by repositories when a lookup matches no row.
var ErrNotFound = goerr.New("record not found")

// Repository is the root of the data access layer.
//
// Transaction executes fn atomically: repository calls made with the context
// passed to fn are bound to a single pinned connection, and any error returned
// by fn rolls every one of them back. A repository call made with any other
// context is a standalone, immediately executed operation.
type Repository interface {
	Question() QuestionRepository
	Answer() AnswerRepository
	Tag() TagRepository
	User() UserDirectory

	Transaction(ctx context.Context, fn func(ctx context.Context) error) error

	Close() error
}
