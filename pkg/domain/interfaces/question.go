package interfaces

import (
	"context"

	"github.com/MannerMan/rocket-fuel/pkg/domain/model"
	"github.com/MannerMan/rocket-fuel/pkg/domain/types"
)

// QuestionRepository defines the question-side data access operations.
type QuestionRepository interface {
	// Add inserts a new question owned by userID with votes=0, answered=false
	// and created_at=now. The returned value carries the generated id.
	Add(ctx context.Context, userID types.UserID, q *model.Question) (*model.Question, error)

	// GetByID retrieves a question. Returns ErrNotFound when missing.
	GetByID(ctx context.Context, id types.QuestionID) (*model.Question, error)

	// GetBySlackThreadID retrieves the question correlated with a chat thread.
	// Returns ErrNotFound when missing.
	GetBySlackThreadID(ctx context.Context, threadID types.ThreadID) (*model.Question, error)

	// Latest returns up to limit questions ordered by created_at descending.
	Latest(ctx context.Context, limit int) ([]*model.Question, error)

	// Search returns up to limit questions whose title or body contains query.
	// Case semantics follow the database collation.
	Search(ctx context.Context, query string, limit int) ([]*model.Question, error)

	// MarkAsAnswered sets answered=true on the question owned by userID.
	// Returns the number of affected rows; the write is idempotent.
	MarkAsAnswered(ctx context.Context, userID types.UserID, questionID types.QuestionID) (int64, error)

	// UpVote / DownVote apply a ±1 vote delta keyed by chat thread id. An
	// unknown thread id affects zero rows and is not an error.
	UpVote(ctx context.Context, threadID types.ThreadID) error
	DownVote(ctx context.Context, threadID types.ThreadID) error
}
