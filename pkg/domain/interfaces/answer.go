package interfaces

import (
	"context"

	"github.com/MannerMan/rocket-fuel/pkg/domain/model"
	"github.com/MannerMan/rocket-fuel/pkg/domain/types"
)

// AnswerRepository defines the answer-side data access operations.
type AnswerRepository interface {
	// Create inserts a new answer by userID on questionID with votes=0,
	// accepted=false and created_at=now. The returned value carries the
	// generated id.
	Create(ctx context.Context, userID types.UserID, questionID types.QuestionID, a *model.Answer) (*model.Answer, error)

	// Update rewrites the answer body and title, matching on
	// (answerID, questionID, userID). A non-owner's update silently affects
	// zero rows; the returned count lets the caller interpret that.
	Update(ctx context.Context, userID types.UserID, questionID types.QuestionID, answerID types.AnswerID, a *model.Answer) (int64, error)

	// MarkAsAccepted sets accepted=true. Returns the affected row count.
	MarkAsAccepted(ctx context.Context, answerID types.AnswerID) (int64, error)

	// ListByQuestion returns the question's answers with the author name
	// joined as CreatedBy.
	ListByQuestion(ctx context.Context, questionID types.QuestionID) ([]*model.Answer, error)

	// GetBySlackThreadID retrieves the answer correlated with a chat thread.
	// Returns ErrNotFound when missing.
	GetBySlackThreadID(ctx context.Context, threadID types.ThreadID) (*model.Answer, error)

	// GetByID retrieves an answer together with its parent question for
	// ownership checks. Returns ErrNotFound when missing.
	GetByID(ctx context.Context, answerID types.AnswerID) (*model.Answer, *model.Question, error)

	// UpVote / DownVote apply a ±1 vote delta keyed by chat thread id. An
	// unknown thread id affects zero rows and is not an error.
	UpVote(ctx context.Context, threadID types.ThreadID) error
	DownVote(ctx context.Context, threadID types.ThreadID) error
}
