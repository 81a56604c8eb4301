package usecase

import (
	"context"
	"errors"

	"github.com/MannerMan/rocket-fuel/pkg/domain/interfaces"
	"github.com/MannerMan/rocket-fuel/pkg/domain/model"
	"github.com/MannerMan/rocket-fuel/pkg/domain/model/auth"
	"github.com/MannerMan/rocket-fuel/pkg/domain/types"
	"github.com/MannerMan/rocket-fuel/pkg/utils/errutil"
	"github.com/MannerMan/rocket-fuel/pkg/utils/logging"
)

// QuestionUseCase implements the question-side operations, translating data
// layer failures into the public error taxonomy.
type QuestionUseCase struct {
	repo interfaces.Repository
}

func NewQuestionUseCase(repo interfaces.Repository) *QuestionUseCase {
	return &QuestionUseCase{repo: repo}
}

func (uc *QuestionUseCase) CreateQuestion(ctx context.Context, principal *auth.Principal, q *model.Question) (*model.Question, error) {
	created, err := uc.repo.Question().Add(ctx, principal.UserID, q)
	if err != nil {
		return nil, types.NewInternal(ErrorAddQuestionFailed, err)
	}
	return created, nil
}

func (uc *QuestionUseCase) GetQuestionByID(ctx context.Context, id types.QuestionID) (*model.Question, error) {
	q, err := uc.repo.Question().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, types.NewNotFound(ErrorNotFound)
		}
		return nil, err
	}
	return q, nil
}

func (uc *QuestionUseCase) GetQuestionBySlackThreadID(ctx context.Context, threadID types.ThreadID) (*model.Question, error) {
	q, err := uc.repo.Question().GetBySlackThreadID(ctx, threadID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, types.NewNotFound(ErrorNotFound)
		}
		return nil, err
	}
	return q, nil
}

// GetLatestQuestions returns the newest questions. A non-positive limit means
// unspecified and falls back to the default of 10.
func (uc *QuestionUseCase) GetLatestQuestions(ctx context.Context, limit int) ([]*model.Question, error) {
	if limit <= 0 {
		limit = DefaultLatestLimit
	}
	questions, err := uc.repo.Question().Latest(ctx, limit)
	if err != nil {
		return nil, types.NewInternal(ErrorLatestQuestionsFailed, err)
	}
	return questions, nil
}

// GetQuestionsBySearchQuery searches question titles and bodies. An empty
// query returns an empty list without touching the database. A non-positive
// limit falls back to the default of 50.
func (uc *QuestionUseCase) GetQuestionsBySearchQuery(ctx context.Context, query string, limit int) ([]*model.Question, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if query == "" {
		return []*model.Question{}, nil
	}

	questions, err := uc.repo.Question().Search(ctx, query, limit)
	if err != nil {
		logging.From(ctx).Error("failed to search for questions", "query", query, "error", err)
		return nil, types.NewInternal(ErrorSearchQuestionsFailed, err)
	}
	return questions, nil
}

func (uc *QuestionUseCase) UpVoteQuestion(ctx context.Context, threadID types.ThreadID) error {
	return errutil.Handle(ctx, uc.repo.Question().UpVote(ctx, threadID), "question upvote failed")
}

func (uc *QuestionUseCase) DownVoteQuestion(ctx context.Context, threadID types.ThreadID) error {
	return errutil.Handle(ctx, uc.repo.Question().DownVote(ctx, threadID), "question downvote failed")
}
