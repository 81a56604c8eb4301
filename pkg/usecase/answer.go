package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/MannerMan/rocket-fuel/pkg/domain/interfaces"
	"github.com/MannerMan/rocket-fuel/pkg/domain/model"
	"github.com/MannerMan/rocket-fuel/pkg/domain/model/auth"
	"github.com/MannerMan/rocket-fuel/pkg/domain/types"
	"github.com/MannerMan/rocket-fuel/pkg/service/notify"
	"github.com/MannerMan/rocket-fuel/pkg/utils/async"
	"github.com/MannerMan/rocket-fuel/pkg/utils/errutil"
	"github.com/MannerMan/rocket-fuel/pkg/utils/logging"
)

// notifyTimeout bounds the detached notification task. It deliberately does
// not inherit the request deadline: a client disconnect must not cancel the
// owner notification.
const notifyTimeout = 15 * time.Second

// AnswerUseCase implements the answer-side operations and orchestrates the
// notification publisher and the acceptance transaction.
type AnswerUseCase struct {
	repo     interfaces.Repository
	notifier *notify.Publisher
}

func NewAnswerUseCase(repo interfaces.Repository, notifier *notify.Publisher) *AnswerUseCase {
	return &AnswerUseCase{
		repo:     repo,
		notifier: notifier,
	}
}

// AnswerQuestion inserts the answer and dispatches the owner notification as
// a detached task. The generated id is set before dispatch so the
// notification observes the final id even when it races the response.
func (uc *AnswerUseCase) AnswerQuestion(ctx context.Context, principal *auth.Principal, answer *model.Answer, questionID types.QuestionID) (*model.Answer, error) {
	if !answer.HasBody() {
		return nil, types.NewBadRequest(ErrorAnswerBodyMissing)
	}

	created, err := uc.repo.Answer().Create(ctx, principal.UserID, questionID, answer)
	if err != nil {
		return nil, types.NewInternal(ErrorAnswerNotCreated, err)
	}

	if uc.notifier != nil {
		notified := *created
		async.Dispatch(ctx, func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, notifyTimeout)
			defer cancel()
			uc.notifier.AnswerCreated(ctx, &notified, questionID)
			return nil
		})
	}

	return created, nil
}

func (uc *AnswerUseCase) GetAnswers(ctx context.Context, questionID types.QuestionID) ([]*model.Answer, error) {
	answers, err := uc.repo.Answer().ListByQuestion(ctx, questionID)
	if err != nil {
		logging.From(ctx).Error("failed to get answers for question", "question_id", questionID, "error", err)
		return nil, err
	}
	return answers, nil
}

func (uc *AnswerUseCase) GetAnswerBySlackID(ctx context.Context, threadID types.ThreadID) (*model.Answer, error) {
	a, err := uc.repo.Answer().GetBySlackThreadID(ctx, threadID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, types.NewNotFound(ErrorNotFound)
		}
		return nil, err
	}
	return a, nil
}

// UpdateAnswer rewrites an answer's body and title. The data layer matches on
// (answer, question, author), so an update by anyone but the author affects
// zero rows and reports not found.
func (uc *AnswerUseCase) UpdateAnswer(ctx context.Context, principal *auth.Principal, questionID types.QuestionID, answerID types.AnswerID, answer *model.Answer) error {
	if !answer.HasBody() {
		return types.NewBadRequest(ErrorAnswerBodyMissing)
	}

	affected, err := uc.repo.Answer().Update(ctx, principal.UserID, questionID, answerID, answer)
	if err != nil {
		return err
	}
	if affected == 0 {
		return types.NewNotFound(ErrorNotFound)
	}
	return nil
}

func (uc *AnswerUseCase) UpVoteAnswer(ctx context.Context, threadID types.ThreadID) error {
	return errutil.Handle(ctx, uc.repo.Answer().UpVote(ctx, threadID), "answer upvote failed")
}

func (uc *AnswerUseCase) DownVoteAnswer(ctx context.Context, threadID types.ThreadID) error {
	return errutil.Handle(ctx, uc.repo.Answer().DownVote(ctx, threadID), "answer downvote failed")
}

// MarkAsAcceptedAnswer marks the answer accepted and the parent question
// answered in one transaction. Only the question owner may accept; a failure
// in either write rolls back both.
func (uc *AnswerUseCase) MarkAsAcceptedAnswer(ctx context.Context, principal *auth.Principal, answerID types.AnswerID) error {
	answer, question, err := uc.repo.Answer().GetByID(ctx, answerID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return types.NewNotFound(ErrorNotFound)
		}
		return err
	}

	if question.UserID != principal.UserID {
		return types.NewBadRequest(ErrorNotOwnerOfQuestion)
	}

	return uc.repo.Transaction(ctx, func(ctx context.Context) error {
		if _, err := uc.repo.Answer().MarkAsAccepted(ctx, answerID); err != nil {
			return err
		}
		if _, err := uc.repo.Question().MarkAsAnswered(ctx, principal.UserID, answer.QuestionID); err != nil {
			return err
		}
		return nil
	})
}
