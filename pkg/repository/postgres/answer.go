package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"gorm.io/gorm"

	"github.com/MannerMan/rocket-fuel/pkg/domain/interfaces"
	"github.com/MannerMan/rocket-fuel/pkg/domain/model"
	"github.com/MannerMan/rocket-fuel/pkg/domain/types"
)

type answerRepository struct {
	p *Postgres
}

func (r *answerRepository) Create(ctx context.Context, userID types.UserID, questionID types.QuestionID, a *model.Answer) (*model.Answer, error) {
	rec := &model.Answer{
		UserID:        userID,
		QuestionID:    questionID,
		Title:         a.Title,
		Answer:        a.Answer,
		Votes:         0,
		Accepted:      false,
		SlackThreadID: a.SlackThreadID,
		CreatedAt:     time.Now().UTC(),
	}
	if err := r.p.conn(ctx).Create(rec).Error; err != nil {
		return nil, goerr.Wrap(err, "failed to insert answer",
			goerr.V("user_id", userID), goerr.V("question_id", questionID))
	}
	return rec, nil
}

func (r *answerRepository) Update(ctx context.Context, userID types.UserID, questionID types.QuestionID, answerID types.AnswerID, a *model.Answer) (int64, error) {
	res := r.p.conn(ctx).
		Model(&model.Answer{}).
		Where("id = ? AND question_id = ? AND user_id = ?", answerID, questionID, userID).
		Updates(map[string]any{
			"answer": a.Answer,
			"title":  a.Title,
		})
	if res.Error != nil {
		return 0, goerr.Wrap(res.Error, "failed to update answer", goerr.V("answer_id", answerID))
	}
	return res.RowsAffected, nil
}

func (r *answerRepository) MarkAsAccepted(ctx context.Context, answerID types.AnswerID) (int64, error) {
	res := r.p.conn(ctx).
		Model(&model.Answer{}).
		Where("id = ?", answerID).
		Update("accepted", true)
	if res.Error != nil {
		return 0, goerr.Wrap(res.Error, "failed to mark answer as accepted", goerr.V("answer_id", answerID))
	}
	return res.RowsAffected, nil
}

func (r *answerRepository) ListByQuestion(ctx context.Context, questionID types.QuestionID) ([]*model.Answer, error) {
	answers := []*model.Answer{}
	err := r.p.conn(ctx).
		Model(&model.Answer{}).
		Select(`answer.*, "user".name AS created_by`).
		Joins(`INNER JOIN "user" ON "user".id = answer.user_id`).
		Where("answer.question_id = ?", questionID).
		Order("answer.created_at ASC").
		Find(&answers).Error
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list answers", goerr.V("question_id", questionID))
	}
	return answers, nil
}

func (r *answerRepository) GetBySlackThreadID(ctx context.Context, threadID types.ThreadID) (*model.Answer, error) {
	var a model.Answer
	err := r.p.conn(ctx).First(&a, "slack_thread_id = ?", threadID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "answer not found for thread", goerr.V("thread_id", threadID))
		}
		return nil, goerr.Wrap(err, "failed to get answer by thread", goerr.V("thread_id", threadID))
	}
	return &a, nil
}

func (r *answerRepository) GetByID(ctx context.Context, answerID types.AnswerID) (*model.Answer, *model.Question, error) {
	var a model.Answer
	err := r.p.conn(ctx).First(&a, "id = ?", answerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, goerr.Wrap(interfaces.ErrNotFound, "answer not found", goerr.V("answer_id", answerID))
		}
		return nil, nil, goerr.Wrap(err, "failed to get answer", goerr.V("answer_id", answerID))
	}

	var q model.Question
	err = r.p.conn(ctx).First(&q, "id = ?", a.QuestionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, goerr.Wrap(interfaces.ErrNotFound, "parent question not found",
				goerr.V("answer_id", answerID), goerr.V("question_id", a.QuestionID))
		}
		return nil, nil, goerr.Wrap(err, "failed to get parent question", goerr.V("question_id", a.QuestionID))
	}

	return &a, &q, nil
}

func (r *answerRepository) UpVote(ctx context.Context, threadID types.ThreadID) error {
	return r.vote(ctx, threadID, +1)
}

func (r *answerRepository) DownVote(ctx context.Context, threadID types.ThreadID) error {
	return r.vote(ctx, threadID, -1)
}

func (r *answerRepository) vote(ctx context.Context, threadID types.ThreadID, delta int) error {
	err := r.p.conn(ctx).
		Model(&model.Answer{}).
		Where("slack_thread_id = ?", threadID).
		UpdateColumn("votes", gorm.Expr("votes + ?", delta)).Error
	if err != nil {
		return goerr.Wrap(err, "failed to apply answer vote", goerr.V("thread_id", threadID), goerr.V("delta", delta))
	}
	return nil
}
