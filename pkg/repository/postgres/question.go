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

type questionRepository struct {
	p *Postgres
}

func (r *questionRepository) Add(ctx context.Context, userID types.UserID, q *model.Question) (*model.Question, error) {
	rec := &model.Question{
		UserID:        userID,
		Title:         q.Title,
		Question:      q.Question,
		Votes:         0,
		Answered:      false,
		SlackThreadID: q.SlackThreadID,
		CreatedAt:     time.Now().UTC(),
	}
	if err := r.p.conn(ctx).Create(rec).Error; err != nil {
		return nil, goerr.Wrap(err, "failed to insert question", goerr.V("user_id", userID))
	}
	return rec, nil
}

func (r *questionRepository) GetByID(ctx context.Context, id types.QuestionID) (*model.Question, error) {
	var q model.Question
	err := r.p.conn(ctx).First(&q, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "question not found", goerr.V("question_id", id))
		}
		return nil, goerr.Wrap(err, "failed to get question", goerr.V("question_id", id))
	}
	return &q, nil
}

func (r *questionRepository) GetBySlackThreadID(ctx context.Context, threadID types.ThreadID) (*model.Question, error) {
	var q model.Question
	err := r.p.conn(ctx).First(&q, "slack_thread_id = ?", threadID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "question not found for thread", goerr.V("thread_id", threadID))
		}
		return nil, goerr.Wrap(err, "failed to get question by thread", goerr.V("thread_id", threadID))
	}
	return &q, nil
}

func (r *questionRepository) Latest(ctx context.Context, limit int) ([]*model.Question, error) {
	questions := []*model.Question{}
	err := r.p.conn(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&questions).Error
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list latest questions", goerr.V("limit", limit))
	}
	return questions, nil
}

func (r *questionRepository) Search(ctx context.Context, query string, limit int) ([]*model.Question, error) {
	questions := []*model.Question{}
	pattern := "%" + query + "%"
	err := r.p.conn(ctx).
		Where("title LIKE ? OR question LIKE ?", pattern, pattern).
		Order("created_at DESC").
		Limit(limit).
		Find(&questions).Error
	if err != nil {
		return nil, goerr.Wrap(err, "failed to search questions", goerr.V("query", query))
	}
	return questions, nil
}

func (r *questionRepository) MarkAsAnswered(ctx context.Context, userID types.UserID, questionID types.QuestionID) (int64, error) {
	res := r.p.conn(ctx).
		Model(&model.Question{}).
		Where("id = ? AND user_id = ?", questionID, userID).
		Update("answered", true)
	if res.Error != nil {
		return 0, goerr.Wrap(res.Error, "failed to mark question as answered", goerr.V("question_id", questionID))
	}
	return res.RowsAffected, nil
}

func (r *questionRepository) UpVote(ctx context.Context, threadID types.ThreadID) error {
	return r.vote(ctx, threadID, +1)
}

func (r *questionRepository) DownVote(ctx context.Context, threadID types.ThreadID) error {
	return r.vote(ctx, threadID, -1)
}

func (r *questionRepository) vote(ctx context.Context, threadID types.ThreadID, delta int) error {
	err := r.p.conn(ctx).
		Model(&model.Question{}).
		Where("slack_thread_id = ?", threadID).
		UpdateColumn("votes", gorm.Expr("votes + ?", delta)).Error
	if err != nil {
		return goerr.Wrap(err, "failed to apply question vote", goerr.V("thread_id", threadID), goerr.V("delta", delta))
	}
	return nil
}
