package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/MannerMan/rocket-fuel/pkg/domain/interfaces"
	"github.com/MannerMan/rocket-fuel/pkg/domain/model"
	"github.com/MannerMan/rocket-fuel/pkg/domain/types"
)

type questionRepository struct {
	m *Memory
}

func copyQuestion(q *model.Question) *model.Question {
	cp := *q
	return &cp
}

func (r *questionRepository) Add(ctx context.Context, userID types.UserID, q *model.Question) (*model.Question, error) {
	release := r.m.acquire(ctx)
	defer release()

	rec := &model.Question{
		ID:            r.m.nextQuestionID,
		UserID:        userID,
		Title:         q.Title,
		Question:      q.Question,
		Votes:         0,
		Answered:      false,
		SlackThreadID: q.SlackThreadID,
		CreatedAt:     time.Now().UTC(),
	}
	r.m.nextQuestionID++
	r.m.questions[rec.ID] = rec
	return copyQuestion(rec), nil
}

func (r *questionRepository) GetByID(ctx context.Context, id types.QuestionID) (*model.Question, error) {
	release := r.m.acquireRead(ctx)
	defer release()

	q, ok := r.m.questions[id]
	if !ok {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "question not found", goerr.V("question_id", id))
	}
	return copyQuestion(q), nil
}

func (r *questionRepository) GetBySlackThreadID(ctx context.Context, threadID types.ThreadID) (*model.Question, error) {
	release := r.m.acquireRead(ctx)
	defer release()

	for _, q := range r.m.questions {
		if q.SlackThreadID != "" && q.SlackThreadID == threadID {
			return copyQuestion(q), nil
		}
	}
	return nil, goerr.Wrap(interfaces.ErrNotFound, "question not found for thread", goerr.V("thread_id", threadID))
}

func (r *questionRepository) Latest(ctx context.Context, limit int) ([]*model.Question, error) {
	release := r.m.acquireRead(ctx)
	defer release()

	questions := make([]*model.Question, 0, len(r.m.questions))
	for _, q := range r.m.questions {
		questions = append(questions, copyQuestion(q))
	}
	sort.Slice(questions, func(i, j int) bool {
		if questions[i].CreatedAt.Equal(questions[j].CreatedAt) {
			return questions[i].ID > questions[j].ID
		}
		return questions[i].CreatedAt.After(questions[j].CreatedAt)
	})
	if len(questions) > limit {
		questions = questions[:limit]
	}
	return questions, nil
}

func (r *questionRepository) Search(ctx context.Context, query string, limit int) ([]*model.Question, error) {
	release := r.m.acquireRead(ctx)
	defer release()

	questions := []*model.Question{}
	for _, q := range r.m.questions {
		if strings.Contains(q.Title, query) || strings.Contains(q.Question, query) {
			questions = append(questions, copyQuestion(q))
		}
	}
	sort.Slice(questions, func(i, j int) bool {
		if questions[i].CreatedAt.Equal(questions[j].CreatedAt) {
			return questions[i].ID > questions[j].ID
		}
		return questions[i].CreatedAt.After(questions[j].CreatedAt)
	})
	if len(questions) > limit {
		questions = questions[:limit]
	}
	return questions, nil
}

func (r *questionRepository) MarkAsAnswered(ctx context.Context, userID types.UserID, questionID types.QuestionID) (int64, error) {
	release := r.m.acquire(ctx)
	defer release()

	q, ok := r.m.questions[questionID]
	if !ok || q.UserID != userID {
		return 0, nil
	}
	q.Answered = true
	return 1, nil
}

func (r *questionRepository) UpVote(ctx context.Context, threadID types.ThreadID) error {
	return r.vote(ctx, threadID, +1)
}

func (r *questionRepository) DownVote(ctx context.Context, threadID types.ThreadID) error {
	return r.vote(ctx, threadID, -1)
}

func (r *questionRepository) vote(ctx context.Context, threadID types.ThreadID, delta int) error {
	release := r.m.acquire(ctx)
	defer release()

	for _, q := range r.m.questions {
		if q.SlackThreadID != "" && q.SlackThreadID == threadID {
			q.Votes += delta
		}
	}
	return nil
}
