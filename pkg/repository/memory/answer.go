package memory

import (
	"context"
	"sort"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/MannerMan/rocket-fuel/pkg/domain/interfaces"
	"github.com/MannerMan/rocket-fuel/pkg/domain/model"
	"github.com/MannerMan/rocket-fuel/pkg/domain/types"
)

type answerRepository struct {
	m *Memory
}

func copyAnswer(a *model.Answer) *model.Answer {
	cp := *a
	return &cp
}

func (r *answerRepository) Create(ctx context.Context, userID types.UserID, questionID types.QuestionID, a *model.Answer) (*model.Answer, error) {
	release := r.m.acquire(ctx)
	defer release()

	rec := &model.Answer{
		ID:            r.m.nextAnswerID,
		UserID:        userID,
		QuestionID:    questionID,
		Title:         a.Title,
		Answer:        a.Answer,
		Votes:         0,
		Accepted:      false,
		SlackThreadID: a.SlackThreadID,
		CreatedAt:     time.Now().UTC(),
	}
	r.m.nextAnswerID++
	r.m.answers[rec.ID] = rec
	return copyAnswer(rec), nil
}

func (r *answerRepository) Update(ctx context.Context, userID types.UserID, questionID types.QuestionID, answerID types.AnswerID, a *model.Answer) (int64, error) {
	release := r.m.acquire(ctx)
	defer release()

	rec, ok := r.m.answers[answerID]
	if !ok || rec.QuestionID != questionID || rec.UserID != userID {
		return 0, nil
	}
	rec.Answer = a.Answer
	rec.Title = a.Title
	return 1, nil
}

func (r *answerRepository) MarkAsAccepted(ctx context.Context, answerID types.AnswerID) (int64, error) {
	release := r.m.acquire(ctx)
	defer release()

	rec, ok := r.m.answers[answerID]
	if !ok {
		return 0, nil
	}
	rec.Accepted = true
	return 1, nil
}

func (r *answerRepository) ListByQuestion(ctx context.Context, questionID types.QuestionID) ([]*model.Answer, error) {
	release := r.m.acquireRead(ctx)
	defer release()

	answers := []*model.Answer{}
	for _, a := range r.m.answers {
		if a.QuestionID != questionID {
			continue
		}
		cp := copyAnswer(a)
		if u, ok := r.m.users[a.UserID]; ok {
			cp.CreatedBy = u.Name
		}
		answers = append(answers, cp)
	}
	sort.Slice(answers, func(i, j int) bool {
		if answers[i].CreatedAt.Equal(answers[j].CreatedAt) {
			return answers[i].ID < answers[j].ID
		}
		return answers[i].CreatedAt.Before(answers[j].CreatedAt)
	})
	return answers, nil
}

func (r *answerRepository) GetBySlackThreadID(ctx context.Context, threadID types.ThreadID) (*model.Answer, error) {
	release := r.m.acquireRead(ctx)
	defer release()

	for _, a := range r.m.answers {
		if a.SlackThreadID != "" && a.SlackThreadID == threadID {
			return copyAnswer(a), nil
		}
	}
	return nil, goerr.Wrap(interfaces.ErrNotFound, "answer not found for thread", goerr.V("thread_id", threadID))
}

func (r *answerRepository) GetByID(ctx context.Context, answerID types.AnswerID) (*model.Answer, *model.Question, error) {
	release := r.m.acquireRead(ctx)
	defer release()

	a, ok := r.m.answers[answerID]
	if !ok {
		return nil, nil, goerr.Wrap(interfaces.ErrNotFound, "answer not found", goerr.V("answer_id", answerID))
	}
	q, ok := r.m.questions[a.QuestionID]
	if !ok {
		return nil, nil, goerr.Wrap(interfaces.ErrNotFound, "parent question not found",
			goerr.V("answer_id", answerID), goerr.V("question_id", a.QuestionID))
	}
	return copyAnswer(a), copyQuestion(q), nil
}

func (r *answerRepository) UpVote(ctx context.Context, threadID types.ThreadID) error {
	return r.vote(ctx, threadID, +1)
}

func (r *answerRepository) DownVote(ctx context.Context, threadID types.ThreadID) error {
	return r.vote(ctx, threadID, -1)
}

func (r *answerRepository) vote(ctx context.Context, threadID types.ThreadID, delta int) error {
	release := r.m.acquire(ctx)
	defer release()

	for _, a := range r.m.answers {
		if a.SlackThreadID != "" && a.SlackThreadID == threadID {
			a.Votes += delta
		}
	}
	return nil
}
