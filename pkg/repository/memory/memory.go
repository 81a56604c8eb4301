package memory

import (
	"context"
	"sync"

	"github.com/MannerMan/rocket-fuel/pkg/domain/interfaces"
	"github.com/MannerMan/rocket-fuel/pkg/domain/model"
	"github.com/MannerMan/rocket-fuel/pkg/domain/types"
)

// Memory is the in-memory repository used for tests and local development.
// It honors the same transaction contract as the SQL backend: Transaction
// holds the store lock for the whole operation set and restores a snapshot
// when fn fails.
type Memory struct {
	mu sync.RWMutex

	questions map[types.QuestionID]*model.Question
	answers   map[types.AnswerID]*model.Answer
	users     map[types.UserID]*model.User
	tags      []*model.Tag

	nextQuestionID types.QuestionID
	nextAnswerID   types.AnswerID

	question *questionRepository
	answer   *answerRepository
	tag      *tagRepository
	user     *userRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	m := &Memory{
		questions:      make(map[types.QuestionID]*model.Question),
		answers:        make(map[types.AnswerID]*model.Answer),
		users:          make(map[types.UserID]*model.User),
		nextQuestionID: 1,
		nextAnswerID:   1,
	}
	m.question = &questionRepository{m: m}
	m.answer = &answerRepository{m: m}
	m.tag = &tagRepository{m: m}
	m.user = &userRepository{m: m}
	return m
}

func (m *Memory) Question() interfaces.QuestionRepository {
	return m.question
}

func (m *Memory) Answer() interfaces.AnswerRepository {
	return m.answer
}

func (m *Memory) Tag() interfaces.TagRepository {
	return m.tag
}

func (m *Memory) User() interfaces.UserDirectory {
	return m.user
}

func (m *Memory) Close() error {
	return nil
}

// PutUser seeds a user record. The directory is read-only through the
// interface, so tests and the dev backend seed directly.
func (m *Memory) PutUser(u *model.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *u
	m.users[u.ID] = &cp
}

// PutTag seeds a tag record.
func (m *Memory) PutTag(label string, usageCount int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tags = append(m.tags, &model.Tag{
		ID:         int64(len(m.tags) + 1),
		Label:      label,
		UsageCount: usageCount,
	})
}

type ctxTxKey struct{}

func inTx(ctx context.Context) bool {
	_, ok := ctx.Value(ctxTxKey{}).(*Memory)
	return ok
}

// Transaction locks the store, snapshots the mutable tables and runs fn.
// Any error restores the snapshot so no operation's effect becomes visible.
func (m *Memory) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	snapQuestions := make(map[types.QuestionID]*model.Question, len(m.questions))
	for id, q := range m.questions {
		cp := *q
		snapQuestions[id] = &cp
	}
	snapAnswers := make(map[types.AnswerID]*model.Answer, len(m.answers))
	for id, a := range m.answers {
		cp := *a
		snapAnswers[id] = &cp
	}

	if err := fn(context.WithValue(ctx, ctxTxKey{}, m)); err != nil {
		m.questions = snapQuestions
		m.answers = snapAnswers
		return err
	}
	return nil
}

// acquire takes the write lock unless ctx already runs inside a transaction,
// which holds it for the whole operation set.
func (m *Memory) acquire(ctx context.Context) func() {
	if inTx(ctx) {
		return func() {}
	}
	m.mu.Lock()
	return m.mu.Unlock
}

func (m *Memory) acquireRead(ctx context.Context) func() {
	if inTx(ctx) {
		return func() {}
	}
	m.mu.RLock()
	return m.mu.RUnlock
}
