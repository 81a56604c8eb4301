package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/slack-go/slack"

	"github.com/MannerMan/rocket-fuel/pkg/domain/interfaces"
	"github.com/MannerMan/rocket-fuel/pkg/domain/model"
	"github.com/MannerMan/rocket-fuel/pkg/domain/model/auth"
	"github.com/MannerMan/rocket-fuel/pkg/domain/types"
	"github.com/MannerMan/rocket-fuel/pkg/repository/memory"
	"github.com/MannerMan/rocket-fuel/pkg/service/notify"
	"github.com/MannerMan/rocket-fuel/pkg/usecase"
)

type postedMessage struct {
	userID string
	text   string
	blocks []slack.Block
}

// chatRecorder is a Slack service double that records calls on channels so
// tests can wait for the detached notification task.
type chatRecorder struct {
	lookupErr error
	postErr   error

	lookups chan string
	posted  chan postedMessage
}

func newChatRecorder() *chatRecorder {
	return &chatRecorder{
		lookups: make(chan string, 8),
		posted:  make(chan postedMessage, 8),
	}
}

func (c *chatRecorder) LookupUserByEmail(ctx context.Context, email string) (string, error) {
	c.lookups <- email
	if c.lookupErr != nil {
		return "", c.lookupErr
	}
	return "U0001", nil
}

func (c *chatRecorder) PostMessageAsBot(ctx context.Context, userID string, blocks []slack.Block, text string) error {
	c.posted <- postedMessage{userID: userID, text: text, blocks: blocks}
	return c.postErr
}

func waitFor[T any](t *testing.T, ch chan T) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for async call")
		var zero T
		return zero
	}
}

func sectionText(t *testing.T, b slack.Block) string {
	t.Helper()
	section, ok := b.(*slack.SectionBlock)
	gt.Bool(t, ok).True()
	return section.Text.Text
}

func seedQuestion(t *testing.T, repo *memory.Memory, owner types.UserID) *model.Question {
	t.Helper()
	repo.PutUser(&model.User{ID: owner, Name: "owner", Email: "owner@example.com"})
	q, err := repo.Question().Add(context.Background(), owner, &model.Question{
		Title:    "Why is the cache cold?",
		Question: "It misses on every request.",
	})
	gt.NoError(t, err).Required()
	return q
}

func TestAnswerQuestion(t *testing.T) {
	t.Run("empty body is rejected before the database", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)
		q := seedQuestion(t, repo, 1)

		_, err := uc.Answer.AnswerQuestion(context.Background(), &auth.Principal{UserID: 2}, &model.Answer{}, q.ID)
		failure := webFailure(t, err)
		gt.Number(t, failure.Status).Equal(400)
		gt.Value(t, failure.Token).Equal("answer.body.missing")

		answers, err := uc.Answer.GetAnswers(context.Background(), q.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, answers).Length(0)
	})

	t.Run("created answer is returned and the owner notified", func(t *testing.T) {
		repo := memory.New()
		chat := newChatRecorder()
		uc := usecase.New(repo, usecase.WithNotifier(notify.New(repo, chat, "https://qa.example.com")))
		q := seedQuestion(t, repo, 1)

		created, err := uc.Answer.AnswerQuestion(context.Background(), &auth.Principal{UserID: 2}, &model.Answer{
			Answer: "warm it on boot",
		}, q.ID)
		gt.NoError(t, err).Required()
		gt.Bool(t, created.ID > 0).True()
		gt.Value(t, created.QuestionID).Equal(q.ID)

		email := waitFor(t, chat.lookups)
		gt.Value(t, email).Equal("owner@example.com")

		msg := waitFor(t, chat.posted)
		gt.Value(t, msg.userID).Equal("U0001")
		gt.Array(t, msg.blocks).Length(3)
		gt.String(t, sectionText(t, msg.blocks[0])).Contains("Why is the cache cold?")
		gt.Value(t, sectionText(t, msg.blocks[1])).Equal("warm it on boot")
		gt.String(t, sectionText(t, msg.blocks[2])).Contains("#answer_1")
	})

	t.Run("notification failure leaves the created answer intact", func(t *testing.T) {
		repo := memory.New()
		chat := newChatRecorder()
		chat.lookupErr = goerr.New("user lookup failed")
		uc := usecase.New(repo, usecase.WithNotifier(notify.New(repo, chat, "https://qa.example.com")))
		q := seedQuestion(t, repo, 1)

		created, err := uc.Answer.AnswerQuestion(context.Background(), &auth.Principal{UserID: 2}, &model.Answer{
			Answer: "still works",
		}, q.ID)
		gt.NoError(t, err).Required()

		waitFor(t, chat.lookups)

		answers, err := uc.Answer.GetAnswers(context.Background(), q.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, answers).Length(1)
		gt.Value(t, answers[0].ID).Equal(created.ID)
	})
}

func TestUpdateAnswer(t *testing.T) {
	t.Run("only the author can update", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)
		q := seedQuestion(t, repo, 1)

		created, err := uc.Answer.AnswerQuestion(context.Background(), &auth.Principal{UserID: 2}, &model.Answer{
			Answer: "v1",
		}, q.ID)
		gt.NoError(t, err).Required()

		err = uc.Answer.UpdateAnswer(context.Background(), &auth.Principal{UserID: 3}, q.ID, created.ID, &model.Answer{
			Answer: "hijacked",
		})
		failure := webFailure(t, err)
		gt.Number(t, failure.Status).Equal(404)
		gt.Value(t, failure.Token).Equal("not.found")

		err = uc.Answer.UpdateAnswer(context.Background(), &auth.Principal{UserID: 2}, q.ID, created.ID, &model.Answer{
			Answer: "v2",
		})
		gt.NoError(t, err).Required()

		got, _, err := repo.Answer().GetByID(context.Background(), created.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got.Answer).Equal("v2")
	})

	t.Run("empty body is rejected", func(t *testing.T) {
		uc := usecase.New(memory.New())

		err := uc.Answer.UpdateAnswer(context.Background(), &auth.Principal{UserID: 2}, 1, 1, &model.Answer{})
		failure := webFailure(t, err)
		gt.Value(t, failure.Token).Equal("answer.body.missing")
	})
}

type failingQuestionRepo struct {
	interfaces.QuestionRepository
}

func (r *failingQuestionRepo) MarkAsAnswered(ctx context.Context, userID types.UserID, questionID types.QuestionID) (int64, error) {
	return 0, goerr.New("write failed")
}

func TestMarkAsAcceptedAnswer(t *testing.T) {
	t.Run("owner acceptance flips answer and question together", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)
		q := seedQuestion(t, repo, 1)

		created, err := uc.Answer.AnswerQuestion(context.Background(), &auth.Principal{UserID: 2}, &model.Answer{
			Answer: "accept me",
		}, q.ID)
		gt.NoError(t, err).Required()

		gt.NoError(t, uc.Answer.MarkAsAcceptedAnswer(context.Background(), &auth.Principal{UserID: 1}, created.ID)).Required()

		answer, question, err := repo.Answer().GetByID(context.Background(), created.ID)
		gt.NoError(t, err).Required()
		gt.Bool(t, answer.Accepted).True()
		gt.Bool(t, question.Answered).True()
	})

	t.Run("non-owner acceptance is rejected and changes nothing", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)
		q := seedQuestion(t, repo, 1)

		created, err := uc.Answer.AnswerQuestion(context.Background(), &auth.Principal{UserID: 2}, &model.Answer{
			Answer: "a",
		}, q.ID)
		gt.NoError(t, err).Required()

		err = uc.Answer.MarkAsAcceptedAnswer(context.Background(), &auth.Principal{UserID: 2}, created.ID)
		failure := webFailure(t, err)
		gt.Number(t, failure.Status).Equal(400)
		gt.Value(t, failure.Token).Equal("not.owner.of.question")

		answer, question, err := repo.Answer().GetByID(context.Background(), created.ID)
		gt.NoError(t, err).Required()
		gt.Bool(t, answer.Accepted).False()
		gt.Bool(t, question.Answered).False()
	})

	t.Run("unknown answer maps to not found", func(t *testing.T) {
		uc := usecase.New(memory.New())

		err := uc.Answer.MarkAsAcceptedAnswer(context.Background(), &auth.Principal{UserID: 1}, 999)
		failure := webFailure(t, err)
		gt.Number(t, failure.Status).Equal(404)
		gt.Value(t, failure.Token).Equal("not.found")
	})

	t.Run("failed question update rolls back the acceptance", func(t *testing.T) {
		mem := memory.New()
		q := seedQuestion(t, mem, 1)

		repo := &repoOverride{
			Repository: mem,
			question:   &failingQuestionRepo{QuestionRepository: mem.Question()},
		}
		uc := usecase.New(repo)

		created, err := uc.Answer.AnswerQuestion(context.Background(), &auth.Principal{UserID: 2}, &model.Answer{
			Answer: "a",
		}, q.ID)
		gt.NoError(t, err).Required()

		err = uc.Answer.MarkAsAcceptedAnswer(context.Background(), &auth.Principal{UserID: 1}, created.ID)
		gt.Value(t, err).NotNil()

		answer, _, err := mem.Answer().GetByID(context.Background(), created.ID)
		gt.NoError(t, err).Required()
		gt.Bool(t, answer.Accepted).False()
	})
}
