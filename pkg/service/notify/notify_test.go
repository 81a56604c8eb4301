package notify_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/slack-go/slack"

	"github.com/MannerMan/rocket-fuel/pkg/domain/model"
	"github.com/MannerMan/rocket-fuel/pkg/repository/memory"
	"github.com/MannerMan/rocket-fuel/pkg/service/notify"
)

type fakeChat struct {
	lookupErr error
	postErr   error

	lookedUp string
	userID   string
	blocks   []slack.Block
	text     string
}

func (c *fakeChat) LookupUserByEmail(ctx context.Context, email string) (string, error) {
	c.lookedUp = email
	if c.lookupErr != nil {
		return "", c.lookupErr
	}
	return "U0042", nil
}

func (c *fakeChat) PostMessageAsBot(ctx context.Context, userID string, blocks []slack.Block, text string) error {
	c.userID = userID
	c.blocks = blocks
	c.text = text
	return c.postErr
}

func sectionText(t *testing.T, b slack.Block) string {
	t.Helper()
	section, ok := b.(*slack.SectionBlock)
	gt.Bool(t, ok).True()
	return section.Text.Text
}

func setup(t *testing.T) (*memory.Memory, *model.Question, *model.Answer) {
	t.Helper()
	ctx := context.Background()

	repo := memory.New()
	repo.PutUser(&model.User{ID: 1, Name: "gandalf", Email: "gandalf@example.com"})

	question, err := repo.Question().Add(ctx, 1, &model.Question{
		Title:    "How to cross the bridge?",
		Question: "It looks unstable.",
	})
	gt.NoError(t, err).Required()

	answer, err := repo.Answer().Create(ctx, 2, question.ID, &model.Answer{
		Answer: "You shall not pass over it, go around.",
	})
	gt.NoError(t, err).Required()

	return repo, question, answer
}

func TestAnswerCreated(t *testing.T) {
	t.Run("posts a three block message to the question owner", func(t *testing.T) {
		repo, question, answer := setup(t)
		chat := &fakeChat{}
		p := notify.New(repo, chat, "https://qa.example.com")

		p.AnswerCreated(context.Background(), answer, question.ID)

		gt.Value(t, chat.lookedUp).Equal("gandalf@example.com")
		gt.Value(t, chat.userID).Equal("U0042")
		gt.String(t, chat.text).Contains("How to cross the bridge?")

		gt.Array(t, chat.blocks).Length(3)
		gt.String(t, sectionText(t, chat.blocks[0])).Contains("*How to cross the bridge?* got an answer")
		gt.Value(t, sectionText(t, chat.blocks[1])).Equal(answer.Answer)
		gt.String(t, sectionText(t, chat.blocks[2])).Contains(
			fmt.Sprintf("https://qa.example.com/question/%d#answer_%d", question.ID, answer.ID),
		)
	})

	t.Run("lookup failure is swallowed", func(t *testing.T) {
		repo, question, answer := setup(t)
		chat := &fakeChat{lookupErr: goerr.New("no such user")}
		p := notify.New(repo, chat, "https://qa.example.com")

		p.AnswerCreated(context.Background(), answer, question.ID)

		gt.Value(t, chat.userID).Equal("")
	})

	t.Run("post failure is swallowed", func(t *testing.T) {
		repo, question, answer := setup(t)
		chat := &fakeChat{postErr: goerr.New("channel archived")}
		p := notify.New(repo, chat, "https://qa.example.com")

		p.AnswerCreated(context.Background(), answer, question.ID)
	})

	t.Run("unknown question is swallowed without a post", func(t *testing.T) {
		repo, _, answer := setup(t)
		chat := &fakeChat{}
		p := notify.New(repo, chat, "https://qa.example.com")

		p.AnswerCreated(context.Background(), answer, 999)

		gt.Value(t, chat.lookedUp).Equal("")
		gt.Value(t, chat.userID).Equal("")
	})
}
