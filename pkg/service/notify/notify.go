package notify

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"

	"github.com/MannerMan/rocket-fuel/pkg/domain/interfaces"
	"github.com/MannerMan/rocket-fuel/pkg/domain/model"
	"github.com/MannerMan/rocket-fuel/pkg/domain/types"
	slacksvc "github.com/MannerMan/rocket-fuel/pkg/service/slack"
	"github.com/MannerMan/rocket-fuel/pkg/utils/logging"
)

// Publisher posts an out-of-band chat message to a question owner when their
// question receives an answer. Notification is best-effort: every failure in
// the pipeline is logged at warning level and swallowed, it never gates the
// primary write.
type Publisher struct {
	repo    interfaces.Repository
	chat    slacksvc.Service
	baseURL string
}

func New(repo interfaces.Repository, chat slacksvc.Service, baseURL string) *Publisher {
	return &Publisher{
		repo:    repo,
		chat:    chat,
		baseURL: baseURL,
	}
}

// AnswerCreated resolves the question owner, their workspace identity, and
// posts the notification message.
func (p *Publisher) AnswerCreated(ctx context.Context, answer *model.Answer, questionID types.QuestionID) {
	if err := p.notifyOwner(ctx, answer, questionID); err != nil {
		logging.From(ctx).Warn("could not notify question owner",
			"error", err,
			"question_id", questionID,
			"answer_id", answer.ID,
		)
	}
}

func (p *Publisher) notifyOwner(ctx context.Context, answer *model.Answer, questionID types.QuestionID) error {
	question, err := p.repo.Question().GetByID(ctx, questionID)
	if err != nil {
		return err
	}

	owner, err := p.repo.User().GetUserByID(ctx, question.UserID)
	if err != nil {
		return err
	}

	slackUserID, err := p.chat.LookupUserByEmail(ctx, owner.Email)
	if err != nil {
		return err
	}

	return p.chat.PostMessageAsBot(ctx, slackUserID,
		p.message(answer, question),
		fmt.Sprintf("Your question %q got an answer", question.Title),
	)
}

func (p *Publisher) message(answer *model.Answer, question *model.Question) []slack.Block {
	return []slack.Block{
		markdownSection(fmt.Sprintf("Your question: *%s* got an answer:", question.Title)),
		markdownSection(answer.Answer),
		markdownSection(fmt.Sprintf("Head over to <%s|rocket-fuel> to accept the answer", p.answerURL(question.ID, answer.ID))),
	}
}

func (p *Publisher) answerURL(questionID types.QuestionID, answerID types.AnswerID) string {
	return fmt.Sprintf("%s/question/%d#answer_%d", p.baseURL, questionID, answerID)
}

func markdownSection(text string) slack.Block {
	return slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType, text, false, false),
		nil, nil,
	)
}
