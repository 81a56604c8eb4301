package usecase

import (
	"github.com/MannerMan/rocket-fuel/pkg/domain/interfaces"
	"github.com/MannerMan/rocket-fuel/pkg/service/notify"
)

type UseCases struct {
	repo     interfaces.Repository
	notifier *notify.Publisher

	Question *QuestionUseCase
	Answer   *AnswerUseCase
	Tag      *TagUseCase
}

type Option func(*UseCases)

// WithNotifier enables the best-effort owner notification on answer creation.
func WithNotifier(p *notify.Publisher) Option {
	return func(uc *UseCases) {
		uc.notifier = p
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo: repo,
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Question = NewQuestionUseCase(repo)
	uc.Answer = NewAnswerUseCase(repo, uc.notifier)
	uc.Tag = NewTagUseCase(repo)

	return uc
}
