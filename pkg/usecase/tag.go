package usecase

import (
	"context"

	"github.com/MannerMan/rocket-fuel/pkg/domain/interfaces"
)

// TagUseCase exposes the tag lookup surface.
type TagUseCase struct {
	repo interfaces.Repository
}

func NewTagUseCase(repo interfaces.Repository) *TagUseCase {
	return &TagUseCase{repo: repo}
}

// GetTags returns tag labels matching the search prefix. An empty query lists
// the first page of tags in label order.
func (uc *TagUseCase) GetTags(ctx context.Context, query string) ([]string, error) {
	return uc.repo.Tag().Search(ctx, query, DefaultTagLimit)
}

// GetPopularTags returns the most used tag labels.
func (uc *TagUseCase) GetPopularTags(ctx context.Context) ([]string, error) {
	return uc.repo.Tag().Popular(ctx, DefaultPopularTags)
}
