package postgres

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/MannerMan/rocket-fuel/pkg/domain/model"
)

type tagRepository struct {
	p *Postgres
}

func (r *tagRepository) Search(ctx context.Context, query string, limit int) ([]string, error) {
	labels := []string{}
	err := r.p.conn(ctx).
		Model(&model.Tag{}).
		Where("label LIKE ?", query+"%").
		Order("label ASC").
		Limit(limit).
		Pluck("label", &labels).Error
	if err != nil {
		return nil, goerr.Wrap(err, "failed to search tags", goerr.V("query", query))
	}
	return labels, nil
}

func (r *tagRepository) Popular(ctx context.Context, limit int) ([]string, error) {
	labels := []string{}
	err := r.p.conn(ctx).
		Model(&model.Tag{}).
		Order("usage_count DESC").
		Limit(limit).
		Pluck("label", &labels).Error
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list popular tags")
	}
	return labels, nil
}
