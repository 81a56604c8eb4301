package memory

import (
	"context"
	"sort"
	"strings"
)

type tagRepository struct {
	m *Memory
}

func (r *tagRepository) Search(ctx context.Context, query string, limit int) ([]string, error) {
	release := r.m.acquireRead(ctx)
	defer release()

	labels := []string{}
	for _, t := range r.m.tags {
		if strings.HasPrefix(t.Label, query) {
			labels = append(labels, t.Label)
		}
	}
	sort.Strings(labels)
	if len(labels) > limit {
		labels = labels[:limit]
	}
	return labels, nil
}

func (r *tagRepository) Popular(ctx context.Context, limit int) ([]string, error) {
	release := r.m.acquireRead(ctx)
	defer release()

	tags := make([]struct {
		label string
		count int
	}, 0, len(r.m.tags))
	for _, t := range r.m.tags {
		tags = append(tags, struct {
			label string
			count int
		}{t.Label, t.UsageCount})
	}
	sort.Slice(tags, func(i, j int) bool {
		if tags[i].count == tags[j].count {
			return tags[i].label < tags[j].label
		}
		return tags[i].count > tags[j].count
	})

	labels := []string{}
	for _, t := range tags {
		if len(labels) >= limit {
			break
		}
		labels = append(labels, t.label)
	}
	return labels, nil
}
