package interfaces

import (
	"context"
)

// TagRepository exposes the tag lookup surface.
type TagRepository interface {
	// Search returns up to limit tag labels matching the query prefix.
	Search(ctx context.Context, query string, limit int) ([]string, error)

	// Popular returns up to limit tag labels ordered by usage count.
	Popular(ctx context.Context, limit int) ([]string, error)
}
