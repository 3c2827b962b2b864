package store

import "context"

// Finder is the read side shared by every domain store.
type Finder[D any] interface {
	Find(ctx context.Context, options ...Option) ([]D, error)
	FindOne(ctx context.Context, options ...Option) (D, error)
	Exists(ctx context.Context, options ...Option) (bool, error)
	Count(ctx context.Context, options ...Option) (int64, error)
}

// Collection wraps a Finder for embedding into application services, giving
// them Find/Get without re-declaring the plumbing.
type Collection[D any] struct {
	finder Finder[D]
}

// NewCollection creates a Collection backed by the given finder.
func NewCollection[D any](finder Finder[D]) Collection[D] {
	return Collection[D]{finder: finder}
}

// Find retrieves entities matching the given options.
func (c Collection[D]) Find(ctx context.Context, options ...Option) ([]D, error) {
	return c.finder.Find(ctx, options...)
}

// Get retrieves a single entity matching the given options.
func (c Collection[D]) Get(ctx context.Context, options ...Option) (D, error) {
	return c.finder.FindOne(ctx, options...)
}

// Count returns the number of entities matching the given options.
func (c Collection[D]) Count(ctx context.Context, options ...Option) (int64, error) {
	return c.finder.Count(ctx, options...)
}
