package cache

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mocks/cache_mocks.go -package=mocks

// DescendantCacheInterface stores the descendant closure of an activity keyed by its id
type DescendantCacheInterface interface {
	// Get returns the cached closure and whether an entry existed
	Get(ctx context.Context, activityID uint) ([]uint, bool, error)
	Set(ctx context.Context, activityID uint, ids []uint) error
	Invalidate(ctx context.Context, activityIDs []uint) error
}
