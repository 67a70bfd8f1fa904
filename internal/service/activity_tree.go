package service

import (
	"context"
	"errors"
	"fmt"

	"org-directory/internal/cache"
	"org-directory/internal/database/models"
	"org-directory/internal/logger"
	"org-directory/internal/metrics"
	"org-directory/internal/repository"

	"gorm.io/gorm"
)

// ActivityTreeResolver expands an activity into its subtree
type ActivityTreeResolver struct {
	repo  repository.ActivityRepositoryInterface
	cache cache.DescendantCacheInterface
}

// NewActivityTreeResolver creates a resolver. descendants may be nil, in which case
// every call walks the tree in storage.
func NewActivityTreeResolver(repo repository.ActivityRepositoryInterface, descendants cache.DescendantCacheInterface) *ActivityTreeResolver {
	return &ActivityTreeResolver{
		repo:  repo,
		cache: descendants,
	}
}

// Descendants returns id together with the ids of all activities below it, each once.
// An id with no stored children (known or not) yields just itself.
func (r *ActivityTreeResolver) Descendants(ctx context.Context, id uint) ([]uint, error) {
	if r.cache != nil {
		ids, ok, err := r.cache.Get(ctx, id)
		switch {
		case err != nil:
			metrics.DescendantCacheErrorsTotal.WithLabelValues("get").Inc()
			logger.WithContext(ctx).WithError(err).Warnf("descendant cache read failed for activity %d", id)
		case ok:
			metrics.DescendantCacheHitsTotal.Inc()
			return ids, nil
		default:
			metrics.DescendantCacheMissesTotal.Inc()
		}
	}

	ids, err := r.walk(ctx, id)
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, id, ids); err != nil {
			metrics.DescendantCacheErrorsTotal.WithLabelValues("set").Inc()
			logger.WithContext(ctx).WithError(err).Warnf("descendant cache write failed for activity %d", id)
		}
	}
	return ids, nil
}

// walk is a breadth-first traversal over parent_id links. The visited set keeps a
// malformed cycle from looping forever.
func (r *ActivityTreeResolver) walk(ctx context.Context, root uint) ([]uint, error) {
	visited := map[uint]struct{}{root: {}}
	result := []uint{root}
	queue := []uint{root}

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		current := queue[0]
		queue = queue[1:]

		children, err := r.repo.GetChildren(ctx, current)
		if err != nil {
			return nil, fmt.Errorf("failed to get children of activity %d: %w", current, err)
		}
		for _, child := range children {
			if _, seen := visited[child.ID]; seen {
				continue
			}
			visited[child.ID] = struct{}{}
			result = append(result, child.ID)
			queue = append(queue, child.ID)
		}
	}

	return result, nil
}

// InvalidateAncestors drops the cached closures of from and of every activity above it.
// Failures are logged; stale entries still expire with the cache TTL.
func (r *ActivityTreeResolver) InvalidateAncestors(ctx context.Context, from *models.Activity) {
	if r.cache == nil || from == nil {
		return
	}

	log := logger.WithContext(ctx)
	ids := []uint{from.ID}
	current := from
	for current.ParentID != nil && len(ids) < maxAncestorWalk {
		parent, err := r.repo.GetByID(ctx, *current.ParentID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.WithError(err).Warnf("failed to load ancestor %d for cache invalidation", *current.ParentID)
			}
			break
		}
		ids = append(ids, parent.ID)
		current = parent
	}

	if err := r.cache.Invalidate(ctx, ids); err != nil {
		metrics.DescendantCacheErrorsTotal.WithLabelValues("invalidate").Inc()
		log.WithError(err).Errorf("failed to invalidate descendant cache for activities %v", ids)
	}
}
