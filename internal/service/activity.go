package service

import (
	"context"
	"errors"
	"fmt"

	"org-directory/internal/database/models"
	apperrors "org-directory/internal/errors"
	"org-directory/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// maxAncestorWalk bounds the parent chain walked during cache invalidation
const maxAncestorWalk = apperrors.MaxActivityLevel

// ResolveActivityLevel returns the level a new child of parent gets. A nil parent makes
// a root at level 1; a parent already at the deepest level is rejected.
func ResolveActivityLevel(parent *models.Activity) (int, error) {
	if parent == nil {
		return 1, nil
	}
	if parent.Level >= apperrors.MaxActivityLevel {
		return 0, apperrors.ErrMaxNestingDepth
	}
	return parent.Level + 1, nil
}

// ActivityService handles business logic for activities
type ActivityService struct {
	repo      repository.ActivityRepositoryInterface
	tree      *ActivityTreeResolver
	validator *validator.Validate
}

// Ensure ActivityService implements ActivityServiceInterface
var _ ActivityServiceInterface = (*ActivityService)(nil)

// NewActivityService creates a new activity service
func NewActivityService(repo repository.ActivityRepositoryInterface, tree *ActivityTreeResolver, validator *validator.Validate) *ActivityService {
	return &ActivityService{
		repo:      repo,
		tree:      tree,
		validator: validator,
	}
}

// CreateActivityRequest represents the request to create an activity.
// Level is accepted for compatibility but always recomputed from the parent.
type CreateActivityRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	ParentID *uint  `json:"parent_id,omitempty"`
	Level    int    `json:"level,omitempty"`
}

// Create creates a new activity below the optional parent
func (s *ActivityService) Create(ctx context.Context, req *CreateActivityRequest) (*ActivityResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	var parent *models.Activity
	if req.ParentID != nil {
		found, err := s.repo.GetByID(ctx, *req.ParentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrParentActivityMissing
			}
			return nil, fmt.Errorf("failed to get parent activity: %w", err)
		}
		parent = found
	}

	level, err := ResolveActivityLevel(parent)
	if err != nil {
		return nil, err
	}

	activity := &models.Activity{
		Name:     req.Name,
		ParentID: req.ParentID,
		Level:    level,
	}
	if err := s.repo.Create(ctx, activity); err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}

	// cached closures of every ancestor now miss the new node
	if s.tree != nil {
		s.tree.InvalidateAncestors(ctx, parent)
	}

	resp := toActivityResponse(activity)
	return &resp, nil
}

// GetByID retrieves an activity by ID
func (s *ActivityService) GetByID(ctx context.Context, id uint) (*ActivityResponse, error) {
	activity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrActivityNotFound
		}
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}

	resp := toActivityResponse(activity)
	return &resp, nil
}
