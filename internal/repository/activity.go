package repository

import (
	"context"

	"org-directory/internal/database/models"

	"gorm.io/gorm"
)

// ActivityRepository handles database operations for activities
type ActivityRepository struct {
	db *gorm.DB
}

// Ensure ActivityRepository implements ActivityRepositoryInterface
var _ ActivityRepositoryInterface = (*ActivityRepository)(nil)

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Create creates a new activity. Level must already be resolved by the caller.
func (r *ActivityRepository) Create(ctx context.Context, activity *models.Activity) error {
	return r.db.WithContext(ctx).Omit("Parent").Create(activity).Error
}

// GetByID retrieves an activity by ID
func (r *ActivityRepository) GetByID(ctx context.Context, id uint) (*models.Activity, error) {
	var activity models.Activity
	if err := r.db.WithContext(ctx).First(&activity, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &activity, nil
}

// GetByIDs retrieves the activities matching ids; unknown ids are simply absent
func (r *ActivityRepository) GetByIDs(ctx context.Context, ids []uint) ([]models.Activity, error) {
	var activities []models.Activity
	if len(ids) == 0 {
		return activities, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

// GetChildren retrieves the direct children of parentID
func (r *ActivityRepository) GetChildren(ctx context.Context, parentID uint) ([]models.Activity, error) {
	var children []models.Activity
	if err := r.db.WithContext(ctx).Where("parent_id = ?", parentID).Order("id ASC").Find(&children).Error; err != nil {
		return nil, err
	}
	return children, nil
}
