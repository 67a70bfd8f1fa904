package repository

import (
	"context"

	"org-directory/internal/database/models"

	"gorm.io/gorm"
)

// BuildingRepository handles database operations for buildings
type BuildingRepository struct {
	db *gorm.DB
}

// Ensure BuildingRepository implements BuildingRepositoryInterface
var _ BuildingRepositoryInterface = (*BuildingRepository)(nil)

// NewBuildingRepository creates a new building repository
func NewBuildingRepository(db *gorm.DB) *BuildingRepository {
	return &BuildingRepository{db: db}
}

// Create creates a new building
func (r *BuildingRepository) Create(ctx context.Context, building *models.Building) error {
	return r.db.WithContext(ctx).Create(building).Error
}

// GetByID retrieves a building by ID
func (r *BuildingRepository) GetByID(ctx context.Context, id uint) (*models.Building, error) {
	var building models.Building
	if err := r.db.WithContext(ctx).First(&building, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &building, nil
}

// GetAll retrieves every building ordered by id
func (r *BuildingRepository) GetAll(ctx context.Context) ([]models.Building, error) {
	var buildings []models.Building
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&buildings).Error; err != nil {
		return nil, err
	}
	return buildings, nil
}
