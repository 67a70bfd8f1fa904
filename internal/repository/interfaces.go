package repository

import (
	"context"

	"org-directory/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// BuildingRepositoryInterface defines the interface for building repository operations
type BuildingRepositoryInterface interface {
	Create(ctx context.Context, building *models.Building) error
	GetByID(ctx context.Context, id uint) (*models.Building, error)
	GetAll(ctx context.Context) ([]models.Building, error)
}

// ActivityRepositoryInterface defines the interface for activity repository operations
type ActivityRepositoryInterface interface {
	Create(ctx context.Context, activity *models.Activity) error
	GetByID(ctx context.Context, id uint) (*models.Activity, error)
	GetByIDs(ctx context.Context, ids []uint) ([]models.Activity, error)
	GetChildren(ctx context.Context, parentID uint) ([]models.Activity, error)
}

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	CreateWithActivities(ctx context.Context, org *models.Organization, activityIDs []uint) error
	GetByID(ctx context.Context, id uint) (*models.Organization, error)
	GetByBuildingID(ctx context.Context, buildingID uint) ([]models.Organization, error)
	GetByActivityIDs(ctx context.Context, activityIDs []uint) ([]models.Organization, error)
	GetAllWithBuildings(ctx context.Context) ([]models.Organization, error)
	GetInBox(ctx context.Context, minLat, maxLat, minLon, maxLon float64) ([]models.Organization, error)
	SearchByName(ctx context.Context, name string, skip, limit int) ([]models.Organization, error)
}
