package service

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// BuildingServiceInterface defines the interface for building service
type BuildingServiceInterface interface {
	Create(ctx context.Context, req *CreateBuildingRequest) (*BuildingResponse, error)
	GetAll(ctx context.Context) ([]BuildingResponse, error)
	GetByID(ctx context.Context, id uint) (*BuildingResponse, error)
}

// ActivityServiceInterface defines the interface for activity service
type ActivityServiceInterface interface {
	Create(ctx context.Context, req *CreateActivityRequest) (*ActivityResponse, error)
	GetByID(ctx context.Context, id uint) (*ActivityResponse, error)
}

// OrganizationServiceInterface defines the interface for organization service
type OrganizationServiceInterface interface {
	Create(ctx context.Context, req *CreateOrganizationRequest) (*OrganizationResponse, error)
	GetByID(ctx context.Context, id uint) (*OrganizationResponse, error)
	GetByBuilding(ctx context.Context, buildingID uint) ([]OrganizationResponse, error)
	GetByActivity(ctx context.Context, activityID uint) ([]OrganizationResponse, error)
	GetInRadius(ctx context.Context, latitude, longitude, radiusKm float64) ([]OrganizationResponse, error)
	GetInRectangle(ctx context.Context, minLat, maxLat, minLon, maxLon float64) ([]OrganizationResponse, error)
	SearchByName(ctx context.Context, name string, skip, limit int) ([]OrganizationResponse, error)
}
