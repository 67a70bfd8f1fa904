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

// BuildingService handles business logic for buildings
type BuildingService struct {
	repo      repository.BuildingRepositoryInterface
	validator *validator.Validate
}

// Ensure BuildingService implements BuildingServiceInterface
var _ BuildingServiceInterface = (*BuildingService)(nil)

// NewBuildingService creates a new building service
func NewBuildingService(repo repository.BuildingRepositoryInterface, validator *validator.Validate) *BuildingService {
	return &BuildingService{
		repo:      repo,
		validator: validator,
	}
}

// CreateBuildingRequest represents the request to create a building
type CreateBuildingRequest struct {
	Address   string   `json:"address" validate:"required,max=500"`
	Latitude  *float64 `json:"latitude" validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
}

// Create creates a new building
func (s *BuildingService) Create(ctx context.Context, req *CreateBuildingRequest) (*BuildingResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if err := validateCoordinates(*req.Latitude, *req.Longitude); err != nil {
		return nil, err
	}

	building := &models.Building{
		Address:   req.Address,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
	}
	if err := s.repo.Create(ctx, building); err != nil {
		return nil, fmt.Errorf("failed to create building: %w", err)
	}

	resp := toBuildingResponse(building)
	return &resp, nil
}

// GetAll retrieves every building
func (s *BuildingService) GetAll(ctx context.Context) ([]BuildingResponse, error) {
	buildings, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get buildings: %w", err)
	}

	responses := make([]BuildingResponse, len(buildings))
	for i := range buildings {
		responses[i] = toBuildingResponse(&buildings[i])
	}
	return responses, nil
}

// GetByID retrieves a building by ID
func (s *BuildingService) GetByID(ctx context.Context, id uint) (*BuildingResponse, error) {
	building, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBuildingNotFound
		}
		return nil, fmt.Errorf("failed to get building: %w", err)
	}

	resp := toBuildingResponse(building)
	return &resp, nil
}
