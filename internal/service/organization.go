package service

import (
	"context"
	"errors"
	"fmt"

	"org-directory/internal/database/models"
	apperrors "org-directory/internal/errors"
	"org-directory/internal/geo"
	"org-directory/internal/logger"
	"org-directory/internal/metrics"
	"org-directory/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Name search paging defaults
const (
	DefaultSearchLimit = 100
	MaxSearchLimit     = 1000
)

// OrganizationService handles business logic for organizations
type OrganizationService struct {
	repo         repository.OrganizationRepositoryInterface
	buildingRepo repository.BuildingRepositoryInterface
	activityRepo repository.ActivityRepositoryInterface
	tree         *ActivityTreeResolver
	validator    *validator.Validate
}

// Ensure OrganizationService implements OrganizationServiceInterface
var _ OrganizationServiceInterface = (*OrganizationService)(nil)

// NewOrganizationService creates a new organization service
func NewOrganizationService(
	repo repository.OrganizationRepositoryInterface,
	buildingRepo repository.BuildingRepositoryInterface,
	activityRepo repository.ActivityRepositoryInterface,
	tree *ActivityTreeResolver,
	validator *validator.Validate,
) *OrganizationService {
	return &OrganizationService{
		repo:         repo,
		buildingRepo: buildingRepo,
		activityRepo: activityRepo,
		tree:         tree,
		validator:    validator,
	}
}

// CreateOrganizationRequest represents the request to create an organization
type CreateOrganizationRequest struct {
	Name         string   `json:"name" validate:"required,max=255"`
	PhoneNumbers []string `json:"phone_numbers" validate:"dive,required,max=50"`
	BuildingID   uint     `json:"building_id" validate:"required"`
	ActivityIDs  []uint   `json:"activity_ids" validate:"dive,required"`
}

// Create creates an organization together with its activity links
func (s *OrganizationService) Create(ctx context.Context, req *CreateOrganizationRequest) (*OrganizationResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	if _, err := s.buildingRepo.GetByID(ctx, req.BuildingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnknownBuilding
		}
		return nil, fmt.Errorf("failed to check building: %w", err)
	}

	activityIDs := uniqueIDs(req.ActivityIDs)
	if len(activityIDs) > 0 {
		found, err := s.activityRepo.GetByIDs(ctx, activityIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to check activities: %w", err)
		}
		if missing := missingIDs(activityIDs, found); len(missing) > 0 {
			return nil, apperrors.NewValidationError("activity_ids", fmt.Sprintf("unknown activities: %v", missing))
		}
	}

	phones := pq.StringArray{}
	phones = append(phones, req.PhoneNumbers...)
	org := &models.Organization{
		Name:         req.Name,
		PhoneNumbers: phones,
		BuildingID:   req.BuildingID,
	}
	if err := s.repo.CreateWithActivities(ctx, org, activityIDs); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	created, err := s.repo.GetByID(ctx, org.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load created organization: %w", err)
	}
	resp := toOrganizationResponse(created)
	return &resp, nil
}

// GetByID retrieves an organization by ID
func (s *OrganizationService) GetByID(ctx context.Context, id uint) (*OrganizationResponse, error) {
	org, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	resp := toOrganizationResponse(org)
	return &resp, nil
}

// GetByBuilding retrieves the organizations located in a building
func (s *OrganizationService) GetByBuilding(ctx context.Context, buildingID uint) ([]OrganizationResponse, error) {
	orgs, err := s.repo.GetByBuildingID(ctx, buildingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get organizations by building: %w", err)
	}
	return toOrganizationResponses(orgs), nil
}

// GetByActivity retrieves the organizations tagged with the activity or any activity below it
func (s *OrganizationService) GetByActivity(ctx context.Context, activityID uint) ([]OrganizationResponse, error) {
	ids, err := s.tree.Descendants(ctx, activityID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve activity subtree: %w", err)
	}

	orgs, err := s.repo.GetByActivityIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get organizations by activity: %w", err)
	}
	return toOrganizationResponses(orgs), nil
}

// GetInRadius retrieves the organizations within radiusKm kilometers of the point.
// Every organization is loaded and filtered in memory.
func (s *OrganizationService) GetInRadius(ctx context.Context, latitude, longitude, radiusKm float64) ([]OrganizationResponse, error) {
	if err := validateCoordinates(latitude, longitude); err != nil {
		return nil, err
	}
	if radiusKm < 0 {
		return nil, apperrors.ErrNegativeRadius
	}

	orgs, err := s.repo.GetAllWithBuildings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get organizations: %w", err)
	}
	metrics.RadiusCandidatesScanned.Observe(float64(len(orgs)))

	matched := geo.FilterByRadius(orgs, latitude, longitude, radiusKm)
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"scanned": len(orgs),
		"matched": len(matched),
		"radius":  radiusKm,
	}).Debug("radius search")

	return toOrganizationResponses(matched), nil
}

// GetInRectangle retrieves the organizations whose building lies in the inclusive box
func (s *OrganizationService) GetInRectangle(ctx context.Context, minLat, maxLat, minLon, maxLon float64) ([]OrganizationResponse, error) {
	if err := validateCoordinates(minLat, minLon); err != nil {
		return nil, err
	}
	if err := validateCoordinates(maxLat, maxLon); err != nil {
		return nil, err
	}

	orgs, err := s.repo.GetInBox(ctx, minLat, maxLat, minLon, maxLon)
	if err != nil {
		return nil, fmt.Errorf("failed to get organizations in rectangle: %w", err)
	}
	return toOrganizationResponses(orgs), nil
}

// SearchByName retrieves organizations whose name contains name, ignoring case
func (s *OrganizationService) SearchByName(ctx context.Context, name string, skip, limit int) ([]OrganizationResponse, error) {
	if skip < 0 {
		skip = 0
	}
	if limit < 1 || limit > MaxSearchLimit {
		limit = DefaultSearchLimit
	}

	orgs, err := s.repo.SearchByName(ctx, name, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search organizations: %w", err)
	}
	return toOrganizationResponses(orgs), nil
}

// uniqueIDs drops repeated ids keeping first occurrences in order
func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func missingIDs(want []uint, found []models.Activity) []uint {
	have := make(map[uint]struct{}, len(found))
	for _, a := range found {
		have[a.ID] = struct{}{}
	}
	var missing []uint
	for _, id := range want {
		if _, ok := have[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
