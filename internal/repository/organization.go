package repository

import (
	"context"
	"strings"

	"org-directory/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrganizationRepository handles database operations for organizations
type OrganizationRepository struct {
	db *gorm.DB
}

// Ensure OrganizationRepository implements OrganizationRepositoryInterface
var _ OrganizationRepositoryInterface = (*OrganizationRepository)(nil)

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// withRelations scopes a query to load the building and activities of every organization
func (r *OrganizationRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Building").
		Preload("Activities", func(db *gorm.DB) *gorm.DB {
			return db.Order("activities.id ASC")
		})
}

// CreateWithActivities inserts the organization and its activity links in one transaction.
// Either every row is written or none is.
func (r *OrganizationRepository) CreateWithActivities(ctx context.Context, org *models.Organization, activityIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(org).Error; err != nil {
			return err
		}
		if len(activityIDs) == 0 {
			return nil
		}

		links := make([]models.OrganizationActivity, 0, len(activityIDs))
		for _, activityID := range activityIDs {
			links = append(links, models.OrganizationActivity{
				OrganizationID: org.ID,
				ActivityID:     activityID,
			})
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error
	})
}

// GetByID retrieves an organization with its building and activities
func (r *OrganizationRepository) GetByID(ctx context.Context, id uint) (*models.Organization, error) {
	var org models.Organization
	if err := r.withRelations(ctx).First(&org, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

// GetByBuildingID retrieves the organizations located in a building
func (r *OrganizationRepository) GetByBuildingID(ctx context.Context, buildingID uint) ([]models.Organization, error) {
	var orgs []models.Organization
	err := r.withRelations(ctx).
		Where("building_id = ?", buildingID).
		Order("id ASC").
		Find(&orgs).Error
	if err != nil {
		return nil, err
	}
	return orgs, nil
}

// GetByActivityIDs retrieves the organizations linked to at least one of activityIDs.
// Each organization appears once regardless of how many ids it matches.
func (r *OrganizationRepository) GetByActivityIDs(ctx context.Context, activityIDs []uint) ([]models.Organization, error) {
	var orgs []models.Organization
	if len(activityIDs) == 0 {
		return orgs, nil
	}

	linked := r.db.WithContext(ctx).
		Model(&models.OrganizationActivity{}).
		Select("organization_id").
		Where("activity_id IN ?", activityIDs)

	err := r.withRelations(ctx).
		Where("id IN (?)", linked).
		Order("id ASC").
		Find(&orgs).Error
	if err != nil {
		return nil, err
	}
	return orgs, nil
}

// GetAllWithBuildings retrieves every organization with its building coordinates
func (r *OrganizationRepository) GetAllWithBuildings(ctx context.Context) ([]models.Organization, error) {
	var orgs []models.Organization
	if err := r.withRelations(ctx).Order("id ASC").Find(&orgs).Error; err != nil {
		return nil, err
	}
	return orgs, nil
}

// GetInBox retrieves the organizations whose building lies inside the inclusive box
func (r *OrganizationRepository) GetInBox(ctx context.Context, minLat, maxLat, minLon, maxLon float64) ([]models.Organization, error) {
	var orgs []models.Organization
	err := r.withRelations(ctx).
		Select("organizations.*").
		Joins("JOIN buildings ON buildings.id = organizations.building_id").
		Where("buildings.latitude >= ? AND buildings.latitude <= ?", minLat, maxLat).
		Where("buildings.longitude >= ? AND buildings.longitude <= ?", minLon, maxLon).
		Order("organizations.id ASC").
		Find(&orgs).Error
	if err != nil {
		return nil, err
	}
	return orgs, nil
}

// SearchByName retrieves organizations whose name contains name, ignoring case
func (r *OrganizationRepository) SearchByName(ctx context.Context, name string, skip, limit int) ([]models.Organization, error) {
	var orgs []models.Organization
	err := r.withRelations(ctx).
		Where("name ILIKE ?", "%"+escapeLike(name)+"%").
		Order("id ASC").
		Offset(skip).
		Limit(limit).
		Find(&orgs).Error
	if err != nil {
		return nil, err
	}
	return orgs, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE wildcards in s match literally (Postgres default escape is '\')
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
