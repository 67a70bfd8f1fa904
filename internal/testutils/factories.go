package testutils

import (
	"org-directory/internal/database/models"

	"github.com/lib/pq"
)

// BuildingFactory provides methods to create test Building data
type BuildingFactory struct{}

// NewBuildingFactory creates a new BuildingFactory
func NewBuildingFactory() *BuildingFactory {
	return &BuildingFactory{}
}

// Create creates a test Building in central Moscow
func (f *BuildingFactory) Create() *models.Building {
	return &models.Building{
		Address:   "Moscow, Lenina st. 1, office 3",
		Latitude:  55.7558,
		Longitude: 37.6176,
	}
}

// At creates a test Building at the given coordinates
func (f *BuildingFactory) At(address string, lat, lon float64) *models.Building {
	b := f.Create()
	b.Address = address
	b.Latitude = lat
	b.Longitude = lon
	return b
}

// ActivityFactory provides methods to create test Activity data
type ActivityFactory struct{}

// NewActivityFactory creates a new ActivityFactory
func NewActivityFactory() *ActivityFactory {
	return &ActivityFactory{}
}

// Root creates a level-1 activity
func (f *ActivityFactory) Root(name string) *models.Activity {
	return &models.Activity{Name: name, Level: 1}
}

// Child creates an activity one level below parent
func (f *ActivityFactory) Child(name string, parent *models.Activity) *models.Activity {
	parentID := parent.ID
	return &models.Activity{Name: name, ParentID: &parentID, Level: parent.Level + 1}
}

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization located in buildingID
func (f *OrganizationFactory) Create(buildingID uint) *models.Organization {
	return &models.Organization{
		Name:         "Horns and Hooves LLC",
		PhoneNumbers: pq.StringArray{"2-222-222", "3-333-333"},
		BuildingID:   buildingID,
	}
}

// WithName creates a test Organization with a custom name
func (f *OrganizationFactory) WithName(name string, buildingID uint) *models.Organization {
	org := f.Create(buildingID)
	org.Name = name
	return org
}
