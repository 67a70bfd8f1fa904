package models

import (
	"github.com/lib/pq"
)

// Organization is a directory entry located in exactly one building and tagged
// with any number of activities.
type Organization struct {
	BaseModel
	Name         string         `json:"name" gorm:"not null;index"`
	PhoneNumbers pq.StringArray `json:"phone_numbers" gorm:"type:text[]"`
	BuildingID   uint           `json:"building_id" gorm:"not null;index"`
	Building     Building       `json:"building" gorm:"foreignKey:BuildingID;constraint:OnDelete:RESTRICT"`
	Activities   []Activity     `json:"activities" gorm:"many2many:organization_activities"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}

// ActivityIDs returns the ids of the attached activities in their loaded order
func (o Organization) ActivityIDs() []uint {
	ids := make([]uint, len(o.Activities))
	for i, a := range o.Activities {
		ids[i] = a.ID
	}
	return ids
}
