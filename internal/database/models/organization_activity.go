package models

// OrganizationActivity is the join row between an organization and an activity
type OrganizationActivity struct {
	OrganizationID uint `json:"organization_id" gorm:"primaryKey;autoIncrement:false"`
	ActivityID     uint `json:"activity_id" gorm:"primaryKey;autoIncrement:false;index"`
}

// TableName returns the table name for OrganizationActivity
func (OrganizationActivity) TableName() string {
	return "organization_activities"
}
