package models

// Activity is a node of the activity category forest. Children are found by
// parent_id lookups; no child list is stored on the row.
type Activity struct {
	BaseModel
	Name     string    `json:"name" gorm:"not null;index"`
	ParentID *uint     `json:"parent_id" gorm:"index"`
	Parent   *Activity `json:"-" gorm:"foreignKey:ParentID;constraint:OnDelete:RESTRICT"`
	Level    int       `json:"level" gorm:"not null;default:1;check:chk_activities_level,level BETWEEN 1 AND 3"`
}

// TableName returns the table name for Activity
func (Activity) TableName() string {
	return "activities"
}

// IsRoot reports whether the activity has no parent
func (a Activity) IsRoot() bool {
	return a.ParentID == nil
}
