package models

import "github.com/paulmach/orb"

// Building is a physical address with coordinates. Organizations reference it.
type Building struct {
	BaseModel
	Address   string  `json:"address" gorm:"not null;index"`
	Latitude  float64 `json:"latitude" gorm:"not null"`
	Longitude float64 `json:"longitude" gorm:"not null"`
}

// TableName returns the table name for Building
func (Building) TableName() string {
	return "buildings"
}

// Point returns the building location as an orb point (x = longitude, y = latitude)
func (b Building) Point() orb.Point {
	return orb.Point{b.Longitude, b.Latitude}
}
