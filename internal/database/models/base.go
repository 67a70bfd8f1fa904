package models

import (
	"time"
)

// BaseModel provides the integer identity and timestamps shared by all directory entities
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"-"`
}
