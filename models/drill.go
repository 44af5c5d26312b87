// models/drill.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Drill is a reusable training exercise from the coaching library.
type Drill struct {
	ID              string    `gorm:"type:uuid;primaryKey" json:"id"`
	Title           string    `gorm:"not null;size:150" json:"title"`
	Description     string    `gorm:"type:text" json:"description"`
	DurationMinutes int       `gorm:"default:10" json:"duration_minutes"`
	Category        string    `gorm:"size:50" json:"category"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (d *Drill) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

func (Drill) TableName() string {
	return "drills"
}
