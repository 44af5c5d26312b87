// models/billboard.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BillboardPost is a club announcement shown on the parent portal.
type BillboardPost struct {
	ID              string    `gorm:"type:uuid;primaryKey" json:"id"`
	AuthorProfileID string    `gorm:"type:uuid;not null" json:"author_profile_id"`
	Title           string    `gorm:"not null;size:150" json:"title"`
	Body            string    `gorm:"type:text" json:"body"`
	Pinned          bool      `gorm:"default:false;index" json:"pinned"`
	CreatedAt       time.Time `json:"created_at"`

	Author *Profile `gorm:"foreignKey:AuthorProfileID" json:"author,omitempty"`
}

func (b *BillboardPost) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

func (BillboardPost) TableName() string {
	return "billboard_posts"
}
