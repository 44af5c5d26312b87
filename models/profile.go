// models/profile.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleStaff  = "Staff"
	RoleParent = "Parent"
	RoleAdmin  = "Admin"
)

type Profile struct {
	ID       string  `gorm:"type:uuid;primaryKey" json:"id"`
	Email    string  `gorm:"uniqueIndex;not null" json:"email"`
	Password string  `gorm:"not null" json:"-"`
	FullName string  `gorm:"size:120" json:"full_name"`
	Role     string  `gorm:"size:20;default:'Staff';index" json:"role"`
	IsParent bool    `gorm:"default:false" json:"is_parent"`
	Language string  `gorm:"size:5;default:'es'" json:"language"`
	Theme    string  `gorm:"size:10;default:'light'" json:"theme"`
	ClubID   *string `gorm:"type:uuid" json:"club_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	LastLogin time.Time `json:"last_login"`

	// Relationships
	PlayerLinks []ParentLink `gorm:"foreignKey:ParentProfileID" json:"player_links,omitempty"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

func (Profile) TableName() string {
	return "profiles"
}

// Club groups staff and teams under one organization. A single-club
// deployment still gets a row so profiles have something to point at.
type Club struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null;size:120" json:"name"`
	LogoURL   string    `json:"logo_url"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *Club) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
