// models/player.go
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	CategoryForwards = "Forwards"
	CategoryBacks    = "Backs"
)

const (
	StatusActive    = "Activo"
	StatusSuspended = "Suspendido"
	StatusInjured   = "Lesionado"
	StatusWithdrawn = "Abandonado"
)

// MaxPositions limits how many field positions a player can be listed
// for. The first entry is the primary position.
const MaxPositions = 3

var ForwardsPositions = []string{"Pilar", "Hooker", "Segunda línea", "Ala", "Octavo"}
var BacksPositions = []string{"Medio Scrum", "Apertura", "Primer Centro", "Segundo Centro", "Wing", "Full Back"}

// ValidPosition reports whether a position name belongs to the given
// category. An empty category accepts positions from either list.
func ValidPosition(category *string, position string) bool {
	inList := func(list []string) bool {
		for _, p := range list {
			if p == position {
				return true
			}
		}
		return false
	}
	if category == nil {
		return inList(ForwardsPositions) || inList(BacksPositions)
	}
	switch *category {
	case CategoryForwards:
		return inList(ForwardsPositions)
	case CategoryBacks:
		return inList(BacksPositions)
	}
	return false
}

type Player struct {
	ID        string  `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName string  `gorm:"not null;size:80;uniqueIndex:idx_players_identity" json:"first_name"`
	LastName  string  `gorm:"not null;size:80;uniqueIndex:idx_players_identity" json:"last_name"`
	Nickname  *string `gorm:"size:80;uniqueIndex:idx_players_identity" json:"nickname,omitempty"`
	// FullName is denormalized for the admin lookup flows that search by
	// a single name string.
	FullName  string         `gorm:"size:160;index" json:"full_name"`
	Category  *string        `gorm:"size:20;index" json:"category,omitempty"`
	Positions pq.StringArray `gorm:"type:text[]" json:"positions"`
	Status    string         `gorm:"size:20;default:'Activo';index" json:"status"`
	BirthDate *time.Time     `json:"birth_date,omitempty"`
	ImageURL  string         `json:"image_url"`

	// Medical record, editable only by linked parents and staff.
	BloodType        string `gorm:"size:5" json:"blood_type"`
	Allergies        string `gorm:"type:text" json:"allergies"`
	Conditions       string `gorm:"type:text" json:"conditions"`
	EmergencyContact string `gorm:"size:120" json:"emergency_contact"`
	CertificateURL   string `json:"certificate_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Skills []SkillAssessment `gorm:"foreignKey:PlayerID" json:"skills,omitempty"`
}

func (p *Player) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.syncFullName()
	return nil
}

func (p *Player) BeforeSave(tx *gorm.DB) error {
	p.syncFullName()
	if len(p.Positions) > MaxPositions {
		p.Positions = p.Positions[:MaxPositions]
	}
	return nil
}

func (p *Player) syncFullName() {
	p.FullName = strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// PrimaryPosition returns the first listed position, or "" when unset.
func (p *Player) PrimaryPosition() string {
	if len(p.Positions) == 0 {
		return ""
	}
	return p.Positions[0]
}

// IsWithdrawn reports whether the player left the club. Withdrawn players
// are read-only and excluded from lineups and roster aggregates.
func (p *Player) IsWithdrawn() bool {
	return p.Status == StatusWithdrawn
}

func (Player) TableName() string {
	return "players"
}
