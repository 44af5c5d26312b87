// models/parent_link.go
package models

import "time"

// ParentLink associates a guardian account with a player. The composite
// unique index makes the admin fix flow's upsert idempotent, and a lookup
// on this table is the parent portal's entire authorization model: no
// row means the portal answers as if the player did not exist.
type ParentLink struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	ParentProfileID string    `gorm:"type:uuid;not null;uniqueIndex:idx_parent_player" json:"parent_profile_id"`
	PlayerID        string    `gorm:"type:uuid;not null;uniqueIndex:idx_parent_player" json:"player_id"`
	CreatedAt       time.Time `json:"created_at"`

	Player *Player `gorm:"foreignKey:PlayerID" json:"player,omitempty"`
}

func (ParentLink) TableName() string {
	return "player_parents"
}
