// models/team.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MinPlayerCount     = 7
	MaxPlayerCount     = 15
	MaxSubstituteCount = 15
)

// SlotMap is the persisted lineup mapping: slot id → player id. Starting
// slots use jersey numbers ("1".."15"), bench slots use "sub_1".."sub_N".
// Stored as a jsonb column so the whole lineup is written in one update.
type SlotMap map[string]string

func (m SlotMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

func (m *SlotMap) Scan(value interface{}) error {
	if value == nil {
		*m = SlotMap{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported lineup column type %T", value)
	}
	if len(raw) == 0 {
		*m = SlotMap{}
		return nil
	}
	return json.Unmarshal(raw, m)
}

// PlayerIDs returns the assigned player ids in no particular order.
func (m SlotMap) PlayerIDs() []string {
	ids := make([]string, 0, len(m))
	for _, id := range m {
		ids = append(ids, id)
	}
	return ids
}

type Team struct {
	ID   string `gorm:"type:uuid;primaryKey" json:"id"`
	Name string `gorm:"not null;size:100" json:"name"`
	// PlayerCount is the starting lineup size, 7-a-side up to full 15s.
	PlayerCount      int     `gorm:"default:15" json:"player_count"`
	SubstitutesCount int     `gorm:"default:0" json:"substitutes_count"`
	Lineup           SlotMap `gorm:"type:jsonb;default:'{}'" json:"lineup"`
	CaptainID        *string `gorm:"type:uuid" json:"captain_id,omitempty"`
	ClubID           *string `gorm:"type:uuid" json:"club_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *Team) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Lineup == nil {
		t.Lineup = SlotMap{}
	}
	return nil
}

func (t *Team) BeforeSave(tx *gorm.DB) error {
	if t.PlayerCount < MinPlayerCount || t.PlayerCount > MaxPlayerCount {
		return errors.New("player count must be between 7 and 15")
	}
	if t.SubstitutesCount < 0 || t.SubstitutesCount > MaxSubstituteCount {
		return errors.New("substitutes count must be between 0 and 15")
	}
	return nil
}

func (Team) TableName() string {
	return "teams"
}
