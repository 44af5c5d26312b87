// models/skill.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SkillKeys lists the sixteen rated skills in display order. Every
// assessment row carries all of them.
var SkillKeys = []string{
	"passing_receiving", "ruck", "tackle", "contact", "speed", "endurance",
	"strength", "tactical_positioning", "decision_making", "line_out",
	"scrum", "attack", "defense", "mentality", "kicking", "duel",
}

const (
	SkillMin = 1
	SkillMax = 5
)

// SkillAssessment is one evaluation snapshot for a player. Rows are
// insert-only: re-evaluating a player creates a new row so the history
// stays intact.
type SkillAssessment struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	PlayerID string `gorm:"type:uuid;not null;index:idx_skills_player_time,priority:1" json:"player_id"`

	PassingReceiving    int `gorm:"default:1" json:"passing_receiving"`
	Ruck                int `gorm:"default:1" json:"ruck"`
	Tackle              int `gorm:"default:1" json:"tackle"`
	Contact             int `gorm:"default:1" json:"contact"`
	Speed               int `gorm:"default:1" json:"speed"`
	Endurance           int `gorm:"default:1" json:"endurance"`
	Strength            int `gorm:"default:1" json:"strength"`
	TacticalPositioning int `gorm:"default:1" json:"tactical_positioning"`
	DecisionMaking      int `gorm:"default:1" json:"decision_making"`
	LineOut             int `gorm:"default:1" json:"line_out"`
	Scrum               int `gorm:"default:1" json:"scrum"`
	Attack              int `gorm:"default:1" json:"attack"`
	Defense             int `gorm:"default:1" json:"defense"`
	Mentality           int `gorm:"default:1" json:"mentality"`
	Kicking             int `gorm:"default:1" json:"kicking"`
	Duel                int `gorm:"default:1" json:"duel"`

	DateLogged time.Time `gorm:"index:idx_skills_player_time,priority:2" json:"date_logged"`
	CreatedAt  time.Time `json:"created_at"`
}

func (s *SkillAssessment) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.DateLogged.IsZero() {
		s.DateLogged = time.Now().UTC()
	}
	return nil
}

func (SkillAssessment) TableName() string {
	return "skills"
}

// Values returns the sixteen ratings keyed by SkillKeys. Unset fields
// (zero) come back as zero here; callers that need the rating floor apply
// the default-to-1 rule themselves.
func (s *SkillAssessment) Values() map[string]int {
	return map[string]int{
		"passing_receiving":    s.PassingReceiving,
		"ruck":                 s.Ruck,
		"tackle":               s.Tackle,
		"contact":              s.Contact,
		"speed":                s.Speed,
		"endurance":            s.Endurance,
		"strength":             s.Strength,
		"tactical_positioning": s.TacticalPositioning,
		"decision_making":      s.DecisionMaking,
		"line_out":             s.LineOut,
		"scrum":                s.Scrum,
		"attack":               s.Attack,
		"defense":              s.Defense,
		"mentality":            s.Mentality,
		"kicking":              s.Kicking,
		"duel":                 s.Duel,
	}
}
