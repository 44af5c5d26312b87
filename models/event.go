// models/event.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	EventTraining = "training"
	EventMatch    = "match"
)

const (
	AttendancePresent   = "present"
	AttendanceAbsent    = "absent"
	AttendanceJustified = "justified"
)

const (
	ResultWin     = "win"
	ResultLoss    = "loss"
	ResultDraw    = "draw"
	ResultPending = "pending"
)

// Event covers both training sessions and matches; match rows carry the
// rival/score columns, training rows leave them at their zero values.
type Event struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Type      string    `gorm:"size:20;not null;default:'training';index" json:"type"`
	Title     string    `gorm:"not null;size:150" json:"title"`
	EventDate time.Time `gorm:"index" json:"event_date"`
	EventTime string    `gorm:"size:5" json:"event_time"`
	Location  string    `gorm:"size:150" json:"location"`
	CoachID   *string   `gorm:"type:uuid" json:"coach_id,omitempty"`

	// Match-only fields. Rival is free text for one-off opponents;
	// RivalClubID points at a registered club from the selector.
	Rival       string  `gorm:"size:120" json:"rival,omitempty"`
	RivalClubID *string `gorm:"type:uuid;index" json:"rival_club_id,omitempty"`
	IsHome      bool    `gorm:"default:true" json:"is_home"`
	OurScore    *int    `json:"our_score,omitempty"`
	TheirScore  *int    `json:"their_score,omitempty"`
	Result      string  `gorm:"size:10;default:'pending'" json:"result"`
	TeamID      *string `gorm:"type:uuid" json:"team_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	RivalClub *Club           `gorm:"foreignKey:RivalClubID" json:"rival_club,omitempty"`
	PlanSlots []EventPlanSlot `gorm:"foreignKey:EventID" json:"plan_slots,omitempty"`
	Notes     []EventNote     `gorm:"foreignKey:EventID" json:"notes,omitempty"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

func (Event) TableName() string {
	return "events"
}

// EventAttendance is one player's attendance status for one event.
// Unique on (event_id, player_id) so marking attendance is an upsert.
type EventAttendance struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	EventID  string `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_event_player" json:"event_id"`
	PlayerID string `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_event_player" json:"player_id"`
	Status   string `gorm:"size:15;default:'present'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (EventAttendance) TableName() string {
	return "event_attendance"
}

// EventPlanSlot places a drill into a training session's plan.
type EventPlanSlot struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	EventID         string `gorm:"type:uuid;not null;index" json:"event_id"`
	DrillID         string `gorm:"type:uuid;not null" json:"drill_id"`
	SortOrder       int    `gorm:"default:0" json:"sort_order"`
	DurationMinutes *int   `json:"duration_minutes,omitempty"`

	Drill *Drill `gorm:"foreignKey:DrillID" json:"drill,omitempty"`
}

func (EventPlanSlot) TableName() string {
	return "event_plan_slots"
}

type EventNote struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	EventID         string    `gorm:"type:uuid;not null;index" json:"event_id"`
	AuthorProfileID string    `gorm:"type:uuid;not null" json:"author_profile_id"`
	Body            string    `gorm:"type:text;not null" json:"body"`
	CreatedAt       time.Time `json:"created_at"`
}

func (EventNote) TableName() string {
	return "event_notes"
}
