// services/event_service.go - Training sessions, matches, drills
package services

import (
	"errors"
	"time"

	"github.com/Maexgon/RoasterManager/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrInvalidEventType = errors.New("event type must be training or match")
	ErrInvalidResult    = errors.New("result must be win, loss, draw or pending")
)

type EventService struct {
	db *gorm.DB
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{db: db}
}

// ListEvents returns events newest first, optionally filtered by type
// ("training" or "match").
func (s *EventService) ListEvents(eventType string) ([]models.Event, error) {
	var events []models.Event
	query := s.db.Order("event_date DESC, event_time DESC")
	if eventType != "" {
		query = query.Where("type = ?", eventType)
	}
	err := query.Find(&events).Error
	return events, err
}

func (s *EventService) GetEvent(id string) (*models.Event, error) {
	var event models.Event
	err := s.db.Preload("PlanSlots", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order")
	}).Preload("PlanSlots.Drill").Preload("Notes").Preload("RivalClub").
		First(&event, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *EventService) CreateEvent(event *models.Event) error {
	if event.Type == "" {
		event.Type = models.EventTraining
	}
	if event.Type == models.EventMatch && event.Result == "" {
		event.Result = models.ResultPending
	}
	return s.db.Create(event).Error
}

// EventUpdate is the set of fields the calendar screens may change.
// Pointer fields distinguish "leave alone" from "clear".
type EventUpdate struct {
	Title       *string    `json:"title,omitempty"`
	Type        *string    `json:"type,omitempty"`
	EventDate   *time.Time `json:"event_date,omitempty"`
	EventTime   *string    `json:"event_time,omitempty"`
	Location    *string    `json:"location,omitempty"`
	CoachID     *string    `json:"coach_id,omitempty"`
	Rival       *string    `json:"rival,omitempty"`
	RivalClubID *string    `json:"rival_club_id,omitempty"`
	IsHome      *bool      `json:"is_home,omitempty"`
	OurScore    *int       `json:"our_score,omitempty"`
	TheirScore  *int       `json:"their_score,omitempty"`
	Result      *string    `json:"result,omitempty"`
	TeamID      *string    `json:"team_id,omitempty"`
}

var validResults = map[string]bool{
	models.ResultWin:     true,
	models.ResultLoss:    true,
	models.ResultDraw:    true,
	models.ResultPending: true,
}

// UpdateEvent applies a partial update, rejecting values outside the
// type and result enums before anything reaches the row.
func (s *EventService) UpdateEvent(id string, update EventUpdate) (*models.Event, error) {
	var event models.Event
	if err := s.db.First(&event, "id = ?", id).Error; err != nil {
		return nil, err
	}

	if update.Type != nil {
		if *update.Type != models.EventTraining && *update.Type != models.EventMatch {
			return nil, ErrInvalidEventType
		}
		event.Type = *update.Type
	}
	if update.Result != nil {
		if !validResults[*update.Result] {
			return nil, ErrInvalidResult
		}
		event.Result = *update.Result
	}
	if update.Title != nil {
		event.Title = *update.Title
	}
	if update.EventDate != nil {
		event.EventDate = *update.EventDate
	}
	if update.EventTime != nil {
		event.EventTime = *update.EventTime
	}
	if update.Location != nil {
		event.Location = *update.Location
	}
	if update.CoachID != nil {
		event.CoachID = update.CoachID
	}
	if update.Rival != nil {
		event.Rival = *update.Rival
	}
	if update.RivalClubID != nil {
		if *update.RivalClubID == "" {
			event.RivalClubID = nil
		} else {
			event.RivalClubID = update.RivalClubID
		}
	}
	if update.IsHome != nil {
		event.IsHome = *update.IsHome
	}
	if update.OurScore != nil {
		event.OurScore = update.OurScore
	}
	if update.TheirScore != nil {
		event.TheirScore = update.TheirScore
	}
	if update.TeamID != nil {
		event.TeamID = update.TeamID
	}

	if err := s.db.Save(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *EventService) DeleteEvent(id string) error {
	return s.db.Delete(&models.Event{}, "id = ?", id).Error
}

// MarkAttendance upserts one player's status for an event. The unique
// (event_id, player_id) pair means marking twice just overwrites the
// status.
func (s *EventService) MarkAttendance(eventID, playerID, status string) error {
	record := models.EventAttendance{
		EventID:  eventID,
		PlayerID: playerID,
		Status:   status,
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "event_id"}, {Name: "player_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
	}).Create(&record).Error
}

func (s *EventService) ListAttendance(eventID string) ([]models.EventAttendance, error) {
	var records []models.EventAttendance
	err := s.db.Where("event_id = ?", eventID).Find(&records).Error
	return records, err
}

// AttendanceCounts returns present-counts per event for the calendar
// badges.
func (s *EventService) AttendanceCounts() (map[string]int64, error) {
	type row struct {
		EventID string
		Count   int64
	}
	var rows []row
	err := s.db.Model(&models.EventAttendance{}).
		Select("event_id, COUNT(*) as count").
		Where("status = ?", models.AttendancePresent).
		Group("event_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.EventID] = r.Count
	}
	return counts, nil
}

// AddPlanSlot appends a drill to a session plan.
func (s *EventService) AddPlanSlot(slot *models.EventPlanSlot) error {
	return s.db.Create(slot).Error
}

func (s *EventService) RemovePlanSlot(id uint) error {
	return s.db.Delete(&models.EventPlanSlot{}, id).Error
}

func (s *EventService) AddNote(note *models.EventNote) error {
	return s.db.Create(note).Error
}

// ----- Drill library -----

func (s *EventService) ListDrills() ([]models.Drill, error) {
	var drills []models.Drill
	err := s.db.Order("title").Find(&drills).Error
	return drills, err
}

func (s *EventService) CreateDrill(drill *models.Drill) error {
	return s.db.Create(drill).Error
}

// DrillUpdate is the set of drill fields the library screen may change.
type DrillUpdate struct {
	Title           *string `json:"title,omitempty"`
	Description     *string `json:"description,omitempty"`
	DurationMinutes *int    `json:"duration_minutes,omitempty"`
	Category        *string `json:"category,omitempty"`
}

func (s *EventService) UpdateDrill(id string, update DrillUpdate) (*models.Drill, error) {
	var drill models.Drill
	if err := s.db.First(&drill, "id = ?", id).Error; err != nil {
		return nil, err
	}

	if update.Title != nil {
		drill.Title = *update.Title
	}
	if update.Description != nil {
		drill.Description = *update.Description
	}
	if update.DurationMinutes != nil {
		drill.DurationMinutes = *update.DurationMinutes
	}
	if update.Category != nil {
		drill.Category = *update.Category
	}

	if err := s.db.Save(&drill).Error; err != nil {
		return nil, err
	}
	return &drill, nil
}

func (s *EventService) DeleteDrill(id string) error {
	return s.db.Delete(&models.Drill{}, "id = ?", id).Error
}
