// services/parent_service.go - Parent portal and linkage maintenance
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Maexgon/RoasterManager/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotLinked is returned when a guardian asks for a player they have no
// linkage row for. Deliberately indistinguishable from "player does not
// exist" so the portal leaks nothing about other families' kids.
var ErrNotLinked = errors.New("player not found")

type ParentService struct {
	db     *gorm.DB
	events *EventService
}

func NewParentService(db *gorm.DB, events *EventService) *ParentService {
	return &ParentService{db: db, events: events}
}

// IsLinked reports whether a linkage row exists for (parent, player).
func (s *ParentService) IsLinked(parentProfileID, playerID string) (bool, error) {
	var count int64
	err := s.db.Model(&models.ParentLink{}).
		Where("parent_profile_id = ? AND player_id = ?", parentProfileID, playerID).
		Count(&count).Error
	return count > 0, err
}

// LinkedPlayers returns the players a guardian is linked to, with their
// assessment history for the portal's rating badge.
func (s *ParentService) LinkedPlayers(parentProfileID string) ([]PlayerWithRating, error) {
	var links []models.ParentLink
	if err := s.db.Where("parent_profile_id = ?", parentProfileID).Find(&links).Error; err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return []PlayerWithRating{}, nil
	}

	ids := make([]string, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.PlayerID)
	}

	var players []models.Player
	err := s.db.Preload("Skills", func(db *gorm.DB) *gorm.DB {
		return db.Order("date_logged DESC")
	}).Where("id IN ?", ids).Find(&players).Error
	if err != nil {
		return nil, err
	}

	out := make([]PlayerWithRating, 0, len(players))
	for _, p := range players {
		out = append(out, PlayerWithRating{Player: p, Rating: ComputeRating(p.Skills)})
	}
	return out, nil
}

// LinkedPlayer fetches one linked player, or ErrNotLinked when the
// linkage (or the player) is absent.
func (s *ParentService) LinkedPlayer(parentProfileID, playerID string) (*models.Player, error) {
	linked, err := s.IsLinked(parentProfileID, playerID)
	if err != nil {
		return nil, err
	}
	if !linked {
		return nil, ErrNotLinked
	}

	var player models.Player
	err = s.db.Preload("Skills", func(db *gorm.DB) *gorm.DB {
		return db.Order("date_logged DESC")
	}).First(&player, "id = ?", playerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotLinked
	}
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// MedicalUpdate is the whitelist of player fields a guardian may edit.
type MedicalUpdate struct {
	BloodType        *string `json:"blood_type,omitempty"`
	Allergies        *string `json:"allergies,omitempty"`
	Conditions       *string `json:"conditions,omitempty"`
	EmergencyContact *string `json:"emergency_contact,omitempty"`
}

// UpdateMedicalRecord writes the allowed medical fields after the
// linkage check. Anything outside the whitelist never reaches the row.
func (s *ParentService) UpdateMedicalRecord(parentProfileID, playerID string, update MedicalUpdate) error {
	linked, err := s.IsLinked(parentProfileID, playerID)
	if err != nil {
		return err
	}
	if !linked {
		return ErrNotLinked
	}

	allowed := map[string]interface{}{}
	if update.BloodType != nil {
		allowed["blood_type"] = *update.BloodType
	}
	if update.Allergies != nil {
		allowed["allergies"] = *update.Allergies
	}
	if update.Conditions != nil {
		allowed["conditions"] = *update.Conditions
	}
	if update.EmergencyContact != nil {
		allowed["emergency_contact"] = *update.EmergencyContact
	}
	if len(allowed) == 0 {
		return nil
	}
	return s.db.Model(&models.Player{}).Where("id = ?", playerID).Updates(allowed).Error
}

// SetCertificateURL records a linked player's uploaded medical
// certificate. Callers check the linkage first.
func (s *ParentService) SetCertificateURL(playerID, url string) error {
	return s.db.Model(&models.Player{}).Where("id = ?", playerID).Update("certificate_url", url).Error
}

// LinkageFixResult reports each step of the fix flow independently.
// Steps do not roll back: a partial failure leaves earlier writes in
// place and the flow is safe to re-run until every step succeeds.
type LinkageFixResult struct {
	ParentID        string `json:"parent_id,omitempty"`
	PlayerID        string `json:"player_id,omitempty"`
	ParentError     string `json:"parent_error,omitempty"`
	PlayerError     string `json:"player_error,omitempty"`
	LinkError       string `json:"link_error,omitempty"`
	ProfileError    string `json:"profile_error,omitempty"`
	AssessmentError string `json:"assessment_error,omitempty"`
	AttendanceError string `json:"attendance_error,omitempty"`
}

// Complete reports whether every step succeeded.
func (r *LinkageFixResult) Complete() bool {
	return r.ParentError == "" && r.PlayerError == "" && r.LinkError == "" &&
		r.ProfileError == "" && r.AssessmentError == "" && r.AttendanceError == ""
}

// FixLinkage is the admin maintenance flow that repairs a missing
// parent-player linkage: find the guardian by email, find the player by
// name, upsert the linkage, flag the profile as a parent. Each step runs
// as an independent write; the upsert makes re-invocation idempotent.
func (s *ParentService) FixLinkage(parentEmail, playerName string) *LinkageFixResult {
	result := &LinkageFixResult{}

	var parent models.Profile
	if err := s.db.Where("email = ?", parentEmail).First(&parent).Error; err != nil {
		result.ParentError = "parent profile not found: " + parentEmail
	} else {
		result.ParentID = parent.ID
	}

	var player models.Player
	if err := s.db.Where("LOWER(full_name) LIKE LOWER(?)", "%"+playerName+"%").First(&player).Error; err != nil {
		result.PlayerError = "player not found: " + playerName
	} else {
		result.PlayerID = player.ID
	}

	if result.ParentError != "" || result.PlayerError != "" {
		return result
	}

	if err := s.UpsertLink(parent.ID, player.ID); err != nil {
		result.LinkError = fmt.Sprintf("failed to link: %v", err)
	}

	err := s.db.Model(&models.Profile{}).Where("id = ?", parent.ID).
		Updates(map[string]interface{}{"is_parent": true, "role": models.RoleParent}).Error
	if err != nil {
		result.ProfileError = fmt.Sprintf("failed to flag profile: %v", err)
	}

	return result
}

// UpsertLink inserts the linkage row, doing nothing when it already
// exists. The composite unique index is what makes this idempotent.
func (s *ParentService) UpsertLink(parentProfileID, playerID string) error {
	link := models.ParentLink{
		ParentProfileID: parentProfileID,
		PlayerID:        playerID,
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "parent_profile_id"}, {Name: "player_id"}},
		DoNothing: true,
	}).Create(&link).Error
}

// SeedDemo provisions a demo guardian with a linked, evaluated player.
// Every write is an upsert or a guarded insert, so running it twice is
// safe.
func (s *ParentService) SeedDemo(parentEmail, playerName string) *LinkageFixResult {
	result := s.FixLinkage(parentEmail, playerName)
	if !result.Complete() {
		return result
	}
	s.seedDemoData(result.PlayerID, result)
	return result
}

// seedDemoData backfills the linked player with portal-visible data:
// one baseline assessment (skipped when the player already has history,
// so a re-run never distorts the trend arrow) and attendance on the
// most recent events.
func (s *ParentService) seedDemoData(playerID string, result *LinkageFixResult) {
	var existing int64
	err := s.db.Model(&models.SkillAssessment{}).
		Where("player_id = ?", playerID).
		Count(&existing).Error
	if err != nil {
		result.AssessmentError = fmt.Sprintf("failed to seed assessment: %v", err)
	} else if existing == 0 {
		assessment := models.SkillAssessment{
			PlayerID:         playerID,
			PassingReceiving: 3, Ruck: 3, Tackle: 3, Contact: 3,
			Speed: 3, Endurance: 3, Strength: 3, TacticalPositioning: 3,
			DecisionMaking: 3, LineOut: 3, Scrum: 3, Attack: 3,
			Defense: 3, Mentality: 3, Kicking: 3, Duel: 3,
			DateLogged: time.Now().UTC(),
		}
		if err := s.db.Create(&assessment).Error; err != nil {
			result.AssessmentError = fmt.Sprintf("failed to seed assessment: %v", err)
		}
	}

	var events []models.Event
	if err := s.db.Order("event_date DESC").Limit(5).Find(&events).Error; err != nil {
		result.AttendanceError = fmt.Sprintf("failed to list events: %v", err)
		return
	}
	for _, event := range events {
		if err := s.events.MarkAttendance(event.ID, playerID, models.AttendancePresent); err != nil {
			result.AttendanceError = fmt.Sprintf("failed to seed attendance: %v", err)
			return
		}
	}
}
