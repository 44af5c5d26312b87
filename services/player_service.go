// services/player_service.go - Roster business logic
package services

import (
	"errors"
	"time"

	"github.com/Maexgon/RoasterManager/models"
	"gorm.io/gorm"
)

var (
	ErrPlayerWithdrawn = errors.New("withdrawn players cannot be edited")
	ErrInvalidPosition = errors.New("position does not belong to the player's category")
)

type PlayerService struct {
	db *gorm.DB
}

func NewPlayerService(db *gorm.DB) *PlayerService {
	return &PlayerService{db: db}
}

// PlayerWithRating attaches the OVR badge to a roster row.
type PlayerWithRating struct {
	models.Player
	Rating RatingContext `json:"rating_context"`
}

// ListPlayers returns the roster with each player's rating context,
// optionally filtered by category. Assessments are preloaded newest
// first; only the latest two matter for the badge.
func (s *PlayerService) ListPlayers(category string) ([]PlayerWithRating, error) {
	var players []models.Player
	query := s.db.Preload("Skills", func(db *gorm.DB) *gorm.DB {
		return db.Order("date_logged DESC")
	}).Order("last_name, first_name")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Find(&players).Error; err != nil {
		return nil, err
	}

	out := make([]PlayerWithRating, 0, len(players))
	for _, p := range players {
		out = append(out, PlayerWithRating{Player: p, Rating: ComputeRating(p.Skills)})
	}
	return out, nil
}

func (s *PlayerService) GetPlayer(id string) (*models.Player, error) {
	var player models.Player
	err := s.db.Preload("Skills", func(db *gorm.DB) *gorm.DB {
		return db.Order("date_logged DESC")
	}).First(&player, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *PlayerService) CreatePlayer(player *models.Player) error {
	if player.Status == "" {
		player.Status = models.StatusActive
	}
	return s.db.Create(player).Error
}

// PlayerUpdate is the set of fields the roster screens may change.
// Pointer fields distinguish "leave alone" from "clear".
type PlayerUpdate struct {
	FirstName *string    `json:"first_name,omitempty"`
	LastName  *string    `json:"last_name,omitempty"`
	Nickname  *string    `json:"nickname,omitempty"`
	Category  *string    `json:"category,omitempty"`
	Positions []string   `json:"positions,omitempty"`
	Status    *string    `json:"status,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
}

// UpdatePlayer applies a partial update. Withdrawn players are read-only;
// the only edit allowed on one is reactivating its status. Changing
// category clears positions, since they are category-specific.
func (s *PlayerService) UpdatePlayer(id string, update PlayerUpdate) (*models.Player, error) {
	var player models.Player
	if err := s.db.First(&player, "id = ?", id).Error; err != nil {
		return nil, err
	}

	if player.IsWithdrawn() && update.Status == nil {
		return nil, ErrPlayerWithdrawn
	}

	if update.Status != nil {
		player.Status = *update.Status
	}
	if update.FirstName != nil {
		player.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		player.LastName = *update.LastName
	}
	if update.Nickname != nil {
		player.Nickname = update.Nickname
	}
	if update.Category != nil {
		if *update.Category == "" {
			player.Category = nil
		} else {
			player.Category = update.Category
		}
		player.Positions = nil
	}
	if update.Positions != nil {
		for _, pos := range update.Positions {
			if !models.ValidPosition(player.Category, pos) {
				return nil, ErrInvalidPosition
			}
		}
		player.Positions = update.Positions
	}
	if update.BirthDate != nil {
		player.BirthDate = update.BirthDate
	}

	if err := s.db.Save(&player).Error; err != nil {
		return nil, err
	}
	return &player, nil
}

// BulkUpdate sets one field across many players at once, matching the
// roster screen's multi-select actions. Category changes also clear
// positions.
func (s *PlayerService) BulkUpdate(ids []string, field string, value interface{}) error {
	updates := map[string]interface{}{field: value}
	if field == "category" {
		updates["positions"] = nil
	}
	return s.db.Model(&models.Player{}).Where("id IN ?", ids).Updates(updates).Error
}

// SetImageURL records an uploaded avatar's public URL.
func (s *PlayerService) SetImageURL(id, url string) error {
	return s.db.Model(&models.Player{}).Where("id = ?", id).Update("image_url", url).Error
}

func (s *PlayerService) DeletePlayer(id string) error {
	return s.db.Delete(&models.Player{}, "id = ?", id).Error
}

// CategorySummary is the per-status breakdown shown on the roster
// header cards.
type CategorySummary struct {
	Total     int64 `json:"total"`
	Active    int64 `json:"active"`
	Suspended int64 `json:"suspended"`
	Injured   int64 `json:"injured"`
	Withdrawn int64 `json:"withdrawn"`
}

// RosterSummary counts players per status for one category. Withdrawn
// players show in their own bucket and are excluded from Total so the
// headline number reflects the active roster.
func (s *PlayerService) RosterSummary(category string) (*CategorySummary, error) {
	var summary CategorySummary
	base := s.db.Model(&models.Player{}).Where("category = ?", category)

	counts := []struct {
		status string
		dest   *int64
	}{
		{models.StatusActive, &summary.Active},
		{models.StatusSuspended, &summary.Suspended},
		{models.StatusInjured, &summary.Injured},
		{models.StatusWithdrawn, &summary.Withdrawn},
	}
	for _, c := range counts {
		if err := base.Session(&gorm.Session{}).Where("status = ?", c.status).Count(c.dest).Error; err != nil {
			return nil, err
		}
	}
	summary.Total = summary.Active + summary.Suspended + summary.Injured
	return &summary, nil
}

// AddAssessment records a new skill evaluation. Always an insert, never
// an update, so the history stays intact for trend computation.
func (s *PlayerService) AddAssessment(a *models.SkillAssessment) error {
	var player models.Player
	if err := s.db.First(&player, "id = ?", a.PlayerID).Error; err != nil {
		return err
	}
	if player.IsWithdrawn() {
		return ErrPlayerWithdrawn
	}
	clampSkills(a)
	return s.db.Create(a).Error
}

// ListAssessments returns a player's evaluation history, newest first.
func (s *PlayerService) ListAssessments(playerID string) ([]models.SkillAssessment, error) {
	var history []models.SkillAssessment
	err := s.db.Where("player_id = ?", playerID).
		Order("date_logged DESC").
		Find(&history).Error
	return history, err
}

// PlayerRating computes the OVR badge for one player.
func (s *PlayerService) PlayerRating(playerID string) (RatingContext, error) {
	history, err := s.ListAssessments(playerID)
	if err != nil {
		return RatingContext{}, err
	}
	return ComputeRating(history), nil
}

// clampSkills coerces out-of-range ratings to the 1-5 scale at the
// boundary, before anything downstream reads them.
func clampSkills(a *models.SkillAssessment) {
	clamp := func(v *int) {
		if *v < models.SkillMin {
			*v = models.SkillMin
		}
		if *v > models.SkillMax {
			*v = models.SkillMax
		}
	}
	clamp(&a.PassingReceiving)
	clamp(&a.Ruck)
	clamp(&a.Tackle)
	clamp(&a.Contact)
	clamp(&a.Speed)
	clamp(&a.Endurance)
	clamp(&a.Strength)
	clamp(&a.TacticalPositioning)
	clamp(&a.DecisionMaking)
	clamp(&a.LineOut)
	clamp(&a.Scrum)
	clamp(&a.Attack)
	clamp(&a.Defense)
	clamp(&a.Mentality)
	clamp(&a.Kicking)
	clamp(&a.Duel)
}
