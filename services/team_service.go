// services/team_service.go - Team and lineup persistence
package services

import (
	"errors"
	"fmt"

	"github.com/Maexgon/RoasterManager/models"
	"gorm.io/gorm"
)

type TeamService struct {
	db *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{db: db}
}

func (s *TeamService) CreateTeam(name string, playerCount int) (*models.Team, error) {
	if name == "" {
		return nil, errors.New("team name is required")
	}
	if playerCount < models.MinPlayerCount || playerCount > models.MaxPlayerCount {
		return nil, ErrInvalidPlayerCount
	}

	team := &models.Team{
		Name:        name,
		PlayerCount: playerCount,
		Lineup:      models.SlotMap{},
	}
	if err := s.db.Create(team).Error; err != nil {
		return nil, err
	}
	return team, nil
}

func (s *TeamService) GetTeam(id string) (*models.Team, error) {
	var team models.Team
	if err := s.db.First(&team, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

func (s *TeamService) ListTeams() ([]models.Team, error) {
	var teams []models.Team
	err := s.db.Order("created_at").Find(&teams).Error
	return teams, err
}

func (s *TeamService) UpdateTeam(id, name string) error {
	return s.db.Model(&models.Team{}).Where("id = ?", id).Update("name", name).Error
}

func (s *TeamService) DeleteTeam(id string) error {
	return s.db.Delete(&models.Team{}, "id = ?", id).Error
}

// SaveLineup persists a builder session's result wholesale: the slot
// mapping, bench size and captain overwrite whatever the team row held
// (last write wins, no version check). The caller passes the loaded
// team row. Player references are validated against the roster and the
// captain invariant is repaired before the write. Returns cross-team
// duplication warnings; those never block the save.
func (s *TeamService) SaveLineup(team *models.Team, lineup *Lineup) ([]string, error) {
	lineup.Normalize()

	if err := s.checkEligibility(lineup); err != nil {
		return nil, err
	}

	warnings, err := s.crossTeamWarnings(team.ID, lineup)
	if err != nil {
		return nil, err
	}

	var captain *string
	if lineup.CaptainID != "" {
		captain = &lineup.CaptainID
	}
	err = s.db.Model(team).Updates(map[string]interface{}{
		"lineup":            lineup.Slots,
		"substitutes_count": lineup.SubstitutesCount,
		"captain_id":        captain,
	}).Error
	if err != nil {
		return nil, err
	}
	return warnings, nil
}

// checkEligibility rejects saves referencing unknown or withdrawn
// players. This is the typed boundary: nothing malformed reaches the
// stored mapping.
func (s *TeamService) checkEligibility(lineup *Lineup) error {
	ids := lineup.Slots.PlayerIDs()
	if len(ids) == 0 {
		return nil
	}

	var players []models.Player
	if err := s.db.Select("id", "status").Where("id IN ?", ids).Find(&players).Error; err != nil {
		return err
	}

	byID := make(map[string]models.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}
	for _, id := range ids {
		p, ok := byID[id]
		if !ok {
			return ErrPlayerNotFound
		}
		if p.IsWithdrawn() {
			return ErrPlayerNotEligible
		}
	}
	return nil
}

// crossTeamWarnings flags players already fielded by another team. The
// same kid can legitimately play up a grade, so this is informational
// only.
func (s *TeamService) crossTeamWarnings(teamID string, lineup *Lineup) ([]string, error) {
	var others []models.Team
	if err := s.db.Where("id <> ?", teamID).Find(&others).Error; err != nil {
		return nil, err
	}

	assigned := map[string]bool{}
	for _, id := range lineup.Slots.PlayerIDs() {
		assigned[id] = true
	}

	var warnings []string
	for _, other := range others {
		for _, playerID := range other.Lineup.PlayerIDs() {
			if assigned[playerID] {
				warnings = append(warnings, fmt.Sprintf("player %s is already assigned in team %q", playerID, other.Name))
			}
		}
	}
	return warnings, nil
}

// TeamAggregateRating computes the six-category radar for a team from
// its assigned starters' latest assessments. Starters without any
// assessment are skipped; an empty lineup yields nil.
func (s *TeamService) TeamAggregateRating(teamID string) (*TeamAggregate, error) {
	team, err := s.GetTeam(teamID)
	if err != nil {
		return nil, err
	}

	lineup := NewLineup(team)
	starterIDs := lineup.StarterIDs()
	if len(starterIDs) == 0 {
		return nil, nil
	}

	var latest []models.SkillAssessment
	for _, playerID := range starterIDs {
		var a models.SkillAssessment
		err := s.db.Where("player_id = ?", playerID).
			Order("date_logged DESC").
			First(&a).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		latest = append(latest, a)
	}

	return ComputeTeamAggregate(latest), nil
}

// EligiblePlayers lists roster players a lineup may field: everyone who
// has not withdrawn.
func (s *TeamService) EligiblePlayers() ([]models.Player, error) {
	var players []models.Player
	err := s.db.Where("status <> ?", models.StatusWithdrawn).
		Order("last_name, first_name").
		Find(&players).Error
	return players, err
}
