package services

import (
	"testing"

	"github.com/Maexgon/RoasterManager/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLineupRejectsWithdrawnPlayer(t *testing.T) {
	db := newTestDB(t)
	svc := NewTeamService(db)

	team, err := svc.CreateTeam("Primera", 15)
	require.NoError(t, err)
	player := models.Player{FirstName: "Lucas", LastName: "Gomez", Status: models.StatusWithdrawn}
	require.NoError(t, db.Create(&player).Error)

	lineup := &Lineup{
		PlayerCount: team.PlayerCount,
		Slots:       models.SlotMap{"1": player.ID},
	}
	_, err = svc.SaveLineup(team, lineup)
	assert.ErrorIs(t, err, ErrPlayerNotEligible)

	saved, err := svc.GetTeam(team.ID)
	require.NoError(t, err)
	assert.Empty(t, saved.Lineup, "rejected save must not touch the stored lineup")
}

func TestSaveLineupRejectsUnknownPlayer(t *testing.T) {
	db := newTestDB(t)
	svc := NewTeamService(db)

	team, err := svc.CreateTeam("Primera", 15)
	require.NoError(t, err)

	lineup := &Lineup{
		PlayerCount: team.PlayerCount,
		Slots:       models.SlotMap{"1": uuid.NewString()},
	}
	_, err = svc.SaveLineup(team, lineup)
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestSaveLineupPersistsAndWarnsOnCrossTeamUse(t *testing.T) {
	db := newTestDB(t)
	svc := NewTeamService(db)

	first, err := svc.CreateTeam("Primera", 15)
	require.NoError(t, err)
	second, err := svc.CreateTeam("Intermedia", 15)
	require.NoError(t, err)
	player := models.Player{FirstName: "Bruno", LastName: "Paz", Status: models.StatusActive}
	require.NoError(t, db.Create(&player).Error)

	warnings, err := svc.SaveLineup(first, &Lineup{
		PlayerCount: first.PlayerCount,
		Slots:       models.SlotMap{"1": player.ID},
		CaptainID:   player.ID,
	})
	require.NoError(t, err)
	assert.Empty(t, warnings)

	saved, err := svc.GetTeam(first.ID)
	require.NoError(t, err)
	assert.Equal(t, player.ID, saved.Lineup["1"])
	require.NotNil(t, saved.CaptainID)
	assert.Equal(t, player.ID, *saved.CaptainID)

	warnings, err = svc.SaveLineup(second, &Lineup{
		PlayerCount: second.PlayerCount,
		Slots:       models.SlotMap{"2": player.ID},
	})
	require.NoError(t, err)
	assert.Len(t, warnings, 1, "fielding the same player elsewhere should warn")
}
