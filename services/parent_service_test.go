package services

import (
	"testing"
	"time"

	"github.com/Maexgon/RoasterManager/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertLinkIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewParentService(db, NewEventService(db))

	parent := models.Profile{Email: "madre@example.com", Password: "x", Role: models.RoleParent}
	require.NoError(t, db.Create(&parent).Error)
	player := models.Player{FirstName: "Julian", LastName: "Soto"}
	require.NoError(t, db.Create(&player).Error)

	require.NoError(t, svc.UpsertLink(parent.ID, player.ID))
	require.NoError(t, svc.UpsertLink(parent.ID, player.ID))

	var count int64
	require.NoError(t, db.Model(&models.ParentLink{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSeedDemoSafeToRerun(t *testing.T) {
	db := newTestDB(t)
	svc := NewParentService(db, NewEventService(db))

	parent := models.Profile{Email: "madre@example.com", Password: "x", Role: models.RoleParent}
	require.NoError(t, db.Create(&parent).Error)
	player := models.Player{FirstName: "Julian", LastName: "Soto"}
	require.NoError(t, db.Create(&player).Error)
	event := models.Event{Title: "Entrenamiento martes", Type: models.EventTraining, EventDate: time.Now()}
	require.NoError(t, db.Create(&event).Error)

	first := svc.SeedDemo("madre@example.com", "julian")
	require.True(t, first.Complete(), "first run: %+v", first)

	second := svc.SeedDemo("madre@example.com", "julian")
	require.True(t, second.Complete(), "second run: %+v", second)

	var links, assessments, attendance int64
	require.NoError(t, db.Model(&models.ParentLink{}).Count(&links).Error)
	require.NoError(t, db.Model(&models.SkillAssessment{}).Where("player_id = ?", player.ID).Count(&assessments).Error)
	require.NoError(t, db.Model(&models.EventAttendance{}).Where("player_id = ?", player.ID).Count(&attendance).Error)

	assert.Equal(t, int64(1), links)
	assert.Equal(t, int64(1), assessments, "re-run must not append history rows")
	assert.Equal(t, int64(1), attendance, "attendance is upserted, not duplicated")

	var record models.EventAttendance
	require.NoError(t, db.First(&record, "player_id = ?", player.ID).Error)
	assert.Equal(t, event.ID, record.EventID)
	assert.Equal(t, models.AttendancePresent, record.Status)
}

func TestSeedDemoKeepsExistingHistory(t *testing.T) {
	db := newTestDB(t)
	svc := NewParentService(db, NewEventService(db))

	parent := models.Profile{Email: "padre@example.com", Password: "x", Role: models.RoleParent}
	require.NoError(t, db.Create(&parent).Error)
	player := models.Player{FirstName: "Mateo", LastName: "Diaz"}
	require.NoError(t, db.Create(&player).Error)
	existing := models.SkillAssessment{PlayerID: player.ID, Tackle: 4, Speed: 5}
	require.NoError(t, db.Create(&existing).Error)

	result := svc.SeedDemo("padre@example.com", "mateo")
	require.True(t, result.Complete(), "%+v", result)

	var assessments int64
	require.NoError(t, db.Model(&models.SkillAssessment{}).Where("player_id = ?", player.ID).Count(&assessments).Error)
	assert.Equal(t, int64(1), assessments, "seed must not add to a player with history")
}

func TestUpdateMedicalRecordRequiresLinkage(t *testing.T) {
	db := newTestDB(t)
	svc := NewParentService(db, NewEventService(db))

	parent := models.Profile{Email: "madre@example.com", Password: "x", Role: models.RoleParent}
	require.NoError(t, db.Create(&parent).Error)
	player := models.Player{FirstName: "Julian", LastName: "Soto"}
	require.NoError(t, db.Create(&player).Error)

	blood := "0+"
	err := svc.UpdateMedicalRecord(parent.ID, player.ID, MedicalUpdate{BloodType: &blood})
	assert.ErrorIs(t, err, ErrNotLinked)

	require.NoError(t, svc.UpsertLink(parent.ID, player.ID))
	require.NoError(t, svc.UpdateMedicalRecord(parent.ID, player.ID, MedicalUpdate{BloodType: &blood}))

	var updated models.Player
	require.NoError(t, db.First(&updated, "id = ?", player.ID).Error)
	assert.Equal(t, "0+", updated.BloodType)
}
