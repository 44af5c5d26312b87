package services

import (
	"testing"
	"time"

	"github.com/Maexgon/RoasterManager/models"
	"github.com/stretchr/testify/assert"
)

func uniformAssessment(value int, logged time.Time) models.SkillAssessment {
	return models.SkillAssessment{
		PlayerID:         "p1",
		PassingReceiving: value, Ruck: value, Tackle: value, Contact: value,
		Speed: value, Endurance: value, Strength: value, TacticalPositioning: value,
		DecisionMaking: value, LineOut: value, Scrum: value, Attack: value,
		Defense: value, Mentality: value, Kicking: value, Duel: value,
		DateLogged: logged,
	}
}

func TestScore(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name       string
		assessment models.SkillAssessment
		want       int
	}{
		{"all fives scores 100", uniformAssessment(5, now), 100},
		{"all ones scores 20", uniformAssessment(1, now), 20},
		{"unset fields default to the minimum", models.SkillAssessment{PlayerID: "p1", DateLogged: now}, 20},
		{"all threes scores 60", uniformAssessment(3, now), 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.assessment))
		})
	}
}

func TestScorePartialAssessment(t *testing.T) {
	// One skill rated 5, fifteen unset: (5 + 15*1) / 80 * 100 = 25.
	a := models.SkillAssessment{PlayerID: "p1", Speed: 5, DateLogged: time.Now()}
	assert.Equal(t, 25, Score(a))
}

func TestComputeRating(t *testing.T) {
	earlier := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	later := earlier.AddDate(0, 1, 0)

	t.Run("empty history", func(t *testing.T) {
		ctx := ComputeRating(nil)
		assert.Equal(t, 0, ctx.Rating)
		assert.Equal(t, TrendEqual, ctx.Trend)
	})

	t.Run("single assessment is always equal", func(t *testing.T) {
		ctx := ComputeRating([]models.SkillAssessment{uniformAssessment(5, earlier)})
		assert.Equal(t, 100, ctx.Rating)
		assert.Equal(t, TrendEqual, ctx.Trend)
	})

	t.Run("improvement trends up", func(t *testing.T) {
		ctx := ComputeRating([]models.SkillAssessment{
			uniformAssessment(3, earlier),
			uniformAssessment(4, later),
		})
		assert.Equal(t, 80, ctx.Rating)
		assert.Equal(t, TrendUp, ctx.Trend)
	})

	t.Run("insertion order does not matter", func(t *testing.T) {
		ctx := ComputeRating([]models.SkillAssessment{
			uniformAssessment(4, later),
			uniformAssessment(3, earlier),
		})
		assert.Equal(t, 80, ctx.Rating)
		assert.Equal(t, TrendUp, ctx.Trend)
	})

	t.Run("regression trends down", func(t *testing.T) {
		ctx := ComputeRating([]models.SkillAssessment{
			uniformAssessment(4, earlier),
			uniformAssessment(2, later),
		})
		assert.Equal(t, 40, ctx.Rating)
		assert.Equal(t, TrendDown, ctx.Trend)
	})

	t.Run("only the two most recent count", func(t *testing.T) {
		ctx := ComputeRating([]models.SkillAssessment{
			uniformAssessment(1, earlier.AddDate(-1, 0, 0)),
			uniformAssessment(4, earlier),
			uniformAssessment(4, later),
		})
		assert.Equal(t, 80, ctx.Rating)
		assert.Equal(t, TrendEqual, ctx.Trend)
	})
}

func TestComputeTeamAggregate(t *testing.T) {
	t.Run("no starters renders nothing", func(t *testing.T) {
		assert.Nil(t, ComputeTeamAggregate(nil))
	})

	t.Run("single maxed starter", func(t *testing.T) {
		agg := ComputeTeamAggregate([]models.SkillAssessment{uniformAssessment(5, time.Now())})
		assert.NotNil(t, agg)
		assert.Equal(t, 1, agg.Starters)
		assert.Equal(t, 5.0, agg.Physical)
		assert.Equal(t, 5.0, agg.Defense)
		assert.Equal(t, 5.0, agg.Mentality)
		assert.Equal(t, 5.0, agg.Tactics)
		assert.Equal(t, 5.0, agg.Attack)
		assert.Equal(t, 5.0, agg.SetPiece)
	})

	t.Run("averages across starters", func(t *testing.T) {
		agg := ComputeTeamAggregate([]models.SkillAssessment{
			uniformAssessment(5, time.Now()),
			uniformAssessment(3, time.Now()),
		})
		assert.Equal(t, 2, agg.Starters)
		assert.Equal(t, 4.0, agg.Physical)
		assert.Equal(t, 4.0, agg.Mentality)
	})

	t.Run("unset fields floor at the minimum rating", func(t *testing.T) {
		agg := ComputeTeamAggregate([]models.SkillAssessment{{PlayerID: "p1"}})
		assert.Equal(t, 1.0, agg.Physical)
		assert.Equal(t, 1.0, agg.Attack)
	})
}
