// services/rating.go - Overall Rating (OVR) computation
package services

import (
	"math"
	"sort"

	"github.com/Maexgon/RoasterManager/models"
)

type Trend string

const (
	TrendUp    Trend = "up"
	TrendDown  Trend = "down"
	TrendEqual Trend = "equal"
)

// RatingContext is the OVR badge shown next to a player: the score from
// their most recent assessment and how it moved since the one before.
type RatingContext struct {
	Rating int   `json:"rating"`
	Trend  Trend `json:"trend"`
}

// Score maps one assessment to the 0-100 overall rating. Each of the
// sixteen skills contributes its 1-5 value; unset fields count as 1 so an
// incomplete evaluation scores low instead of zero.
func Score(a models.SkillAssessment) int {
	values := a.Values()
	sum := 0
	for _, key := range models.SkillKeys {
		sum += skillValue(values[key])
	}
	max := len(models.SkillKeys) * models.SkillMax
	return int(math.Round(float64(sum) / float64(max) * 100))
}

// ComputeRating derives the OVR badge from a player's assessment history.
// History order does not matter: assessments are sorted by date_logged
// descending before the latest two are compared. An empty history yields
// {0, equal}; a single assessment yields its score with trend equal.
func ComputeRating(history []models.SkillAssessment) RatingContext {
	if len(history) == 0 {
		return RatingContext{Rating: 0, Trend: TrendEqual}
	}

	sorted := make([]models.SkillAssessment, len(history))
	copy(sorted, history)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DateLogged.After(sorted[j].DateLogged)
	})

	current := Score(sorted[0])
	previous := current
	if len(sorted) > 1 {
		previous = Score(sorted[1])
	}

	trend := TrendEqual
	switch {
	case current > previous:
		trend = TrendUp
	case current < previous:
		trend = TrendDown
	}

	return RatingContext{Rating: current, Trend: trend}
}

// TeamAggregate holds the six category sub-scores (1-5 scale) averaged
// over a lineup's starters, feeding the radar chart on the team builder.
type TeamAggregate struct {
	Physical  float64 `json:"physical"`
	Defense   float64 `json:"defense"`
	Mentality float64 `json:"mentality"`
	Tactics   float64 `json:"tactics"`
	Attack    float64 `json:"attack"`
	SetPiece  float64 `json:"set_piece"`
	Starters  int     `json:"starters"`
}

// ComputeTeamAggregate averages the per-player category sub-scores over
// the given starters' latest assessments. Returns nil when no starter has
// an assessment, in which case the caller renders nothing.
func ComputeTeamAggregate(latest []models.SkillAssessment) *TeamAggregate {
	if len(latest) == 0 {
		return nil
	}

	agg := &TeamAggregate{Starters: len(latest)}
	for _, a := range latest {
		v := a.Values()
		agg.Physical += avg(v["speed"], v["endurance"], v["strength"])
		agg.Defense += avg(v["tackle"], v["defense"], v["contact"])
		agg.Mentality += float64(skillValue(v["mentality"]))
		agg.Tactics += avg(v["tactical_positioning"], v["decision_making"])
		agg.Attack += avg(v["attack"], v["passing_receiving"], v["kicking"], v["duel"])
		agg.SetPiece += avg(v["ruck"], v["scrum"], v["line_out"])
	}

	n := float64(len(latest))
	agg.Physical = round1(agg.Physical / n)
	agg.Defense = round1(agg.Defense / n)
	agg.Mentality = round1(agg.Mentality / n)
	agg.Tactics = round1(agg.Tactics / n)
	agg.Attack = round1(agg.Attack / n)
	agg.SetPiece = round1(agg.SetPiece / n)
	return agg
}

// skillValue applies the rating floor: absent fields read as the minimum
// rating, never as zero.
func skillValue(v int) int {
	if v < models.SkillMin {
		return models.SkillMin
	}
	return v
}

func avg(values ...int) float64 {
	sum := 0
	for _, v := range values {
		sum += skillValue(v)
	}
	return float64(sum) / float64(len(values))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
