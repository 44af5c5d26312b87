package services

import (
	"testing"

	"github.com/Maexgon/RoasterManager/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLineup() *Lineup {
	return NewLineup(&models.Team{
		PlayerCount:      15,
		SubstitutesCount: 3,
		Lineup:           models.SlotMap{},
	})
}

func TestStartingSlots(t *testing.T) {
	t.Run("full fifteen", func(t *testing.T) {
		slots := StartingSlots(15)
		assert.Len(t, slots, 15)
		assert.Contains(t, slots, "6")
		assert.Contains(t, slots, "7")
	})

	t.Run("thirteen drops the flankers", func(t *testing.T) {
		slots := StartingSlots(13)
		assert.Len(t, slots, 13)
		assert.NotContains(t, slots, "6")
		assert.NotContains(t, slots, "7")
		assert.Contains(t, slots, "15")
	})

	t.Run("sevens takes the layout prefix", func(t *testing.T) {
		assert.Len(t, StartingSlots(7), 7)
	})
}

func TestLineupAssign(t *testing.T) {
	t.Run("reassignment vacates the old slot", func(t *testing.T) {
		l := newTestLineup()
		require.NoError(t, l.Assign("10", "pA"))
		require.NoError(t, l.Assign("12", "pA"))

		assert.Equal(t, "pA", l.Slots["12"])
		_, occupied := l.Slots["10"]
		assert.False(t, occupied)
	})

	t.Run("moving to the bench vacates the pitch", func(t *testing.T) {
		l := newTestLineup()
		require.NoError(t, l.Assign("9", "pA"))
		require.NoError(t, l.Assign("sub_1", "pA"))

		assert.Equal(t, models.SlotMap{"sub_1": "pA"}, l.Slots)
	})

	t.Run("unknown slot is rejected", func(t *testing.T) {
		l := newTestLineup()
		assert.ErrorIs(t, l.Assign("16", "pA"), ErrUnknownSlot)
		assert.ErrorIs(t, l.Assign("sub_4", "pA"), ErrUnknownSlot)
	})

	t.Run("bench slot within count is accepted", func(t *testing.T) {
		l := newTestLineup()
		assert.NoError(t, l.Assign("sub_3", "pA"))
	})
}

func TestLineupUnassignClearsCaptain(t *testing.T) {
	l := newTestLineup()
	require.NoError(t, l.Assign("9", "pA"))
	require.NoError(t, l.ToggleCaptain("pA"))
	require.Equal(t, "pA", l.CaptainID)

	l.Unassign("9")

	assert.Empty(t, l.CaptainID)
	assert.Empty(t, l.Slots)
}

func TestLineupToggleCaptain(t *testing.T) {
	t.Run("requires lineup membership", func(t *testing.T) {
		l := newTestLineup()
		assert.ErrorIs(t, l.ToggleCaptain("pA"), ErrCaptainNotInLineup)
	})

	t.Run("toggling twice clears", func(t *testing.T) {
		l := newTestLineup()
		require.NoError(t, l.Assign("10", "pA"))
		require.NoError(t, l.ToggleCaptain("pA"))
		require.NoError(t, l.ToggleCaptain("pA"))
		assert.Empty(t, l.CaptainID)
	})

	t.Run("clearing never needs membership", func(t *testing.T) {
		l := newTestLineup()
		require.NoError(t, l.Assign("10", "pA"))
		require.NoError(t, l.ToggleCaptain("pA"))
		l.Unassign("10")
		// Captain already cleared by Unassign; toggling the same id again
		// must not resurrect it.
		assert.ErrorIs(t, l.ToggleCaptain("pA"), ErrCaptainNotInLineup)
	})
}

func TestLineupSetSubstituteCount(t *testing.T) {
	t.Run("shrink unassigns orphaned bench slots", func(t *testing.T) {
		l := newTestLineup()
		require.NoError(t, l.Assign("sub_1", "pA"))
		require.NoError(t, l.Assign("sub_3", "pB"))

		require.NoError(t, l.SetSubstituteCount(1))

		assert.Equal(t, models.SlotMap{"sub_1": "pA"}, l.Slots)

		// Growing back must not resurface pB.
		require.NoError(t, l.SetSubstituteCount(3))
		_, occupied := l.Slots["sub_3"]
		assert.False(t, occupied)
	})

	t.Run("shrinking away the captain's seat clears captaincy", func(t *testing.T) {
		l := newTestLineup()
		require.NoError(t, l.Assign("sub_2", "pA"))
		require.NoError(t, l.ToggleCaptain("pA"))

		require.NoError(t, l.SetSubstituteCount(1))
		assert.Empty(t, l.CaptainID)
	})

	t.Run("rejects out-of-range counts", func(t *testing.T) {
		l := newTestLineup()
		assert.ErrorIs(t, l.SetSubstituteCount(-1), ErrInvalidSubstitutes)
		assert.ErrorIs(t, l.SetSubstituteCount(16), ErrInvalidSubstitutes)
	})
}

func TestLineupNormalize(t *testing.T) {
	t.Run("clears captain missing from the mapping", func(t *testing.T) {
		l := newTestLineup()
		l.Slots["10"] = "pA"
		l.CaptainID = "pZ"

		l.Normalize()
		assert.Empty(t, l.CaptainID)
		assert.Equal(t, "pA", l.Slots["10"])
	})

	t.Run("drops stale slot ids", func(t *testing.T) {
		l := newTestLineup()
		l.Slots["sub_9"] = "pA" // beyond the bench size
		l.Slots["99"] = "pB"    // never a starting slot

		l.Normalize()
		assert.Empty(t, l.Slots)
	})

	t.Run("collapses duplicate occupancy keeping the pitch slot", func(t *testing.T) {
		l := newTestLineup()
		l.Slots["10"] = "pA"
		l.Slots["sub_1"] = "pA"

		l.Normalize()
		assert.Equal(t, models.SlotMap{"10": "pA"}, l.Slots)
	})
}

func TestLineupStarterIDs(t *testing.T) {
	l := newTestLineup()
	require.NoError(t, l.Assign("1", "pA"))
	require.NoError(t, l.Assign("10", "pB"))
	require.NoError(t, l.Assign("sub_1", "pC"))

	starters := l.StarterIDs()
	assert.ElementsMatch(t, []string{"pA", "pB"}, starters)
}
