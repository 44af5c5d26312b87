// services/lineup.go - Lineup assignment bookkeeping
package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Maexgon/RoasterManager/models"
)

var (
	ErrUnknownSlot        = errors.New("slot is not addressable for this team")
	ErrCaptainNotInLineup = errors.New("captain must currently occupy a lineup slot")
	ErrInvalidPlayerCount = errors.New("player count must be between 7 and 15")
	ErrInvalidSubstitutes = errors.New("substitutes count must be between 0 and 15")
	ErrPlayerNotEligible  = errors.New("player is withdrawn and cannot be assigned")
	ErrPlayerNotFound     = errors.New("player not found")
)

// startingOrder15 mirrors the on-pitch layout: front row, locks, back row,
// halves, centres, back three. Teams smaller than 15 take a prefix.
var startingOrder15 = []string{"1", "2", "3", "4", "5", "6", "8", "7", "9", "10", "12", "13", "11", "15", "14"}

// 13-a-side drops the flankers (6 and 7) rather than the last two entries.
var startingOrder13 = []string{"1", "2", "3", "4", "5", "8", "9", "10", "12", "13", "11", "15", "14"}

// StartingSlots returns the ordered starting slot ids for a team size.
func StartingSlots(playerCount int) []string {
	if playerCount == 13 {
		return startingOrder13
	}
	if playerCount > len(startingOrder15) {
		playerCount = len(startingOrder15)
	}
	return startingOrder15[:playerCount]
}

// BenchSlot formats the id for the nth bench seat (1-based).
func BenchSlot(n int) string {
	return fmt.Sprintf("sub_%d", n)
}

// Lineup is the in-memory assignment state for one team's builder
// session. Nothing here touches storage; TeamService.SaveLineup persists
// the result wholesale on explicit save.
type Lineup struct {
	PlayerCount      int
	SubstitutesCount int
	Slots            models.SlotMap
	CaptainID        string
}

// NewLineup starts a builder session from a team's persisted state.
func NewLineup(team *models.Team) *Lineup {
	slots := models.SlotMap{}
	for slot, playerID := range team.Lineup {
		slots[slot] = playerID
	}
	captain := ""
	if team.CaptainID != nil {
		captain = *team.CaptainID
	}
	return &Lineup{
		PlayerCount:      team.PlayerCount,
		SubstitutesCount: team.SubstitutesCount,
		Slots:            slots,
		CaptainID:        captain,
	}
}

// addressable reports whether a slot id currently exists for this team.
func (l *Lineup) addressable(slot string) bool {
	for _, s := range StartingSlots(l.PlayerCount) {
		if s == slot {
			return true
		}
	}
	if rest, ok := strings.CutPrefix(slot, "sub_"); ok {
		n, err := strconv.Atoi(rest)
		return err == nil && n >= 1 && n <= l.SubstitutesCount
	}
	return false
}

// Assign places a player into a slot. A player occupies at most one slot,
// so any prior occupancy in this lineup is removed first. Cross-team
// occupancy is not checked here; callers surface it as a warning.
func (l *Lineup) Assign(slot, playerID string) error {
	if !l.addressable(slot) {
		return ErrUnknownSlot
	}
	for s, id := range l.Slots {
		if id == playerID {
			delete(l.Slots, s)
		}
	}
	l.Slots[slot] = playerID
	return nil
}

// Unassign empties a slot. Removing the captain's only slot clears the
// captaincy.
func (l *Lineup) Unassign(slot string) {
	playerID, ok := l.Slots[slot]
	if !ok {
		return
	}
	delete(l.Slots, slot)
	if playerID == l.CaptainID {
		l.CaptainID = ""
	}
}

// ToggleCaptain sets or clears the captain. Promoting a player requires
// them to occupy a slot; clearing is always allowed.
func (l *Lineup) ToggleCaptain(playerID string) error {
	if l.CaptainID == playerID {
		l.CaptainID = ""
		return nil
	}
	if !l.contains(playerID) {
		return ErrCaptainNotInLineup
	}
	l.CaptainID = playerID
	return nil
}

// SetSubstituteCount grows or shrinks the bench. Shrinking unassigns any
// occupied slot that would stop being addressable, so growing the bench
// back never resurfaces a stale assignment.
func (l *Lineup) SetSubstituteCount(n int) error {
	if n < 0 || n > models.MaxSubstituteCount {
		return ErrInvalidSubstitutes
	}
	for i := n + 1; i <= l.SubstitutesCount; i++ {
		l.Unassign(BenchSlot(i))
	}
	l.SubstitutesCount = n
	return nil
}

// Normalize repairs the persisted invariants before a save: stale slot
// ids are dropped, duplicate occupancies collapse to a single slot, and a
// captain no longer present in the mapping is silently cleared.
func (l *Lineup) Normalize() {
	seen := map[string]bool{}
	for _, slot := range l.slotOrder() {
		playerID, ok := l.Slots[slot]
		if !ok {
			continue
		}
		if !l.addressable(slot) || seen[playerID] {
			delete(l.Slots, slot)
			continue
		}
		seen[playerID] = true
	}
	if l.CaptainID != "" && !l.contains(l.CaptainID) {
		l.CaptainID = ""
	}
}

func (l *Lineup) contains(playerID string) bool {
	for _, id := range l.Slots {
		if id == playerID {
			return true
		}
	}
	return false
}

// slotOrder walks starting slots first, then the bench, then anything
// left over (stale ids), so Normalize keeps the on-pitch assignment when
// a player somehow appears twice.
func (l *Lineup) slotOrder() []string {
	order := append([]string{}, StartingSlots(l.PlayerCount)...)
	for i := 1; i <= l.SubstitutesCount; i++ {
		order = append(order, BenchSlot(i))
	}
	known := map[string]bool{}
	for _, s := range order {
		known[s] = true
	}
	for s := range l.Slots {
		if !known[s] {
			order = append(order, s)
		}
	}
	return order
}

// StarterIDs returns the player ids assigned to starting slots, in slot
// order. Bench assignments are excluded.
func (l *Lineup) StarterIDs() []string {
	var ids []string
	for _, slot := range StartingSlots(l.PlayerCount) {
		if id, ok := l.Slots[slot]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}
