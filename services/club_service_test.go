package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClubCreateAndList(t *testing.T) {
	db := newTestDB(t)
	svc := NewClubService(db)

	_, err := svc.CreateClub("Tigres RC", "")
	require.NoError(t, err)
	_, err = svc.CreateClub("Atlético del Sur", "https://example.com/logo.png")
	require.NoError(t, err)

	clubs, err := svc.ListClubs()
	require.NoError(t, err)
	require.Len(t, clubs, 2)
	assert.Equal(t, "Atlético del Sur", clubs[0].Name, "list is ordered by name")
	assert.Equal(t, "Tigres RC", clubs[1].Name)
}

func TestCreateClubRequiresName(t *testing.T) {
	db := newTestDB(t)
	svc := NewClubService(db)

	_, err := svc.CreateClub("", "")
	assert.ErrorIs(t, err, ErrClubNameRequired)
}
