// services/club_service.go - Club registry
package services

import (
	"errors"

	"github.com/Maexgon/RoasterManager/models"
	"gorm.io/gorm"
)

var ErrClubNameRequired = errors.New("club name is required")

// ClubService manages the registered clubs. The list feeds the rival
// selector on the match screens.
type ClubService struct {
	db *gorm.DB
}

func NewClubService(db *gorm.DB) *ClubService {
	return &ClubService{db: db}
}

func (s *ClubService) ListClubs() ([]models.Club, error) {
	var clubs []models.Club
	err := s.db.Order("name").Find(&clubs).Error
	return clubs, err
}

func (s *ClubService) CreateClub(name, logoURL string) (*models.Club, error) {
	if name == "" {
		return nil, ErrClubNameRequired
	}
	club := &models.Club{Name: name, LogoURL: logoURL}
	if err := s.db.Create(club).Error; err != nil {
		return nil, err
	}
	return club, nil
}

func (s *ClubService) DeleteClub(id string) error {
	return s.db.Delete(&models.Club{}, "id = ?", id).Error
}
