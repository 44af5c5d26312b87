// services/billboard_service.go - Club billboard posts
package services

import (
	"github.com/Maexgon/RoasterManager/models"
	"gorm.io/gorm"
)

type BillboardService struct {
	db *gorm.DB
}

func NewBillboardService(db *gorm.DB) *BillboardService {
	return &BillboardService{db: db}
}

// ListPosts returns billboard posts, pinned first, then newest.
func (s *BillboardService) ListPosts() ([]models.BillboardPost, error) {
	var posts []models.BillboardPost
	err := s.db.Preload("Author").
		Order("pinned DESC, created_at DESC").
		Find(&posts).Error
	return posts, err
}

func (s *BillboardService) CreatePost(post *models.BillboardPost) error {
	return s.db.Create(post).Error
}

func (s *BillboardService) DeletePost(id string) error {
	return s.db.Delete(&models.BillboardPost{}, "id = ?", id).Error
}

func (s *BillboardService) SetPinned(id string, pinned bool) error {
	return s.db.Model(&models.BillboardPost{}).Where("id = ?", id).Update("pinned", pinned).Error
}
