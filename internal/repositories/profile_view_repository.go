package repositories

import (
	"time"

	"github.com/Jannadolf/LookNest/internal/models"
	"gorm.io/gorm"
)

// ProfileViewRepository defines the interface for profile view operations
type ProfileViewRepository interface {
	CreateView(view *models.ProfileView) error
	HasRecentView(ownerID, viewerID uint, since time.Time) (bool, error)
	GetViewsByOwner(ownerID uint) ([]models.ProfileView, error)
}

type postgresProfileViewRepository struct {
	db *gorm.DB
}

func NewPostgresProfileViewRepository(db *gorm.DB) ProfileViewRepository {
	return &postgresProfileViewRepository{db: db}
}

func (r *postgresProfileViewRepository) CreateView(view *models.ProfileView) error {
	return r.db.Create(view).Error
}

// HasRecentView reports whether the viewer has any recorded view of the
// owner's profile at or after the given time.
func (r *postgresProfileViewRepository) HasRecentView(ownerID, viewerID uint, since time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&models.ProfileView{}).
		Where("owner_id = ? AND viewer_id = ? AND viewed_at >= ?", ownerID, viewerID, since).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *postgresProfileViewRepository) GetViewsByOwner(ownerID uint) ([]models.ProfileView, error) {
	var views []models.ProfileView
	err := r.db.Where("owner_id = ?", ownerID).Order("viewed_at DESC").Find(&views).Error
	return views, err
}
