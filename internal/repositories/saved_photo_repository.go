package repositories

import (
	"github.com/Jannadolf/LookNest/internal/models"
	"gorm.io/gorm"
)

// SavedPhotoRepository defines the interface for saved photo operations
type SavedPhotoRepository interface {
	SavePhoto(savedPhoto *models.SavedPhoto) error
	UnsavePhoto(userID uint, photoID string) error
	IsPhotoSaved(userID uint, photoID string) (bool, error)
	GetSavedPhotosByUser(userID uint) ([]models.SavedPhoto, error)
}

// PostgresSavedPhotoRepository implements SavedPhotoRepository
type PostgresSavedPhotoRepository struct {
	db *gorm.DB
}

func NewPostgresSavedPhotoRepository(db *gorm.DB) *PostgresSavedPhotoRepository {
	return &PostgresSavedPhotoRepository{db: db}
}

func (r *PostgresSavedPhotoRepository) SavePhoto(savedPhoto *models.SavedPhoto) error {
	return r.db.Create(savedPhoto).Error
}

// UnsavePhoto removes the bookmark. Unsaving a photo that was never saved is
// not an error.
func (r *PostgresSavedPhotoRepository) UnsavePhoto(userID uint, photoID string) error {
	return r.db.Where("user_id = ? AND photo_id = ?", userID, photoID).Delete(&models.SavedPhoto{}).Error
}

func (r *PostgresSavedPhotoRepository) IsPhotoSaved(userID uint, photoID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.SavedPhoto{}).Where("user_id = ? AND photo_id = ?", userID, photoID).Count(&count).Error
	return count > 0, err
}

func (r *PostgresSavedPhotoRepository) GetSavedPhotosByUser(userID uint) ([]models.SavedPhoto, error) {
	var saved []models.SavedPhoto
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&saved).Error
	return saved, err
}
