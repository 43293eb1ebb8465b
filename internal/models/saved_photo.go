package models

import "time"

// SavedPhoto represents a bookmarked photo by a user
type SavedPhoto struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_photo_save"`
	PhotoID   string    `json:"photo_id" gorm:"index;uniqueIndex:idx_user_photo_save"`
	CreatedAt time.Time `json:"created_at"`
}
