package models

import "time"

// Notification represents a persisted user notification (PostgreSQL)
type Notification struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Type        string    `json:"type" gorm:"size:30;index"` // follow, follow_request
	SenderID    uint      `json:"sender_id" gorm:"index"`
	RecipientID uint      `json:"recipient_id" gorm:"index"`
	Message     string    `json:"message"`
	IsRead      bool      `json:"isRead" gorm:"default:false;index"`
	CreatedAt   time.Time `json:"createdAt" gorm:"index"`
}
