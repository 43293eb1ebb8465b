package models

import "time"

// ProfileView records one account visiting another's profile. Views are an
// append-only log indexed by (owner, viewed_at) for the owner's view list.
type ProfileView struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	OwnerID  uint      `json:"owner_id" gorm:"index:idx_owner_viewed_at"`
	ViewerID uint      `json:"viewer_id" gorm:"index"`
	ViewedAt time.Time `json:"viewedAt" gorm:"index:idx_owner_viewed_at"`
}
