package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// User is an account record stored in PostgreSQL.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	FullName     string    `json:"fullName"`
	Username     string    `json:"username" gorm:"uniqueIndex"` // Ensure username is unique across all users
	Email        string    `json:"email" gorm:"uniqueIndex"`
	Password     string    `json:"-"` // Store hashed password, ignore for JSON serialization
	PhoneNumber  string    `json:"phoneNumber,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	Gender       string    `json:"gender,omitempty"`
	Birthday     string    `json:"birthday,omitempty"`
	Address      string    `json:"address,omitempty"`
	ProfileImage string    `json:"profileImage,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UserCompact is the projection returned in follower/following/viewer lists.
type UserCompact struct {
	ID           uint   `json:"id"`
	Username     string `json:"username"`
	FullName     string `json:"fullName,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// ToCompact converts a full user record into its compact projection.
func (u *User) ToCompact() UserCompact {
	return UserCompact{
		ID:           u.ID,
		Username:     u.Username,
		FullName:     u.FullName,
		ProfileImage: u.ProfileImage,
	}
}

type RegisterRequest struct {
	FullName string `json:"fullName" validate:"required,min=2,max=60"`
	Username string `json:"username" validate:"required,min=3,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	FullName     string `json:"fullName,omitempty" validate:"omitempty,min=2,max=60"`
	Username     string `json:"username,omitempty" validate:"omitempty,min=3,max=30"`
	PhoneNumber  string `json:"phoneNumber,omitempty" validate:"omitempty,max=20"`
	Bio          string `json:"bio,omitempty" validate:"omitempty,max=500"`
	Gender       string `json:"gender,omitempty" validate:"omitempty,max=20"`
	Birthday     string `json:"birthday,omitempty"`
	Address      string `json:"address,omitempty" validate:"omitempty,max=200"`
	ProfileImage string `json:"profileImage,omitempty" validate:"omitempty,url"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
