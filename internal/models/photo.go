package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Photo represents a gallery photo stored in MongoDB
type Photo struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID      uint               `json:"user_id" bson:"user_id"` // ID of the user who uploaded the photo
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	ImageURLs   []string           `json:"imageUrls" bson:"image_urls"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// CreatePhotoRequest defines the request body for uploading a new photo
type CreatePhotoRequest struct {
	Title       string   `json:"title" validate:"required,min=1,max=100"`
	Description string   `json:"description,omitempty" validate:"omitempty,max=500"`
	ImageURLs   []string `json:"imageUrls" validate:"required,min=1,dive,url"`
}
