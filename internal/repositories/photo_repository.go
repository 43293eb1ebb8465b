package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Jannadolf/LookNest/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrPhotoNotFound is returned when a photo document does not exist.
var ErrPhotoNotFound = fmt.Errorf("photo not found")

// PhotoRepository defines the interface for photo data operations
type PhotoRepository interface {
	CreatePhoto(ctx context.Context, photo *models.Photo) error
	GetPhotoByID(ctx context.Context, id string) (*models.Photo, error)
	GetPhotosByUserID(ctx context.Context, userID uint, skip, limit int64) ([]models.Photo, error)
	GetAllPhotos(ctx context.Context, skip, limit int64) ([]models.Photo, error)
	GetPhotosByIDs(ctx context.Context, ids []string) ([]models.Photo, error)
	DeletePhoto(ctx context.Context, id string) error
}

// MongoPhotoRepository implements PhotoRepository for MongoDB
type MongoPhotoRepository struct {
	collection *mongo.Collection
}

// NewMongoPhotoRepository creates a new MongoPhotoRepository
func NewMongoPhotoRepository(db *mongo.Database) *MongoPhotoRepository {
	return &MongoPhotoRepository{collection: db.Collection("photos")}
}

// CreatePhoto creates a new photo in MongoDB
func (r *MongoPhotoRepository) CreatePhoto(ctx context.Context, photo *models.Photo) error {
	photo.ID = primitive.NewObjectID()
	photo.CreatedAt = time.Now()
	photo.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, photo)
	return err
}

// GetPhotoByID retrieves a photo by ID from MongoDB
func (r *MongoPhotoRepository) GetPhotoByID(ctx context.Context, id string) (*models.Photo, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid photo ID format: %w", err)
	}

	var photo models.Photo
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&photo)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrPhotoNotFound
		}
		return nil, err
	}
	return &photo, nil
}

// GetPhotosByUserID retrieves photos uploaded by a specific user
func (r *MongoPhotoRepository) GetPhotosByUserID(ctx context.Context, userID uint, skip, limit int64) ([]models.Photo, error) {
	var photos []models.Photo
	findOptions := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &photos); err != nil {
		return nil, err
	}
	return photos, nil
}

// GetAllPhotos retrieves all photos from MongoDB with pagination
func (r *MongoPhotoRepository) GetAllPhotos(ctx context.Context, skip, limit int64) ([]models.Photo, error) {
	var photos []models.Photo
	findOptions := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.D{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &photos); err != nil {
		return nil, err
	}
	return photos, nil
}

// GetPhotosByIDs retrieves photos matching the given hex IDs. Unknown IDs are
// skipped rather than reported.
func (r *MongoPhotoRepository) GetPhotosByIDs(ctx context.Context, ids []string) ([]models.Photo, error) {
	objIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		objIDs = append(objIDs, objID)
	}

	var photos []models.Photo
	if len(objIDs) == 0 {
		return photos, nil
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": objIDs}}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &photos); err != nil {
		return nil, err
	}
	return photos, nil
}

// DeletePhoto deletes a photo by ID from MongoDB
func (r *MongoPhotoRepository) DeletePhoto(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid photo ID format: %w", err)
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrPhotoNotFound
	}
	return nil
}
