// File: database/repository/business/business_mongo.go
package businessRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"meetly/database"
	"meetly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBusinessRepo implements BusinessRepository using MongoDB.
type MongoBusinessRepo struct {
	coll *mongo.Collection
}

// NewMongoBusinessRepo constructs a new instance of MongoBusinessRepo.
func NewMongoBusinessRepo() BusinessRepository {
	return &MongoBusinessRepo{
		coll: database.DB().Collection("businesses"),
	}
}

var ErrNotFound = errors.New("business not found")

// GetByID retrieves a business document by ID.
func (repo *MongoBusinessRepo) GetByID(ctx context.Context, id string) (*models.Business, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var business models.Business
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&business); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching business with id %s: %w", id, err)
	}
	return &business, nil
}

// Create inserts a new business document.
func (repo *MongoBusinessRepo) Create(ctx context.Context, business *models.Business) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, business); err != nil {
		return fmt.Errorf("error creating business: %w", err)
	}
	return nil
}

// UpdateOpeningHours replaces the weekly schedule and returns the updated
// document.
func (repo *MongoBusinessRepo) UpdateOpeningHours(ctx context.Context, id string, hours []models.OpeningHours) (*models.Business, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"opening_hours": hours}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Business
	if err := repo.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error updating opening hours for business %s: %w", id, err)
	}
	return &updated, nil
}

// DeleteByID removes a business record from the database.
func (repo *MongoBusinessRepo) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting business %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
