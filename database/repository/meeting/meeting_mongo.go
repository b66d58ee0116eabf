// File: database/repository/meeting/meeting_mongo.go
package meetingRepo

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

// MongoMeetingRepo implements MeetingRepository using MongoDB.
type MongoMeetingRepo struct {
	coll *mongo.Collection
}

// NewMongoMeetingRepo constructs a new instance of MongoMeetingRepo.
func NewMongoMeetingRepo() MeetingRepository {
	return &MongoMeetingRepo{
		coll: database.DB().Collection("meetings"),
	}
}

// ErrNotFound reports a lookup that matched no document. Callers translate
// this into their own domain error.
var ErrNotFound = errors.New("meeting not found")

func (f MeetingFilter) toBSON() bson.M {
	filter := bson.M{}
	if f.BusinessID != "" {
		filter["business_id"] = f.BusinessID
	}
	if f.ServiceID != "" {
		filter["service_id"] = f.ServiceID
	}
	if f.UserID != "" {
		filter["user_id"] = f.UserID
	}
	return filter
}

// Find returns all meetings matching the filter, sorted by start date.
func (repo *MongoMeetingRepo) Find(ctx context.Context, filter MeetingFilter) ([]models.Meeting, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "start_date", Value: 1}})
	cursor, err := repo.coll.Find(ctx, filter.toBSON(), opts)
	if err != nil {
		return nil, fmt.Errorf("error finding meetings: %w", err)
	}
	defer cursor.Close(ctx)

	var meetings []models.Meeting
	if err := cursor.All(ctx, &meetings); err != nil {
		return nil, fmt.Errorf("error decoding meetings: %w", err)
	}
	return meetings, nil
}

// FindByID retrieves a meeting by its ID.
func (repo *MongoMeetingRepo) FindByID(ctx context.Context, id string) (*models.Meeting, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var meeting models.Meeting
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&meeting); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching meeting with id %s: %w", id, err)
	}
	return &meeting, nil
}

// FindOverlapping returns the meetings of the given business whose [start,end)
// interval intersects the candidate. The filter keeps the three boundary
// cases spelled out; together they are equivalent to the canonical half-open
// intersection test, so touching boundaries never match.
func (repo *MongoMeetingRepo) FindOverlapping(ctx context.Context, businessID string, candidate models.Interval) ([]models.Meeting, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"business_id": businessID,
		"$or": bson.A{
			// Existing meeting starts inside the candidate.
			bson.M{"start_date": bson.M{"$lt": candidate.End, "$gte": candidate.Start}},
			// Existing meeting ends inside the candidate.
			bson.M{"end_date": bson.M{"$gt": candidate.Start, "$lte": candidate.End}},
			// Existing meeting fully contains the candidate.
			bson.M{
				"start_date": bson.M{"$lte": candidate.Start},
				"end_date":   bson.M{"$gte": candidate.End},
			},
		},
	}

	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error finding overlapping meetings: %w", err)
	}
	defer cursor.Close(ctx)

	var meetings []models.Meeting
	if err := cursor.All(ctx, &meetings); err != nil {
		return nil, fmt.Errorf("error decoding overlapping meetings: %w", err)
	}
	return meetings, nil
}

// Create inserts a new meeting document.
func (repo *MongoMeetingRepo) Create(ctx context.Context, meeting *models.Meeting) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, meeting); err != nil {
		return fmt.Errorf("error creating meeting: %w", err)
	}
	return nil
}

// UpdateDatesByID sets new start/end dates and returns the updated document.
func (repo *MongoMeetingRepo) UpdateDatesByID(ctx context.Context, id string, start, end time.Time) (*models.Meeting, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"start_date": start, "end_date": end}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Meeting
	if err := repo.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error updating meeting %s: %w", id, err)
	}
	return &updated, nil
}

// DeleteByID removes a meeting record from the database.
func (repo *MongoMeetingRepo) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting meeting %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteMany removes all meetings matching the filter. Deleting zero rows is
// not an error; an empty filter is rejected to avoid wiping the collection.
func (repo *MongoMeetingRepo) DeleteMany(ctx context.Context, filter MeetingFilter) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := filter.toBSON()
	if len(query) == 0 {
		return errors.New("refusing to delete meetings with an empty filter")
	}
	if _, err := repo.coll.DeleteMany(ctx, query); err != nil {
		return fmt.Errorf("error bulk deleting meetings: %w", err)
	}
	return nil
}
