package announcementRepo

import (
	"context"
	"fmt"
	"time"

	"courtside/database"
	"courtside/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAnnouncementRepo implements AnnouncementRepository using MongoDB.
type MongoAnnouncementRepo struct {
	coll *mongo.Collection
}

// NewMongoAnnouncementRepo creates a new instance of AnnouncementRepository using MongoDB.
func NewMongoAnnouncementRepo() AnnouncementRepository {
	coll := database.MongoClient.Database(database.DBName()).Collection("announcements")
	repo := &MongoAnnouncementRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAnnouncementRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new announcement document.
func (r *MongoAnnouncementRepo) Create(announcement *models.Announcement) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	announcement.CreatedAt = now
	announcement.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, announcement); err != nil {
		return fmt.Errorf("failed to create announcement: %w", err)
	}
	return nil
}

// Update modifies an existing announcement document.
func (r *MongoAnnouncementRepo) Update(announcement *models.Announcement) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	announcement.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": announcement.ID}, bson.M{"$set": announcement})
	if err != nil {
		return fmt.Errorf("failed to update announcement %s: %w", announcement.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("announcement %s not found", announcement.ID)
	}
	return nil
}

// Delete removes an announcement document.
func (r *MongoAnnouncementRepo) Delete(id string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete announcement %s: %w", id, err)
	}
	return res.DeletedCount > 0, nil
}

// GetAll retrieves all announcements, newest first.
func (r *MongoAnnouncementRepo) GetAll() ([]models.Announcement, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve announcements: %w", err)
	}
	defer cursor.Close(ctx)

	var announcements []models.Announcement
	for cursor.Next(ctx) {
		var a models.Announcement
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode announcement: %w", err)
		}
		announcements = append(announcements, a)
	}
	return announcements, nil
}
