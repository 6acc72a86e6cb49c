package courtRepo

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

// MongoCourtRepo implements CourtRepository using MongoDB.
type MongoCourtRepo struct {
	coll *mongo.Collection
}

// NewMongoCourtRepo creates a new instance of CourtRepository using MongoDB.
func NewMongoCourtRepo() CourtRepository {
	coll := database.MongoClient.Database(database.DBName()).Collection("courts")
	repo := &MongoCourtRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCourtRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "pricePerSession", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new court document.
func (r *MongoCourtRepo) Create(court *models.Court) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	court.CreatedAt = now
	court.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, court); err != nil {
		return fmt.Errorf("failed to create court: %w", err)
	}
	return nil
}

// Update modifies an existing court document.
func (r *MongoCourtRepo) Update(court *models.Court) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	court.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": court.ID}, bson.M{"$set": court})
	if err != nil {
		return fmt.Errorf("failed to update court %s: %w", court.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("court %s not found", court.ID)
	}
	return nil
}

// Delete removes a court document.
func (r *MongoCourtRepo) Delete(id string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete court %s: %w", id, err)
	}
	return res.DeletedCount > 0, nil
}

// GetByID retrieves a court by its unique ID. Returns (nil, nil) when no
// such court exists.
func (r *MongoCourtRepo) GetByID(id string) (*models.Court, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var court models.Court
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&court); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch court with id %s: %w", id, err)
	}
	return &court, nil
}

// List returns one page of courts, optionally sorted by price.
func (r *MongoCourtRepo) List(sort string, page, limit int) ([]models.Court, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find()
	switch sort {
	case "asc":
		opts.SetSort(bson.D{{Key: "pricePerSession", Value: 1}})
	case "desc":
		opts.SetSort(bson.D{{Key: "pricePerSession", Value: -1}})
	}
	if page > 0 && limit > 0 {
		opts.SetSkip(int64((page - 1) * limit))
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve courts: %w", err)
	}
	defer cursor.Close(ctx)

	var courts []models.Court
	for cursor.Next(ctx) {
		var court models.Court
		if err := cursor.Decode(&court); err != nil {
			return nil, fmt.Errorf("failed to decode court: %w", err)
		}
		courts = append(courts, court)
	}
	return courts, nil
}

// Count returns the total number of courts.
func (r *MongoCourtRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count courts: %w", err)
	}
	return count, nil
}
