package couponRepo

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

// MongoCouponRepo implements CouponRepository using MongoDB.
type MongoCouponRepo struct {
	coll *mongo.Collection
}

// NewMongoCouponRepo creates a new instance of CouponRepository using MongoDB.
func NewMongoCouponRepo() CouponRepository {
	coll := database.MongoClient.Database(database.DBName()).Collection("coupons")
	repo := &MongoCouponRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCouponRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new coupon document.
func (r *MongoCouponRepo) Create(coupon *models.Coupon) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	coupon.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, coupon); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("coupon code %s already exists", coupon.Code)
		}
		return fmt.Errorf("failed to create coupon: %w", err)
	}
	return nil
}

// Update modifies an existing coupon document.
func (r *MongoCouponRepo) Update(coupon *models.Coupon) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": coupon.ID}, bson.M{"$set": coupon})
	if err != nil {
		return fmt.Errorf("failed to update coupon %s: %w", coupon.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("coupon %s not found", coupon.ID)
	}
	return nil
}

// Delete removes a coupon document.
func (r *MongoCouponRepo) Delete(id string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete coupon %s: %w", id, err)
	}
	return res.DeletedCount > 0, nil
}

// GetByCode retrieves a coupon by its code. Returns (nil, nil) when no
// such coupon exists.
func (r *MongoCouponRepo) GetByCode(code string) (*models.Coupon, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var coupon models.Coupon
	if err := r.coll.FindOne(ctx, bson.M{"code": code}).Decode(&coupon); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch coupon with code %s: %w", code, err)
	}
	return &coupon, nil
}

// GetAll retrieves all coupons.
func (r *MongoCouponRepo) GetAll() ([]models.Coupon, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve coupons: %w", err)
	}
	defer cursor.Close(ctx)

	var coupons []models.Coupon
	for cursor.Next(ctx) {
		var c models.Coupon
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode coupon: %w", err)
		}
		coupons = append(coupons, c)
	}
	return coupons, nil
}
