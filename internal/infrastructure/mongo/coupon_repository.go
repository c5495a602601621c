package mongo

import (
	"context"
	"fmt"

	"omnibook-admin/internal/domain/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CouponRepository implements repository.CouponRepository on MongoDB.
type CouponRepository struct {
	collection *mongo.Collection
}

// NewCouponRepository creates a new MongoDB coupon repository.
func NewCouponRepository(database *mongo.Database) *CouponRepository {
	return &CouponRepository{
		collection: database.Collection(CollectionCoupons),
	}
}

// FindAll returns every coupon.
func (r *CouponRepository) FindAll(ctx context.Context) ([]model.Coupon, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query coupons: %w", err)
	}
	defer cursor.Close(ctx)

	var coupons []model.Coupon
	if err := cursor.All(ctx, &coupons); err != nil {
		return nil, fmt.Errorf("failed to decode coupons: %w", err)
	}
	return coupons, nil
}

// FindByID returns one coupon.
func (r *CouponRepository) FindByID(ctx context.Context, id string) (*model.Coupon, error) {
	var coupon model.Coupon
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&coupon)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("coupon not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get coupon: %w", err)
	}
	return &coupon, nil
}

// Insert stores a new coupon. Codes are unique; duplicates fail.
func (r *CouponRepository) Insert(ctx context.Context, coupon *model.Coupon) error {
	count, err := r.collection.CountDocuments(ctx, bson.M{"code": coupon.Code})
	if err != nil {
		return fmt.Errorf("failed to check coupon code: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("coupon code already exists: %s", coupon.Code)
	}

	if _, err := r.collection.InsertOne(ctx, coupon); err != nil {
		return fmt.Errorf("failed to insert coupon: %w", err)
	}
	return nil
}

// Update replaces an existing coupon document.
func (r *CouponRepository) Update(ctx context.Context, coupon *model.Coupon) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": coupon.ID}, coupon)
	if err != nil {
		return fmt.Errorf("failed to update coupon: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("coupon not found: %s", coupon.ID)
	}
	return nil
}

// Delete removes a coupon.
func (r *CouponRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete coupon: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("coupon not found: %s", id)
	}
	return nil
}
