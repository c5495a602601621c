package mongo

import (
	"context"
	"fmt"

	"omnibook-admin/internal/domain/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SubscriptionRepository implements repository.SubscriptionRepository on
// MongoDB.
type SubscriptionRepository struct {
	collection *mongo.Collection
}

// NewSubscriptionRepository creates a new MongoDB subscription repository.
func NewSubscriptionRepository(database *mongo.Database) *SubscriptionRepository {
	return &SubscriptionRepository{
		collection: database.Collection(CollectionSubscriptions),
	}
}

// FindAll returns every subscription payment, newest first.
func (r *SubscriptionRepository) FindAll(ctx context.Context) ([]model.SubscriptionPayment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query subscription payments: %w", err)
	}
	defer cursor.Close(ctx)

	var payments []model.SubscriptionPayment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("failed to decode subscription payments: %w", err)
	}
	return payments, nil
}

// FindByID returns one subscription payment.
func (r *SubscriptionRepository) FindByID(ctx context.Context, id string) (*model.SubscriptionPayment, error) {
	var payment model.SubscriptionPayment
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&payment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("subscription payment not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get subscription payment: %w", err)
	}
	return &payment, nil
}

// UpdateStatus persists an approval decision, including ApprovedAt.
func (r *SubscriptionRepository) UpdateStatus(ctx context.Context, payment *model.SubscriptionPayment) error {
	update := bson.M{"status": string(payment.Status)}
	if payment.ApprovedAt != nil {
		update["approved_at"] = *payment.ApprovedAt
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": payment.ID}, bson.M{"$set": update})
	if err != nil {
		return fmt.Errorf("failed to update subscription payment: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("subscription payment not found: %s", payment.ID)
	}
	return nil
}

// SetPaymentLink stores the gateway order code and checkout URL.
func (r *SubscriptionRepository) SetPaymentLink(ctx context.Context, id string, orderCode int64, url string) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"order_code": orderCode, "payment_url": url},
	})
	if err != nil {
		return fmt.Errorf("failed to store payment link: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("subscription payment not found: %s", id)
	}
	return nil
}
