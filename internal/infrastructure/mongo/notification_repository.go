package mongo

import (
	"context"
	"fmt"

	"omnibook-admin/internal/domain/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NotificationRepository implements repository.NotificationRepository on
// MongoDB.
type NotificationRepository struct {
	collection *mongo.Collection
}

// NewNotificationRepository creates a new MongoDB notification repository.
func NewNotificationRepository(database *mongo.Database) *NotificationRepository {
	return &NotificationRepository{
		collection: database.Collection(CollectionNotifications),
	}
}

// FindRecent returns the newest feed entries, capped at limit.
func (r *NotificationRepository) FindRecent(ctx context.Context, limit int) ([]model.Notification, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer cursor.Close(ctx)

	var notifications []model.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, fmt.Errorf("failed to decode notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead flags one feed entry as read.
func (r *NotificationRepository) MarkRead(ctx context.Context, id string) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"read": true},
	})
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("notification not found: %s", id)
	}
	return nil
}
