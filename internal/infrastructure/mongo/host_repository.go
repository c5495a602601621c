package mongo

import (
	"context"
	"fmt"

	"omnibook-admin/internal/domain/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// HostRepository implements repository.HostRepository on MongoDB.
type HostRepository struct {
	collection *mongo.Collection
}

// NewHostRepository creates a new MongoDB host repository.
func NewHostRepository(database *mongo.Database) *HostRepository {
	return &HostRepository{
		collection: database.Collection(CollectionHosts),
	}
}

// FindAll returns every host account.
func (r *HostRepository) FindAll(ctx context.Context) ([]model.Host, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query hosts: %w", err)
	}
	defer cursor.Close(ctx)

	var hosts []model.Host
	if err := cursor.All(ctx, &hosts); err != nil {
		return nil, fmt.Errorf("failed to decode hosts: %w", err)
	}
	return hosts, nil
}

// FindByID returns one host.
func (r *HostRepository) FindByID(ctx context.Context, id string) (*model.Host, error) {
	var host model.Host
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&host)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("host not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get host: %w", err)
	}
	return &host, nil
}

// UpdateStatus toggles a host between Active and Inactive.
func (r *HostRepository) UpdateStatus(ctx context.Context, id string, status model.HostStatus) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"status": string(status)},
	})
	if err != nil {
		return fmt.Errorf("failed to update host status: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("host not found: %s", id)
	}
	return nil
}
