package mongo

import (
	"context"
	"fmt"

	"omnibook-admin/internal/domain/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// PropertyRepository implements repository.PropertyRepository on MongoDB.
type PropertyRepository struct {
	collection *mongo.Collection
}

// NewPropertyRepository creates a new MongoDB property repository.
func NewPropertyRepository(database *mongo.Database) *PropertyRepository {
	return &PropertyRepository{
		collection: database.Collection(CollectionProperties),
	}
}

// FindAll returns every property across all hosts and departments.
func (r *PropertyRepository) FindAll(ctx context.Context) ([]model.Property, error) {
	return r.find(ctx, bson.M{})
}

// FindByHost returns the properties owned by one host.
func (r *PropertyRepository) FindByHost(ctx context.Context, hostID string) ([]model.Property, error) {
	return r.find(ctx, bson.M{"host_id": hostID})
}

func (r *PropertyRepository) find(ctx context.Context, filter bson.M) ([]model.Property, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer cursor.Close(ctx)

	var properties []model.Property
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, fmt.Errorf("failed to decode properties: %w", err)
	}
	return properties, nil
}
