package mongo

import (
	"context"
	"fmt"

	"omnibook-admin/internal/domain/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AdminRepository implements repository.AdminRepository on MongoDB.
type AdminRepository struct {
	collection *mongo.Collection
}

// NewAdminRepository creates a new MongoDB admin repository.
func NewAdminRepository(database *mongo.Database) *AdminRepository {
	return &AdminRepository{
		collection: database.Collection(CollectionAdmins),
	}
}

// FindByEmail looks up an operator account for login.
func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	var admin model.Admin
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("admin not found: %s", email)
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return &admin, nil
}
