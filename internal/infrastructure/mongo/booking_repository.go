package mongo

import (
	"context"
	"fmt"
	"time"

	"omnibook-admin/internal/application/report"
	"omnibook-admin/internal/domain/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository implements repository.BookingRepository on MongoDB.
// Booking documents come from several legacy API versions with inconsistent
// field naming, so reads decode to raw maps and pass through the report
// package's normalization boundary instead of struct tags.
type BookingRepository struct {
	collection *mongo.Collection
}

// NewBookingRepository creates a new MongoDB booking repository.
func NewBookingRepository(database *mongo.Database) *BookingRepository {
	return &BookingRepository{
		collection: database.Collection(CollectionBookings),
	}
}

// FindAll returns the full booking snapshot in canonical form, plus the
// normalization warnings the caller should log.
func (r *BookingRepository) FindAll(ctx context.Context) ([]model.Booking, []string, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var raws []map[string]interface{}
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		raws = append(raws, map[string]interface{}(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, nil, fmt.Errorf("cursor error: %w", err)
	}

	bookings, warnings := report.NormalizeBookings(raws, time.Now().UTC())
	return bookings, warnings, nil
}

// bookingIDFilter matches a booking id against both _id representations in
// the collection. Normalization stringifies ObjectID ids to hex, so a lookup
// by that hex string must still reach documents whose _id is a raw ObjectID.
func bookingIDFilter(id string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"_id": bson.M{"$in": []interface{}{id, oid}}}
	}
	return bson.M{"_id": id}
}

// FindByID returns one canonical booking.
func (r *BookingRepository) FindByID(ctx context.Context, id string) (*model.Booking, error) {
	var doc bson.M
	err := r.collection.FindOne(ctx, bookingIDFilter(id)).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("booking not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	booking := report.NormalizeBooking(map[string]interface{}(doc), time.Now().UTC())
	return &booking, nil
}

// UpdateStatus sets a booking's status.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status model.BookingStatus) error {
	result, err := r.collection.UpdateOne(ctx, bookingIDFilter(id), bson.M{
		"$set": bson.M{"status": string(status), "updated_at": time.Now().UTC()},
	})
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("booking not found: %s", id)
	}
	return nil
}

// Delete removes a booking permanently.
func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bookingIDFilter(id))
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("booking not found: %s", id)
	}
	return nil
}
