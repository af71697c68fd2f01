package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates indexes backing the overlap query and lookups.
func (r *MongoBookingRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	overlapIdx := mongo.IndexModel{
		Keys: bson.D{
			{Key: "chalet_id", Value: 1},
			{Key: "status", Value: 1},
			{Key: "check_in_date", Value: 1},
		},
	}
	referenceIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "booking_reference", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	phoneIdx := mongo.IndexModel{
		Keys: bson.D{{Key: "user_phone_number", Value: 1}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{overlapIdx, referenceIdx, phoneIdx}); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
