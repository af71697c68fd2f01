package chaletRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates indexes for frequently used catalog queries.
func (r *MongoChaletRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	idIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	searchIdx := mongo.IndexModel{
		Keys: bson.D{
			{Key: "ski_area", Value: 1},
			{Key: "capacity", Value: 1},
			{Key: "price_per_night", Value: 1},
		},
	}
	ownerIdx := mongo.IndexModel{
		Keys: bson.D{{Key: "owner_id", Value: 1}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{idIdx, searchIdx, ownerIdx}); err != nil {
		return fmt.Errorf("failed to create chalet indexes: %w", err)
	}
	return nil
}
