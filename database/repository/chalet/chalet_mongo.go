package chaletRepo

import (
	"context"
	"fmt"
	"time"

	"chaletbook/database"
	"chaletbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoChaletRepo implements ChaletRepository using MongoDB.
type MongoChaletRepo struct {
	coll *mongo.Collection
}

// NewMongoChaletRepo creates a new instance of ChaletRepository using MongoDB.
func NewMongoChaletRepo() ChaletRepository {
	coll := database.DB().Collection("chalets")
	return &MongoChaletRepo{coll: coll}
}

func (r *MongoChaletRepo) GetByID(id int) (*models.Chalet, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var chalet models.Chalet
	filter := bson.M{"id": id, "active": true}
	if err := r.coll.FindOne(ctx, filter).Decode(&chalet); err != nil {
		return nil, fmt.Errorf("failed to fetch chalet with id %d: %w", id, err)
	}
	return &chalet, nil
}

func (r *MongoChaletRepo) Search(q models.ChaletSearchQuery) ([]models.Chalet, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{"active": true}
	if q.SkiArea != "" {
		filter["ski_area"] = q.SkiArea
	}
	if q.Guests > 0 {
		filter["capacity"] = bson.M{"$gte": q.Guests}
	}
	price := bson.M{}
	if q.MinPrice > 0 {
		price["$gte"] = q.MinPrice
	}
	if q.MaxPrice > 0 {
		price["$lte"] = q.MaxPrice
	}
	if len(price) > 0 {
		filter["price_per_night"] = price
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	pageSize := q.PageSize
	if pageSize <= 0 || pageSize > 50 {
		pageSize = 20
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "price_per_night", Value: 1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search chalets: %w", err)
	}
	defer cursor.Close(ctx)

	var chalets []models.Chalet
	if err := cursor.All(ctx, &chalets); err != nil {
		return nil, fmt.Errorf("failed to decode chalets: %w", err)
	}
	return chalets, nil
}

func (r *MongoChaletRepo) ListByOwner(ownerID string) ([]models.Chalet, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return nil, fmt.Errorf("failed to list chalets for owner %s: %w", ownerID, err)
	}
	defer cursor.Close(ctx)

	var chalets []models.Chalet
	if err := cursor.All(ctx, &chalets); err != nil {
		return nil, fmt.Errorf("failed to decode chalets: %w", err)
	}
	return chalets, nil
}
