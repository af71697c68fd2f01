package ownerRepo

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

// MongoOwnerRepo implements OwnerRepository using MongoDB.
type MongoOwnerRepo struct {
	coll *mongo.Collection
}

// NewMongoOwnerRepo creates a new instance of OwnerRepository using MongoDB.
func NewMongoOwnerRepo() OwnerRepository {
	coll := database.DB().Collection("owners")
	return &MongoOwnerRepo{coll: coll}
}

func (r *MongoOwnerRepo) Create(owner *models.Owner) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, owner); err != nil {
		return fmt.Errorf("failed to create owner: %w", err)
	}
	return nil
}

func (r *MongoOwnerRepo) GetByID(id string) (*models.Owner, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var owner models.Owner
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&owner); err != nil {
		return nil, fmt.Errorf("failed to fetch owner with id %s: %w", id, err)
	}
	return &owner, nil
}

func (r *MongoOwnerRepo) GetByEmail(email string) (*models.Owner, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var owner models.Owner
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&owner); err != nil {
		return nil, fmt.Errorf("failed to fetch owner with email %s: %w", email, err)
	}
	return &owner, nil
}

// EnsureIndexes enforces unique owner emails.
func (r *MongoOwnerRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	emailIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := r.coll.Indexes().CreateOne(ctx, emailIdx); err != nil {
		return fmt.Errorf("failed to create owner indexes: %w", err)
	}
	return nil
}
