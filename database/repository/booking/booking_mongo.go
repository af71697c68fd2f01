package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chaletbook/database"
	"chaletbook/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrSlotTaken is returned by Create when the requested range was claimed by
// another booking between the availability check and submission.
var ErrSlotTaken = errors.New("requested dates are no longer available")

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll     *mongo.Collection
	counters *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.DB()
	return &MongoBookingRepo{
		coll:     db.Collection("bookings"),
		counters: db.Collection("counters"),
	}
}

func (r *MongoBookingRepo) HasOverlap(ctx context.Context, chaletID int, checkInISO, checkOutISO string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Two half-open ranges [a, b) and [c, d) overlap iff a < d && c < b.
	// ISO date strings compare correctly lexicographically.
	filter := bson.M{
		"chalet_id":      chaletID,
		"status":         models.BookingStatusConfirmed,
		"check_in_date":  bson.M{"$lt": checkOutISO},
		"check_out_date": bson.M{"$gt": checkInISO},
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to count overlapping bookings: %w", err)
	}
	return count > 0, nil
}

// nextReference reserves the next guest-facing booking reference from the
// counters collection.
func (r *MongoBookingRepo) nextReference(ctx context.Context) (string, error) {
	filter := bson.M{"id": "booking_reference"}
	update := bson.M{"$inc": bson.M{"seq": 1}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Seq int64 `bson:"seq"`
	}
	if err := r.counters.FindOneAndUpdate(ctx, filter, update, opts).Decode(&counter); err != nil {
		return "", fmt.Errorf("failed to reserve booking reference: %w", err)
	}
	return fmt.Sprintf("RSR-%d", 1000+counter.Seq), nil
}

func (r *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// Final overlap check; the window between this check and the insert is
	// accepted, the unique range cannot be enforced by an index on ranges.
	taken, err := r.HasOverlap(ctx, booking.ChaletID, booking.CheckInDate, booking.CheckOutDate)
	if err != nil {
		return err
	}
	if taken {
		return ErrSlotTaken
	}

	reference, err := r.nextReference(ctx)
	if err != nil {
		return err
	}

	booking.ID = uuid.New().String()
	booking.BookingReference = reference
	booking.Status = models.BookingStatusConfirmed
	booking.CreatedAt = time.Now().UTC()

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

func (r *MongoBookingRepo) GetByReference(ctx context.Context, reference string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"booking_reference": reference}).Decode(&booking); err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", reference, err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) ListByChalet(ctx context.Context, chaletID int) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "check_in_date", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"chalet_id": chaletID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for chalet %d: %w", chaletID, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *MongoBookingRepo) ListByPhone(ctx context.Context, phone string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"user_phone_number": phone}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for phone: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}
