package bookingRepo

import (
	"context"

	"chaletbook/models"
)

// BookingRepository owns confirmed booking records and the availability
// queries derived from them.
type BookingRepository interface {
	// HasOverlap reports whether any confirmed booking for the chalet
	// overlaps the half-open range [checkInISO, checkOutISO).
	HasOverlap(ctx context.Context, chaletID int, checkInISO, checkOutISO string) (bool, error)
	// Create inserts the booking after a final overlap check, assigning its
	// ID and guest-facing reference. Returns ErrSlotTaken when another
	// booking claimed the range first.
	Create(ctx context.Context, booking *models.Booking) error
	GetByReference(ctx context.Context, reference string) (*models.Booking, error)
	ListByChalet(ctx context.Context, chaletID int) ([]models.Booking, error)
	ListByPhone(ctx context.Context, phone string) ([]models.Booking, error)
}
