package models

import "time"

// Booking statuses. Only confirmed bookings block availability.
const (
	BookingStatusConfirmed = "Confirmed"
	BookingStatusCancelled = "Cancelled"
)

// Booking represents a confirmed booking record.
type Booking struct {
	ID               string    `bson:"id" json:"id"`                              // Unique booking identifier (UUID)
	BookingReference string    `bson:"booking_reference" json:"BookingReference"` // Guest-facing reference, e.g. "RSR-1001"
	ChaletID         int       `bson:"chalet_id" json:"ChaletId"`                 // Chalet that was booked
	CheckInDate      string    `bson:"check_in_date" json:"CheckInDate"`          // ISO "YYYY-MM-DD"
	CheckOutDate     string    `bson:"check_out_date" json:"CheckOutDate"`        // ISO "YYYY-MM-DD", exclusive
	UserPhoneNumber  string    `bson:"user_phone_number" json:"UserPhoneNumber"`  // 11-digit contact number
	Nights           int       `bson:"nights" json:"nights"`                      // Derived from the date range
	TotalPrice       float64   `bson:"total_price" json:"totalPrice"`             // Authoritative, computed at creation
	Status           string    `bson:"status" json:"status"`                      // e.g. "Confirmed"
	CreatedAt        time.Time `bson:"created_at" json:"createdAt"`               // Timestamp when booking was created
}

// BookingRequest is the wire shape accepted by the booking-creation endpoint.
// Field names follow the consumed API contract.
type BookingRequest struct {
	ChaletID        int    `json:"ChaletId" binding:"required"`
	CheckInDate     string `json:"CheckInDate" binding:"required"`
	CheckOutDate    string `json:"CheckOutDate" binding:"required"`
	UserPhoneNumber string `json:"UserPhoneNumber" binding:"required"`
}

// AvailabilityResponse is returned by the availability-check endpoint.
type AvailabilityResponse struct {
	IsAvailable bool `json:"IsAvailable"`
}
