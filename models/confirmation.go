package models

// ConfirmationPayload is the payload of a queued booking confirmation task.
type ConfirmationPayload struct {
	BookingID        string `json:"bookingId"`
	BookingReference string `json:"bookingReference"`
	ChaletName       string `json:"chaletName"`
	PhoneNumber      string `json:"phoneNumber"`
	CheckInDate      string `json:"checkInDate"`
	CheckOutDate     string `json:"checkOutDate"`
}
