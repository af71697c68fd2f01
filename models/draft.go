package models

// Draft steps. A draft walks cta -> dates -> phone -> success; success is
// terminal but resettable back to cta.
const (
	StepCTA     = "cta"
	StepDates   = "dates"
	StepPhone   = "phone"
	StepSuccess = "success"
)

// Availability states for a draft. Only a resolved availability check moves
// the state off unknown; any date edit moves it back.
const (
	AvailabilityUnknown     = "unknown"
	AvailabilityAvailable   = "available"
	AvailabilityUnavailable = "unavailable"
)

// BookingDraft holds the transient state of an in-progress booking attempt.
// It lives in the session cache for the duration of the flow and is never
// persisted past it.
type BookingDraft struct {
	DraftID          string `json:"draftId"`
	ChaletID         int    `json:"chaletId"`
	CheckInDisplay   string `json:"checkInDisplay,omitempty"`  // "DD/MM/YYYY"
	CheckOutDisplay  string `json:"checkOutDisplay,omitempty"` // "DD/MM/YYYY"
	PhoneNumber      string `json:"phoneNumber,omitempty"`
	TermsAccepted    bool   `json:"termsAccepted"`
	Availability     string `json:"availability"`
	Step             string `json:"step"`
	BookingReference string `json:"bookingReference,omitempty"`

	// Revision increments on every date edit. An availability result carries
	// the revision it was computed for and is dropped if the draft has moved on.
	Revision int `json:"revision"`
}
