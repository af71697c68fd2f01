package booking

import "fmt"

// Flow error codes. Validation errors carry the offending field so clients can
// render them inline; rejected errors carry the storage layer's message
// verbatim.
const (
	CodeValidation   = "validationError"
	CodeServiceError = "serviceError"
	CodeRejected     = "bookingRejected"
	CodeNotFound     = "draftNotFound"
	CodeBadStep      = "invalidStep"
)

type FlowError struct {
	Code    string
	Field   string
	Message string
}

func (e *FlowError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s (%s): %s", e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(field, msg string) error {
	return &FlowError{Code: CodeValidation, Field: field, Message: msg}
}

func NewServiceError(msg string) error {
	return &FlowError{Code: CodeServiceError, Message: msg}
}

func NewStepError(msg string) error {
	return &FlowError{Code: CodeBadStep, Message: msg}
}

// User-facing messages.
const (
	MsgDatesRequired     = "Please select both check-in and check-out dates"
	MsgInvalidDateFormat = "Dates must be in DD/MM/YYYY format"
	MsgCheckOutNotAfter  = "Check-out must be after check-in"
	MsgCheckInPast       = "Check-in cannot be in the past"
	MsgInvalidPhone      = "Phone number must be exactly 11 digits"
	MsgTermsRequired     = "You must accept the terms and conditions"
	MsgCheckFirst        = "Please check availability before booking"
	MsgUnavailable       = "The chalet is not available for the selected dates"
	MsgServiceError      = "Something went wrong. Please try again."
	MsgDraftNotFound     = "Booking session not found or expired"
)
