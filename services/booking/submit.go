// File: services/booking/submit.go
package booking

import (
	"context"
	"errors"
	"regexp"

	bookingRepo "chaletbook/database/repository/booking"
	"chaletbook/models"
	"chaletbook/utils"

	"go.uber.org/zap"
)

var phonePattern = regexp.MustCompile(`^\d{11}$`)

// SubmitPhone finalizes the booking. Guards: the draft is in the contact step
// with a standing availability result, the phone number is exactly 11 digits,
// and the terms are accepted. On success the draft becomes terminal with a
// non-empty booking reference; on rejection the draft stays in the contact
// step and the storage layer's message is surfaced verbatim.
func (s *DefaultFlowService) SubmitPhone(ctx context.Context, draftID, phone string, termsAccepted bool) (*models.BookingDraft, error) {
	draft, err := s.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft.Step != models.StepPhone {
		return nil, NewStepError("booking can only be submitted from the contact step")
	}
	if !phonePattern.MatchString(phone) {
		return nil, NewValidationError("phoneNumber", MsgInvalidPhone)
	}
	if !termsAccepted {
		return nil, NewValidationError("termsAccepted", MsgTermsRequired)
	}
	if draft.Availability != models.AvailabilityAvailable {
		return nil, NewValidationError("availability", MsgCheckFirst)
	}

	draft.PhoneNumber = phone
	draft.TermsAccepted = true

	chalet, err := s.ChaletRepo.GetByID(draft.ChaletID)
	if err != nil {
		return nil, NewServiceError(MsgServiceError)
	}

	checkInISO := utils.ToISODate(draft.CheckInDisplay)
	checkOutISO := utils.ToISODate(draft.CheckOutDisplay)
	nights := Nights(draft.CheckInDisplay, draft.CheckOutDisplay)

	// The submission payload carries only identity, dates and contact. The
	// total is computed here from the catalog rate; the quote shown during
	// the flow is never an input.
	record := &models.Booking{
		ChaletID:        draft.ChaletID,
		CheckInDate:     checkInISO,
		CheckOutDate:    checkOutISO,
		UserPhoneNumber: phone,
		Nights:          nights,
		TotalPrice:      float64(nights) * chalet.PricePerNight,
	}

	if err := s.BookingRepo.Create(ctx, record); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			// Another booking claimed the range between check and submit.
			draft.Availability = models.AvailabilityUnknown
			if saveErr := s.saveDraft(ctx, draft); saveErr != nil {
				return nil, saveErr
			}
			return draft, &FlowError{Code: CodeRejected, Message: err.Error()}
		}
		return draft, NewServiceError(MsgServiceError)
	}

	draft.Step = models.StepSuccess
	draft.BookingReference = record.BookingReference
	if err := s.saveDraft(ctx, draft); err != nil {
		return nil, err
	}

	if s.Confirmations != nil {
		payload := models.ConfirmationPayload{
			BookingID:        record.ID,
			BookingReference: record.BookingReference,
			ChaletName:       chalet.Name,
			PhoneNumber:      phone,
			CheckInDate:      checkInISO,
			CheckOutDate:     checkOutISO,
		}
		if err := s.Confirmations.EnqueueConfirmation(ctx, payload); err != nil {
			// The booking stands even if the confirmation cannot be queued.
			utils.GetLogger().Error("failed to enqueue booking confirmation",
				zap.String("reference", record.BookingReference), zap.Error(err))
		}
	}

	return draft, nil
}
