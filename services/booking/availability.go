// File: services/booking/availability.go
package booking

import (
	"context"

	"chaletbook/models"
	"chaletbook/utils"

	"go.uber.org/zap"
)

// validateDates enforces the guards for an availability check: both dates
// present and well-formed, check-out strictly after check-in, check-in not in
// the past. Returns the ISO forms on success.
func (s *DefaultFlowService) validateDates(draft *models.BookingDraft) (checkInISO, checkOutISO string, err error) {
	if draft.CheckInDisplay == "" {
		return "", "", NewValidationError("checkIn", MsgDatesRequired)
	}
	if draft.CheckOutDisplay == "" {
		return "", "", NewValidationError("checkOut", MsgDatesRequired)
	}
	if !utils.IsValidDisplayDate(draft.CheckInDisplay) {
		return "", "", NewValidationError("checkIn", MsgInvalidDateFormat)
	}
	if !utils.IsValidDisplayDate(draft.CheckOutDisplay) {
		return "", "", NewValidationError("checkOut", MsgInvalidDateFormat)
	}

	checkInISO = utils.ToISODate(draft.CheckInDisplay)
	checkOutISO = utils.ToISODate(draft.CheckOutDisplay)
	if checkOutISO <= checkInISO {
		return "", "", NewValidationError("checkOut", MsgCheckOutNotAfter)
	}

	today := s.now().Format("2006-01-02")
	if checkInISO < today {
		return "", "", NewValidationError("checkIn", MsgCheckInPast)
	}
	return checkInISO, checkOutISO, nil
}

// CheckAvailability runs the availability query for the draft's current date
// range. The result is applied only if the draft has not been edited while the
// query was in flight; a stale result is dropped without touching the draft.
func (s *DefaultFlowService) CheckAvailability(ctx context.Context, draftID string) (*models.BookingDraft, *CheckResult, error) {
	draft, err := s.loadDraft(ctx, draftID)
	if err != nil {
		return nil, nil, err
	}
	if draft.Step != models.StepDates {
		return nil, nil, NewStepError("availability can only be checked during date selection")
	}

	checkInISO, checkOutISO, err := s.validateDates(draft)
	if err != nil {
		return nil, nil, err
	}
	revision := draft.Revision

	taken, err := s.BookingRepo.HasOverlap(ctx, draft.ChaletID, checkInISO, checkOutISO)
	if err != nil {
		logger := utils.GetLogger()
		logger.Error("availability check failed",
			zap.String("draftID", draftID),
			zap.Int("chaletID", draft.ChaletID),
			zap.Error(err))
		// Availability stays unknown; the guest re-triggers manually.
		return draft, nil, NewServiceError(MsgServiceError)
	}

	// Reload and compare revisions: the guest may have edited the dates while
	// the query was in flight, in which case this result no longer applies.
	current, err := s.loadDraft(ctx, draftID)
	if err != nil {
		return nil, nil, err
	}
	if current.Revision != revision || current.Step != models.StepDates {
		return current, &CheckResult{Stale: true}, nil
	}

	if taken {
		current.Availability = models.AvailabilityUnavailable
		if err := s.saveDraft(ctx, current); err != nil {
			return nil, nil, err
		}
		return current, &CheckResult{Available: false, Message: MsgUnavailable}, nil
	}

	current.Availability = models.AvailabilityAvailable
	current.Step = models.StepPhone
	if err := s.saveDraft(ctx, current); err != nil {
		return nil, nil, err
	}
	return current, &CheckResult{Available: true}, nil
}

// MinCheckOut returns the earliest selectable check-out for a check-in date:
// always the following day, so a zero-night range cannot be selected.
func MinCheckOut(checkInISO string) string {
	t, ok := utils.ParseISODate(checkInISO)
	if !ok {
		return ""
	}
	return t.AddDate(0, 0, 1).Format("2006-01-02")
}
