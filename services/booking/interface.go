package booking

import (
	"context"
	"time"

	bookingRepo "chaletbook/database/repository/booking"
	chaletRepo "chaletbook/database/repository/chalet"
	"chaletbook/models"
	"chaletbook/utils"
)

// CheckResult reports the outcome of an availability check. A negative result
// is a normal outcome, not an error; Message is the guest-facing text for
// non-available outcomes.
type CheckResult struct {
	Available bool   `json:"available"`
	Stale     bool   `json:"-"`
	Message   string `json:"message,omitempty"`
}

// ConfirmationEnqueuer schedules delivery of a booking confirmation after a
// successful submission.
type ConfirmationEnqueuer interface {
	EnqueueConfirmation(ctx context.Context, payload models.ConfirmationPayload) error
}

// FlowService drives a guest's booking draft through its steps:
// cta -> dates -> phone -> success.
type FlowService interface {
	StartDraft(ctx context.Context, chaletID int) (*models.BookingDraft, error)
	GetDraft(ctx context.Context, draftID string) (*models.BookingDraft, error)
	BeginDates(ctx context.Context, draftID string) (*models.BookingDraft, error)
	SetDates(ctx context.Context, draftID, checkInDisplay, checkOutDisplay string) (*models.BookingDraft, error)
	CheckAvailability(ctx context.Context, draftID string) (*models.BookingDraft, *CheckResult, error)
	SubmitPhone(ctx context.Context, draftID, phone string, termsAccepted bool) (*models.BookingDraft, error)
	EditDates(ctx context.Context, draftID string) (*models.BookingDraft, error)
	ResetDraft(ctx context.Context, draftID string) (*models.BookingDraft, error)
}

// DefaultFlowService implements FlowService.
type DefaultFlowService struct {
	Drafts        utils.KVStore
	ChaletRepo    chaletRepo.ChaletRepository
	BookingRepo   bookingRepo.BookingRepository
	Confirmations ConfirmationEnqueuer
	DraftTTL      time.Duration

	// Now is the clock used for the check-in-not-in-the-past guard.
	// Defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultFlowService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultFlowService) draftTTL() time.Duration {
	if s.DraftTTL > 0 {
		return s.DraftTTL
	}
	return utils.DefaultDraftTTL
}
