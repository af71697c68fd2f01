package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	bookingRepo "chaletbook/database/repository/booking"
	"chaletbook/models"
	"chaletbook/utils"
)

type fakeChaletRepo struct {
	chalet models.Chalet
}

func (f *fakeChaletRepo) GetByID(id int) (*models.Chalet, error) {
	if id != f.chalet.ID {
		return nil, errors.New("chalet not found")
	}
	c := f.chalet
	return &c, nil
}

func (f *fakeChaletRepo) Search(models.ChaletSearchQuery) ([]models.Chalet, error) {
	return []models.Chalet{f.chalet}, nil
}

func (f *fakeChaletRepo) ListByOwner(string) ([]models.Chalet, error) {
	return []models.Chalet{f.chalet}, nil
}

type fakeBookingRepo struct {
	overlap    bool
	overlapErr error
	createErr  error
	created    []*models.Booking
	// duringCheck runs while the overlap query is "in flight", simulating a
	// concurrent edit racing the response.
	duringCheck func()
	reference   string
}

func (f *fakeBookingRepo) HasOverlap(_ context.Context, _ int, _, _ string) (bool, error) {
	if f.duringCheck != nil {
		f.duringCheck()
	}
	return f.overlap, f.overlapErr
}

func (f *fakeBookingRepo) Create(_ context.Context, b *models.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	b.ID = "test-booking-id"
	b.BookingReference = f.reference
	b.Status = models.BookingStatusConfirmed
	b.CreatedAt = time.Now()
	f.created = append(f.created, b)
	return nil
}

func (f *fakeBookingRepo) GetByReference(_ context.Context, _ string) (*models.Booking, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeBookingRepo) ListByChalet(_ context.Context, _ int) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) ListByPhone(_ context.Context, _ string) ([]models.Booking, error) {
	return nil, nil
}

type fakeEnqueuer struct {
	payloads []models.ConfirmationPayload
}

func (f *fakeEnqueuer) EnqueueConfirmation(_ context.Context, p models.ConfirmationPayload) error {
	f.payloads = append(f.payloads, p)
	return nil
}

func fixedNow() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func newTestService(repo *fakeBookingRepo) (*DefaultFlowService, *fakeEnqueuer) {
	enq := &fakeEnqueuer{}
	svc := &DefaultFlowService{
		Drafts: utils.NewMemoryStore(),
		ChaletRepo: &fakeChaletRepo{chalet: models.Chalet{
			ID:            7,
			Name:          "Chalet Belle Vue",
			PricePerNight: 250,
			Active:        true,
		}},
		BookingRepo:   repo,
		Confirmations: enq,
		Now:           fixedNow,
	}
	return svc, enq
}

func startInDates(t *testing.T, svc *DefaultFlowService) *models.BookingDraft {
	t.Helper()
	ctx := context.Background()
	draft, err := svc.StartDraft(ctx, 7)
	if err != nil {
		t.Fatalf("StartDraft: %v", err)
	}
	if draft.Step != models.StepCTA {
		t.Fatalf("fresh draft should be in cta, got %q", draft.Step)
	}
	if draft.Availability != models.AvailabilityUnknown {
		t.Fatalf("fresh draft availability should be unknown, got %q", draft.Availability)
	}
	draft, err = svc.BeginDates(ctx, draft.DraftID)
	if err != nil {
		t.Fatalf("BeginDates: %v", err)
	}
	if draft.Step != models.StepDates {
		t.Fatalf("expected dates step, got %q", draft.Step)
	}
	return draft
}

func TestFlowHappyPath(t *testing.T) {
	ctx := context.Background()
	repo := &fakeBookingRepo{reference: "RSR-1001"}
	svc, enq := newTestService(repo)

	draft := startInDates(t, svc)

	if _, err := svc.SetDates(ctx, draft.DraftID, "10/06/2025", "12/06/2025"); err != nil {
		t.Fatalf("SetDates: %v", err)
	}
	draft, result, err := svc.CheckAvailability(ctx, draft.DraftID)
	if err != nil {
		t.Fatalf("CheckAvailability: %v", err)
	}
	if !result.Available {
		t.Fatalf("expected available result")
	}
	if draft.Step != models.StepPhone {
		t.Fatalf("expected phone step after positive check, got %q", draft.Step)
	}
	if draft.Availability != models.AvailabilityAvailable {
		t.Fatalf("expected availability=available, got %q", draft.Availability)
	}

	draft, err = svc.SubmitPhone(ctx, draft.DraftID, "01012345678", true)
	if err != nil {
		t.Fatalf("SubmitPhone: %v", err)
	}
	if draft.Step != models.StepSuccess {
		t.Fatalf("expected success step, got %q", draft.Step)
	}
	if draft.BookingReference != "RSR-1001" {
		t.Fatalf("expected reference RSR-1001, got %q", draft.BookingReference)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one created booking, got %d", len(repo.created))
	}
	created := repo.created[0]
	if created.CheckInDate != "2025-06-10" || created.CheckOutDate != "2025-06-12" {
		t.Fatalf("wrong dates on record: %q / %q", created.CheckInDate, created.CheckOutDate)
	}
	if created.UserPhoneNumber != "01012345678" {
		t.Fatalf("wrong phone on record: %q", created.UserPhoneNumber)
	}
	if created.Nights != 2 || created.TotalPrice != 500 {
		t.Fatalf("total recomputed wrong: %d nights, %.2f total", created.Nights, created.TotalPrice)
	}
	if len(enq.payloads) != 1 || enq.payloads[0].BookingReference != "RSR-1001" {
		t.Fatalf("confirmation not enqueued: %+v", enq.payloads)
	}
}

func TestFlowUnavailableStaysInDates(t *testing.T) {
	ctx := context.Background()
	repo := &fakeBookingRepo{overlap: true, reference: "RSR-1002"}
	svc, _ := newTestService(repo)

	draft := startInDates(t, svc)
	if _, err := svc.SetDates(ctx, draft.DraftID, "10/06/2025", "12/06/2025"); err != nil {
		t.Fatalf("SetDates: %v", err)
	}

	draft, result, err := svc.CheckAvailability(ctx, draft.DraftID)
	if err != nil {
		t.Fatalf("CheckAvailability: %v", err)
	}
	if result.Available {
		t.Fatalf("expected unavailable result")
	}
	if result.Message != MsgUnavailable {
		t.Fatalf("expected unavailable message, got %q", result.Message)
	}
	if draft.Step != models.StepDates {
		t.Fatalf("draft should remain in dates, got %q", draft.Step)
	}
	if draft.Availability != models.AvailabilityUnavailable {
		t.Fatalf("expected availability=unavailable, got %q", draft.Availability)
	}
	if len(repo.created) != 0 {
		t.Fatalf("no booking must be created after a negative check")
	}
}

func TestCheckAvailabilityGuards(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name     string
		checkIn  string
		checkOut string
		field    string
	}{
		{"missing check-in", "", "12/06/2025", "checkIn"},
		{"missing check-out", "10/06/2025", "", "checkOut"},
		{"malformed check-in", "2025-06-10", "12/06/2025", "checkIn"},
		{"impossible calendar date", "31/02/2025", "12/06/2025", "checkIn"},
		{"check-out equals check-in", "10/06/2025", "10/06/2025", "checkOut"},
		{"check-out before check-in", "12/06/2025", "10/06/2025", "checkOut"},
		{"check-in in the past", "10/05/2025", "12/05/2025", "checkIn"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeBookingRepo{}
			svc, _ := newTestService(repo)
			draft := startInDates(t, svc)
			if _, err := svc.SetDates(ctx, draft.DraftID, tc.checkIn, tc.checkOut); err != nil {
				t.Fatalf("SetDates: %v", err)
			}
			_, _, err := svc.CheckAvailability(ctx, draft.DraftID)
			var fe *FlowError
			if !errors.As(err, &fe) || fe.Code != CodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
			if fe.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, fe.Field)
			}
		})
	}
}

func TestCheckAvailabilityRepoErrorLeavesAvailabilityUnknown(t *testing.T) {
	ctx := context.Background()
	repo := &fakeBookingRepo{overlapErr: errors.New("connection reset")}
	svc, _ := newTestService(repo)

	draft := startInDates(t, svc)
	if _, err := svc.SetDates(ctx, draft.DraftID, "10/06/2025", "12/06/2025"); err != nil {
		t.Fatalf("SetDates: %v", err)
	}

	_, _, err := svc.CheckAvailability(ctx, draft.DraftID)
	var fe *FlowError
	if !errors.As(err, &fe) || fe.Code != CodeServiceError {
		t.Fatalf("expected service error, got %v", err)
	}

	draft, err = svc.GetDraft(ctx, draft.DraftID)
	if err != nil {
		t.Fatalf("GetDraft: %v", err)
	}
	if draft.Availability != models.AvailabilityUnknown {
		t.Fatalf("availability must stay unknown after a failed check, got %q", draft.Availability)
	}
	if draft.Step != models.StepDates {
		t.Fatalf("draft must stay in dates, got %q", draft.Step)
	}
}

func TestDateEditResetsAvailability(t *testing.T) {
	ctx := context.Background()
	repo := &fakeBookingRepo{reference: "RSR-1003"}
	svc, _ := newTestService(repo)

	draft := startInDates(t, svc)
	if _, err := svc.SetDates(ctx, draft.DraftID, "10/06/2025", "12/06/2025"); err != nil {
		t.Fatalf("SetDates: %v", err)
	}
	draft, _, err := svc.CheckAvailability(ctx, draft.DraftID)
	if err != nil {
		t.Fatalf("CheckAvailability: %v", err)
	}
	if draft.Availability != models.AvailabilityAvailable {
		t.Fatalf("expected available, got %q", draft.Availability)
	}

	// Go back and change the check-in: the earlier result must not be trusted.
	draft, err = svc.EditDates(ctx, draft.DraftID)
	if err != nil {
		t.Fatalf("EditDates: %v", err)
	}
	if draft.Availability != models.AvailabilityUnknown {
		t.Fatalf("availability must reset on edit, got %q", draft.Availability)
	}
	draft, err = svc.SetDates(ctx, draft.DraftID, "11/06/2025", "12/06/2025")
	if err != nil {
		t.Fatalf("SetDates: %v", err)
	}
	if draft.Availability != models.AvailabilityUnknown {
		t.Fatalf("availability must stay unknown after a date change, got %q", draft.Availability)
	}

	// Submitting without a fresh check is blocked by the step guard.
	_, err = svc.SubmitPhone(ctx, draft.DraftID, "01012345678", true)
	var fe *FlowError
	if !errors.As(err, &fe) || fe.Code != CodeBadStep {
		t.Fatalf("expected step error, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Fatalf("no booking must be created without a fresh availability check")
	}
}

func TestSubmitGuards(t *testing.T) {
	ctx := context.Background()
	repo := &fakeBookingRepo{reference: "RSR-1004"}
	svc, _ := newTestService(repo)

	draft := startInDates(t, svc)

	// Cannot submit straight from the dates step, no matter how fast the
	// client fires requests.
	_, err := svc.SubmitPhone(ctx, draft.DraftID, "01012345678", true)
	var fe *FlowError
	if !errors.As(err, &fe) || fe.Code != CodeBadStep {
		t.Fatalf("expected step error from dates step, got %v", err)
	}

	if _, err := svc.SetDates(ctx, draft.DraftID, "10/06/2025", "12/06/2025"); err != nil {
		t.Fatalf("SetDates: %v", err)
	}
	if _, _, err := svc.CheckAvailability(ctx, draft.DraftID); err != nil {
		t.Fatalf("CheckAvailability: %v", err)
	}

	// Short phone number.
	_, err = svc.SubmitPhone(ctx, draft.DraftID, "12345", true)
	if !errors.As(err, &fe) || fe.Code != CodeValidation || fe.Field != "phoneNumber" {
		t.Fatalf("expected phone validation error, got %v", err)
	}

	// Terms not accepted.
	_, err = svc.SubmitPhone(ctx, draft.DraftID, "01012345678", false)
	if !errors.As(err, &fe) || fe.Code != CodeValidation || fe.Field != "termsAccepted" {
		t.Fatalf("expected terms validation error, got %v", err)
	}

	if len(repo.created) != 0 {
		t.Fatalf("guards must block creation, got %d bookings", len(repo.created))
	}

	// Valid submission passes.
	draft, err = svc.SubmitPhone(ctx, draft.DraftID, "01012345678", true)
	if err != nil {
		t.Fatalf("SubmitPhone: %v", err)
	}
	if draft.BookingReference == "" {
		t.Fatalf("reference must be set on success")
	}
}

func TestSubmitRejectedWhenSlotTaken(t *testing.T) {
	ctx := context.Background()
	repo := &fakeBookingRepo{reference: "RSR-1005"}
	svc, _ := newTestService(repo)

	draft := startInDates(t, svc)
	if _, err := svc.SetDates(ctx, draft.DraftID, "10/06/2025", "12/06/2025"); err != nil {
		t.Fatalf("SetDates: %v", err)
	}
	if _, _, err := svc.CheckAvailability(ctx, draft.DraftID); err != nil {
		t.Fatalf("CheckAvailability: %v", err)
	}

	// Another guest wins the race between check and submit.
	repo.createErr = bookingRepo.ErrSlotTaken

	draft, err := svc.SubmitPhone(ctx, draft.DraftID, "01012345678", true)
	var fe *FlowError
	if !errors.As(err, &fe) || fe.Code != CodeRejected {
		t.Fatalf("expected rejection, got %v", err)
	}
	if fe.Message != bookingRepo.ErrSlotTaken.Error() {
		t.Fatalf("rejection must carry the storage message verbatim, got %q", fe.Message)
	}
	if draft.Step != models.StepPhone {
		t.Fatalf("draft should stay in phone step, got %q", draft.Step)
	}
	if draft.Availability != models.AvailabilityUnknown {
		t.Fatalf("availability must be invalidated after rejection, got %q", draft.Availability)
	}
	if draft.BookingReference != "" {
		t.Fatalf("reference must stay empty on rejection")
	}
}

func TestStaleAvailabilityResultIsDropped(t *testing.T) {
	ctx := context.Background()
	repo := &fakeBookingRepo{}
	svc, _ := newTestService(repo)

	draft := startInDates(t, svc)
	if _, err := svc.SetDates(ctx, draft.DraftID, "10/06/2025", "12/06/2025"); err != nil {
		t.Fatalf("SetDates: %v", err)
	}

	// While the check is in flight the guest changes the dates.
	repo.duringCheck = func() {
		repo.duringCheck = nil
		if _, err := svc.SetDates(ctx, draft.DraftID, "20/06/2025", "22/06/2025"); err != nil {
			t.Fatalf("concurrent SetDates: %v", err)
		}
	}

	current, result, err := svc.CheckAvailability(ctx, draft.DraftID)
	if err != nil {
		t.Fatalf("CheckAvailability: %v", err)
	}
	if !result.Stale {
		t.Fatalf("expected stale result to be flagged")
	}
	if current.Step != models.StepDates {
		t.Fatalf("a stale result must not advance the step, got %q", current.Step)
	}
	if current.Availability != models.AvailabilityUnknown {
		t.Fatalf("a stale result must not touch availability, got %q", current.Availability)
	}
}

func TestResetDraftClearsEverything(t *testing.T) {
	ctx := context.Background()
	repo := &fakeBookingRepo{reference: "RSR-1006"}
	svc, _ := newTestService(repo)

	draft := startInDates(t, svc)
	if _, err := svc.SetDates(ctx, draft.DraftID, "10/06/2025", "12/06/2025"); err != nil {
		t.Fatalf("SetDates: %v", err)
	}
	if _, _, err := svc.CheckAvailability(ctx, draft.DraftID); err != nil {
		t.Fatalf("CheckAvailability: %v", err)
	}
	if _, err := svc.SubmitPhone(ctx, draft.DraftID, "01012345678", true); err != nil {
		t.Fatalf("SubmitPhone: %v", err)
	}

	draft, err := svc.ResetDraft(ctx, draft.DraftID)
	if err != nil {
		t.Fatalf("ResetDraft: %v", err)
	}
	if draft.Step != models.StepCTA {
		t.Fatalf("reset draft should be in cta, got %q", draft.Step)
	}
	if draft.CheckInDisplay != "" || draft.CheckOutDisplay != "" || draft.PhoneNumber != "" {
		t.Fatalf("reset draft should clear fields: %+v", draft)
	}
	if draft.BookingReference != "" {
		t.Fatalf("reference must be empty outside the success step")
	}
	if draft.Availability != models.AvailabilityUnknown {
		t.Fatalf("reset draft availability should be unknown, got %q", draft.Availability)
	}
	if draft.ChaletID != 7 {
		t.Fatalf("reset keeps the chalet, got %d", draft.ChaletID)
	}
}
