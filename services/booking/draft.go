// File: services/booking/draft.go
package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"chaletbook/models"
	"chaletbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func draftKey(draftID string) string {
	return utils.DraftCachePrefix + draftID
}

func (s *DefaultFlowService) loadDraft(ctx context.Context, draftID string) (*models.BookingDraft, error) {
	data, err := s.Drafts.Get(ctx, draftKey(draftID))
	if errors.Is(err, utils.ErrKeyNotFound) {
		return nil, &FlowError{Code: CodeNotFound, Message: MsgDraftNotFound}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking draft: %w", err)
	}
	var draft models.BookingDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, fmt.Errorf("failed to parse booking draft: %w", err)
	}
	return &draft, nil
}

func (s *DefaultFlowService) saveDraft(ctx context.Context, draft *models.BookingDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal booking draft: %w", err)
	}
	if err := s.Drafts.Set(ctx, draftKey(draft.DraftID), data, s.draftTTL()); err != nil {
		return fmt.Errorf("failed to store booking draft: %w", err)
	}
	return nil
}

// StartDraft creates a fresh draft for a chalet, verifying the chalet exists.
func (s *DefaultFlowService) StartDraft(ctx context.Context, chaletID int) (*models.BookingDraft, error) {
	if _, err := s.ChaletRepo.GetByID(chaletID); err != nil {
		return nil, fmt.Errorf("failed to resolve chalet %d: %w", chaletID, err)
	}

	draft := &models.BookingDraft{
		DraftID:      uuid.New().String(),
		ChaletID:     chaletID,
		Step:         models.StepCTA,
		Availability: models.AvailabilityUnknown,
	}
	if err := s.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// GetDraft returns the current draft state.
func (s *DefaultFlowService) GetDraft(ctx context.Context, draftID string) (*models.BookingDraft, error) {
	return s.loadDraft(ctx, draftID)
}

// BeginDates moves the draft from the call-to-action into date selection.
func (s *DefaultFlowService) BeginDates(ctx context.Context, draftID string) (*models.BookingDraft, error) {
	draft, err := s.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft.Step != models.StepCTA {
		return nil, NewStepError("booking already started")
	}
	draft.Step = models.StepDates
	if err := s.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// SetDates records the guest's date selection. Any change to either date
// invalidates a previously computed availability result: stale availability
// must never survive a date edit.
func (s *DefaultFlowService) SetDates(ctx context.Context, draftID, checkInDisplay, checkOutDisplay string) (*models.BookingDraft, error) {
	draft, err := s.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft.Step != models.StepDates {
		return nil, NewStepError("dates can only be set during date selection")
	}
	if checkInDisplay == draft.CheckInDisplay && checkOutDisplay == draft.CheckOutDisplay {
		return draft, nil
	}
	draft.CheckInDisplay = checkInDisplay
	draft.CheckOutDisplay = checkOutDisplay
	draft.Availability = models.AvailabilityUnknown
	draft.Revision++
	if err := s.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// EditDates sends the guest from the phone step back to date selection. The
// previous availability result no longer counts.
func (s *DefaultFlowService) EditDates(ctx context.Context, draftID string) (*models.BookingDraft, error) {
	draft, err := s.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft.Step != models.StepPhone {
		return nil, NewStepError("dates can only be edited from the contact step")
	}
	draft.Step = models.StepDates
	draft.Availability = models.AvailabilityUnknown
	draft.Revision++
	if err := s.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// ResetDraft clears a completed draft so the guest can start a new booking
// for the same chalet.
func (s *DefaultFlowService) ResetDraft(ctx context.Context, draftID string) (*models.BookingDraft, error) {
	draft, err := s.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft.Step != models.StepSuccess {
		return nil, NewStepError("only a completed booking can be reset")
	}

	logger := utils.GetLogger()
	logger.Debug("resetting completed booking draft",
		zap.String("draftID", draft.DraftID),
		zap.String("reference", draft.BookingReference))

	fresh := &models.BookingDraft{
		DraftID:      draft.DraftID,
		ChaletID:     draft.ChaletID,
		Step:         models.StepCTA,
		Availability: models.AvailabilityUnknown,
	}
	if err := s.saveDraft(ctx, fresh); err != nil {
		return nil, err
	}
	return fresh, nil
}
