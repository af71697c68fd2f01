package notification

import (
	"context"

	"chaletbook/models"
	"chaletbook/utils"

	"go.uber.org/zap"
)

// Service delivers booking confirmations to guests.
type Service interface {
	SendBookingConfirmation(ctx context.Context, payload models.ConfirmationPayload) error
}

// SMSLogService is the delivery backend used until an SMS gateway is wired
// in: it records the confirmation in the service log. Swapping in a real
// gateway only replaces this type.
type SMSLogService struct{}

func (s *SMSLogService) SendBookingConfirmation(ctx context.Context, p models.ConfirmationPayload) error {
	utils.GetLogger().Info("booking confirmation",
		zap.String("reference", p.BookingReference),
		zap.String("chalet", p.ChaletName),
		zap.String("phone", p.PhoneNumber),
		zap.String("checkIn", p.CheckInDate),
		zap.String("checkOut", p.CheckOutDate),
	)
	return nil
}
