// File: services/owner/owner.go
package owner

import (
	"context"
	"fmt"
	"time"

	bookingRepo "chaletbook/database/repository/booking"
	chaletRepo "chaletbook/database/repository/chalet"
	ownerRepo "chaletbook/database/repository/owner"
	"chaletbook/models"
	"chaletbook/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrNotChaletOwner is returned when an owner asks for bookings of a chalet
// they do not own.
var ErrNotChaletOwner = fmt.Errorf("chalet does not belong to this owner")

// Service covers the owner dashboard surface: accounts and per-chalet booking
// listings. The guest booking flow never touches this.
type Service interface {
	Register(ctx context.Context, reg models.OwnerRegistration) (*models.Owner, string, error)
	Authenticate(ctx context.Context, creds models.OwnerCredentials) (*models.Owner, string, error)
	Chalets(ctx context.Context, ownerID string) ([]models.Chalet, error)
	ChaletBookings(ctx context.Context, ownerID string, chaletID int) ([]models.Booking, error)
}

// DefaultService implements Service.
type DefaultService struct {
	Owners      ownerRepo.OwnerRepository
	ChaletRepo  chaletRepo.ChaletRepository
	BookingRepo bookingRepo.BookingRepository
	TokenTTL    time.Duration
}

func (s *DefaultService) tokenTTL() time.Duration {
	if s.TokenTTL > 0 {
		return s.TokenTTL
	}
	return 24 * time.Hour
}

// Register creates an owner account and returns it with a signed token.
func (s *DefaultService) Register(ctx context.Context, reg models.OwnerRegistration) (*models.Owner, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	acct := &models.Owner{
		ID:           uuid.New().String(),
		Email:        reg.Email,
		Name:         reg.Name,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Owners.Create(acct); err != nil {
		return nil, "", fmt.Errorf("failed to create owner account: %w", err)
	}

	token, err := utils.GenerateToken(acct.ID, acct.Email, s.tokenTTL())
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}
	return acct, token, nil
}

// Authenticate verifies credentials and returns the owner with a fresh token.
// The failure message never says which of email or password was wrong.
func (s *DefaultService) Authenticate(ctx context.Context, creds models.OwnerCredentials) (*models.Owner, string, error) {
	acct, err := s.Owners.GetByEmail(creds.Email)
	if err != nil {
		return nil, "", fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(creds.Password)); err != nil {
		return nil, "", fmt.Errorf("invalid credentials")
	}

	token, err := utils.GenerateToken(acct.ID, acct.Email, s.tokenTTL())
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}
	return acct, token, nil
}

// Chalets lists the owner's chalets.
func (s *DefaultService) Chalets(ctx context.Context, ownerID string) ([]models.Chalet, error) {
	return s.ChaletRepo.ListByOwner(ownerID)
}

// ChaletBookings lists bookings for one of the owner's chalets, verifying
// ownership first.
func (s *DefaultService) ChaletBookings(ctx context.Context, ownerID string, chaletID int) ([]models.Booking, error) {
	chalet, err := s.ChaletRepo.GetByID(chaletID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve chalet %d: %w", chaletID, err)
	}
	if chalet.OwnerID != ownerID {
		return nil, ErrNotChaletOwner
	}
	return s.BookingRepo.ListByChalet(ctx, chaletID)
}
