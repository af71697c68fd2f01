package ownerRepo

import "chaletbook/models"

// OwnerRepository manages chalet owner accounts.
type OwnerRepository interface {
	Create(owner *models.Owner) error
	GetByID(id string) (*models.Owner, error)
	GetByEmail(email string) (*models.Owner, error)
}
