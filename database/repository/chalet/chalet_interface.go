package chaletRepo

import "chaletbook/models"

// ChaletRepository provides read access to the chalet catalog.
type ChaletRepository interface {
	GetByID(id int) (*models.Chalet, error)
	Search(q models.ChaletSearchQuery) ([]models.Chalet, error)
	ListByOwner(ownerID string) ([]models.Chalet, error)
}
