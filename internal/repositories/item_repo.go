package repositories

import "shareit/internal/models"

// ItemRepository defines the interface for item data access.
type ItemRepository interface {
	GetByID(id int64) (*models.Item, error)
	GetAllByOwner(ownerID int64) ([]models.Item, error)
	Create(item *models.Item) error
	Update(item *models.Item) error
	// SearchAvailable performs a case-insensitive substring search over name
	// and description, restricted to available items.
	SearchAvailable(text string) ([]models.Item, error)
	// FindByRequestIDs returns available items answering any of the given
	// requests.
	FindByRequestIDs(requestIDs []int64) ([]models.Item, error)
}
