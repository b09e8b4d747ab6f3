package repositories

import "shareit/internal/models"

// RequestRepository defines the interface for item-request data access.
type RequestRepository interface {
	GetByID(id int64) (*models.Request, error)
	// GetAllByRequestor returns the user's own requests, newest first.
	GetAllByRequestor(requestorID int64) ([]models.Request, error)
	// GetAllOthers returns every other user's requests, newest first.
	GetAllOthers(requestorID int64) ([]models.Request, error)
	Create(request *models.Request) error
}
