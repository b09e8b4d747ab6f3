package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"shareit/internal/apperrors"
	"shareit/internal/models"
)

// GORMRequestRepository is a GORM implementation of RequestRepository.
type GORMRequestRepository struct {
	db *gorm.DB
}

// NewGORMRequestRepository creates a new instance of GORMRequestRepository.
func NewGORMRequestRepository(db *gorm.DB) *GORMRequestRepository {
	return &GORMRequestRepository{db: db}
}

// GetByID retrieves a single request with its requestor preloaded.
func (r *GORMRequestRepository) GetByID(id int64) (*models.Request, error) {
	var request models.Request
	if err := r.db.Preload("Requestor").First(&request, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Request with id %d not found", id)
		}
		return nil, fmt.Errorf("failed to get request by id %d: %w", id, err)
	}
	return &request, nil
}

// GetAllByRequestor retrieves the user's own requests, newest first.
func (r *GORMRequestRepository) GetAllByRequestor(requestorID int64) ([]models.Request, error) {
	var requests []models.Request
	err := r.db.Preload("Requestor").
		Where("requestor_id = ?", requestorID).
		Order("created DESC").
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get requests of user %d: %w", requestorID, err)
	}
	return requests, nil
}

// GetAllOthers retrieves requests created by other users, newest first.
func (r *GORMRequestRepository) GetAllOthers(requestorID int64) ([]models.Request, error) {
	var requests []models.Request
	err := r.db.Preload("Requestor").
		Where("requestor_id <> ?", requestorID).
		Order("created DESC").
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get requests of other users: %w", err)
	}
	return requests, nil
}

// Create persists a new request.
func (r *GORMRequestRepository) Create(request *models.Request) error {
	if err := r.db.Create(request).Error; err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return nil
}
