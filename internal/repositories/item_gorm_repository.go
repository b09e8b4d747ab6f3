package repositories

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"shareit/internal/apperrors"
	"shareit/internal/models"
)

// GORMItemRepository is a GORM implementation of ItemRepository.
type GORMItemRepository struct {
	db *gorm.DB
}

// NewGORMItemRepository creates a new instance of GORMItemRepository.
func NewGORMItemRepository(db *gorm.DB) *GORMItemRepository {
	return &GORMItemRepository{db: db}
}

// GetByID retrieves a single item with its owner preloaded.
func (r *GORMItemRepository) GetByID(id int64) (*models.Item, error) {
	var item models.Item
	if err := r.db.Preload("Owner").First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Item with id %d not found", id)
		}
		return nil, fmt.Errorf("failed to get item by id %d: %w", id, err)
	}
	return &item, nil
}

// GetAllByOwner retrieves every item listed by the given owner.
func (r *GORMItemRepository) GetAllByOwner(ownerID int64) ([]models.Item, error) {
	var items []models.Item
	if err := r.db.Where("owner_id = ?", ownerID).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get items of owner %d: %w", ownerID, err)
	}
	return items, nil
}

// Create persists a new item.
func (r *GORMItemRepository) Create(item *models.Item) error {
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}
	return nil
}

// Update saves a modified item.
func (r *GORMItemRepository) Update(item *models.Item) error {
	res := r.db.Save(item)
	if res.Error != nil {
		return fmt.Errorf("failed to update item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("Item with id %d not found", item.ID)
	}
	return nil
}

// SearchAvailable matches available items whose name or description contains
// the pattern, case-insensitively.
func (r *GORMItemRepository) SearchAvailable(text string) ([]models.Item, error) {
	pattern := "%" + strings.ToLower(text) + "%"
	var items []models.Item
	err := r.db.
		Where("available = ?", true).
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search items by %q: %w", text, err)
	}
	return items, nil
}

// FindByRequestIDs returns available items that answer any of the requests.
func (r *GORMItemRepository) FindByRequestIDs(requestIDs []int64) ([]models.Item, error) {
	if len(requestIDs) == 0 {
		return nil, nil
	}
	var items []models.Item
	err := r.db.
		Where("request_id IN ?", requestIDs).
		Where("available = ?", true).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find items for requests: %w", err)
	}
	return items, nil
}
