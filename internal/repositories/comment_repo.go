package repositories

import "shareit/internal/models"

// CommentRepository defines the interface for comment data access.
type CommentRepository interface {
	Create(comment *models.Comment) error
	// FindAllByItem returns the item's comments, newest first.
	FindAllByItem(itemID int64) ([]models.Comment, error)
	// FindAllByItems returns the comments of all given items, newest first.
	FindAllByItems(itemIDs []int64) ([]models.Comment, error)
}
