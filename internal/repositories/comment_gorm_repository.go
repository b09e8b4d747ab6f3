package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"shareit/internal/models"
)

// GORMCommentRepository is a GORM implementation of CommentRepository.
type GORMCommentRepository struct {
	db *gorm.DB
}

// NewGORMCommentRepository creates a new instance of GORMCommentRepository.
func NewGORMCommentRepository(db *gorm.DB) *GORMCommentRepository {
	return &GORMCommentRepository{db: db}
}

// Create persists a new comment.
func (r *GORMCommentRepository) Create(comment *models.Comment) error {
	if err := r.db.Create(comment).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// FindAllByItem retrieves the item's comments with authors, newest first.
func (r *GORMCommentRepository) FindAllByItem(itemID int64) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Preload("Author").
		Where("item_id = ?", itemID).
		Order("created DESC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get comments of item %d: %w", itemID, err)
	}
	return comments, nil
}

// FindAllByItems retrieves comments for all given items, newest first.
func (r *GORMCommentRepository) FindAllByItems(itemIDs []int64) ([]models.Comment, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}
	var comments []models.Comment
	err := r.db.Preload("Author").
		Where("item_id IN ?", itemIDs).
		Order("created DESC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get comments for items: %w", err)
	}
	return comments, nil
}
