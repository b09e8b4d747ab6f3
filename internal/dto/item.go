package dto

import "shareit/internal/models"

// NewItemRequest is the body of POST /items.
type NewItemRequest struct {
	Name        string `json:"name" validate:"required,max=50"`
	Description string `json:"description" validate:"required,max=250"`
	Available   *bool  `json:"available" validate:"required"`
	RequestID   *int64 `json:"requestId" validate:"omitempty,gt=0"`
}

// UpdateItemRequest is the body of PATCH /items/{id}. Absent fields are left
// unchanged; each field is independently optional.
type UpdateItemRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=50"`
	Description *string `json:"description" validate:"omitempty,max=250"`
	Available   *bool   `json:"available"`
}

// ItemDto is the full item view, annotated with comments and, for the owner
// listing, the last and next approved bookings.
type ItemDto struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Available   bool            `json:"available"`
	LastBooking *LastBookingDto `json:"lastBooking"`
	NextBooking *LastBookingDto `json:"nextBooking"`
	RequestID   *int64          `json:"requestId"`
	Comments    []CommentDto    `json:"comments"`
}

// ItemShortDto is the compact item shape embedded in bookings and request
// answers.
type ItemShortDto struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	OwnerID int64  `json:"ownerId"`
}

func MapToItem(req NewItemRequest, owner models.User) models.Item {
	return models.Item{
		OwnerID:     owner.ID,
		Owner:       owner,
		Name:        req.Name,
		Description: req.Description,
		Available:   *req.Available,
		RequestID:   req.RequestID,
	}
}

func MapToItemDto(item models.Item) ItemDto {
	return ItemDto{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Available:   item.Available,
		RequestID:   item.RequestID,
		Comments:    []CommentDto{},
	}
}

func MapToItemShortDto(item models.Item) ItemShortDto {
	return ItemShortDto{ID: item.ID, Name: item.Name, OwnerID: item.OwnerID}
}

// UpdateItemFields applies a partial update onto an existing item.
func UpdateItemFields(item *models.Item, req UpdateItemRequest) {
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Available != nil {
		item.Available = *req.Available
	}
}
