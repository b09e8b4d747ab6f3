package services

import (
	"strings"
	"time"

	"shareit/internal/apperrors"
	"shareit/internal/dto"
	"shareit/internal/models"
	"shareit/internal/repositories"
)

// ItemService handles the item catalog: listing, owner-only updates, search,
// the last/next booking annotation and the comment subsystem.
type ItemService struct {
	itemRepo    repositories.ItemRepository
	userRepo    repositories.UserRepository
	bookingRepo repositories.BookingRepository
	commentRepo repositories.CommentRepository
	requestRepo repositories.RequestRepository
}

// NewItemService creates a new ItemService.
func NewItemService(itemRepo repositories.ItemRepository, userRepo repositories.UserRepository,
	bookingRepo repositories.BookingRepository, commentRepo repositories.CommentRepository,
	requestRepo repositories.RequestRepository) *ItemService {
	return &ItemService{
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
		commentRepo: commentRepo,
		requestRepo: requestRepo,
	}
}

// AddItem lists a new item for the owner. When the item answers a request,
// the request must exist.
func (s *ItemService) AddItem(ownerID int64, req dto.NewItemRequest) (*dto.ItemDto, error) {
	owner, err := s.userRepo.GetByID(ownerID)
	if err != nil {
		return nil, err
	}
	if req.RequestID != nil {
		if _, err := s.requestRepo.GetByID(*req.RequestID); err != nil {
			return nil, err
		}
	}

	item := dto.MapToItem(req, *owner)
	if err := s.itemRepo.Create(&item); err != nil {
		return nil, err
	}
	result := dto.MapToItemDto(item)
	return &result, nil
}

// UpdateItem applies a partial update. Only the owner may change an item, and
// ownership itself never changes.
func (s *ItemService) UpdateItem(actorID, itemID int64, req dto.UpdateItemRequest) (*dto.ItemDto, error) {
	item, err := s.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item.OwnerID != actorID {
		return nil, apperrors.Forbidden("User with id %d is not the owner of item", actorID)
	}

	dto.UpdateItemFields(item, req)
	if err := s.itemRepo.Update(item); err != nil {
		return nil, err
	}
	result := dto.MapToItemDto(*item)
	return &result, nil
}

// GetItemByID returns one item annotated with its comments and its last/next
// approved bookings.
func (s *ItemService) GetItemByID(itemID int64) (*dto.ItemDto, error) {
	item, err := s.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.FindAllByItem(itemID)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookingRepo.FindApprovedByItems([]int64{itemID})
	if err != nil {
		return nil, err
	}

	result := annotateItem(*item, bookings, comments, time.Now())
	return &result, nil
}

// GetItemsByOwner returns all of the owner's items, each annotated with its
// comments and last/next approved bookings. Bookings and comments for the
// whole set are fetched in two batch queries and grouped in memory.
func (s *ItemService) GetItemsByOwner(ownerID int64) ([]dto.ItemDto, error) {
	if _, err := s.userRepo.GetByID(ownerID); err != nil {
		return nil, err
	}
	items, err := s.itemRepo.GetAllByOwner(ownerID)
	if err != nil {
		return nil, err
	}

	itemIDs := make([]int64, 0, len(items))
	for _, item := range items {
		itemIDs = append(itemIDs, item.ID)
	}

	bookings, err := s.bookingRepo.FindApprovedByItems(itemIDs)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.FindAllByItems(itemIDs)
	if err != nil {
		return nil, err
	}

	bookingsByItem := make(map[int64][]models.Booking)
	for _, b := range bookings {
		bookingsByItem[b.ItemID] = append(bookingsByItem[b.ItemID], b)
	}
	commentsByItem := make(map[int64][]models.Comment)
	for _, c := range comments {
		commentsByItem[c.ItemID] = append(commentsByItem[c.ItemID], c)
	}

	now := time.Now()
	result := make([]dto.ItemDto, 0, len(items))
	for _, item := range items {
		result = append(result, annotateItem(item, bookingsByItem[item.ID], commentsByItem[item.ID], now))
	}
	return result, nil
}

// SearchItems finds available items whose name or description contains the
// text, case-insensitively. A blank pattern yields an empty result.
func (s *ItemService) SearchItems(text string) ([]dto.ItemDto, error) {
	if strings.TrimSpace(text) == "" {
		return []dto.ItemDto{}, nil
	}
	items, err := s.itemRepo.SearchAvailable(text)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ItemDto, 0, len(items))
	for _, item := range items {
		result = append(result, dto.MapToItemDto(item))
	}
	return result, nil
}

// AddComment stores feedback on an item. Only a user who finished an approved
// booking of the item may comment, and never its owner.
func (s *ItemService) AddComment(authorID, itemID int64, req dto.NewCommentRequest) (*dto.CommentDto, error) {
	item, err := s.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	author, err := s.userRepo.GetByID(authorID)
	if err != nil {
		return nil, err
	}
	if item.OwnerID == authorID {
		return nil, apperrors.Forbidden("The owner of the item should not comment it")
	}

	now := time.Now()
	finished, err := s.bookingRepo.HasFinishedBooking(authorID, itemID, now)
	if err != nil {
		return nil, err
	}
	if !finished {
		return nil, apperrors.Validation("User with id %d has no completed booking of item %d", authorID, itemID)
	}

	comment := models.Comment{
		ItemID:   itemID,
		Item:     *item,
		AuthorID: authorID,
		Author:   *author,
		Text:     req.Text,
		Created:  now,
	}
	if err := s.commentRepo.Create(&comment); err != nil {
		return nil, err
	}
	result := dto.MapToCommentDto(comment)
	return &result, nil
}

// annotateItem builds the item view: comments plus the last and next approved
// bookings relative to now. Last is the completed-or-running booking with the
// greatest end time; next is the upcoming booking with the smallest start.
func annotateItem(item models.Item, bookings []models.Booking, comments []models.Comment, now time.Time) dto.ItemDto {
	result := dto.MapToItemDto(item)
	result.Comments = dto.MapToCommentDtos(comments)

	var last, next *models.Booking
	for i := range bookings {
		b := &bookings[i]
		startedOrDone := !b.EndTime.After(now) || (!b.StartTime.After(now) && now.Before(b.EndTime))
		if startedOrDone {
			if last == nil || b.EndTime.After(last.EndTime) {
				last = b
			}
			continue
		}
		if b.StartTime.After(now) {
			if next == nil || b.StartTime.Before(next.StartTime) {
				next = b
			}
		}
	}
	if last != nil {
		result.LastBooking = dto.MapToLastBookingDto(*last)
	}
	if next != nil {
		result.NextBooking = dto.MapToLastBookingDto(*next)
	}
	return result
}
