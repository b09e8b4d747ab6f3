package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"shareit/internal/apperrors"
	"shareit/internal/dto"
	"shareit/internal/models"
	"shareit/internal/services"
)

func newItemFixture() (*services.ItemService, *MockItemRepository, *MockUserRepository, *MockBookingRepository, *MockCommentRepository, *MockRequestRepository) {
	itemRepo := new(MockItemRepository)
	userRepo := new(MockUserRepository)
	bookingRepo := new(MockBookingRepository)
	commentRepo := new(MockCommentRepository)
	requestRepo := new(MockRequestRepository)
	service := services.NewItemService(itemRepo, userRepo, bookingRepo, commentRepo, requestRepo)
	return service, itemRepo, userRepo, bookingRepo, commentRepo, requestRepo
}

func boolPtr(b bool) *bool { return &b }

func TestAddItem_Success(t *testing.T) {
	service, itemRepo, userRepo, _, _, _ := newItemFixture()

	owner := &models.User{ID: 1, Name: "Owner", Email: "owner@example.com"}
	userRepo.On("GetByID", int64(1)).Return(owner, nil).Once()
	itemRepo.On("Create", mock.AnythingOfType("*models.Item")).
		Run(func(args mock.Arguments) {
			args.Get(0).(*models.Item).ID = 10
		}).Return(nil).Once()

	result, err := service.AddItem(1, dto.NewItemRequest{
		Name:        "Drill",
		Description: "Cordless drill",
		Available:   boolPtr(true),
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(10), result.ID)
	assert.True(t, result.Available)
	itemRepo.AssertExpectations(t)
}

func TestAddItem_UnknownRequest(t *testing.T) {
	service, itemRepo, userRepo, _, _, requestRepo := newItemFixture()

	owner := &models.User{ID: 1, Name: "Owner", Email: "owner@example.com"}
	requestID := int64(7)
	userRepo.On("GetByID", int64(1)).Return(owner, nil).Once()
	requestRepo.On("GetByID", int64(7)).Return(nil, apperrors.NotFound("Request with id %d not found", 7)).Once()

	result, err := service.AddItem(1, dto.NewItemRequest{
		Name:        "Drill",
		Description: "Cordless drill",
		Available:   boolPtr(true),
		RequestID:   &requestID,
	})

	assert.Nil(t, result)
	assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
	itemRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestUpdateItem_NotOwner(t *testing.T) {
	service, itemRepo, _, _, _, _ := newItemFixture()

	item := &models.Item{ID: 10, OwnerID: 1, Name: "Drill", Available: true}
	itemRepo.On("GetByID", int64(10)).Return(item, nil).Once()

	result, err := service.UpdateItem(2, 10, dto.UpdateItemRequest{Available: boolPtr(false)})

	assert.Nil(t, result)
	assert.Equal(t, apperrors.CodeForbidden, apperrors.CodeOf(err))
	itemRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestUpdateItem_PartialFields(t *testing.T) {
	service, itemRepo, _, _, _, _ := newItemFixture()

	item := &models.Item{ID: 10, OwnerID: 1, Name: "Drill", Description: "Cordless drill", Available: true}
	itemRepo.On("GetByID", int64(10)).Return(item, nil).Once()
	itemRepo.On("Update", mock.AnythingOfType("*models.Item")).Return(nil).Once()

	result, err := service.UpdateItem(1, 10, dto.UpdateItemRequest{Available: boolPtr(false)})

	assert.NoError(t, err)
	assert.Equal(t, "Drill", result.Name)
	assert.Equal(t, "Cordless drill", result.Description)
	assert.False(t, result.Available)
}

func TestGetItemByID_Annotation(t *testing.T) {
	service, itemRepo, _, bookingRepo, commentRepo, _ := newItemFixture()

	item := &models.Item{ID: 10, OwnerID: 1, Name: "Drill", Available: true}
	now := time.Now()
	past := models.Booking{
		ID: 1, ItemID: 10, BookerID: 2, Status: models.StatusApproved,
		StartTime: now.Add(-3 * time.Hour), EndTime: now.Add(-2 * time.Hour),
	}
	recent := models.Booking{
		ID: 2, ItemID: 10, BookerID: 3, Status: models.StatusApproved,
		StartTime: now.Add(-2 * time.Hour), EndTime: now.Add(-time.Hour),
	}
	far := models.Booking{
		ID: 3, ItemID: 10, BookerID: 2, Status: models.StatusApproved,
		StartTime: now.Add(3 * time.Hour), EndTime: now.Add(4 * time.Hour),
	}
	soon := models.Booking{
		ID: 4, ItemID: 10, BookerID: 3, Status: models.StatusApproved,
		StartTime: now.Add(time.Hour), EndTime: now.Add(2 * time.Hour),
	}
	comment := models.Comment{ID: 1, ItemID: 10, AuthorID: 2, Author: models.User{ID: 2, Name: "Booker"}, Text: "Works great", Created: now}

	itemRepo.On("GetByID", int64(10)).Return(item, nil).Once()
	commentRepo.On("FindAllByItem", int64(10)).Return([]models.Comment{comment}, nil).Once()
	bookingRepo.On("FindApprovedByItems", []int64{10}).
		Return([]models.Booking{past, recent, far, soon}, nil).Once()

	result, err := service.GetItemByID(10)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), result.LastBooking.ID)
	assert.Equal(t, int64(4), result.NextBooking.ID)
	assert.Len(t, result.Comments, 1)
	assert.Equal(t, "Booker", result.Comments[0].AuthorName)
}

func TestGetItemByID_RunningBookingIsLast(t *testing.T) {
	service, itemRepo, _, bookingRepo, commentRepo, _ := newItemFixture()

	item := &models.Item{ID: 10, OwnerID: 1, Name: "Drill", Available: true}
	now := time.Now()
	running := models.Booking{
		ID: 5, ItemID: 10, BookerID: 2, Status: models.StatusApproved,
		StartTime: now.Add(-time.Hour), EndTime: now.Add(time.Hour),
	}

	itemRepo.On("GetByID", int64(10)).Return(item, nil).Once()
	commentRepo.On("FindAllByItem", int64(10)).Return([]models.Comment{}, nil).Once()
	bookingRepo.On("FindApprovedByItems", []int64{10}).Return([]models.Booking{running}, nil).Once()

	result, err := service.GetItemByID(10)

	assert.NoError(t, err)
	assert.Equal(t, int64(5), result.LastBooking.ID)
	assert.Nil(t, result.NextBooking)
}

func TestGetItemsByOwner_GroupsByItem(t *testing.T) {
	service, itemRepo, userRepo, bookingRepo, commentRepo, _ := newItemFixture()

	owner := &models.User{ID: 1, Name: "Owner", Email: "owner@example.com"}
	items := []models.Item{
		{ID: 10, OwnerID: 1, Name: "Drill", Available: true},
		{ID: 11, OwnerID: 1, Name: "Saw", Available: true},
	}
	now := time.Now()
	bookings := []models.Booking{
		{ID: 1, ItemID: 10, BookerID: 2, Status: models.StatusApproved,
			StartTime: now.Add(-2 * time.Hour), EndTime: now.Add(-time.Hour)},
		{ID: 2, ItemID: 11, BookerID: 3, Status: models.StatusApproved,
			StartTime: now.Add(time.Hour), EndTime: now.Add(2 * time.Hour)},
	}
	comments := []models.Comment{
		{ID: 1, ItemID: 10, AuthorID: 2, Author: models.User{ID: 2, Name: "Booker"}, Text: "Fine", Created: now},
	}

	userRepo.On("GetByID", int64(1)).Return(owner, nil).Once()
	itemRepo.On("GetAllByOwner", int64(1)).Return(items, nil).Once()
	bookingRepo.On("FindApprovedByItems", []int64{10, 11}).Return(bookings, nil).Once()
	commentRepo.On("FindAllByItems", []int64{10, 11}).Return(comments, nil).Once()

	result, err := service.GetItemsByOwner(1)

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, int64(1), result[0].LastBooking.ID)
	assert.Nil(t, result[0].NextBooking)
	assert.Len(t, result[0].Comments, 1)
	assert.Nil(t, result[1].LastBooking)
	assert.Equal(t, int64(2), result[1].NextBooking.ID)
	assert.Empty(t, result[1].Comments)
}

func TestSearchItems_BlankText(t *testing.T) {
	service, itemRepo, _, _, _, _ := newItemFixture()

	result, err := service.SearchItems("   ")

	assert.NoError(t, err)
	assert.Empty(t, result)
	itemRepo.AssertNotCalled(t, "SearchAvailable", mock.Anything)
}

func TestSearchItems_DelegatesToRepository(t *testing.T) {
	service, itemRepo, _, _, _, _ := newItemFixture()

	itemRepo.On("SearchAvailable", "drill").
		Return([]models.Item{{ID: 10, OwnerID: 1, Name: "Drill", Available: true}}, nil).Once()

	result, err := service.SearchItems("drill")

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, "Drill", result[0].Name)
}

func TestAddComment_OwnerForbidden(t *testing.T) {
	service, itemRepo, userRepo, _, commentRepo, _ := newItemFixture()

	item := &models.Item{ID: 10, OwnerID: 1, Name: "Drill", Available: true}
	owner := &models.User{ID: 1, Name: "Owner", Email: "owner@example.com"}

	itemRepo.On("GetByID", int64(10)).Return(item, nil).Once()
	userRepo.On("GetByID", int64(1)).Return(owner, nil).Once()

	result, err := service.AddComment(1, 10, dto.NewCommentRequest{Text: "My own item rocks"})

	assert.Nil(t, result)
	assert.Equal(t, apperrors.CodeForbidden, apperrors.CodeOf(err))
	commentRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAddComment_NoFinishedBooking(t *testing.T) {
	service, itemRepo, userRepo, bookingRepo, commentRepo, _ := newItemFixture()

	item := &models.Item{ID: 10, OwnerID: 1, Name: "Drill", Available: true}
	author := &models.User{ID: 2, Name: "Booker", Email: "booker@example.com"}

	itemRepo.On("GetByID", int64(10)).Return(item, nil).Once()
	userRepo.On("GetByID", int64(2)).Return(author, nil).Once()
	bookingRepo.On("HasFinishedBooking", int64(2), int64(10), mock.AnythingOfType("time.Time")).
		Return(false, nil).Once()

	result, err := service.AddComment(2, 10, dto.NewCommentRequest{Text: "Too early"})

	assert.Nil(t, result)
	assert.Equal(t, apperrors.CodeValidation, apperrors.CodeOf(err))
	commentRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAddComment_Success(t *testing.T) {
	service, itemRepo, userRepo, bookingRepo, commentRepo, _ := newItemFixture()

	item := &models.Item{ID: 10, OwnerID: 1, Name: "Drill", Available: true}
	author := &models.User{ID: 2, Name: "Booker", Email: "booker@example.com"}

	itemRepo.On("GetByID", int64(10)).Return(item, nil).Once()
	userRepo.On("GetByID", int64(2)).Return(author, nil).Once()
	bookingRepo.On("HasFinishedBooking", int64(2), int64(10), mock.AnythingOfType("time.Time")).
		Return(true, nil).Once()
	commentRepo.On("Create", mock.AnythingOfType("*models.Comment")).
		Run(func(args mock.Arguments) {
			args.Get(0).(*models.Comment).ID = 1
		}).Return(nil).Once()

	result, err := service.AddComment(2, 10, dto.NewCommentRequest{Text: "Works great"})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), result.ID)
	assert.Equal(t, "Booker", result.AuthorName)
	assert.Equal(t, "Works great", result.Text)
	commentRepo.AssertExpectations(t)
}
