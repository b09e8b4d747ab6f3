package services

import (
	"time"

	"github.com/rs/zerolog/log"

	"shareit/internal/apperrors"
	"shareit/internal/dto"
	"shareit/internal/models"
	"shareit/internal/repositories"
	"shareit/pkg/rabbitmq"
)

// EventPublisher emits booking lifecycle events. Implementations must be
// fire-and-forget; a publish failure never fails the operation.
type EventPublisher interface {
	PublishBookingEvent(event rabbitmq.BookingEvent) error
}

// BookingService validates and persists booking requests, enforces the
// non-overlap and ownership invariants and drives the status state machine.
type BookingService struct {
	bookingRepo repositories.BookingRepository
	itemRepo    repositories.ItemRepository
	userRepo    repositories.UserRepository
	events      EventPublisher
}

// NewBookingService creates a new BookingService. events may be nil, in which
// case no events are published.
func NewBookingService(bookingRepo repositories.BookingRepository, itemRepo repositories.ItemRepository,
	userRepo repositories.UserRepository, events EventPublisher) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		events:      events,
	}
}

// AddBooking creates a WAITING booking for the item, rejecting unavailable
// items and windows that conflict with the item's current or future WAITING
// and APPROVED bookings.
func (s *BookingService) AddBooking(bookerID int64, req dto.NewBookingRequest) (*dto.BookingDto, error) {
	booker, err := s.userRepo.GetByID(bookerID)
	if err != nil {
		return nil, err
	}
	item, err := s.itemRepo.GetByID(req.ItemID)
	if err != nil {
		return nil, err
	}

	start, err := dto.ParseTime(req.Start)
	if err != nil {
		return nil, apperrors.Validation("Invalid booking start date: %s", req.Start)
	}
	end, err := dto.ParseTime(req.End)
	if err != nil {
		return nil, apperrors.Validation("Invalid booking end date: %s", req.End)
	}

	if !item.Available {
		return nil, apperrors.Validation("Item is not available")
	}

	if err := s.validatePeriodsOverlap(item.ID, start, end); err != nil {
		return nil, err
	}

	booking := models.Booking{
		ItemID:    item.ID,
		Item:      *item,
		BookerID:  booker.ID,
		Booker:    *booker,
		Status:    models.StatusWaiting,
		StartTime: start,
		EndTime:   end,
	}
	if err := s.bookingRepo.Create(&booking); err != nil {
		return nil, err
	}

	s.publish(rabbitmq.EventBookingCreated, booking)

	result := dto.MapToBookingDto(booking)
	return &result, nil
}

// validatePeriodsOverlap rejects a new window that conflicts with an existing
// current-or-future WAITING or APPROVED booking of the item. The test checks
// the existing bookings' endpoints strictly against the new window, plus an
// exact-window match; a new window fully nested inside an existing one is not
// caught.
func (s *BookingService) validatePeriodsOverlap(itemID int64, start, end time.Time) error {
	candidates, err := s.bookingRepo.FindCurrentAndFutureByItem(itemID, time.Now(),
		[]models.BookingStatus{models.StatusWaiting, models.StatusApproved})
	if err != nil {
		return err
	}
	for _, existing := range candidates {
		if windowsConflict(existing, start, end) {
			return apperrors.Forbidden("The item is already booked for this period")
		}
	}
	return nil
}

func windowsConflict(existing models.Booking, start, end time.Time) bool {
	if existing.StartTime.Equal(start) && existing.EndTime.Equal(end) {
		return true
	}
	return (existing.StartTime.After(start) && existing.StartTime.Before(end)) ||
		(existing.EndTime.After(start) && existing.EndTime.Before(end))
}

// ApproveBooking is the single exposed transition of the state machine:
// WAITING moves to APPROVED or REJECTED, decided by the item's owner.
func (s *BookingService) ApproveBooking(actorID, bookingID int64, approved bool) (*dto.BookingDto, error) {
	booking, err := s.bookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Item.OwnerID != actorID {
		return nil, apperrors.Forbidden("User with id %d is not the owner of item", actorID)
	}
	if booking.Status != models.StatusWaiting {
		return nil, apperrors.Validation("The status of booking should be WAITING. Current status is %s", booking.Status)
	}

	eventType := rabbitmq.EventBookingApproved
	booking.Status = models.StatusApproved
	if !approved {
		booking.Status = models.StatusRejected
		eventType = rabbitmq.EventBookingRejected
	}
	if err := s.bookingRepo.Update(booking); err != nil {
		return nil, err
	}

	s.publish(eventType, *booking)

	result := dto.MapToBookingDto(*booking)
	return &result, nil
}

// GetBookingByID returns the booking to its booker or to the item's owner.
func (s *BookingService) GetBookingByID(actorID, bookingID int64) (*dto.BookingDto, error) {
	booking, err := s.bookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if booking.BookerID != actorID && booking.Item.OwnerID != actorID {
		return nil, apperrors.Forbidden("Current user with id %d is not the owner of item and has got no booking of it", actorID)
	}
	result := dto.MapToBookingDto(*booking)
	return &result, nil
}

// GetBookingsByUser lists bookings placed by the user, newest start first.
func (s *BookingService) GetBookingsByUser(userID int64, filter models.StateFilter) ([]dto.BookingDto, error) {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		return nil, err
	}
	bookings, err := s.bookingRepo.FindAllByBooker(userID, filter, time.Now())
	if err != nil {
		return nil, err
	}
	return dto.MapToBookingDtos(bookings), nil
}

// GetBookingsByOwner lists bookings of the items the user owns, newest start
// first.
func (s *BookingService) GetBookingsByOwner(ownerID int64, filter models.StateFilter) ([]dto.BookingDto, error) {
	if _, err := s.userRepo.GetByID(ownerID); err != nil {
		return nil, err
	}
	bookings, err := s.bookingRepo.FindAllByOwner(ownerID, filter, time.Now())
	if err != nil {
		return nil, err
	}
	return dto.MapToBookingDtos(bookings), nil
}

func (s *BookingService) publish(eventType string, booking models.Booking) {
	if s.events == nil {
		return
	}
	event := rabbitmq.NewBookingEvent(eventType, booking.ID, booking.ItemID, booking.BookerID, string(booking.Status))
	if err := s.events.PublishBookingEvent(event); err != nil {
		log.Warn().Err(err).Int64("booking_id", booking.ID).Str("type", eventType).
			Msg("failed to publish booking event")
	}
}
