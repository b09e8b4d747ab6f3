package repositories

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"shareit/internal/apperrors"
	"shareit/internal/models"
)

// GORMBookingRepository is a GORM implementation of BookingRepository.
type GORMBookingRepository struct {
	db *gorm.DB
}

// NewGORMBookingRepository creates a new instance of GORMBookingRepository.
func NewGORMBookingRepository(db *gorm.DB) *GORMBookingRepository {
	return &GORMBookingRepository{db: db}
}

// GetByID retrieves a single booking with its item (and the item's owner) and
// booker preloaded.
func (r *GORMBookingRepository) GetByID(id int64) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.Preload("Item.Owner").Preload("Booker").
		First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Booking with id %d not found", id)
		}
		return nil, fmt.Errorf("failed to get booking by id %d: %w", id, err)
	}
	return &booking, nil
}

// Create persists a new booking.
func (r *GORMBookingRepository) Create(booking *models.Booking) error {
	if err := r.db.Create(booking).Error; err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// Update saves a modified booking.
func (r *GORMBookingRepository) Update(booking *models.Booking) error {
	res := r.db.Save(booking)
	if res.Error != nil {
		return fmt.Errorf("failed to update booking: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("Booking with id %d not found", booking.ID)
	}
	return nil
}

// FindAllByBooker lists the user's bookings, filtered, start time descending.
func (r *GORMBookingRepository) FindAllByBooker(bookerID int64, filter models.StateFilter, now time.Time) ([]models.Booking, error) {
	q := r.db.Preload("Item.Owner").Preload("Booker").
		Where("booker_id = ?", bookerID)
	q = applyStateFilter(q, filter, now)

	var bookings []models.Booking
	if err := q.Order("start_time DESC").Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to get bookings of user %d: %w", bookerID, err)
	}
	return bookings, nil
}

// FindAllByOwner lists bookings of the user's items, filtered, start time
// descending.
func (r *GORMBookingRepository) FindAllByOwner(ownerID int64, filter models.StateFilter, now time.Time) ([]models.Booking, error) {
	q := r.db.Preload("Item.Owner").Preload("Booker").
		Joins("JOIN items ON items.id = bookings.item_id").
		Where("items.owner_id = ?", ownerID)
	q = applyStateFilter(q, filter, now)

	var bookings []models.Booking
	if err := q.Order("bookings.start_time DESC").Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to get bookings of owner %d: %w", ownerID, err)
	}
	return bookings, nil
}

// applyStateFilter narrows a booking query per the requested filter. PAST and
// FUTURE are strict on end/start; CURRENT means the window contains now
// strictly; the status filters ignore time entirely.
func applyStateFilter(q *gorm.DB, filter models.StateFilter, now time.Time) *gorm.DB {
	switch filter {
	case models.FilterCurrent:
		return q.Where("bookings.start_time < ? AND bookings.end_time > ?", now, now)
	case models.FilterPast:
		return q.Where("bookings.end_time < ?", now)
	case models.FilterFuture:
		return q.Where("bookings.start_time > ?", now)
	case models.FilterWaiting, models.FilterApproved, models.FilterRejected:
		return q.Where("bookings.status = ?", string(filter))
	default:
		return q
	}
}

// FindCurrentAndFutureByItem fetches the overlap-check candidate set: the
// item's bookings that are still running or have not started yet, in any of
// the given statuses.
func (r *GORMBookingRepository) FindCurrentAndFutureByItem(itemID int64, now time.Time, statuses []models.BookingStatus) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.
		Where("item_id = ?", itemID).
		Where("start_time >= ? OR (start_time < ? AND end_time > ?)", now, now, now).
		Where("status IN ?", statuses).
		Order("start_time").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get current and future bookings of item %d: %w", itemID, err)
	}
	return bookings, nil
}

// FindApprovedByItems fetches every approved booking of the given items,
// start time ascending.
func (r *GORMBookingRepository) FindApprovedByItems(itemIDs []int64) ([]models.Booking, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}
	var bookings []models.Booking
	err := r.db.
		Where("item_id IN ?", itemIDs).
		Where("status = ?", string(models.StatusApproved)).
		Order("start_time").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get approved bookings for items: %w", err)
	}
	return bookings, nil
}

// HasFinishedBooking reports whether the user completed an approved booking
// of the item before now.
func (r *GORMBookingRepository) HasFinishedBooking(bookerID, itemID int64, now time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&models.Booking{}).
		Where("booker_id = ? AND item_id = ?", bookerID, itemID).
		Where("status = ?", string(models.StatusApproved)).
		Where("end_time < ?", now).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check finished bookings of user %d for item %d: %w", bookerID, itemID, err)
	}
	return count > 0, nil
}
