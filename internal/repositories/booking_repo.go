package repositories

import (
	"time"

	"shareit/internal/models"
)

// BookingRepository defines the interface for booking data access.
type BookingRepository interface {
	GetByID(id int64) (*models.Booking, error)
	Create(booking *models.Booking) error
	Update(booking *models.Booking) error
	// FindAllByBooker lists bookings placed by the user, filtered and ordered
	// by start time descending.
	FindAllByBooker(bookerID int64, filter models.StateFilter, now time.Time) ([]models.Booking, error)
	// FindAllByOwner lists bookings of items the user owns, filtered and
	// ordered by start time descending.
	FindAllByOwner(ownerID int64, filter models.StateFilter, now time.Time) ([]models.Booking, error)
	// FindCurrentAndFutureByItem returns the item's bookings whose window is
	// still current or lies in the future, in the given statuses. Candidate
	// set for the overlap check.
	FindCurrentAndFutureByItem(itemID int64, now time.Time, statuses []models.BookingStatus) ([]models.Booking, error)
	// FindApprovedByItems returns all approved bookings for the given items,
	// ordered by start time ascending. Feed for the last/next annotation.
	FindApprovedByItems(itemIDs []int64) ([]models.Booking, error)
	// HasFinishedBooking reports whether the user has an approved booking of
	// the item that already ended.
	HasFinishedBooking(bookerID, itemID int64, now time.Time) (bool, error)
}
