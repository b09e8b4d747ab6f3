package models

import (
	"strings"
	"time"
)

// BookingStatus is the booking state machine: every booking starts WAITING and
// moves exactly once to APPROVED or REJECTED via the owner's decision.
// CANCELED is declared for wire compatibility but no operation transitions
// into it.
type BookingStatus string

const (
	StatusWaiting  BookingStatus = "WAITING"
	StatusApproved BookingStatus = "APPROVED"
	StatusRejected BookingStatus = "REJECTED"
	StatusCanceled BookingStatus = "CANCELED"
)

// Booking is a time-bounded request by a booker to use an item.
type Booking struct {
	ID        int64         `json:"id" gorm:"primaryKey;autoIncrement"`
	ItemID    int64         `json:"itemId" gorm:"index;not null"`
	Item      Item          `json:"-" gorm:"foreignKey:ItemID"`
	BookerID  int64         `json:"bookerId" gorm:"index;not null"`
	Booker    User          `json:"-" gorm:"foreignKey:BookerID"`
	Status    BookingStatus `json:"status" gorm:"type:varchar(16);not null"`
	StartTime time.Time     `json:"startTime"`
	EndTime   time.Time     `json:"endTime"`
}

// StateFilter selects which bookings a listing returns.
type StateFilter string

const (
	FilterAll      StateFilter = "ALL"
	FilterCurrent  StateFilter = "CURRENT"
	FilterPast     StateFilter = "PAST"
	FilterFuture   StateFilter = "FUTURE"
	FilterWaiting  StateFilter = "WAITING"
	FilterApproved StateFilter = "APPROVED"
	FilterRejected StateFilter = "REJECTED"
)

// ParseStateFilter maps a query parameter onto a filter. The second return
// reports whether the value was recognized; callers decide how strict to be
// (the server falls back to ALL, the gateway rejects).
func ParseStateFilter(s string) (StateFilter, bool) {
	switch StateFilter(strings.ToUpper(s)) {
	case FilterAll:
		return FilterAll, true
	case FilterCurrent:
		return FilterCurrent, true
	case FilterPast:
		return FilterPast, true
	case FilterFuture:
		return FilterFuture, true
	case FilterWaiting:
		return FilterWaiting, true
	case FilterApproved:
		return FilterApproved, true
	case FilterRejected:
		return FilterRejected, true
	}
	return FilterAll, false
}
