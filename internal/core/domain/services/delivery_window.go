package services

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
)

// ErrDeliveryDateTooEarly is returned by DeliveryWindow.Check for dates
// before tomorrow.
var ErrDeliveryDateTooEarly = errors.New("delivery date must be from the next day onward")

// DeliveryWindow decides which delivery dates are open for new routes.
// "Today" is taken from the clock in the configured location, so the window
// moves at local midnight, not UTC midnight.
//
// Example usage:
//
//	loc, _ := time.LoadLocation("America/Bogota")
//	window := services.NewDeliveryWindow(time.Now, loc)
//
//	if err := window.Check(date); errors.Is(err, services.ErrDeliveryDateTooEarly) {
//	    // today or in the past
//	}
type DeliveryWindow struct {
	now      func() time.Time
	location *time.Location
}

// NewDeliveryWindow creates a window. A nil clock means time.Now and a nil
// location means UTC.
func NewDeliveryWindow(now func() time.Time, location *time.Location) *DeliveryWindow {
	if now == nil {
		now = time.Now
	}
	if location == nil {
		location = time.UTC
	}
	return &DeliveryWindow{now: now, location: location}
}

// Today returns the current calendar date in the window's location.
func (w *DeliveryWindow) Today() kernel.Date {
	return kernel.DateOf(w.now().In(w.location))
}

// Earliest returns the first date open for new routes.
func (w *DeliveryWindow) Earliest() kernel.Date {
	return w.Today().AddDays(1)
}

// Check returns ErrDeliveryDateTooEarly when date is today or earlier.
func (w *DeliveryWindow) Check(date kernel.Date) error {
	if date.Before(w.Earliest()) {
		return ErrDeliveryDateTooEarly
	}
	return nil
}
