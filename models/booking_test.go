package models

import "testing"

func TestBookingTransitions(t *testing.T) {
	cases := []struct {
		from, to BookingStatus
		ok       bool
	}{
		{BookingPending, BookingConfirmed, true},
		{BookingPending, BookingCanceled, true},
		{BookingPending, BookingCompleted, false},
		{BookingConfirmed, BookingCompleted, true},
		{BookingConfirmed, BookingCanceled, true},
		{BookingConfirmed, BookingPending, false},
		{BookingCompleted, BookingCanceled, false},
		{BookingCanceled, BookingConfirmed, false},
	}
	for _, c := range cases {
		b := Booking{Status: c.from}
		err := b.CanTransition(c.to)
		if c.ok && err != nil {
			t.Errorf("%s -> %s: unexpected error %v", c.from, c.to, err)
		}
		if !c.ok && err == nil {
			t.Errorf("%s -> %s: expected error", c.from, c.to)
		}
	}
}

func TestBookingIsActive(t *testing.T) {
	for _, c := range []struct {
		status BookingStatus
		active bool
	}{
		{BookingPending, true},
		{BookingConfirmed, true},
		{BookingCompleted, false},
		{BookingCanceled, false},
	} {
		b := Booking{Status: c.status}
		if b.IsActive() != c.active {
			t.Errorf("%s: expected active=%v", c.status, c.active)
		}
	}
}
