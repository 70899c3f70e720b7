package models

import (
	"fmt"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCanceled  BookingStatus = "canceled"
	BookingCompleted BookingStatus = "completed"
)

// Booking is a customer reservation of one technician slot. An active
// booking (pending or confirmed) makes the slot render as booked, which
// takes precedence over plain availability.
type Booking struct {
	gorm.Model
	Code             string         `json:"code" gorm:"unique"`
	TechnicianSlotID uint           `json:"technician_slot_id"`
	TechnicianSlot   TechnicianSlot `json:"technician_slot,omitempty" gorm:"foreignKey:TechnicianSlotID"`
	CustomerName     string         `json:"customer_name"`
	CustomerPhone    string         `json:"customer_phone"`
	VehicleModel     string         `json:"vehicle_model"`
	VehiclePlate     string         `json:"vehicle_plate"`
	ServiceRequest   string         `json:"service_request"`
	Status           BookingStatus  `json:"status"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.Status == "" {
		b.Status = BookingPending
	}
	return nil
}

// IsActive reports whether the booking still occupies its slot.
func (b *Booking) IsActive() bool {
	return b.Status == BookingPending || b.Status == BookingConfirmed
}

// CanTransition enforces the booking workflow: pending may be confirmed
// or canceled, confirmed may be completed or canceled, and the terminal
// states allow nothing further.
func (b *Booking) CanTransition(newStatus BookingStatus) error {
	switch b.Status {
	case BookingPending:
		if newStatus != BookingConfirmed && newStatus != BookingCanceled {
			return fmt.Errorf("invalid transition from pending to %s", newStatus)
		}
	case BookingConfirmed:
		if newStatus != BookingCompleted && newStatus != BookingCanceled {
			return fmt.Errorf("invalid transition from confirmed to %s", newStatus)
		}
	case BookingCompleted, BookingCanceled:
		return fmt.Errorf("no transitions allowed from %s", b.Status)
	}
	return nil
}

// UpdateStatus applies a transition after checking it is legal.
func (b *Booking) UpdateStatus(tx *gorm.DB, newStatus BookingStatus) error {
	if err := b.CanTransition(newStatus); err != nil {
		return err
	}
	b.Status = newStatus
	return tx.Save(b).Error
}
