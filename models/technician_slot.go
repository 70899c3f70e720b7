package models

import (
	"time"

	"gorm.io/gorm"
)

// TechnicianSlot is one technician's availability for one date+slot pair.
// The composite unique index backs the duplicate guard: the guard warns
// before submission, the index is the final word.
type TechnicianSlot struct {
	gorm.Model
	TechnicianID uint       `json:"technician_id" gorm:"uniqueIndex:idx_tech_date_slot"`
	Technician   Technician `json:"technician,omitempty" gorm:"foreignKey:TechnicianID"`
	WorkDate     time.Time  `json:"work_date" gorm:"uniqueIndex:idx_tech_date_slot"`
	SlotID       uint       `json:"slot_id" gorm:"uniqueIndex:idx_tech_date_slot"`
	Slot         TimeSlot   `json:"slot,omitempty" gorm:"foreignKey:SlotID"`
	IsAvailable  bool       `json:"is_available" gorm:"default:true"`
	Notes        string     `json:"notes" gorm:"size:255"`

	Bookings []Booking `json:"bookings,omitempty" gorm:"foreignKey:TechnicianSlotID"`
}
