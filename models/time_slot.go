package models

import (
	"gorm.io/gorm"
)

// TimeSlot is one interval of the fixed time-of-day catalogue
// (e.g. 08:00-09:00). The catalogue is maintained by admins; schedule
// rows reference slots by id and never invent their own intervals.
type TimeSlot struct {
	gorm.Model
	SlotLabel string `json:"slot_label"`
	StartTime string `json:"start_time"` // Format "HH:MM" in 24h
	EndTime   string `json:"end_time"`   // Format "HH:MM" in 24h
	IsActive  bool   `json:"is_active" gorm:"default:true"`
}
