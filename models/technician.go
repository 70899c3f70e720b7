package models

import (
	"gorm.io/gorm"
)

type Technician struct {
	gorm.Model
	UserID    uint          `json:"user_id"`
	User      User          `json:"user,omitempty" gorm:"foreignKey:UserID"`
	CenterID  uint          `json:"center_id"`
	Center    ServiceCenter `json:"center,omitempty" gorm:"foreignKey:CenterID"`
	Specialty string        `json:"specialty"` // e.g. "battery", "drivetrain", "bodywork"
	AvatarURL string        `json:"avatar_url"`
	IsActive  bool          `json:"is_active" gorm:"default:true"`

	Slots []TechnicianSlot `json:"slots,omitempty" gorm:"foreignKey:TechnicianID"`
}
