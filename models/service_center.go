package models

import (
	"gorm.io/gorm"
)

// ServiceCenter is one physical EV service location.
type ServiceCenter struct {
	gorm.Model
	Name        string       `json:"name"`
	Address     string       `json:"address"`
	Phone       string       `json:"phone"`
	IsActive    bool         `json:"is_active" gorm:"default:true"`
	Technicians []Technician `json:"technicians,omitempty" gorm:"foreignKey:CenterID"`
}
