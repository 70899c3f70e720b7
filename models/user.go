package models

import (
	"time"
)

// User is a staff account on the admin console: admins, center managers
// and the technicians themselves all log in through the same table.
type User struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email" gorm:"unique"`
	Password   string    `json:"password,omitempty"`
	Phone      string    `json:"phone"`
	IsVerified bool      `json:"is_verified"`
	RoleID     uint      `json:"role_id"`
	Role       Role      `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
