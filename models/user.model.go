package models

import (
	"time"

	"gorm.io/gorm"
)

// User is the account identity created during registration. It is the
// login credential holder; personal data lives on the linked Student.
type User struct {
	gorm.Model
	Username  string    `json:"username" gorm:"unique;not null"`
	Email     string    `json:"email" gorm:"unique;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Role      string    `json:"role" gorm:"default:'USER'"` // USER, ADMIN
	LastLogin time.Time `json:"lastLogin" gorm:"default:NULL"`
}
