package models

import "gorm.io/gorm"

// ContactMessage stores a message left through the public contact form.
type ContactMessage struct {
	gorm.Model
	Name    string `json:"name" gorm:"not null"`
	Email   string `json:"email" gorm:"not null"`
	Message string `json:"message" gorm:"type:text;not null"`
}
