package models

import "gorm.io/gorm"

// Feedback is a student testimonial. It stays hidden from the public
// homepage until an admin flips IsApproved.
type Feedback struct {
	gorm.Model
	StudentID  uint    `json:"studentId" gorm:"index;not null"`
	Rating     int     `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"` // 1–5 rating
	Message    string  `json:"message" gorm:"type:text;not null"`
	IsApproved bool    `json:"isApproved" gorm:"default:false"`
	Student    Student `json:"student" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
}
