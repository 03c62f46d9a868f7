package models

import "gorm.io/gorm"

// Registration links one student to one course. CreatedAt is the
// registration timestamp reported in notifications. Uniqueness of
// (student, course) is enforced by a pre-check in the controllers, not by
// a database constraint.
type Registration struct {
	gorm.Model
	StudentID uint    `json:"studentId" gorm:"index;not null"`
	CourseID  uint    `json:"courseId" gorm:"index;not null"`
	Reference string  `json:"reference" gorm:"size:36"`
	Notes     string  `json:"notes" gorm:"type:text"`
	Student   Student `json:"student" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
	Course    Course  `json:"course" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}
