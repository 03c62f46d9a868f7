package models

import "gorm.io/gorm"

// Student holds the learner profile. UserID is nullable: a student row may
// exist without a login (created by admin), but the registration workflow
// always links one. A user owns at most one student profile.
type Student struct {
	gorm.Model
	UserID   *uint  `json:"userId" gorm:"uniqueIndex"`
	FullName string `json:"fullName" gorm:"not null"`
	Email    string `json:"email" gorm:"not null"`
	Phone    string `json:"phone" gorm:"not null"`
	User     *User  `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
