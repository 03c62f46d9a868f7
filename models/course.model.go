package models

import "gorm.io/gorm"

// Course levels follow the CEFR scale the school teaches.
const (
	LevelA1 = "A1"
	LevelA2 = "A2"
	LevelB1 = "B1"
	LevelB2 = "B2"
)

// CourseLevels lists the accepted level values in order.
var CourseLevels = []string{LevelA1, LevelA2, LevelB1, LevelB2}

// IsValidLevel reports whether level is one of the accepted course levels.
func IsValidLevel(level string) bool {
	for _, l := range CourseLevels {
		if l == level {
			return true
		}
	}
	return false
}

// Course code is the immutable public identity; admins may edit everything
// else after creation.
type Course struct {
	gorm.Model
	Title         string  `json:"title" gorm:"not null"`
	Code          string  `json:"code" gorm:"unique;not null"`
	Level         string  `json:"level" gorm:"not null"` // A1, A2, B1, B2
	DurationWeeks uint    `json:"durationWeeks" gorm:"not null"`
	Description   string  `json:"description" gorm:"type:text"`
	Price         float64 `json:"price" gorm:"type:decimal(8,2);default:0"`
}
