package whatsapp

import (
	"fmt"
	"time"

	"github.com/zayi-14/german-school/models"
)

// RegistrationMessage formats the owner notification for a new student.
// When the student picked a course the registration and course must both
// be given; otherwise pass nil and the text notes that no course was
// selected yet.
func RegistrationMessage(student models.Student, registration *models.Registration, course *models.Course) string {
	if registration == nil || course == nil {
		return fmt.Sprintf(
			"New registration:\nName: %s\nEmail: %s\nPhone: %s\nNo course selected yet.",
			student.FullName, student.Email, student.Phone,
		)
	}

	return fmt.Sprintf(
		"New registration:\nName: %s\nEmail: %s\nPhone: %s\nCourse: %s (%s)\nRegistered at: %s",
		student.FullName, student.Email, student.Phone,
		course.Title, course.Code,
		registration.CreatedAt.Format(time.RFC3339),
	)
}

// DailySummaryMessage formats the daily registrations digest for the owner.
func DailySummaryMessage(count int64, since time.Time) string {
	return fmt.Sprintf(
		"Daily summary: %d new registration(s) since %s.",
		count, since.Format("2006-01-02 15:04"),
	)
}
