package utils

import (
	"log"
	"time"

	"github.com/zayi-14/german-school/database"
	"github.com/zayi-14/german-school/models"
	"github.com/zayi-14/german-school/whatsapp"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[REPORT-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// sendDailyRegistrationSummary counts the last day's registrations and
// pings the owner. Nothing is sent on a zero-registration day.
func sendDailyRegistrationSummary() {
	since := time.Now().Add(-24 * time.Hour)

	var count int64
	if err := database.Database.Db.Model(&models.Registration{}).
		Where("created_at >= ?", since).
		Count(&count).Error; err != nil {
		logScheduler("Error counting registrations: " + err.Error())
		return
	}

	if count == 0 {
		return
	}

	if whatsapp.NotifyOwner(whatsapp.DailySummaryMessage(count, since)) {
		logScheduler("Daily registration summary sent.")
	}
}

// StartReportScheduler runs the daily owner summary at 08:00.
func StartReportScheduler() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("0 8 * * *", sendDailyRegistrationSummary); err != nil {
		logScheduler("Error scheduling daily summary: " + err.Error())
		return c
	}

	c.Start()
	logScheduler("Report scheduler started.")
	return c
}
