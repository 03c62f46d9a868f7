package utils

import (
	"fmt"
	"net/smtp"

	"github.com/zayi-14/german-school/config"
)

// SendWelcomeEmail sends a welcome email after a successful registration.
// Skipped silently when no sender is configured.
func SendWelcomeEmail(email, fullName string) error {
	if config.AppConfig == nil || config.AppConfig.EmailSender == "" {
		return nil
	}

	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.EmailPassword // App password

	to := []string{email}

	subject := "Subject: Welcome to the German School\nMIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"

	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);">
					<h2 style="color: #333333; text-align: center;">Willkommen, %s!</h2>
					<p style="font-size: 16px; color: #555555;">Your registration was successful. You can now log in, manage your profile and enroll in courses.</p>
					<p style="font-size: 14px; color: #999999; text-align: center; margin-top: 30px;">Bis bald!</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb;">German School Team</p>
				</div>
			</body>
		</html>
	`, fullName)

	message := []byte(subject + "\n" + body)

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, message); err != nil {
		fmt.Println("Error sending welcome email:", err)
		return err
	}

	return nil
}
