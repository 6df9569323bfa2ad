package email

import (
	"context"
	"log"
)

// LogSender prints each email to the console instead of delivering it.
// This lets local development "see" the emails without SMTP credentials.
type LogSender struct {
	AppURL string
}

func (s *LogSender) SendConfirmation(_ context.Context, to, token, displayName string) error {
	return s.print(confirmationMessage(s.appURL(), to, token, displayName))
}

func (s *LogSender) SendWelcome(_ context.Context, to, displayName string) error {
	return s.print(welcomeMessage(to, displayName))
}

func (s *LogSender) SendPasswordReset(_ context.Context, to, token, displayName string) error {
	return s.print(passwordResetMessage(s.appURL(), to, token, displayName))
}

func (s *LogSender) SendAccountDeletion(_ context.Context, to, token, displayName string) error {
	return s.print(accountDeletionMessage(s.appURL(), to, token, displayName))
}

func (s *LogSender) appURL() string {
	if s.AppURL != "" {
		return s.AppURL
	}
	return "http://localhost:5173"
}

func (s *LogSender) print(m message) error {
	log.Println("====================================================")
	log.Printf("--- NEW EMAIL (PLACEHOLDER) ---")
	log.Printf("To: %s", m.to)
	log.Printf("Subject: %s", m.subject)
	log.Println("--- Body ---")
	log.Println(m.body)
	log.Println("====================================================")
	return nil
}
