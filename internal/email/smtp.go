package email

import (
	"context"
	"fmt"
	"net/smtp"
	"os"
)

// SMTPSender delivers through a plain SMTP relay (Gmail in production).
type SMTPSender struct {
	addr   string // host:port
	from   string
	auth   smtp.Auth
	appURL string
}

// NewSMTPSenderFromEnv reads GMAIL_USER, GMAIL_APP_PASSWORD, SMTP_ADDR
// and APP_URL. It returns ok=false when no credentials are configured,
// so the caller can fall back to the log sender.
func NewSMTPSenderFromEnv() (*SMTPSender, bool) {
	user := os.Getenv("GMAIL_USER")
	pass := os.Getenv("GMAIL_APP_PASSWORD")
	if user == "" || pass == "" {
		return nil, false
	}

	addr := os.Getenv("SMTP_ADDR")
	if addr == "" {
		addr = "smtp.gmail.com:587"
	}
	appURL := os.Getenv("APP_URL")
	if appURL == "" {
		appURL = "http://localhost:5173"
	}

	return &SMTPSender{
		addr:   addr,
		from:   user,
		auth:   smtp.PlainAuth("", user, pass, "smtp.gmail.com"),
		appURL: appURL,
	}, true
}

// NewSMTPSender builds a sender for the given relay. Used by tests.
func NewSMTPSender(addr, from, appURL string) *SMTPSender {
	return &SMTPSender{addr: addr, from: from, appURL: appURL}
}

func (s *SMTPSender) SendConfirmation(ctx context.Context, to, token, displayName string) error {
	return s.send(ctx, confirmationMessage(s.appURL, to, token, displayName))
}

func (s *SMTPSender) SendWelcome(ctx context.Context, to, displayName string) error {
	return s.send(ctx, welcomeMessage(to, displayName))
}

func (s *SMTPSender) SendPasswordReset(ctx context.Context, to, token, displayName string) error {
	return s.send(ctx, passwordResetMessage(s.appURL, to, token, displayName))
}

func (s *SMTPSender) SendAccountDeletion(ctx context.Context, to, token, displayName string) error {
	return s.send(ctx, accountDeletionMessage(s.appURL, to, token, displayName))
}

func (s *SMTPSender) send(ctx context.Context, m message) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	payload := fmt.Sprintf(
		"From: \"IZAJ Lighting Centre\" <%s>\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		s.from, m.to, m.subject, m.body,
	)

	if err := smtp.SendMail(s.addr, s.auth, s.from, []string{m.to}, []byte(payload)); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	return nil
}
