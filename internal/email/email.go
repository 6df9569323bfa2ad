// Package email is the notification contract the account flows depend
// on: one categorized message per event. Rendering and delivery details
// stay behind the Sender interface so callers can be tested without a
// mail server.
package email

import (
	"context"
	"errors"
	"fmt"
)

// ErrSendFailed marks a delivery failure. Callers branch on it to tell
// the user "we could not send the email" rather than "we could not
// generate your token", so every Sender implementation must wrap
// delivery errors with it.
var ErrSendFailed = errors.New("failed to send email")

// Sender delivers the four account emails the storefront sends.
type Sender interface {
	SendConfirmation(ctx context.Context, to, token, displayName string) error
	SendWelcome(ctx context.Context, to, displayName string) error
	SendPasswordReset(ctx context.Context, to, token, displayName string) error
	SendAccountDeletion(ctx context.Context, to, token, displayName string) error
}

// message is a composed email ready for a transport.
type message struct {
	to      string
	subject string
	body    string
}

func confirmationMessage(appURL, to, token, displayName string) message {
	return message{
		to:      to,
		subject: "Confirm Your Email - IZAJ Lighting Centre",
		body: fmt.Sprintf(
			"Hi %s,\n\nWelcome to IZAJ! Please confirm your email address by visiting:\n\n%s/auth/confirm-email?token=%s\n\nThis link will expire in 24 hours.",
			displayName, appURL, token,
		),
	}
}

func welcomeMessage(to, displayName string) message {
	return message{
		to:      to,
		subject: "Welcome to IZAJ Lighting Centre!",
		body: fmt.Sprintf(
			"Hi %s,\n\nYour email has been confirmed. Happy shopping!",
			displayName,
		),
	}
}

func passwordResetMessage(appURL, to, token, displayName string) message {
	return message{
		to:      to,
		subject: "Reset Your Password - IZAJ Lighting Centre",
		body: fmt.Sprintf(
			"Hi %s,\n\nWe received a request to reset your password. Visit the link below to choose a new one:\n\n%s/auth/reset-password?token=%s\n\nIf you did not request this, you can ignore this email.",
			displayName, appURL, token,
		),
	}
}

func accountDeletionMessage(appURL, to, token, displayName string) message {
	return message{
		to:      to,
		subject: "Confirm Account Deletion - IZAJ Lighting Centre",
		body: fmt.Sprintf(
			"Hi %s,\n\nWe received a request to delete your account. Visit the link below to confirm:\n\n%s/auth/confirm-deletion?token=%s\n\nIf you did not request this, please change your password immediately.",
			displayName, appURL, token,
		),
	}
}
