package handlers

import (
	"database/sql"

	"github.com/izaj/izaj-golang/internal/email"
	"github.com/izaj/izaj-golang/internal/psgc"
	"github.com/izaj/izaj-golang/internal/session"
)

// Handlers holds all dependencies for the API handlers.
type Handlers struct {
	DB       *sql.DB        // users table
	Sessions *session.Store // current identity + the two storage scopes
	Mailer   email.Sender   // account notification emails
	PSGC     *psgc.Client   // province lookup upstream
}
