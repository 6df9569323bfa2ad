package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/izaj/izaj-golang/internal/auth"
	"github.com/izaj/izaj-golang/internal/email"
	"github.com/izaj/izaj-golang/internal/models"
	"github.com/izaj/izaj-golang/internal/session"
)

//
// --- Account Handlers ---
//

// RegisterInput defines the JSON for creating an account.
type RegisterInput struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	PhoneNumber string `json:"phoneNumber"`
}

// Register is the handler for POST /v1/register.
// It creates the account and emails a confirmation link. There is no
// auto-login: the user signs in explicitly afterwards.
func (h *Handlers) Register(c *gin.Context) {
	// 1. --- Bind & Validate JSON ---
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 2. --- Hash the Password ---
	var password models.Password
	if err := password.Set(input.Password); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	// 3. --- Build the User ---
	now := time.Now()
	user := &models.User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		PasswordHash: password.Hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if input.PhoneNumber != "" {
		user.Phone = &input.PhoneNumber
	}

	// 4. --- Save to Database ---
	_, err := h.DB.Exec(`
		INSERT INTO users (id, email, password_hash, first_name, last_name, phone, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		user.ID, user.Email, user.PasswordHash, user.FirstName, user.LastName, user.Phone, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
		return
	}

	// 5. --- Send the Confirmation Email ---
	// Token generation and delivery fail differently on purpose: the
	// user needs to know which step to retry.
	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate confirmation token"})
		return
	}
	displayName := session.Identity{FirstName: user.FirstName, LastName: user.LastName}.DisplayName()
	if err := h.Mailer.SendConfirmation(c.Request.Context(), user.Email, token, displayName); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send confirmation email"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created. Please check your email to confirm your address.",
		"user":    user,
	})
}

// LoginInput defines the JSON for signing in.
type LoginInput struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"rememberMe"`
}

// Login is the handler for POST /v1/login.
// On success the identity is written to both storage scopes and the
// token to exactly one of them, per the rememberMe choice.
func (h *Handlers) Login(c *gin.Context) {
	// 1. --- Bind & Validate JSON ---
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 2. --- Look Up the User ---
	var user models.User
	err := h.DB.QueryRow(`
		SELECT id, email, password_hash, first_name, last_name, phone
		FROM users WHERE email = ?`, input.Email).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &user.FirstName, &user.LastName, &user.Phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	// 3. --- Check the Password ---
	password := models.Password{Hash: user.PasswordHash}
	match, err := password.Matches(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify password"})
		return
	}
	if !match {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	// 4. --- Issue the Token ---
	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	// 5. --- Record the Session ---
	// The session store completes its storage writes before flipping to
	// authenticated, so a guard mounting on this tick sees a consistent
	// picture. A storage failure leaves the previous session intact.
	identity := session.Identity{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}
	if user.Phone != nil {
		identity.Phone = *user.Phone
	}
	if err := h.Sessions.Login(c.Request.Context(), identity, token, input.RememberMe); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to persist session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  identity,
		"token": token,
	})
}

// Logout is the handler for POST /v1/logout.
// Both storage scopes are cleared; a later restart finds nothing.
func (h *Handlers) Logout(c *gin.Context) {
	if err := h.Sessions.Logout(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me is the handler for GET /v1/auth/me.
// It returns the rehydrated identity. Note this is display data: the
// bearer token on the request, not the stored identity, is what proved
// authorization.
func (h *Handlers) Me(c *gin.Context) {
	identity := h.Sessions.Current()
	if identity == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No active session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": identity})
}

// ForgotPasswordInput defines the JSON for requesting a reset link.
type ForgotPasswordInput struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPassword is the handler for POST /v1/auth/forgot-password.
func (h *Handlers) ForgotPassword(c *gin.Context) {
	var input ForgotPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	err := h.DB.QueryRow(`
		SELECT id, email, first_name, last_name FROM users WHERE email = ?`, input.Email).
		Scan(&user.ID, &user.Email, &user.FirstName, &user.LastName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No account found for this email"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate reset token"})
		return
	}

	displayName := session.Identity{FirstName: user.FirstName, LastName: user.LastName}.DisplayName()
	if err := h.Mailer.SendPasswordReset(c.Request.Context(), user.Email, token, displayName); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send password reset email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset email sent"})
}

// RequestDeletion is the handler for POST /v1/account/request-deletion.
// It emails a deletion-confirmation link to the signed-in user.
func (h *Handlers) RequestDeletion(c *gin.Context) {
	userIDRaw, _ := c.Get("userID")
	userID := userIDRaw.(string)

	var user models.User
	err := h.DB.QueryRow(`
		SELECT id, email, first_name, last_name FROM users WHERE id = ?`, userID).
		Scan(&user.ID, &user.Email, &user.FirstName, &user.LastName)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		return
	}

	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate deletion token"})
		return
	}

	displayName := session.Identity{FirstName: user.FirstName, LastName: user.LastName}.DisplayName()
	err = h.Mailer.SendAccountDeletion(c.Request.Context(), user.Email, token, displayName)
	if errors.Is(err, email.ErrSendFailed) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send deletion email"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send deletion email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deletion confirmation email sent"})
}
