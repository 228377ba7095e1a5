package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "nestegg/internal/errors"
	"nestegg/internal/middleware"
	"nestegg/internal/models"
	"nestegg/internal/services"
)

// AuthHandler handles authentication and profile requests.
type AuthHandler struct {
	authService services.AuthServicer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService services.AuthServicer) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents the registration request payload
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email,max=255"`
	Password    string `json:"password" binding:"required,min=6,max=128"`
	DisplayName string `json:"display_name" binding:"max=100"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest represents the display-name update payload
type UpdateProfileRequest struct {
	DisplayName string `json:"display_name" binding:"required,max=100"`
}

// UserResponse represents the owner profile in responses
type UserResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

// AuthResponse represents the authentication response with token
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// userJSON renders a profile for responses.
func userJSON(user *models.User) gin.H {
	return gin.H{
		"id":           user.ID,
		"email":        user.Email,
		"display_name": user.DisplayName,
		"created_at":   user.CreatedAt,
	}
}

// openSession issues a token for the owner and records its hash.
func (h *AuthHandler) openSession(user *models.User) (string, error) {
	token, err := middleware.GenerateToken(&models.Identity{
		Base:  models.Base{ID: user.ID},
		Email: user.Email,
	})
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := h.authService.StoreSession(user.ID, middleware.HashToken(token)); err != nil {
		return "", err
	}
	return token, nil
}

// Register handles owner sign-up
// @Summary     Register a new owner
// @Description Create a backend identity and its owner profile
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body RegisterRequest true "Registration data"
// @Success     201 {object} AuthResponse "Owner registered and token generated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Email already registered"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.authService.SignUp(req.Email, req.Password, req.DisplayName)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, err := h.openSession(user)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "user": userJSON(user)})
}

// Login handles owner login
// @Summary     Log in
// @Description Authenticate an owner and get a token; a missing profile is self-healed
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "Login credentials"
// @Success     200 {object} AuthResponse "Owner authenticated and token generated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid credentials"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.authService.LogIn(req.Email, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, err := h.openSession(user)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": userJSON(user)})
}

// GetProfile returns the current owner's profile
// @Summary     Get current owner
// @Description Fetch the current owner's profile; without a session the owner is absent, not an error
// @Tags        profile
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} UserResponse "Current owner, or null without a session"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	user, err := h.authService.FetchCurrentOwner(optionalIdentityID(c))
	if err != nil {
		respondWithError(c, err)
		return
	}
	if user == nil {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": userJSON(user)})
}

// UpdateProfile changes the owner's display name
// @Summary     Update display name
// @Description Patch only the display-name field; without a session this is a silent no-op
// @Tags        profile
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]string "Display name updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.authService.UpdateDisplayName(optionalIdentityID(c), req.DisplayName); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Logout ends the current session
// @Summary     Log out
// @Description End the backend session and clear the session slot
// @Tags        auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]string "Signed out"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.SignOut(optionalIdentityID(c)); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "signed_out"})
}
