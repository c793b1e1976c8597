package handlers

import (
	"net/http"

	"github.com/ledgerbook/backend/internal/middleware"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/services"
	"go.uber.org/zap"
)

// RegisterResponse represents the registration response
// @Description Registration response structure
type RegisterResponse struct {
	Message string          `json:"message" example:"Successfully registered"`
	User    models.UserInfo `json:"user"`
}

// LoginResponse represents the login response
// @Description Login response structure
type LoginResponse struct {
	Message string          `json:"message" example:"Successfully logged in"`
	Access  string          `json:"access" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`  // Short-lived access token
	Refresh string          `json:"refresh" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."` // Long-lived refresh token
	User    models.UserInfo `json:"user"`
}

// RefreshResponse carries a new access token.
type RefreshResponse struct {
	Access string `json:"access"`
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

type AuthHandler struct {
	service *services.AuthService
	logger  *zap.Logger
}

func NewAuthHandler(service *services.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{service: service, logger: logger.Named("auth")}
}

// Register handles user registration
// @Summary Register a new user
// @Description Register a new user with username, optional email and a confirmed password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body services.RegisterRequest true "Registration request"
// @Success 201 {object} RegisterResponse "Registration successful"
// @Failure 400 {object} services.ErrorResponse "Validation failed or username taken"
// @Failure 500 {object} services.ErrorResponse "Internal server error"
// @Router /auth/register/ [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	h.logger.Debug("registration attempt", zap.String("remote_addr", r.RemoteAddr))

	var req services.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.service.Register(r.Context(), req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, RegisterResponse{Message: "Successfully registered", User: user.Info()})
}

// Login handles user authentication
// @Summary Login user
// @Description Authenticate with username and password and receive an access and a refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body services.LoginRequest true "Login request"
// @Success 200 {object} LoginResponse "Login successful"
// @Failure 400 {object} services.ErrorResponse "Invalid username or password"
// @Failure 500 {object} services.ErrorResponse "Internal server error"
// @Router /auth/login/ [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	h.logger.Debug("login attempt", zap.String("remote_addr", r.RemoteAddr))

	var req services.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.service.Login(r.Context(), req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{
		Message: "Successfully logged in",
		Access:  result.Tokens.Access,
		Refresh: result.Tokens.Refresh,
		User:    result.User.Info(),
	})
}

// Refresh exchanges a refresh token for a new access token
// @Summary Refresh access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body services.RefreshRequest true "Refresh token"
// @Success 200 {object} RefreshResponse
// @Failure 400 {object} services.ErrorResponse
// @Failure 401 {object} services.ErrorResponse "Token is invalid or expired"
// @Router /auth/token/refresh/ [post]
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req services.RefreshRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	access, err := h.service.Refresh(r.Context(), req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, RefreshResponse{Access: access})
}

// Logout handles user logout
// @Summary Logout user
// @Description Revoke the refresh token in the body and the bearer access token, if any
// @Tags auth
// @Accept json
// @Produce json
// @Param request body services.RefreshRequest false "Refresh token to revoke"
// @Success 200 {object} MessageResponse "Logout successful"
// @Router /auth/logout/ [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var req services.RefreshRequest
	if r.ContentLength != 0 && !decodeJSON(w, r, &req) {
		return
	}

	access, _ := middleware.BearerToken(r.Header.Get("Authorization"))
	h.service.Logout(r.Context(), access, req.Refresh)

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Successfully logged out"})
}
