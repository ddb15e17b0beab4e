package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"food-ordering-backend/internal/models"
	"food-ordering-backend/internal/service"
)

// AuthHandler handles registration and login
type AuthHandler struct {
	service *service.UserService
	logger  *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service *service.UserService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{service: service, logger: logger}
}

// Register handles POST /auth/register. New accounts are always
// CUSTOMER; admins are created through CreateAdmin by existing admins.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	user, err := h.service.Register(r.Context(), req)
	if err != nil {
		WriteServiceError(w, err, h.logger)
		return
	}

	h.logger.Info("user registered", "username", user.Username)
	WriteJSON(w, http.StatusOK, map[string]string{"message": "User registered successfully"}, h.logger)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		WriteServiceError(w, err, h.logger)
		return
	}

	h.logger.Info("user logged in", "username", resp.Username, "role", resp.Role)
	WriteJSON(w, http.StatusOK, resp, h.logger)
}

// ListUsers handles GET /users (admin only)
func (h *AuthHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		WriteServiceError(w, err, h.logger)
		return
	}
	WriteJSON(w, http.StatusOK, users, h.logger)
}

// CreateAdmin handles POST /auth/create-admin (admin only)
func (h *AuthHandler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	user, err := h.service.CreateAdmin(r.Context(), req)
	if err != nil {
		WriteServiceError(w, err, h.logger)
		return
	}

	h.logger.Info("admin created", "username", user.Username)
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Admin user created successfully"}, h.logger)
}
