package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"joblane-backend/internal/dto"
	"joblane-backend/internal/middleware"
	"joblane-backend/internal/services"
	"joblane-backend/utils/response"
)

type AuthHandler struct {
	service *services.AuthService
}

func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	role, err := h.service.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			response.Error(w, http.StatusBadRequest, "All fields are required")
		case errors.Is(err, services.ErrUserExists):
			response.Error(w, http.StatusBadRequest, "User already exists")
		default:
			storeError(w, "Server error", err)
		}
		return
	}

	response.JSON(w, http.StatusCreated, dto.RegisterResponse{
		Message: "User registered successfully",
		Role:    role,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tokenString, user, err := h.service.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			response.Error(w, http.StatusBadRequest, "All fields are required")
		case errors.Is(err, services.ErrInvalidCredentials):
			response.Error(w, http.StatusBadRequest, "Invalid credentials")
		default:
			storeError(w, "Server error", err)
		}
		return
	}

	response.JSON(w, http.StatusOK, dto.LoginResponse{
		Token: tokenString,
		User:  *user,
	})
}

// Protected echoes the decoded claims back to any authenticated caller.
func (h *AuthHandler) Protected(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		response.Error(w, http.StatusUnauthorized, "Unauthorized: No token provided")
		return
	}

	response.Success(w, claims, "Access granted")
}

func (h *AuthHandler) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		response.Error(w, http.StatusUnauthorized, "Unauthorized: No token provided")
		return
	}

	response.Success(w, claims, "Welcome, Admin!")
}
