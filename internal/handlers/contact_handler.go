package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"joblane-backend/internal/dto"
	"joblane-backend/internal/models"
	"joblane-backend/internal/services"
	"joblane-backend/utils/response"
)

type ContactHandler struct {
	service *services.ContactService
}

func NewContactHandler(service *services.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var contact models.Contact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.service.Submit(r.Context(), &contact)
	if err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			response.Error(w, http.StatusBadRequest, "Name, Email, and Message are required")
			return
		}
		storeError(w, "Error adding contact", err)
		return
	}

	response.JSON(w, http.StatusCreated, dto.CreatedResponse{Message: "Contact added", ID: id})
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.service.List(r.Context())
	if err != nil {
		storeError(w, "Error fetching contacts", err)
		return
	}
	response.JSON(w, http.StatusOK, contacts)
}
