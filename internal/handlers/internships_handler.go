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

type InternshipsHandler struct {
	service *services.InternshipService
}

func NewInternshipsHandler(service *services.InternshipService) *InternshipsHandler {
	return &InternshipsHandler{service: service}
}

func (h *InternshipsHandler) List(w http.ResponseWriter, r *http.Request) {
	internships, err := h.service.List(r.Context())
	if err != nil {
		storeError(w, "Error fetching internships", err)
		return
	}
	response.JSON(w, http.StatusOK, internships)
}

// Search lists internships whose title contains the path segment,
// case-insensitive.
func (h *InternshipsHandler) Search(w http.ResponseWriter, r *http.Request) {
	internships, err := h.service.Search(r.Context(), r.PathValue("name"))
	if err != nil {
		storeError(w, "Error fetching internships", err)
		return
	}
	response.JSON(w, http.StatusOK, internships)
}

func (h *InternshipsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var internship models.Internship
	if err := json.NewDecoder(r.Body).Decode(&internship); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.service.Create(r.Context(), &internship)
	if err != nil {
		storeError(w, "Error adding internship", err)
		return
	}

	response.JSON(w, http.StatusCreated, dto.CreatedResponse{Message: "Internship added", ID: id})
}

func (h *InternshipsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	modified, err := h.service.Update(r.Context(), r.PathValue("id"), fields)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidID):
			response.Error(w, http.StatusBadRequest, "Invalid ID format")
		case errors.Is(err, services.ErrNotFound):
			response.Error(w, http.StatusNotFound, "Internship not found or no changes made")
		default:
			storeError(w, "Error updating internship", err)
		}
		return
	}

	response.JSON(w, http.StatusOK, dto.UpdatedResponse{Message: "Internship updated", ModifiedCount: modified})
}

func (h *InternshipsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.service.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidID):
			response.Error(w, http.StatusBadRequest, "Invalid ID format")
		case errors.Is(err, services.ErrNotFound):
			response.Error(w, http.StatusNotFound, "Internship not found")
		default:
			storeError(w, "Error deleting internship", err)
		}
		return
	}

	response.JSON(w, http.StatusOK, dto.DeletedResponse{Message: "Internship deleted"})
}
