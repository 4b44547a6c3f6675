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

type JobsHandler struct {
	service *services.JobService
}

func NewJobsHandler(service *services.JobService) *JobsHandler {
	return &JobsHandler{service: service}
}

func (h *JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.service.List(r.Context())
	if err != nil {
		storeError(w, "Error fetching jobs", err)
		return
	}
	response.JSON(w, http.StatusOK, jobs)
}

func (h *JobsHandler) Get(w http.ResponseWriter, r *http.Request) {
	job, err := h.service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidID):
			response.Error(w, http.StatusBadRequest, "Invalid ID format")
		case errors.Is(err, services.ErrNotFound):
			response.Error(w, http.StatusNotFound, "Job not found")
		default:
			storeError(w, "Error fetching job", err)
		}
		return
	}
	response.JSON(w, http.StatusOK, job)
}

func (h *JobsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var job models.Job
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.service.Create(r.Context(), &job)
	if err != nil {
		storeError(w, "Error adding job", err)
		return
	}

	response.JSON(w, http.StatusCreated, dto.CreatedResponse{Message: "Job added", ID: id})
}

func (h *JobsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	modified, err := h.service.Update(r.Context(), r.PathValue("id"), fields)
	if err != nil {
		if errors.Is(err, services.ErrInvalidID) {
			response.Error(w, http.StatusBadRequest, "Invalid ID format")
			return
		}
		storeError(w, "Error updating job", err)
		return
	}

	response.JSON(w, http.StatusOK, dto.UpdatedResponse{Message: "Job updated", ModifiedCount: modified})
}

func (h *JobsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.service.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidID) {
			response.Error(w, http.StatusBadRequest, "Invalid ID format")
			return
		}
		storeError(w, "Error deleting job", err)
		return
	}

	response.JSON(w, http.StatusOK, dto.DeletedResponse{Message: "Job deleted", DeletedCount: deleted})
}
