package handlers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"jobs-service/models"
)

type JobService interface {
	GetJobs(ctx context.Context) ([]models.Job, error)
	GetJob(ctx context.Context, id string) (*models.Job, error)
	CreateJob(ctx context.Context, job *models.Job) error
	UpdateJob(ctx context.Context, id string, job *models.Job) (*models.Job, error)
	DeleteJob(ctx context.Context, id string) error
	RemoveDateOfService(ctx context.Context, jobID, dateID string) error
	ClaimJob(ctx context.Context, jobID, contractorID string) (*models.Job, error)
}

type claimRequest struct {
	ContractorID string `json:"contractorId"`
}

type JobHandler struct {
	service JobService
}

func NewJobHandler(service JobService) *JobHandler {
	return &JobHandler{service: service}
}

func (h *JobHandler) Routes(r *mux.Router) {
	s := r.PathPrefix("/api/jobs").Subrouter()
	handleCollection(s, h.GetJobs, http.MethodGet)
	handleCollection(s, h.CreateJob, http.MethodPost)
	s.HandleFunc("/{id}/claim", h.ClaimJob).Methods(http.MethodPut)
	s.HandleFunc("/{jobId}/dates/{dateId}", h.RemoveDateOfService).Methods(http.MethodDelete)
	s.HandleFunc("/{id}", h.GetJob).Methods(http.MethodGet)
	s.HandleFunc("/{id}", h.UpdateJob).Methods(http.MethodPut)
	s.HandleFunc("/{id}", h.DeleteJob).Methods(http.MethodDelete)
}

func (h *JobHandler) GetJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.service.GetJobs(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, jobs)
}

func (h *JobHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	job, err := h.service.GetJob(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, job)
}

func (h *JobHandler) CreateJob(w http.ResponseWriter, r *http.Request) {
	var job models.Job
	if err := decodeJSON(r, &job); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.service.CreateJob(r.Context(), &job); err != nil {
		writeError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, job)
}

// UpdateJob answers with the stored job rather than a confirmation message
// so callers get the ids assigned to new sections and dates.
func (h *JobHandler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	var job models.Job
	if err := decodeJSON(r, &job); err != nil {
		writeError(w, r, err)
		return
	}
	updated, err := h.service.UpdateJob(r.Context(), mux.Vars(r)["id"], &job)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, updated)
}

func (h *JobHandler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.service.DeleteJob(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	respondMessage(w, r, http.StatusAccepted, "Removed job: ID "+id)
}

func (h *JobHandler) RemoveDateOfService(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.service.RemoveDateOfService(r.Context(), vars["jobId"], vars["dateId"]); err != nil {
		writeError(w, r, err)
		return
	}
	respondMessage(w, r, http.StatusAccepted, "Removed date of service: ID "+vars["dateId"])
}

func (h *JobHandler) ClaimJob(w http.ResponseWriter, r *http.Request) {
	var req claimRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	job, err := h.service.ClaimJob(r.Context(), mux.Vars(r)["id"], req.ContractorID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, job)
}
