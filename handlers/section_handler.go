package handlers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"jobs-service/models"
)

type SectionService interface {
	GetSections(ctx context.Context) ([]models.Section, error)
	GetSection(ctx context.Context, id string) (*models.Section, error)
	CreateSection(ctx context.Context, section *models.Section) error
	UpdateSection(ctx context.Context, id string, section *models.Section) error
	DeleteSection(ctx context.Context, id string) error
}

type SectionHandler struct {
	service SectionService
}

func NewSectionHandler(service SectionService) *SectionHandler {
	return &SectionHandler{service: service}
}

func (h *SectionHandler) Routes(r *mux.Router) {
	s := r.PathPrefix("/api/sections").Subrouter()
	handleCollection(s, h.GetSections, http.MethodGet)
	handleCollection(s, h.CreateSection, http.MethodPost)
	s.HandleFunc("/{id}", h.GetSection).Methods(http.MethodGet)
	s.HandleFunc("/{id}", h.UpdateSection).Methods(http.MethodPut)
	s.HandleFunc("/{id}", h.DeleteSection).Methods(http.MethodDelete)
}

func (h *SectionHandler) GetSections(w http.ResponseWriter, r *http.Request) {
	sections, err := h.service.GetSections(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, sections)
}

func (h *SectionHandler) GetSection(w http.ResponseWriter, r *http.Request) {
	section, err := h.service.GetSection(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, section)
}

func (h *SectionHandler) CreateSection(w http.ResponseWriter, r *http.Request) {
	var section models.Section
	if err := decodeJSON(r, &section); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.service.CreateSection(r.Context(), &section); err != nil {
		writeError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, section)
}

func (h *SectionHandler) UpdateSection(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var section models.Section
	if err := decodeJSON(r, &section); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.service.UpdateSection(r.Context(), id, &section); err != nil {
		writeError(w, r, err)
		return
	}
	respondMessage(w, r, http.StatusOK, "Updated section: ID "+id)
}

func (h *SectionHandler) DeleteSection(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.service.DeleteSection(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	respondMessage(w, r, http.StatusAccepted, "Removed section: ID "+id)
}
