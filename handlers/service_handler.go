package handlers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"jobs-service/models"
)

// CatalogService manages the service catalog served under /api/services.
type CatalogService interface {
	GetServices(ctx context.Context) ([]models.Service, error)
	GetService(ctx context.Context, id string) (*models.Service, error)
	CreateService(ctx context.Context, service *models.Service) error
	UpdateService(ctx context.Context, id string, service *models.Service) error
	DeleteService(ctx context.Context, id string) error
}

type ServiceHandler struct {
	catalog CatalogService
}

func NewServiceHandler(catalog CatalogService) *ServiceHandler {
	return &ServiceHandler{catalog: catalog}
}

func (h *ServiceHandler) Routes(r *mux.Router) {
	s := r.PathPrefix("/api/services").Subrouter()
	handleCollection(s, h.GetServices, http.MethodGet)
	handleCollection(s, h.CreateService, http.MethodPost)
	s.HandleFunc("/{id}", h.GetService).Methods(http.MethodGet)
	s.HandleFunc("/{id}", h.UpdateService).Methods(http.MethodPut)
	s.HandleFunc("/{id}", h.DeleteService).Methods(http.MethodDelete)
}

func (h *ServiceHandler) GetServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalog.GetServices(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, services)
}

func (h *ServiceHandler) GetService(w http.ResponseWriter, r *http.Request) {
	service, err := h.catalog.GetService(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, service)
}

func (h *ServiceHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var service models.Service
	if err := decodeJSON(r, &service); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.catalog.CreateService(r.Context(), &service); err != nil {
		writeError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, service)
}

func (h *ServiceHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var service models.Service
	if err := decodeJSON(r, &service); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.catalog.UpdateService(r.Context(), id, &service); err != nil {
		writeError(w, r, err)
		return
	}
	respondMessage(w, r, http.StatusOK, "Updated service: ID "+id)
}

func (h *ServiceHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.catalog.DeleteService(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	respondMessage(w, r, http.StatusAccepted, "Removed service: ID "+id)
}
