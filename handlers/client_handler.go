package handlers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"jobs-service/models"
)

type ClientService interface {
	GetClients(ctx context.Context) ([]models.Client, error)
	GetClient(ctx context.Context, id string) (*models.Client, error)
	CreateClient(ctx context.Context, client *models.Client) error
	UpdateClient(ctx context.Context, id string, client *models.Client) error
	DeleteClient(ctx context.Context, id string) error
}

type ClientHandler struct {
	service ClientService
}

func NewClientHandler(service ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

func (h *ClientHandler) Routes(r *mux.Router) {
	s := r.PathPrefix("/api/clients").Subrouter()
	handleCollection(s, h.GetClients, http.MethodGet)
	handleCollection(s, h.CreateClient, http.MethodPost)
	s.HandleFunc("/{id}", h.GetClient).Methods(http.MethodGet)
	s.HandleFunc("/{id}", h.UpdateClient).Methods(http.MethodPut)
	s.HandleFunc("/{id}", h.DeleteClient).Methods(http.MethodDelete)
}

func (h *ClientHandler) GetClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.service.GetClients(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, clients)
}

func (h *ClientHandler) GetClient(w http.ResponseWriter, r *http.Request) {
	client, err := h.service.GetClient(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, client)
}

func (h *ClientHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var client models.Client
	if err := decodeJSON(r, &client); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.service.CreateClient(r.Context(), &client); err != nil {
		writeError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, client)
}

func (h *ClientHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var client models.Client
	if err := decodeJSON(r, &client); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.service.UpdateClient(r.Context(), id, &client); err != nil {
		writeError(w, r, err)
		return
	}
	respondMessage(w, r, http.StatusOK, "Updated client: ID "+id)
}

func (h *ClientHandler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.service.DeleteClient(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	respondMessage(w, r, http.StatusAccepted, "Removed client: ID "+id)
}
