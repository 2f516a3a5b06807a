package handlers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"jobs-service/models"
)

type UserService interface {
	GetUsers(ctx context.Context) ([]models.User, error)
	GetUsersByRole(ctx context.Context, role string) ([]models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	Signup(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, id string, user *models.User) error
	DeleteUser(ctx context.Context, id string) error
	Login(ctx context.Context, email, password string) (*models.User, error)
}

type UserHandler struct {
	service UserService
}

func NewUserHandler(service UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Routes mounts the user endpoints under /api/auth.
func (h *UserHandler) Routes(r *mux.Router) {
	s := r.PathPrefix("/api/auth").Subrouter()
	handleCollection(s, h.GetUsers, http.MethodGet)
	handleCollection(s, h.Signup, http.MethodPost)
	s.HandleFunc("/signup", h.Signup).Methods(http.MethodPost)
	s.HandleFunc("/login", h.Login).Methods(http.MethodPost)
	s.HandleFunc("/role/{role}", h.GetUsersByRole).Methods(http.MethodGet)
	s.HandleFunc("/{id}", h.GetUser).Methods(http.MethodGet)
	s.HandleFunc("/{id}", h.UpdateUser).Methods(http.MethodPut)
	s.HandleFunc("/{id}", h.DeleteUser).Methods(http.MethodDelete)
}

func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetUsers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, users)
}

func (h *UserHandler) GetUsersByRole(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetUsersByRole(r.Context(), mux.Vars(r)["role"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, users)
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.GetUser(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, user)
}

func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := decodeJSON(r, &user); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.service.Signup(r.Context(), &user); err != nil {
		writeError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, user)
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var user models.User
	if err := decodeJSON(r, &user); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.service.UpdateUser(r.Context(), id, &user); err != nil {
		writeError(w, r, err)
		return
	}
	respondMessage(w, r, http.StatusOK, "Updated user: ID "+id)
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.service.DeleteUser(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	respondMessage(w, r, http.StatusAccepted, "Removed user: ID "+id)
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := decodeJSON(r, &creds); err != nil {
		writeError(w, r, err)
		return
	}
	user, err := h.service.Login(r.Context(), creds.Email, creds.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, user)
}
