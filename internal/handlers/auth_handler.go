package handlers

import (
	"net/http"
	"strings"

	"github.com/marianoprofesorhistoria-cmd/cordoba-montessori-app/internal/models"
	"github.com/marianoprofesorhistoria-cmd/cordoba-montessori-app/internal/store"
)

// AuthHandler handles the teacher profile: login, logout and updates
type AuthHandler struct {
	store *store.Store
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(store *store.Store) *AuthHandler {
	return &AuthHandler{store: store}
}

// Login creates or replaces the profile for the posted email
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		respondWithError(w, http.StatusBadRequest, "Email is required", "", nil)
		return
	}

	user, err := h.store.Login(email)
	if checkStoreError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// Logout clears the profile
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if checkStoreError(w, h.store.Logout()) {
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// GetProfile returns the current profile, or 404 when logged out
func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user := h.store.User()
	if user == nil {
		respondWithError(w, http.StatusNotFound, "Not logged in", "", nil)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// UpdateProfile merges the posted fields into the profile
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var updates models.UserUpdate
	if err := decodeJSON(r, &updates); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	user, err := h.store.UpdateUser(updates)
	if checkStoreError(w, err) {
		return
	}
	if user == nil {
		respondWithError(w, http.StatusNotFound, "Not logged in", "", nil)
		return
	}
	respondJSON(w, http.StatusOK, user)
}
