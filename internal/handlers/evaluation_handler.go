package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/marianoprofesorhistoria-cmd/cordoba-montessori-app/internal/models"
	"github.com/marianoprofesorhistoria-cmd/cordoba-montessori-app/internal/reports"
	"github.com/marianoprofesorhistoria-cmd/cordoba-montessori-app/internal/store"
)

// EvaluationHandler handles assessment events for a course
type EvaluationHandler struct {
	store *store.Store
}

// NewEvaluationHandler creates a new evaluation handler
func NewEvaluationHandler(store *store.Store) *EvaluationHandler {
	return &EvaluationHandler{store: store}
}

// ListCourseEvaluations returns a course's evaluations
func (h *EvaluationHandler) ListCourseEvaluations(w http.ResponseWriter, r *http.Request) {
	courseID := r.PathValue("id")
	if h.store.CourseByID(courseID) == nil {
		respondWithError(w, http.StatusNotFound, "Course not found", "", nil)
		return
	}
	respondJSON(w, http.StatusOK, reports.CourseEvaluations(courseID, h.store.Evaluations()))
}

// CreateEvaluation validates and appends a new evaluation
func (h *EvaluationHandler) CreateEvaluation(w http.ResponseWriter, r *http.Request) {
	var data models.Evaluation
	if err := decodeJSON(r, &data); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	if h.store.CourseByID(data.CourseID) == nil {
		respondWithError(w, http.StatusBadRequest, "Course does not exist", "", nil)
		return
	}
	if strings.TrimSpace(data.Name) == "" {
		respondWithError(w, http.StatusBadRequest, "Name is required", "", nil)
		return
	}
	if !validEvaluationDate(data.Date) {
		respondWithError(w, http.StatusBadRequest, "Date must be YYYY-MM-DD", "", nil)
		return
	}

	evaluation, err := h.store.AddEvaluation(data)
	if checkStoreError(w, err) {
		return
	}
	respondJSON(w, http.StatusCreated, evaluation)
}

// UpdateEvaluation replaces the name and date of an evaluation
func (h *EvaluationHandler) UpdateEvaluation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
		Date string `json:"date"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		respondWithError(w, http.StatusBadRequest, "Name is required", "", nil)
		return
	}
	if !validEvaluationDate(req.Date) {
		respondWithError(w, http.StatusBadRequest, "Date must be YYYY-MM-DD", "", nil)
		return
	}

	evaluation, err := h.store.UpdateEvaluation(r.PathValue("id"), req.Name, req.Date)
	if checkStoreError(w, err) {
		return
	}
	if evaluation == nil {
		respondWithError(w, http.StatusNotFound, "Evaluation not found", "", nil)
		return
	}
	respondJSON(w, http.StatusOK, evaluation)
}

// DeleteEvaluation removes the evaluation and all grades on it
func (h *EvaluationHandler) DeleteEvaluation(w http.ResponseWriter, r *http.Request) {
	if checkStoreError(w, h.store.DeleteEvaluation(r.PathValue("id"))) {
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func validEvaluationDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}
