package handlers

import (
	"net/http"

	"github.com/marianoprofesorhistoria-cmd/cordoba-montessori-app/internal/reports"
	"github.com/marianoprofesorhistoria-cmd/cordoba-montessori-app/internal/store"
)

// GradeHandler handles grade upserts and lookups
type GradeHandler struct {
	store *store.Store
}

// NewGradeHandler creates a new grade handler
func NewGradeHandler(store *store.Store) *GradeHandler {
	return &GradeHandler{store: store}
}

// UpdateGrade upserts a score for a (student, evaluation) pair. Scores
// outside [0,100] are rejected here; the store assumes valid input.
func (h *GradeHandler) UpdateGrade(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StudentID    string `json:"studentId"`
		EvaluationID string `json:"evaluationId"`
		Score        int    `json:"score"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	if req.StudentID == "" || req.EvaluationID == "" {
		respondWithError(w, http.StatusBadRequest, "studentId and evaluationId are required", "", nil)
		return
	}
	if req.Score < 0 || req.Score > 100 {
		respondWithError(w, http.StatusBadRequest, "Score must be between 0 and 100", "", nil)
		return
	}

	grade, err := h.store.UpdateGrade(req.StudentID, req.EvaluationID, req.Score)
	if checkStoreError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, grade)
}

// ListCourseGrades returns the grades belonging to a course's evaluations
func (h *GradeHandler) ListCourseGrades(w http.ResponseWriter, r *http.Request) {
	courseID := r.PathValue("id")
	if h.store.CourseByID(courseID) == nil {
		respondWithError(w, http.StatusNotFound, "Course not found", "", nil)
		return
	}

	evalIDs := make(map[string]bool)
	for _, ev := range reports.CourseEvaluations(courseID, h.store.Evaluations()) {
		evalIDs[ev.ID] = true
	}

	grades := h.store.Grades()
	courseGrades := grades[:0:0]
	for _, g := range grades {
		if evalIDs[g.EvaluationID] {
			courseGrades = append(courseGrades, g)
		}
	}
	respondJSON(w, http.StatusOK, courseGrades)
}
