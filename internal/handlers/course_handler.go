package handlers

import (
	"net/http"
	"strings"

	"github.com/marianoprofesorhistoria-cmd/cordoba-montessori-app/internal/models"
	"github.com/marianoprofesorhistoria-cmd/cordoba-montessori-app/internal/store"
)

// CourseHandler handles course listing and creation
type CourseHandler struct {
	store *store.Store
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(store *store.Store) *CourseHandler {
	return &CourseHandler{store: store}
}

// ListCourses returns all courses
func (h *CourseHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.Courses())
}

// GetCourse returns one course by id
func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	course := h.store.CourseByID(r.PathValue("id"))
	if course == nil {
		respondWithError(w, http.StatusNotFound, "Course not found", "", nil)
		return
	}
	respondJSON(w, http.StatusOK, course)
}

// CreateCourse validates and appends a new course. Courses are append-only;
// there is no update or delete.
func (h *CourseHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var data models.Course
	if err := decodeJSON(r, &data); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	if strings.TrimSpace(data.Subject) == "" {
		respondWithError(w, http.StatusBadRequest, "Subject is required", "", nil)
		return
	}
	if !data.Taller.Valid() {
		respondWithError(w, http.StatusBadRequest, "Taller must be Taller 3 or Taller 4", "", nil)
		return
	}
	if data.Year < 1 || data.Year > 6 {
		respondWithError(w, http.StatusBadRequest, "Year must be between 1 and 6", "", nil)
		return
	}
	if !data.Division.Valid() {
		respondWithError(w, http.StatusBadRequest, "Division must be A or B", "", nil)
		return
	}

	course, err := h.store.AddCourse(data)
	if checkStoreError(w, err) {
		return
	}
	respondJSON(w, http.StatusCreated, course)
}
