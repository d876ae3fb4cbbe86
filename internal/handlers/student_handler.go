package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/marianoprofesorhistoria-cmd/cordoba-montessori-app/internal/models"
	"github.com/marianoprofesorhistoria-cmd/cordoba-montessori-app/internal/reports"
	"github.com/marianoprofesorhistoria-cmd/cordoba-montessori-app/internal/store"
)

// StudentHandler handles student enrollment, updates and bulk import
type StudentHandler struct {
	store *store.Store
}

// NewStudentHandler creates a new student handler
func NewStudentHandler(store *store.Store) *StudentHandler {
	return &StudentHandler{store: store}
}

// ListAllStudents returns every student across courses, in roster order
func (h *StudentHandler) ListAllStudents(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, reports.SortRoster(h.store.Students()))
}

// ListCourseStudents returns a course's roster in roster order
func (h *StudentHandler) ListCourseStudents(w http.ResponseWriter, r *http.Request) {
	courseID := r.PathValue("id")
	if h.store.CourseByID(courseID) == nil {
		respondWithError(w, http.StatusNotFound, "Course not found", "", nil)
		return
	}
	respondJSON(w, http.StatusOK, reports.CourseStudents(courseID, h.store.Students()))
}

// CreateStudent validates and enrolls one student
func (h *StudentHandler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	var data models.Student
	if err := decodeJSON(r, &data); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	if h.store.CourseByID(data.CourseID) == nil {
		respondWithError(w, http.StatusBadRequest, "Course does not exist", "", nil)
		return
	}
	if strings.TrimSpace(data.LastName) == "" {
		respondWithError(w, http.StatusBadRequest, "Last name is required", "", nil)
		return
	}
	if !data.Situation.Valid() {
		respondWithError(w, http.StatusBadRequest, "Invalid situation", "", nil)
		return
	}

	student, err := h.store.AddStudent(data)
	if checkStoreError(w, err) {
		return
	}
	respondJSON(w, http.StatusCreated, student)
}

// BulkImport parses free-text roster lines from the request body and
// enrolls every parsed student into the course in one atomic append.
// New students start as Presencial.
func (h *StudentHandler) BulkImport(w http.ResponseWriter, r *http.Request) {
	courseID := r.PathValue("id")
	if h.store.CourseByID(courseID) == nil {
		respondWithError(w, http.StatusNotFound, "Course not found", "", nil)
		return
	}

	body, err := io.ReadAll(r.Body)
	r.Body.Close()
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Could not read request body", "", err)
		return
	}

	entries := reports.ParseBulkLines(string(body))
	if len(entries) == 0 {
		respondWithError(w, http.StatusBadRequest, "No student lines found", "", nil)
		return
	}

	newStudents := make([]models.Student, 0, len(entries))
	for _, entry := range entries {
		newStudents = append(newStudents, models.Student{
			CourseID:  courseID,
			FirstName: entry.FirstName,
			LastName:  entry.LastName,
			Situation: models.SituationPresencial,
		})
	}

	added, err := h.store.AddStudentsBulk(newStudents)
	if checkStoreError(w, err) {
		return
	}
	respondJSON(w, http.StatusCreated, added)
}

// UpdateStudent merges the posted fields into the student
func (h *StudentHandler) UpdateStudent(w http.ResponseWriter, r *http.Request) {
	var updates models.StudentUpdate
	if err := decodeJSON(r, &updates); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}
	if updates.Situation != nil && !updates.Situation.Valid() {
		respondWithError(w, http.StatusBadRequest, "Invalid situation", "", nil)
		return
	}

	student, err := h.store.UpdateStudent(r.PathValue("id"), updates)
	if checkStoreError(w, err) {
		return
	}
	if student == nil {
		respondWithError(w, http.StatusNotFound, "Student not found", "", nil)
		return
	}
	respondJSON(w, http.StatusOK, student)
}

// DeleteStudent removes the student and all of their grades
func (h *StudentHandler) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	if checkStoreError(w, h.store.DeleteStudent(r.PathValue("id"))) {
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
