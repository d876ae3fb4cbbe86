package handlers

import (
	"net/http"

	"github.com/marianoprofesorhistoria-cmd/cordoba-montessori-app/internal/models"
	"github.com/marianoprofesorhistoria-cmd/cordoba-montessori-app/internal/reports"
	"github.com/marianoprofesorhistoria-cmd/cordoba-montessori-app/internal/store"
)

// ReportHandler serves the derived views: averages, performance buckets
// and the printable grade sheet
type ReportHandler struct {
	store *store.Store
}

// NewReportHandler creates a new report handler
func NewReportHandler(store *store.Store) *ReportHandler {
	return &ReportHandler{store: store}
}

// StudentAverageEntry is one student's average in a course listing.
// Average carries the dashboard convention: 0 when the student has no
// grades. Display uses the formatted value ("-" in that case).
type StudentAverageEntry struct {
	Student   models.Student `json:"student"`
	Average   float64        `json:"average"`
	Formatted string         `json:"formatted"`
}

// CourseAverages returns the per-student averages for a course, in roster order
func (h *ReportHandler) CourseAverages(w http.ResponseWriter, r *http.Request) {
	courseID := r.PathValue("id")
	if h.store.CourseByID(courseID) == nil {
		respondWithError(w, http.StatusNotFound, "Course not found", "", nil)
		return
	}

	courseEvals := reports.CourseEvaluations(courseID, h.store.Evaluations())
	grades := h.store.Grades()

	entries := []StudentAverageEntry{}
	for _, student := range reports.CourseStudents(courseID, h.store.Students()) {
		avg, ok := reports.StudentAverage(student.ID, courseEvals, grades)
		entries = append(entries, StudentAverageEntry{
			Student:   student,
			Average:   avg,
			Formatted: reports.FormatAverage(avg, ok),
		})
	}
	respondJSON(w, http.StatusOK, entries)
}

// CoursePerformance returns the High/Medium/Low bucket counts for a course
func (h *ReportHandler) CoursePerformance(w http.ResponseWriter, r *http.Request) {
	courseID := r.PathValue("id")
	if h.store.CourseByID(courseID) == nil {
		respondWithError(w, http.StatusNotFound, "Course not found", "", nil)
		return
	}

	buckets := reports.CoursePerformance(courseID, h.store.Students(), h.store.Evaluations(), h.store.Grades())
	respondJSON(w, http.StatusOK, buckets)
}

// GradeSheet returns the printable grade sheet for a course
func (h *ReportHandler) GradeSheet(w http.ResponseWriter, r *http.Request) {
	course := h.store.CourseByID(r.PathValue("id"))
	if course == nil {
		respondWithError(w, http.StatusNotFound, "Course not found", "", nil)
		return
	}

	sheet := reports.BuildGradeSheet(*course, h.store.Students(), h.store.Evaluations(), h.store.Grades())
	respondJSON(w, http.StatusOK, sheet)
}
