package handlers

import (
	"net/http"
	"strings"

	"github.com/marianoprofesorhistoria-cmd/cordoba-montessori-app/internal/models"
	"github.com/marianoprofesorhistoria-cmd/cordoba-montessori-app/internal/reports"
	"github.com/marianoprofesorhistoria-cmd/cordoba-montessori-app/internal/store"
)

// CalendarHandler handles calendar activities and day aggregation
type CalendarHandler struct {
	store *store.Store
}

// NewCalendarHandler creates a new calendar handler
func NewCalendarHandler(store *store.Store) *CalendarHandler {
	return &CalendarHandler{store: store}
}

// ListActivities returns all calendar activities
func (h *CalendarHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.Activities())
}

// CreateActivity validates and appends a calendar activity
func (h *CalendarHandler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var data models.CalendarActivity
	if err := decodeJSON(r, &data); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	if strings.TrimSpace(data.Title) == "" {
		respondWithError(w, http.StatusBadRequest, "Title is required", "", nil)
		return
	}
	if !data.Type.Valid() {
		respondWithError(w, http.StatusBadRequest, "Invalid activity type", "", nil)
		return
	}
	if _, err := reports.ParseEventDate(data.Date); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid date", "", nil)
		return
	}

	activity, err := h.store.AddActivity(data)
	if checkStoreError(w, err) {
		return
	}
	respondJSON(w, http.StatusCreated, activity)
}

// DeleteActivity removes an activity; nothing cascades
func (h *CalendarHandler) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	if checkStoreError(w, h.store.DeleteActivity(r.PathValue("id"))) {
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// DayEvents returns the evaluations and activities falling on the day
// given by the date query parameter (YYYY-MM-DD)
func (h *CalendarHandler) DayEvents(w http.ResponseWriter, r *http.Request) {
	day, err := reports.ParseEventDate(r.URL.Query().Get("date"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "date parameter must be YYYY-MM-DD", "", nil)
		return
	}

	events := reports.DayEvents(day, h.store.Evaluations(), h.store.Activities())
	if events == nil {
		events = []reports.DayEvent{}
	}
	respondJSON(w, http.StatusOK, events)
}
