package reports

import (
	"fmt"
	"time"

	"github.com/marianoprofesorhistoria-cmd/cordoba-montessori-app/internal/models"
)

// DayEvent is one calendar entry for a given day: an evaluation tagged
// "Evaluación" or an activity tagged with its own type
type DayEvent struct {
	ID    string              `json:"id"`
	Title string              `json:"title"`
	Date  string              `json:"date"`
	Type  models.ActivityType `json:"type"`
}

// dateLayouts are the two stored date shapes: full RFC 3339 datetimes for
// activities and bare calendar dates for evaluations
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseEventDate parses a stored date string in either shape, interpreted
// in local time for day matching
func ParseEventDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

// sameDay reports calendar-day equality in local time, not exact timestamp
// equality
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// DayEvents collects the evaluations and activities falling on the given
// calendar day, evaluations first. Entries with unparseable dates are
// skipped.
func DayEvents(day time.Time, evaluations []models.Evaluation, activities []models.CalendarActivity) []DayEvent {
	var events []DayEvent

	for _, ev := range evaluations {
		date, err := ParseEventDate(ev.Date)
		if err != nil || !sameDay(date, day) {
			continue
		}
		events = append(events, DayEvent{
			ID:    ev.ID,
			Title: ev.Name,
			Date:  ev.Date,
			Type:  models.ActivityEvaluacion,
		})
	}

	for _, a := range activities {
		date, err := ParseEventDate(a.Date)
		if err != nil || !sameDay(date, day) {
			continue
		}
		events = append(events, DayEvent{
			ID:    a.ID,
			Title: a.Title,
			Date:  a.Date,
			Type:  a.Type,
		})
	}

	return events
}
