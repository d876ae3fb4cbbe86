// Package reports contains the derived-view computations over the store's
// collections: roster ordering, averages, performance buckets, calendar day
// aggregation and bulk roster import. All functions are pure.
package reports

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/marianoprofesorhistoria-cmd/cordoba-montessori-app/internal/models"
)

// SortRoster returns the students ordered by (lastName, firstName) using
// Spanish collation that ignores case and diacritics, so "García" sorts
// with "Garcia". The input slice is not modified.
func SortRoster(students []models.Student) []models.Student {
	sorted := append([]models.Student(nil), students...)

	// Collators are not safe for concurrent use, so build one per call
	c := collate.New(language.Spanish, collate.Loose)
	sort.SliceStable(sorted, func(i, j int) bool {
		byLast := c.CompareString(sorted[i].LastName, sorted[j].LastName)
		if byLast != 0 {
			return byLast < 0
		}
		return c.CompareString(sorted[i].FirstName, sorted[j].FirstName) < 0
	})
	return sorted
}

// CourseStudents returns the students enrolled in the course, in roster order
func CourseStudents(courseID string, students []models.Student) []models.Student {
	var enrolled []models.Student
	for _, s := range students {
		if s.CourseID == courseID {
			enrolled = append(enrolled, s)
		}
	}
	return SortRoster(enrolled)
}
