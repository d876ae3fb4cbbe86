package reports

import (
	"strconv"

	"github.com/marianoprofesorhistoria-cmd/cordoba-montessori-app/internal/models"
)

// CourseEvaluations returns the evaluations belonging to the course
func CourseEvaluations(courseID string, evaluations []models.Evaluation) []models.Evaluation {
	var owned []models.Evaluation
	for _, ev := range evaluations {
		if ev.CourseID == courseID {
			owned = append(owned, ev)
		}
	}
	return owned
}

// StudentAverage computes the arithmetic mean of the student's scores on
// the given evaluations (a course's set). With no grades it returns
// (0, false); which of "-" or 0 is shown is the consuming view's choice.
// The mean is unrounded; use FormatAverage for display.
func StudentAverage(studentID string, evaluations []models.Evaluation, grades []models.Grade) (float64, bool) {
	evalIDs := make(map[string]bool, len(evaluations))
	for _, ev := range evaluations {
		evalIDs[ev.ID] = true
	}

	sum, count := 0, 0
	for _, g := range grades {
		if g.StudentID == studentID && evalIDs[g.EvaluationID] {
			sum += g.Score
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return float64(sum) / float64(count), true
}

// FormatAverage renders an average to one decimal, or "-" when the student
// has no grades (report-view convention)
func FormatAverage(avg float64, ok bool) string {
	if !ok {
		return "-"
	}
	return strconv.FormatFloat(avg, 'f', 1, 64)
}

// PerformanceBuckets counts course averages per performance band
type PerformanceBuckets struct {
	High   int `json:"high"`   // avg >= 80
	Medium int `json:"medium"` // 60 <= avg < 80
	Low    int `json:"low"`    // avg < 60
}

// BucketAverages partitions averages into the three performance bands
func BucketAverages(averages []float64) PerformanceBuckets {
	var buckets PerformanceBuckets
	for _, avg := range averages {
		switch {
		case avg >= 80:
			buckets.High++
		case avg >= 60:
			buckets.Medium++
		default:
			buckets.Low++
		}
	}
	return buckets
}

// CoursePerformance buckets the per-student averages for a course.
// Students with no grades count as average 0 (dashboard convention), which
// lands them in the Low band.
func CoursePerformance(courseID string, students []models.Student, evaluations []models.Evaluation, grades []models.Grade) PerformanceBuckets {
	courseEvals := CourseEvaluations(courseID, evaluations)

	var averages []float64
	for _, s := range students {
		if s.CourseID != courseID {
			continue
		}
		avg, _ := StudentAverage(s.ID, courseEvals, grades)
		averages = append(averages, avg)
	}
	return BucketAverages(averages)
}
