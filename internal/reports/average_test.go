package reports

import (
	"testing"

	"github.com/marianoprofesorhistoria-cmd/cordoba-montessori-app/internal/models"
)

func TestStudentAverage(t *testing.T) {
	evaluations := []models.Evaluation{
		{ID: "e1", CourseID: "c1"},
		{ID: "e2", CourseID: "c1"},
		{ID: "e3", CourseID: "c1"},
	}

	tests := []struct {
		name      string
		studentID string
		grades    []models.Grade
		wantAvg   float64
		wantOK    bool
	}{
		{
			name:      "no grades",
			studentID: "s1",
			grades:    nil,
			wantAvg:   0,
			wantOK:    false,
		},
		{
			name:      "three grades",
			studentID: "s1",
			grades: []models.Grade{
				{StudentID: "s1", EvaluationID: "e1", Score: 85},
				{StudentID: "s1", EvaluationID: "e2", Score: 92},
				{StudentID: "s1", EvaluationID: "e3", Score: 78},
			},
			wantAvg: 85.0,
			wantOK:  true,
		},
		{
			name:      "grades from another course are excluded",
			studentID: "s1",
			grades: []models.Grade{
				{StudentID: "s1", EvaluationID: "e1", Score: 80},
				{StudentID: "s1", EvaluationID: "other", Score: 10},
			},
			wantAvg: 80.0,
			wantOK:  true,
		},
		{
			name:      "other students' grades are excluded",
			studentID: "s1",
			grades: []models.Grade{
				{StudentID: "s1", EvaluationID: "e1", Score: 70},
				{StudentID: "s2", EvaluationID: "e1", Score: 100},
			},
			wantAvg: 70.0,
			wantOK:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			avg, ok := StudentAverage(tt.studentID, evaluations, tt.grades)
			if avg != tt.wantAvg || ok != tt.wantOK {
				t.Errorf("StudentAverage() = (%v, %v), want (%v, %v)", avg, ok, tt.wantAvg, tt.wantOK)
			}
		})
	}
}

func TestFormatAverage(t *testing.T) {
	tests := []struct {
		name string
		avg  float64
		ok   bool
		want string
	}{
		{
			name: "no grades renders dash",
			avg:  0,
			ok:   false,
			want: "-",
		},
		{
			name: "whole number keeps one decimal",
			avg:  85.0,
			ok:   true,
			want: "85.0",
		},
		{
			name: "repeating fraction rounds to one decimal",
			avg:  85.0 + 1.0/3.0,
			ok:   true,
			want: "85.3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatAverage(tt.avg, tt.ok); got != tt.want {
				t.Errorf("FormatAverage() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBucketAverages(t *testing.T) {
	buckets := BucketAverages([]float64{95, 65, 40, 80})

	if buckets.High != 2 {
		t.Errorf("High = %d, want 2 (95 and the boundary 80)", buckets.High)
	}
	if buckets.Medium != 1 {
		t.Errorf("Medium = %d, want 1", buckets.Medium)
	}
	if buckets.Low != 1 {
		t.Errorf("Low = %d, want 1", buckets.Low)
	}
}

func TestBucketAveragesBoundaries(t *testing.T) {
	buckets := BucketAverages([]float64{80, 79.9, 60, 59.9, 0})

	if buckets.High != 1 {
		t.Errorf("High = %d, want 1 (exactly 80)", buckets.High)
	}
	if buckets.Medium != 2 {
		t.Errorf("Medium = %d, want 2 (79.9 and 60)", buckets.Medium)
	}
	if buckets.Low != 2 {
		t.Errorf("Low = %d, want 2 (59.9 and 0)", buckets.Low)
	}
}

func TestCoursePerformance(t *testing.T) {
	students := []models.Student{
		{ID: "s1", CourseID: "c1"},
		{ID: "s2", CourseID: "c1"},
		{ID: "s3", CourseID: "c1"}, // no grades: counts as 0 -> Low
		{ID: "s4", CourseID: "c2"}, // other course: excluded
	}
	evaluations := []models.Evaluation{
		{ID: "e1", CourseID: "c1"},
	}
	grades := []models.Grade{
		{StudentID: "s1", EvaluationID: "e1", Score: 90},
		{StudentID: "s2", EvaluationID: "e1", Score: 65},
		{StudentID: "s4", EvaluationID: "e1", Score: 100},
	}

	buckets := CoursePerformance("c1", students, evaluations, grades)
	if buckets.High != 1 || buckets.Medium != 1 || buckets.Low != 1 {
		t.Errorf("CoursePerformance() = %+v, want High=1 Medium=1 Low=1", buckets)
	}
}
