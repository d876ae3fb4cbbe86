package reports

import (
	"strconv"

	"github.com/marianoprofesorhistoria-cmd/cordoba-montessori-app/internal/models"
)

// GradeSheetRow is one student's line on the printable grade sheet
type GradeSheetRow struct {
	Student models.Student `json:"student"`
	Scores  []string       `json:"scores"` // per evaluation, "85" or "-"
	Average string         `json:"average"`
}

// GradeSheet is the printable report for one course: the sorted roster
// with per-evaluation scores and formatted averages
type GradeSheet struct {
	Course      models.Course       `json:"course"`
	Evaluations []models.Evaluation `json:"evaluations"`
	Rows        []GradeSheetRow     `json:"rows"`
}

// BuildGradeSheet assembles the grade sheet for a course. Missing grades
// render as "-", matching the report view.
func BuildGradeSheet(course models.Course, students []models.Student, evaluations []models.Evaluation, grades []models.Grade) GradeSheet {
	courseEvals := CourseEvaluations(course.ID, evaluations)
	roster := CourseStudents(course.ID, students)

	scoreByPair := make(map[[2]string]int, len(grades))
	for _, g := range grades {
		scoreByPair[[2]string{g.StudentID, g.EvaluationID}] = g.Score
	}

	rows := make([]GradeSheetRow, 0, len(roster))
	for _, student := range roster {
		scores := make([]string, 0, len(courseEvals))
		for _, ev := range courseEvals {
			if score, ok := scoreByPair[[2]string{student.ID, ev.ID}]; ok {
				scores = append(scores, strconv.Itoa(score))
			} else {
				scores = append(scores, "-")
			}
		}
		avg, ok := StudentAverage(student.ID, courseEvals, grades)
		rows = append(rows, GradeSheetRow{
			Student: student,
			Scores:  scores,
			Average: FormatAverage(avg, ok),
		})
	}

	return GradeSheet{Course: course, Evaluations: courseEvals, Rows: rows}
}
