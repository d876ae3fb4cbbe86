package models

import "time"

// Seed data installed on first run, when a collection has no stored snapshot.

// SeedCourses returns the initial course list
func SeedCourses() []Course {
	return []Course{
		{ID: "1", Subject: "Lengua y Literatura", Teacher: "María Montessori", AcademicYear: "2024", Taller: Taller3, Year: 1, Division: DivisionA},
		{ID: "2", Subject: "Matemática", Teacher: "María Montessori", AcademicYear: "2024", Taller: Taller4, Year: 4, Division: DivisionB},
	}
}

// SeedStudents returns the initial student roster
func SeedStudents() []Student {
	return []Student{
		{ID: "s1", CourseID: "1", FirstName: "Juan", LastName: "Pérez", Situation: SituationPresencial},
		{ID: "s2", CourseID: "1", FirstName: "Ana", LastName: "García", Situation: SituationOnline},
		{ID: "s3", CourseID: "2", FirstName: "Luis", LastName: "Rodríguez", Situation: SituationAdaptacion},
	}
}

// SeedEvaluations returns the initial evaluations
func SeedEvaluations() []Evaluation {
	return []Evaluation{
		{ID: "e1", CourseID: "1", Name: "Primer Parcial", Date: "2024-03-15"},
		{ID: "e2", CourseID: "1", Name: "Trabajo Práctico 1", Date: "2024-04-10"},
	}
}

// SeedGrades returns the initial grades
func SeedGrades() []Grade {
	return []Grade{
		{StudentID: "s1", EvaluationID: "e1", Score: 85},
		{StudentID: "s2", EvaluationID: "e1", Score: 92},
		{StudentID: "s1", EvaluationID: "e2", Score: 78},
	}
}

// efemeride is a fixed observance at a month/day within the current year
type efemeride struct {
	title string
	month time.Month
	day   int
}

var efemerides = []efemeride{
	{"Año Nuevo", time.January, 1},
	{"Carnaval", time.February, 12},
	{"Día de la Memoria", time.March, 24},
	{"Viernes Santo", time.March, 29},
	{"Día del Veterano y Caídos en Malvinas", time.April, 2},
	{"Día del Trabajador", time.May, 1},
	{"Revolución de Mayo", time.May, 25},
	{"Paso a la Inmortalidad de Güemes", time.June, 17},
	{"Día de la Bandera", time.June, 20},
	{"Día de la Independencia", time.July, 9},
	{"Paso a la Inmortalidad de San Martín", time.August, 17},
	{"Día del Maestro", time.September, 11},
	{"Respeto a la Diversidad Cultural", time.October, 12},
	{"Día de la Soberanía Nacional", time.November, 20},
	{"Inmaculada Concepción", time.December, 8},
	{"Navidad", time.December, 25},
	{"Natalicio María Montessori", time.August, 31},
}

// SeedActivities returns the fixed efeméride calendar for the current year.
// Ids are assigned by the caller so the generator stays in one place.
func SeedActivities(year int, newID func() string) []CalendarActivity {
	activities := make([]CalendarActivity, 0, len(efemerides))
	for _, e := range efemerides {
		date := time.Date(year, e.month, e.day, 0, 0, 0, 0, time.Local)
		activities = append(activities, CalendarActivity{
			ID:    newID(),
			Title: e.title,
			Date:  date.Format(time.RFC3339),
			Type:  ActivityEfemeride,
		})
	}
	return activities
}
