package models

// Situation is a student's current enrollment mode
type Situation string

const (
	SituationPresencial Situation = "Presencial"
	SituationOnline     Situation = "Online"
	SituationAdaptacion Situation = "Adaptación"
	SituationInactivo   Situation = "Inactivo"
)

// Valid reports whether the situation is one of the known enrollment modes
func (s Situation) Valid() bool {
	switch s {
	case SituationPresencial, SituationOnline, SituationAdaptacion, SituationInactivo:
		return true
	}
	return false
}

// Taller is the institutional workshop tier a course belongs to
type Taller string

const (
	Taller3 Taller = "Taller 3"
	Taller4 Taller = "Taller 4"
)

// Valid reports whether the taller is one of the two institutional tiers
func (t Taller) Valid() bool {
	return t == Taller3 || t == Taller4
}

// Division is a course section letter
type Division string

const (
	DivisionA Division = "A"
	DivisionB Division = "B"
)

// Valid reports whether the division is a known section
func (d Division) Valid() bool {
	return d == DivisionA || d == DivisionB
}

// ActivityType categorizes a calendar entry
type ActivityType string

const (
	ActivityActividad       ActivityType = "Actividad"
	ActivityEfemeride       ActivityType = "Efeméride"
	ActivityReunion         ActivityType = "Reunión"
	ActivityEvaluacion      ActivityType = "Evaluación"
	ActivityTrabajoPractico ActivityType = "Trabajo Práctico"
	ActivityRecuperatorio   ActivityType = "Recuperatorio"
	ActivityIntegral        ActivityType = "Integral"
)

// Valid reports whether the activity type is one of the known categories
func (a ActivityType) Valid() bool {
	switch a {
	case ActivityActividad, ActivityEfemeride, ActivityReunion, ActivityEvaluacion,
		ActivityTrabajoPractico, ActivityRecuperatorio, ActivityIntegral:
		return true
	}
	return false
}

// RoleDocente is the only role the application knows about
const RoleDocente = "Docente"

// User is the single locally-trusted teacher profile
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	AcademicYear string `json:"academicYear"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// Course is a taught subject-section
type Course struct {
	ID           string   `json:"id"`
	Subject      string   `json:"subject"`
	Teacher      string   `json:"teacher"`
	AcademicYear string   `json:"academicYear"`
	Taller       Taller   `json:"taller"`
	Year         int      `json:"year"` // 1-6
	Division     Division `json:"division"`
}

// Student is an enrolled student belonging to exactly one course
type Student struct {
	ID        string    `json:"id"`
	CourseID  string    `json:"courseId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Situation Situation `json:"situation"`
}

// Evaluation is a gradable assessment event belonging to a course.
// Date is an ISO calendar date (2006-01-02).
type Evaluation struct {
	ID       string `json:"id"`
	CourseID string `json:"courseId"`
	Name     string `json:"name"`
	Date     string `json:"date"`
}

// Grade is a student's score on one evaluation. Its identity is the
// (StudentID, EvaluationID) pair; at most one grade may exist per pair.
type Grade struct {
	StudentID    string `json:"studentId"`
	EvaluationID string `json:"evaluationId"`
	Score        int    `json:"score"` // 0-100
}

// CalendarActivity is a school calendar entry, independent of courses.
// Date is an ISO datetime (RFC 3339).
type CalendarActivity struct {
	ID    string       `json:"id"`
	Title string       `json:"title"`
	Date  string       `json:"date"`
	Type  ActivityType `json:"type"`
}

// UserUpdate carries a partial profile update; nil fields are left unchanged
type UserUpdate struct {
	Name         *string `json:"name,omitempty"`
	Email        *string `json:"email,omitempty"`
	AcademicYear *string `json:"academicYear,omitempty"`
	ProfileImage *string `json:"profileImage,omitempty"`
}

// StudentUpdate carries a partial student update; nil fields are left unchanged
type StudentUpdate struct {
	FirstName *string    `json:"firstName,omitempty"`
	LastName  *string    `json:"lastName,omitempty"`
	Situation *Situation `json:"situation,omitempty"`
}
