// Package store holds the six entity collections in memory and writes each
// one through to durable storage after every mutation. Validation of user
// input happens at the boundary (handlers); the store assumes valid input
// and treats unknown ids as silent no-ops.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/marianoprofesorhistoria-cmd/cordoba-montessori-app/internal/models"
	"github.com/marianoprofesorhistoria-cmd/cordoba-montessori-app/internal/repository"
)

// Fixed profile values applied on login
const (
	DefaultTeacherName  = "María Montessori"
	DefaultAcademicYear = "2024"
	defaultUserID       = "u1"
)

// ErrPersistence marks a failed durable-storage write. The in-memory state
// is already updated when this error is returned; the session keeps working
// from memory and only durability is lost.
var ErrPersistence = errors.New("persistence failed")

// Persister abstracts the durable snapshot storage the store writes through to
type Persister interface {
	Load(key string) ([]byte, bool, error)
	Save(key string, data []byte) error
}

// Store is the single source of truth for the academic record. It must be
// constructed with New and loaded with Load before use.
type Store struct {
	mu        sync.Mutex
	persister Persister
	newID     func() string

	user        *models.User
	courses     []models.Course
	students    []models.Student
	evaluations []models.Evaluation
	activities  []models.CalendarActivity
	grades      []models.Grade
}

// New creates a store backed by the given persister. Ids are random UUIDs.
func New(persister Persister) *Store {
	return &Store{
		persister: persister,
		newID:     func() string { return uuid.New().String() },
	}
}

// Load populates every collection from durable storage, falling back to the
// seed dataset for any collection without a stored snapshot. Seeded
// collections are persisted immediately so the next start finds them.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := loadCollection(s.persister, repository.KeyUser, &s.user, nil); err != nil {
		return err
	}
	if err := loadCollection(s.persister, repository.KeyCourses, &s.courses, models.SeedCourses); err != nil {
		return err
	}
	if err := loadCollection(s.persister, repository.KeyStudents, &s.students, models.SeedStudents); err != nil {
		return err
	}
	if err := loadCollection(s.persister, repository.KeyEvaluations, &s.evaluations, models.SeedEvaluations); err != nil {
		return err
	}
	seedActivities := func() []models.CalendarActivity {
		return models.SeedActivities(time.Now().Year(), s.newID)
	}
	if err := loadCollection(s.persister, repository.KeyActivities, &s.activities, seedActivities); err != nil {
		return err
	}
	if err := loadCollection(s.persister, repository.KeyGrades, &s.grades, models.SeedGrades); err != nil {
		return err
	}
	return nil
}

// loadCollection fills dst from the stored snapshot under key, or from seed
// when no snapshot exists yet. A nil seed leaves dst at its zero value.
func loadCollection[T any](p Persister, key string, dst *T, seed func() T) error {
	data, found, err := p.Load(key)
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if found {
		if err := json.Unmarshal(data, dst); err != nil {
			return fmt.Errorf("decode %s: %w", key, err)
		}
		return nil
	}
	if seed == nil {
		return nil
	}
	*dst = seed()
	seeded, err := json.Marshal(*dst)
	if err != nil {
		return fmt.Errorf("encode seed %s: %w", key, err)
	}
	if err := p.Save(key, seeded); err != nil {
		return fmt.Errorf("persist seed %s: %w", key, err)
	}
	return nil
}

// persist writes one collection snapshot. Callers hold the lock and have
// already applied the mutation in memory.
func (s *Store) persist(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.persister.Save(key, data); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

// Flush persists all six collections as they currently stand
func (s *Store) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshots := []struct {
		key string
		v   interface{}
	}{
		{repository.KeyUser, s.user},
		{repository.KeyCourses, s.courses},
		{repository.KeyStudents, s.students},
		{repository.KeyEvaluations, s.evaluations},
		{repository.KeyActivities, s.activities},
		{repository.KeyGrades, s.grades},
	}
	for _, snap := range snapshots {
		if err := s.persist(snap.key, snap.v); err != nil {
			return err
		}
	}
	return nil
}

// Login creates (or replaces) the teacher profile for the given email.
// The resulting profile shape is the same for every call with that email.
func (s *Store) Login(email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &models.User{
		ID:           defaultUserID,
		Name:         DefaultTeacherName,
		Email:        email,
		Role:         models.RoleDocente,
		AcademicYear: DefaultAcademicYear,
	}
	return *s.user, s.persist(repository.KeyUser, s.user)
}

// Logout clears the profile
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	return s.persist(repository.KeyUser, s.user)
}

// UpdateUser merges the non-nil fields into the profile. With no profile
// present it is a no-op.
func (s *Store) UpdateUser(updates models.UserUpdate) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil, nil
	}
	if updates.Name != nil {
		s.user.Name = *updates.Name
	}
	if updates.Email != nil {
		s.user.Email = *updates.Email
	}
	if updates.AcademicYear != nil {
		s.user.AcademicYear = *updates.AcademicYear
	}
	if updates.ProfileImage != nil {
		s.user.ProfileImage = *updates.ProfileImage
	}
	updated := *s.user
	return &updated, s.persist(repository.KeyUser, s.user)
}

// AddCourse assigns a new id and appends the course. Field validation is a
// caller contract.
func (s *Store) AddCourse(data models.Course) (models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	course := data
	course.ID = s.newID()
	s.courses = append(s.courses, course)
	return course, s.persist(repository.KeyCourses, s.courses)
}

// AddStudent assigns a new id and appends the student
func (s *Store) AddStudent(data models.Student) (models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	student := data
	student.ID = s.newID()
	s.students = append(s.students, student)
	return student, s.persist(repository.KeyStudents, s.students)
}

// AddStudentsBulk appends all students in one persisted update. Either the
// whole batch lands in memory and is written out, or (on an empty batch)
// nothing happens.
func (s *Store) AddStudentsBulk(data []models.Student) ([]models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(data) == 0 {
		return nil, nil
	}
	added := make([]models.Student, 0, len(data))
	for _, d := range data {
		student := d
		student.ID = s.newID()
		added = append(added, student)
	}
	s.students = append(s.students, added...)
	return added, s.persist(repository.KeyStudents, s.students)
}

// UpdateStudent merges the non-nil fields into the matching student.
// Unknown ids are ignored.
func (s *Store) UpdateStudent(id string, updates models.StudentUpdate) (*models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.students {
		if s.students[i].ID != id {
			continue
		}
		if updates.FirstName != nil {
			s.students[i].FirstName = *updates.FirstName
		}
		if updates.LastName != nil {
			s.students[i].LastName = *updates.LastName
		}
		if updates.Situation != nil {
			s.students[i].Situation = *updates.Situation
		}
		updated := s.students[i]
		return &updated, s.persist(repository.KeyStudents, s.students)
	}
	return nil, nil
}

// DeleteStudent removes the student and every grade that references it, so
// no orphan grades survive. Unknown ids are ignored.
func (s *Store) DeleteStudent(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.students[:0:0]
	removed := false
	for _, st := range s.students {
		if st.ID == id {
			removed = true
			continue
		}
		kept = append(kept, st)
	}
	if !removed {
		return nil
	}
	s.students = kept

	keptGrades := s.grades[:0:0]
	for _, g := range s.grades {
		if g.StudentID != id {
			keptGrades = append(keptGrades, g)
		}
	}
	s.grades = keptGrades

	if err := s.persist(repository.KeyStudents, s.students); err != nil {
		return err
	}
	return s.persist(repository.KeyGrades, s.grades)
}

// AddEvaluation assigns a new id and appends the evaluation
func (s *Store) AddEvaluation(data models.Evaluation) (models.Evaluation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	evaluation := data
	evaluation.ID = s.newID()
	s.evaluations = append(s.evaluations, evaluation)
	return evaluation, s.persist(repository.KeyEvaluations, s.evaluations)
}

// UpdateEvaluation replaces the name and date of the matching evaluation.
// Unknown ids are ignored.
func (s *Store) UpdateEvaluation(id, name, date string) (*models.Evaluation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.evaluations {
		if s.evaluations[i].ID != id {
			continue
		}
		s.evaluations[i].Name = name
		s.evaluations[i].Date = date
		updated := s.evaluations[i]
		return &updated, s.persist(repository.KeyEvaluations, s.evaluations)
	}
	return nil, nil
}

// DeleteEvaluation removes the evaluation and every grade that references
// it. Unknown ids are ignored.
func (s *Store) DeleteEvaluation(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.evaluations[:0:0]
	removed := false
	for _, ev := range s.evaluations {
		if ev.ID == id {
			removed = true
			continue
		}
		kept = append(kept, ev)
	}
	if !removed {
		return nil
	}
	s.evaluations = kept

	keptGrades := s.grades[:0:0]
	for _, g := range s.grades {
		if g.EvaluationID != id {
			keptGrades = append(keptGrades, g)
		}
	}
	s.grades = keptGrades

	if err := s.persist(repository.KeyEvaluations, s.evaluations); err != nil {
		return err
	}
	return s.persist(repository.KeyGrades, s.grades)
}

// AddActivity assigns a new id and appends the calendar activity
func (s *Store) AddActivity(data models.CalendarActivity) (models.CalendarActivity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity := data
	activity.ID = s.newID()
	s.activities = append(s.activities, activity)
	return activity, s.persist(repository.KeyActivities, s.activities)
}

// DeleteActivity removes the activity. Nothing references activities, so
// there is no cascade. Unknown ids are ignored.
func (s *Store) DeleteActivity(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.activities[:0:0]
	removed := false
	for _, a := range s.activities {
		if a.ID == id {
			removed = true
			continue
		}
		kept = append(kept, a)
	}
	if !removed {
		return nil
	}
	s.activities = kept
	return s.persist(repository.KeyActivities, s.activities)
}

// UpdateGrade upserts the score for the (studentId, evaluationId) pair.
// Any existing grade for the pair is replaced; at most one grade ever
// exists per pair.
func (s *Store) UpdateGrade(studentID, evaluationID string, score int) (models.Grade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.grades[:0:0]
	for _, g := range s.grades {
		if g.StudentID == studentID && g.EvaluationID == evaluationID {
			continue
		}
		kept = append(kept, g)
	}
	grade := models.Grade{StudentID: studentID, EvaluationID: evaluationID, Score: score}
	s.grades = append(kept, grade)
	return grade, s.persist(repository.KeyGrades, s.grades)
}

// User returns a copy of the current profile, or nil when logged out
func (s *Store) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

// Courses returns a copy of the course collection
func (s *Store) Courses() []models.Course {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Course(nil), s.courses...)
}

// Students returns a copy of the student collection
func (s *Store) Students() []models.Student {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Student(nil), s.students...)
}

// Evaluations returns a copy of the evaluation collection
func (s *Store) Evaluations() []models.Evaluation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Evaluation(nil), s.evaluations...)
}

// Activities returns a copy of the calendar activity collection
func (s *Store) Activities() []models.CalendarActivity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.CalendarActivity(nil), s.activities...)
}

// Grades returns a copy of the grade collection
func (s *Store) Grades() []models.Grade {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Grade(nil), s.grades...)
}

// CourseByID returns the matching course, or nil
func (s *Store) CourseByID(id string) *models.Course {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.courses {
		if c.ID == id {
			course := c
			return &course
		}
	}
	return nil
}
