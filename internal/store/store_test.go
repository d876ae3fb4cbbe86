package store

import (
	"errors"
	"testing"

	"github.com/marianoprofesorhistoria-cmd/cordoba-montessori-app/internal/models"
	"github.com/marianoprofesorhistoria-cmd/cordoba-montessori-app/internal/repository"
)

// memPersister keeps snapshots in a map so store behavior can be tested
// without a database
type memPersister struct {
	snapshots map[string][]byte
	saveErr   error
	saves     int
}

func newMemPersister() *memPersister {
	return &memPersister{snapshots: make(map[string][]byte)}
}

func (p *memPersister) Load(key string) ([]byte, bool, error) {
	data, found := p.snapshots[key]
	return data, found, nil
}

func (p *memPersister) Save(key string, data []byte) error {
	if p.saveErr != nil {
		return p.saveErr
	}
	p.saves++
	p.snapshots[key] = data
	return nil
}

func newTestStore(t *testing.T) (*Store, *memPersister) {
	t.Helper()
	persister := newMemPersister()
	s := New(persister)
	if err := s.Load(); err != nil {
		t.Fatalf("load store: %v", err)
	}
	return s, persister
}

func TestLoadSeedsEmptyStorage(t *testing.T) {
	s, persister := newTestStore(t)

	if got := len(s.Courses()); got != 2 {
		t.Errorf("seeded courses = %d, want 2", got)
	}
	if got := len(s.Students()); got != 3 {
		t.Errorf("seeded students = %d, want 3", got)
	}
	if got := len(s.Evaluations()); got != 2 {
		t.Errorf("seeded evaluations = %d, want 2", got)
	}
	if got := len(s.Grades()); got != 3 {
		t.Errorf("seeded grades = %d, want 3", got)
	}
	if got := len(s.Activities()); got != 17 {
		t.Errorf("seeded efemérides = %d, want 17", got)
	}
	if s.User() != nil {
		t.Error("no user should be seeded")
	}

	// Seeded collections are written back so the next start finds them
	for _, key := range []string{repository.KeyCourses, repository.KeyStudents, repository.KeyEvaluations, repository.KeyActivities, repository.KeyGrades} {
		if _, found := persister.snapshots[key]; !found {
			t.Errorf("seed for %s was not persisted", key)
		}
	}
}

func TestLoadRoundTrip(t *testing.T) {
	persister := newMemPersister()
	s := New(persister)
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}

	course, err := s.AddCourse(models.Course{Subject: "Historia", Teacher: "M. Otero", AcademicYear: "2025", Taller: models.Taller3, Year: 2, Division: models.DivisionA})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Login("docente@escuela.edu.ar"); err != nil {
		t.Fatal(err)
	}

	// A second store over the same storage sees identical collections
	reloaded := New(persister)
	if err := reloaded.Load(); err != nil {
		t.Fatal(err)
	}

	if got := len(reloaded.Courses()); got != 3 {
		t.Fatalf("reloaded courses = %d, want 3", got)
	}
	if found := reloaded.CourseByID(course.ID); found == nil || found.Subject != "Historia" {
		t.Errorf("reloaded store missing added course %q", course.ID)
	}
	user := reloaded.User()
	if user == nil || user.Email != "docente@escuela.edu.ar" {
		t.Errorf("reloaded user = %+v, want logged-in profile", user)
	}
}

func TestLoginIsIdempotent(t *testing.T) {
	s, _ := newTestStore(t)

	first, err := s.Login("docente@escuela.edu.ar")
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.Login("docente@escuela.edu.ar")
	if err != nil {
		t.Fatal(err)
	}

	if first != second {
		t.Errorf("login is not idempotent: %+v vs %+v", first, second)
	}
	if first.Name != DefaultTeacherName || first.Role != models.RoleDocente || first.AcademicYear != DefaultAcademicYear {
		t.Errorf("login profile has wrong fixed fields: %+v", first)
	}
}

func TestLogoutClearsProfile(t *testing.T) {
	s, _ := newTestStore(t)

	if _, err := s.Login("docente@escuela.edu.ar"); err != nil {
		t.Fatal(err)
	}
	if err := s.Logout(); err != nil {
		t.Fatal(err)
	}
	if s.User() != nil {
		t.Error("user should be absent after logout")
	}
}

func TestUpdateUser(t *testing.T) {
	s, _ := newTestStore(t)

	// No profile: silent no-op
	name := "Otro Nombre"
	updated, err := s.UpdateUser(models.UserUpdate{Name: &name})
	if err != nil {
		t.Fatal(err)
	}
	if updated != nil {
		t.Error("updating an absent profile should be a no-op")
	}

	if _, err := s.Login("docente@escuela.edu.ar"); err != nil {
		t.Fatal(err)
	}
	year := "2025"
	updated, err = s.UpdateUser(models.UserUpdate{AcademicYear: &year})
	if err != nil {
		t.Fatal(err)
	}
	if updated == nil || updated.AcademicYear != "2025" {
		t.Errorf("updated user = %+v, want academicYear 2025", updated)
	}
	if updated.Email != "docente@escuela.edu.ar" {
		t.Errorf("partial update clobbered email: %+v", updated)
	}
}

func TestUpdateGradeUpsert(t *testing.T) {
	s, _ := newTestStore(t)

	if _, err := s.UpdateGrade("s1", "e1", 50); err != nil {
		t.Fatal(err)
	}
	if _, err := s.UpdateGrade("s1", "e1", 90); err != nil {
		t.Fatal(err)
	}

	count := 0
	for _, g := range s.Grades() {
		if g.StudentID == "s1" && g.EvaluationID == "e1" {
			count++
			if g.Score != 90 {
				t.Errorf("score = %d, want the later write 90", g.Score)
			}
		}
	}
	if count != 1 {
		t.Errorf("grades for (s1, e1) = %d, want exactly 1", count)
	}
}

func TestUpdateGradeInsertsNewPair(t *testing.T) {
	s, _ := newTestStore(t)
	before := len(s.Grades())

	if _, err := s.UpdateGrade("s3", "e2", 77); err != nil {
		t.Fatal(err)
	}
	if got := len(s.Grades()); got != before+1 {
		t.Errorf("grades = %d, want %d", got, before+1)
	}
}

func TestDeleteStudentCascadesGrades(t *testing.T) {
	s, _ := newTestStore(t)

	// Seed data has two grades for s1
	if err := s.DeleteStudent("s1"); err != nil {
		t.Fatal(err)
	}

	for _, st := range s.Students() {
		if st.ID == "s1" {
			t.Error("student s1 should be gone")
		}
	}
	for _, g := range s.Grades() {
		if g.StudentID == "s1" {
			t.Errorf("orphan grade survived: %+v", g)
		}
	}
}

func TestDeleteEvaluationCascadesGrades(t *testing.T) {
	s, _ := newTestStore(t)

	if err := s.DeleteEvaluation("e1"); err != nil {
		t.Fatal(err)
	}

	for _, ev := range s.Evaluations() {
		if ev.ID == "e1" {
			t.Error("evaluation e1 should be gone")
		}
	}
	for _, g := range s.Grades() {
		if g.EvaluationID == "e1" {
			t.Errorf("orphan grade survived: %+v", g)
		}
	}
}

func TestDeleteUnknownIDsAreNoOps(t *testing.T) {
	s, persister := newTestStore(t)
	savesBefore := persister.saves

	if err := s.DeleteStudent("nope"); err != nil {
		t.Fatal(err)
	}
	if err := s.DeleteEvaluation("nope"); err != nil {
		t.Fatal(err)
	}
	if err := s.DeleteActivity("nope"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.UpdateStudent("nope", models.StudentUpdate{}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.UpdateEvaluation("nope", "x", "2024-01-01"); err != nil {
		t.Fatal(err)
	}

	if persister.saves != savesBefore {
		t.Errorf("no-op mutations persisted %d snapshots", persister.saves-savesBefore)
	}
}

func TestAddStudentsBulk(t *testing.T) {
	s, persister := newTestStore(t)
	before := len(s.Students())
	savesBefore := persister.saves

	added, err := s.AddStudentsBulk([]models.Student{
		{CourseID: "1", FirstName: "Juan", LastName: "Pérez", Situation: models.SituationPresencial},
		{CourseID: "1", FirstName: "Ana", LastName: "García", Situation: models.SituationPresencial},
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(added) != 2 {
		t.Fatalf("added = %d students, want 2", len(added))
	}
	if got := len(s.Students()); got != before+2 {
		t.Errorf("students = %d, want %d", got, before+2)
	}
	if persister.saves != savesBefore+1 {
		t.Errorf("bulk add persisted %d writes, want a single one", persister.saves-savesBefore)
	}
	ids := map[string]bool{}
	for _, st := range added {
		if st.ID == "" {
			t.Error("bulk-added student has no id")
		}
		if ids[st.ID] {
			t.Errorf("duplicate id %s", st.ID)
		}
		ids[st.ID] = true
	}
}

func TestAddStudentsBulkEmpty(t *testing.T) {
	s, persister := newTestStore(t)
	savesBefore := persister.saves

	added, err := s.AddStudentsBulk(nil)
	if err != nil {
		t.Fatal(err)
	}
	if added != nil {
		t.Errorf("empty bulk add returned %v", added)
	}
	if persister.saves != savesBefore {
		t.Error("empty bulk add should not persist")
	}
}

func TestUpdateStudentSituation(t *testing.T) {
	s, _ := newTestStore(t)

	situation := models.SituationInactivo
	updated, err := s.UpdateStudent("s2", models.StudentUpdate{Situation: &situation})
	if err != nil {
		t.Fatal(err)
	}
	if updated == nil || updated.Situation != models.SituationInactivo {
		t.Errorf("updated student = %+v, want situation Inactivo", updated)
	}
	if updated.FirstName != "Ana" {
		t.Errorf("partial update clobbered firstName: %+v", updated)
	}
}

func TestActivities(t *testing.T) {
	s, _ := newTestStore(t)

	added, err := s.AddActivity(models.CalendarActivity{Title: "Reunión de padres", Date: "2024-06-10T18:00:00Z", Type: models.ActivityReunion})
	if err != nil {
		t.Fatal(err)
	}
	if added.ID == "" {
		t.Error("activity should get an id")
	}

	if err := s.DeleteActivity(added.ID); err != nil {
		t.Fatal(err)
	}
	for _, a := range s.Activities() {
		if a.ID == added.ID {
			t.Error("activity should be gone")
		}
	}
}

func TestPersistenceFailureKeepsMemoryState(t *testing.T) {
	s, persister := newTestStore(t)
	persister.saveErr = errors.New("disk full")

	_, err := s.UpdateGrade("s1", "e1", 99)
	if !errors.Is(err, ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}

	// In-memory state is still the source of truth for the session
	for _, g := range s.Grades() {
		if g.StudentID == "s1" && g.EvaluationID == "e1" && g.Score != 99 {
			t.Errorf("in-memory grade = %d, want 99 despite persistence failure", g.Score)
		}
	}
}

func TestFlushWritesAllCollections(t *testing.T) {
	s, persister := newTestStore(t)
	persister.snapshots = map[string][]byte{}

	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}
	if got := len(persister.snapshots); got != 6 {
		t.Errorf("flush wrote %d snapshots, want 6", got)
	}
}

func TestReadAccessorsReturnCopies(t *testing.T) {
	s, _ := newTestStore(t)

	courses := s.Courses()
	courses[0].Subject = "Hacked"
	if s.Courses()[0].Subject == "Hacked" {
		t.Error("Courses() must return a copy, not the internal slice")
	}
}
