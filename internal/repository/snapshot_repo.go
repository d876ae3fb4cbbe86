package repository

import (
	"database/sql"
	"fmt"

	"github.com/marianoprofesorhistoria-cmd/cordoba-montessori-app/internal/database"
)

// Snapshot keys, one per collection. The montessori_ prefix is the stable
// storage namespace; renaming a key orphans its stored snapshot.
const (
	KeyUser        = "montessori_user"
	KeyCourses     = "montessori_courses"
	KeyStudents    = "montessori_students"
	KeyEvaluations = "montessori_evaluations"
	KeyActivities  = "montessori_activities"
	KeyGrades      = "montessori_grades"
)

// SnapshotRepository stores per-collection JSON snapshots under stable keys
type SnapshotRepository struct {
	db database.DBTX
}

// NewSnapshotRepository creates a new snapshot repository
func NewSnapshotRepository(db database.DBTX) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Load retrieves the snapshot stored under key. A missing key is not an
// error: it reports found=false so the caller can fall back to seed data.
func (r *SnapshotRepository) Load(key string) ([]byte, bool, error) {
	var data string
	query := "SELECT data FROM snapshots WHERE snapshot_key = ?"
	err := r.db.QueryRow(query, key).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load snapshot %s: %w", key, err)
	}
	return []byte(data), true, nil
}

// Save writes the snapshot for key, replacing any previous one
func (r *SnapshotRepository) Save(key string, data []byte) error {
	query := r.db.GetDialect().UpsertSnapshot()
	if _, err := r.db.Exec(query, key, string(data)); err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", key, err)
	}
	return nil
}

// Delete removes the snapshot stored under key, if any
func (r *SnapshotRepository) Delete(key string) error {
	query := "DELETE FROM snapshots WHERE snapshot_key = ?"
	if _, err := r.db.Exec(query, key); err != nil {
		return fmt.Errorf("failed to delete snapshot %s: %w", key, err)
	}
	return nil
}
