package service

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/marianoprofesorhistoria-cmd/cordoba-montessori-app/internal/database"
	"github.com/marianoprofesorhistoria-cmd/cordoba-montessori-app/internal/models"
	"github.com/marianoprofesorhistoria-cmd/cordoba-montessori-app/internal/repository"
)

// backupVersion identifies the backup file format
const backupVersion = "1.0"

// BackupData is the complete record snapshot: the six collections plus
// format metadata
type BackupData struct {
	Version     string                    `json:"version"`
	ExportedAt  time.Time                 `json:"exported_at"`
	User        *models.User              `json:"user"`
	Courses     []models.Course           `json:"courses"`
	Students    []models.Student          `json:"students"`
	Evaluations []models.Evaluation       `json:"evaluations"`
	Activities  []models.CalendarActivity `json:"activities"`
	Grades      []models.Grade            `json:"grades"`
}

// BackupService exports and restores the full set of collection snapshots
type BackupService struct {
	db *database.DB
}

// NewBackupService creates a new backup service
func NewBackupService(db *database.DB) *BackupService {
	return &BackupService{db: db}
}

// Export writes every stored collection to a single JSON file. Collections
// without a stored snapshot are exported empty.
func (s *BackupService) Export(path string) (*BackupData, error) {
	repo := repository.NewSnapshotRepository(s.db)

	backup := &BackupData{
		Version:    backupVersion,
		ExportedAt: time.Now().UTC(),
	}

	if err := loadInto(repo, repository.KeyUser, &backup.User); err != nil {
		return nil, err
	}
	if err := loadInto(repo, repository.KeyCourses, &backup.Courses); err != nil {
		return nil, err
	}
	if err := loadInto(repo, repository.KeyStudents, &backup.Students); err != nil {
		return nil, err
	}
	if err := loadInto(repo, repository.KeyEvaluations, &backup.Evaluations); err != nil {
		return nil, err
	}
	if err := loadInto(repo, repository.KeyActivities, &backup.Activities); err != nil {
		return nil, err
	}
	if err := loadInto(repo, repository.KeyGrades, &backup.Grades); err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode backup: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write backup file: %w", err)
	}
	return backup, nil
}

// Import restores all six collection snapshots from a backup file in one
// transaction, replacing whatever is stored.
func (s *BackupService) Import(path string) (*BackupData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup file: %w", err)
	}

	var backup BackupData
	if err := json.Unmarshal(data, &backup); err != nil {
		return nil, fmt.Errorf("failed to decode backup file: %w", err)
	}
	if backup.Version == "" {
		return nil, fmt.Errorf("backup file has no version field")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	repo := repository.NewSnapshotRepository(tx)

	snapshots := []struct {
		key string
		v   interface{}
	}{
		{repository.KeyUser, backup.User},
		{repository.KeyCourses, backup.Courses},
		{repository.KeyStudents, backup.Students},
		{repository.KeyEvaluations, backup.Evaluations},
		{repository.KeyActivities, backup.Activities},
		{repository.KeyGrades, backup.Grades},
	}
	for _, snap := range snapshots {
		encoded, err := json.Marshal(snap.v)
		if err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to encode %s: %w", snap.key, err)
		}
		if err := repo.Save(snap.key, encoded); err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit restore: %w", err)
	}
	return &backup, nil
}

// loadInto decodes the snapshot under key into dst, leaving dst untouched
// when no snapshot is stored
func loadInto(repo *repository.SnapshotRepository, key string, dst interface{}) error {
	data, found, err := repo.Load(key)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}
