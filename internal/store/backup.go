package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Luisfch1/CONTROL/internal/model"
)

// backupVersion is the interchange format version this build writes.
const backupVersion = 1

// Backup is the backup/restore interchange document.
type Backup struct {
	Version    int              `json:"version"`
	ExportedAt time.Time        `json:"exportedAt"`
	Settings   *model.Settings  `json:"settings"`
	Projects   []*model.Project `json:"projects"`
}

// ExportBackup snapshots the settings and every project.
func (s *Store) ExportBackup() (*Backup, error) {
	settings, err := s.GetSettings()
	if err != nil {
		return nil, err
	}
	projects, err := s.ListProjects()
	if err != nil {
		return nil, err
	}
	return &Backup{
		Version:    backupVersion,
		ExportedAt: time.Now().UTC(),
		Settings:   settings,
		Projects:   projects,
	}, nil
}

// RestoreBackup applies a backup document: settings are merged over the
// defaults, every project is upserted wholesale. Projects already in the
// store but absent from the backup are left untouched.
func (s *Store) RestoreBackup(data []byte) error {
	// Unmarshalling over the defaults merges them: fields absent from the
	// backup keep their default value.
	backup := Backup{Settings: model.DefaultSettings()}
	if err := json.Unmarshal(data, &backup); err != nil {
		return fmt.Errorf("failed to decode backup: %w", err)
	}
	if backup.Version > backupVersion {
		return fmt.Errorf("unsupported backup version %d", backup.Version)
	}

	if backup.Settings == nil {
		backup.Settings = model.DefaultSettings()
	}
	if err := s.SaveSettings(backup.Settings); err != nil {
		return err
	}

	for _, p := range backup.Projects {
		if err := s.SaveProject(p); err != nil {
			return err
		}
	}
	return nil
}
