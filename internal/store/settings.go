package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Luisfch1/CONTROL/internal/model"
)

// GetSettings loads the stored settings, or the defaults when none were
// saved yet.
func (s *Store) GetSettings() (*model.Settings, error) {
	var data string
	err := s.db.QueryRow("SELECT data FROM settings WHERE id = 1").Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.DefaultSettings(), nil
		}
		return nil, err
	}

	settings := model.DefaultSettings()
	if err := json.Unmarshal([]byte(data), settings); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	return settings, nil
}

// SaveSettings stores the settings, replacing any previous value.
func (s *Store) SaveSettings(settings *model.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO settings (id, data, updated_at) VALUES (1, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP
	`, string(data))
	return err
}
