package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Luisfch1/CONTROL/internal/model"
)

// ErrProjectNotFound is returned when the requested project id is absent.
var ErrProjectNotFound = errors.New("project not found")

// SaveProject upserts the whole aggregate under its id.
func (s *Store) SaveProject(p *model.Project) error {
	if p.ID == "" {
		return errors.New("project id is required")
	}
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode project: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO projects (id, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP
	`, p.ID, string(data))
	return err
}

// GetProject loads one aggregate by id.
func (s *Store) GetProject(id string) (*model.Project, error) {
	var data string
	err := s.db.QueryRow("SELECT data FROM projects WHERE id = ?", id).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	var p model.Project
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, fmt.Errorf("failed to decode project %s: %w", id, err)
	}
	return &p, nil
}

// DeleteProject removes one aggregate by id.
func (s *Store) DeleteProject(id string) error {
	res, err := s.db.Exec("DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrProjectNotFound
	}
	return nil
}

// ListProjects loads every stored aggregate, most recently updated first.
func (s *Store) ListProjects() ([]*model.Project, error) {
	rows, err := s.db.Query("SELECT data FROM projects ORDER BY updated_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []*model.Project{}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var p model.Project
		if err := json.Unmarshal([]byte(data), &p); err != nil {
			return nil, fmt.Errorf("failed to decode project: %w", err)
		}
		projects = append(projects, &p)
	}
	return projects, rows.Err()
}
