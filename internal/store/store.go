// Package store persists projects in a local SQLite database. It
// implements the engine's Saver and Loader collaborator interfaces;
// the canvas snapshot travels as a JSON blob so schema churn in the
// component model never requires a migration.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"canvaskit/internal/canvas"
	"canvaskit/internal/engine"
)

// ErrNotFound is returned when a project id is absent.
var ErrNotFound = errors.New("project not found")

// Store wraps the SQLite connection.
type Store struct {
	conn *sql.DB
}

// ProjectInfo is a row of the project listing, without the canvas
// payload.
type ProjectInfo struct {
	ID      string
	Name    string
	SavedAt time.Time
}

// Open creates a Store, opening (or creating) the SQLite file at
// dbPath.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	conn, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// SQLite only supports one writer; a single connection avoids
	// SQLITE_BUSY under concurrent autosaves.
	conn.SetMaxOpenConns(1)

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS projects (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			saved_at DATETIME NOT NULL,
			canvas_json TEXT NOT NULL DEFAULT '{}'
		)`,
		`CREATE INDEX IF NOT EXISTS idx_projects_saved_at ON projects(saved_at)`,
	}
	for _, m := range migrations {
		if _, err := s.conn.Exec(m); err != nil {
			return err
		}
	}
	return nil
}

// SaveProject upserts a project. Saving under an existing id replaces
// the stored canvas.
func (s *Store) SaveProject(ctx context.Context, p *engine.Project) error {
	payload, err := json.Marshal(p.Canvas)
	if err != nil {
		return fmt.Errorf("encode canvas: %w", err)
	}

	_, err = s.conn.ExecContext(ctx, `
		INSERT INTO projects (id, name, saved_at, canvas_json)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			saved_at = excluded.saved_at,
			canvas_json = excluded.canvas_json`,
		p.ID, p.Name, p.SavedAt.UTC(), string(payload))
	if err != nil {
		return fmt.Errorf("save project %q: %w", p.ID, err)
	}
	return nil
}

// LoadProject retrieves a project by id.
func (s *Store) LoadProject(ctx context.Context, id string) (*engine.Project, error) {
	var (
		p       engine.Project
		payload string
	)
	err := s.conn.QueryRowContext(ctx,
		`SELECT id, name, saved_at, canvas_json FROM projects WHERE id = ?`, id).
		Scan(&p.ID, &p.Name, &p.SavedAt, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("load project %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load project %q: %w", id, err)
	}

	var snap canvas.Snapshot
	if err := json.Unmarshal([]byte(payload), &snap); err != nil {
		return nil, fmt.Errorf("decode canvas for %q: %w", id, err)
	}
	p.Canvas = snap
	return &p, nil
}

// DeleteProject removes a project. Absent ids are a no-op.
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	if _, err := s.conn.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete project %q: %w", id, err)
	}
	return nil
}

// ListProjects returns project metadata, most recently saved first.
func (s *Store) ListProjects(ctx context.Context) ([]ProjectInfo, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT id, name, saved_at FROM projects ORDER BY saved_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var out []ProjectInfo
	for rows.Next() {
		var info ProjectInfo
		if err := rows.Scan(&info.ID, &info.Name, &info.SavedAt); err != nil {
			return nil, fmt.Errorf("scan project row: %w", err)
		}
		out = append(out, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return out, nil
}
