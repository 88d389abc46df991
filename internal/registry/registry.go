// Package registry persists player registrations in SQLite. Registration is
// a one-time step before joining any room: it hands out the player's stable
// ID and reserves the display name, case-insensitively.
package registry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"linklogic/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS players (
	id          TEXT PRIMARY KEY,
	real_name   TEXT NOT NULL,
	player_name TEXT NOT NULL UNIQUE COLLATE NOCASE,
	cell_phone  TEXT NOT NULL,
	email       TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMP NOT NULL
);
`

// Registry is the SQLite-backed player store
type Registry struct {
	db *sql.DB
}

// Open opens (and creates if missing) the registry database
func Open(dsn string) (*Registry, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Registry{db: db}, nil
}

// Register validates and stores a new player, returning the created record
// with its generated ID. A name already held by another player, compared
// case-insensitively, returns ErrNameTaken.
func (r *Registry) Register(ctx context.Context, realName, playerName, cellPhone, email string) (*domain.Registration, error) {
	realName = strings.TrimSpace(realName)
	playerName = strings.TrimSpace(playerName)
	cellPhone = strings.TrimSpace(cellPhone)
	email = strings.TrimSpace(email)

	if err := ValidateRegistration(realName, playerName, cellPhone, email); err != nil {
		return nil, err
	}

	reg := &domain.Registration{
		PlayerID:   uuid.New().String(),
		RealName:   realName,
		PlayerName: playerName,
		CellPhone:  cellPhone,
		Email:      email,
		CreatedAt:  time.Now(),
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO players (id, real_name, player_name, cell_phone, email, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		reg.PlayerID, reg.RealName, reg.PlayerName, reg.CellPhone, reg.Email, reg.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, domain.ErrNameTaken
		}
		return nil, fmt.Errorf("insert player: %w", err)
	}

	return reg, nil
}

// Get returns the registration for a player ID
func (r *Registry) Get(ctx context.Context, playerID string) (*domain.Registration, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, real_name, player_name, cell_phone, email, created_at
		 FROM players WHERE id = ?`, playerID)

	var reg domain.Registration
	err := row.Scan(&reg.PlayerID, &reg.RealName, &reg.PlayerName, &reg.CellPhone, &reg.Email, &reg.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrPlayerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query player: %w", err)
	}
	return &reg, nil
}

// NameTaken reports whether a display name is already registered
func (r *Registry) NameTaken(ctx context.Context, playerName string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM players WHERE player_name = ? COLLATE NOCASE`,
		strings.TrimSpace(playerName)).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("query name: %w", err)
	}
	return n > 0, nil
}

// Close closes the underlying database
func (r *Registry) Close() error {
	return r.db.Close()
}
