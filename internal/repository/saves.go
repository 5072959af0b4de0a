package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dominionfree/dominion-server-go/internal/game"
)

// ErrSaveNotFound is returned when no save matches the requested id or name.
var ErrSaveNotFound = errors.New("saved game not found")

// SaveInfo summarizes one stored save for listings.
type SaveInfo struct {
	ID        string
	Name      string
	Turn      int
	Checksum  string
	CreatedAt time.Time
}

// SaveRepository stores game snapshots. The engine's snapshot is marshalled
// to JSON here; the engine itself never sees serialization bytes.
type SaveRepository struct {
	db *DB
}

// NewSaveRepository creates a save repository on the given database.
func NewSaveRepository(db *DB) *SaveRepository {
	return &SaveRepository{db: db}
}

// EnsureSchema creates the saved_games table if it does not exist.
func (r *SaveRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS saved_games (
			id         UUID PRIMARY KEY,
			name       TEXT NOT NULL,
			turn       INT NOT NULL,
			checksum   TEXT NOT NULL,
			snapshot   JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("creating saved_games schema: %w", err)
	}
	return nil
}

// Save stores a snapshot under a human-readable name and returns the save id.
func (r *SaveRepository) Save(ctx context.Context, name string, snap *game.Snapshot) (string, error) {
	payload, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("encoding snapshot: %w", err)
	}
	id := uuid.NewString()
	_, err = r.db.pool.Exec(ctx,
		`INSERT INTO saved_games (id, name, turn, checksum, snapshot) VALUES ($1, $2, $3, $4, $5)`,
		id, name, snap.Turn, snap.Checksum(), payload)
	if err != nil {
		return "", fmt.Errorf("storing save %q: %w", name, err)
	}
	return id, nil
}

// Load retrieves the most recent save with the given name and verifies its
// checksum before handing the snapshot back.
func (r *SaveRepository) Load(ctx context.Context, name string) (*game.Snapshot, error) {
	var payload []byte
	var checksum string
	err := r.db.pool.QueryRow(ctx,
		`SELECT snapshot, checksum FROM saved_games WHERE name = $1 ORDER BY created_at DESC LIMIT 1`,
		name).Scan(&payload, &checksum)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrSaveNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("loading save %q: %w", name, err)
	}

	var snap game.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, fmt.Errorf("decoding save %q: %w", name, err)
	}
	if snap.Checksum() != checksum {
		return nil, fmt.Errorf("save %q failed checksum verification", name)
	}
	return &snap, nil
}

// List returns summaries of all stored saves, newest first.
func (r *SaveRepository) List(ctx context.Context) ([]SaveInfo, error) {
	rows, err := r.db.pool.Query(ctx,
		`SELECT id, name, turn, checksum, created_at FROM saved_games ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing saves: %w", err)
	}
	defer rows.Close()

	var saves []SaveInfo
	for rows.Next() {
		var info SaveInfo
		if err := rows.Scan(&info.ID, &info.Name, &info.Turn, &info.Checksum, &info.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning save row: %w", err)
		}
		saves = append(saves, info)
	}
	return saves, rows.Err()
}

// Delete removes a save by id.
func (r *SaveRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.pool.Exec(ctx, `DELETE FROM saved_games WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting save %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrSaveNotFound, id)
	}
	return nil
}
