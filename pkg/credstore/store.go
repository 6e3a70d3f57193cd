// Package credstore persists session records in SQLite so an application can
// resume an authorized session across runs instead of re-running the
// registration flow. Each record is stored under a caller-chosen name,
// conventionally "user@instance".
package credstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fedikit/masto/pkg/masto"

	_ "modernc.org/sqlite"
)

// ErrNotFound reports that no session record exists under the given name.
var ErrNotFound = errors.New("credstore: session not found")

type Store struct {
	db  *sql.DB
	dsn string
}

// Open opens (creating if needed) the SQLite database at dsn. Call
// ApplyMigrations before first use.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// Enforce FKs
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		db:  db,
		dsn: dsn,
	}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Save upserts the session record under name. The five record fields
// round-trip unchanged.
func (s *Store) Save(ctx context.Context, name string, data masto.AppData) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions (name, base, client_id, client_secret, redirect, token)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (name) DO UPDATE SET
			base          = excluded.base,
			client_id     = excluded.client_id,
			client_secret = excluded.client_secret,
			redirect      = excluded.redirect,
			token         = excluded.token,
			updated_at    = CURRENT_TIMESTAMP`,
		name, data.Base, data.ClientID, data.ClientSecret, data.Redirect, data.Token,
	)
	return err
}

// Load fetches the session record stored under name.
func (s *Store) Load(ctx context.Context, name string) (masto.AppData, error) {
	var data masto.AppData
	err := s.db.QueryRowContext(ctx, `
		SELECT base, client_id, client_secret, redirect, token
		FROM sessions WHERE name = ?`,
		name,
	).Scan(&data.Base, &data.ClientID, &data.ClientSecret, &data.Redirect, &data.Token)
	if err != nil {
		return masto.AppData{}, mapNotFound(err)
	}
	return data, nil
}

// List returns the names of all stored session records.
func (s *Store) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM sessions ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Delete removes the session record stored under name.
func (s *Store) Delete(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE name = ?`, name)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
