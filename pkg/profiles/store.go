package profiles

// SQLite-backed persistence for named weight profiles. The weight maps are
// stored as JSON documents in a single table.

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"
)

// NotFoundError is returned when a requested profile does not exist. It is
// surfaced to the caller rather than silently falling back to the default.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("profile %q not found", e.Name)
}

type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS profiles (
	name            TEXT PRIMARY KEY,
	scenic_by_type  TEXT NOT NULL,
	natural_by_type TEXT NOT NULL
);`

// OpenStore opens (creating if needed) the profile database at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open profile store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init profile store: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts or replaces a named profile. The reserved "default" name is
// rejected.
func (s *Store) Save(ctx context.Context, p WeightProfile) error {
	if p.Name == DefaultName {
		return fmt.Errorf("cannot save a profile named %q", DefaultName)
	}
	if p.Name == "" {
		return fmt.Errorf("profile name must not be empty")
	}
	scenic, err := json.Marshal(p.ScenicByType)
	if err != nil {
		return err
	}
	natural, err := json.Marshal(p.NaturalByTag)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO profiles (name, scenic_by_type, natural_by_type) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET scenic_by_type = excluded.scenic_by_type, natural_by_type = excluded.natural_by_type`,
		p.Name, string(scenic), string(natural))
	return err
}

// Get loads a profile by name. The "default" name resolves to the built-in
// profile without touching the database.
func (s *Store) Get(ctx context.Context, name string) (WeightProfile, error) {
	if name == DefaultName {
		return Default(), nil
	}
	var scenic, natural string
	err := s.db.QueryRowContext(ctx,
		`SELECT scenic_by_type, natural_by_type FROM profiles WHERE name = ?`, name).
		Scan(&scenic, &natural)
	if err == sql.ErrNoRows {
		return WeightProfile{}, &NotFoundError{Name: name}
	}
	if err != nil {
		return WeightProfile{}, err
	}
	p := WeightProfile{Name: name}
	if err := json.Unmarshal([]byte(scenic), &p.ScenicByType); err != nil {
		return WeightProfile{}, fmt.Errorf("profile %q: %w", name, err)
	}
	if err := json.Unmarshal([]byte(natural), &p.NaturalByTag); err != nil {
		return WeightProfile{}, fmt.Errorf("profile %q: %w", name, err)
	}
	return p, nil
}

// List returns the names of all stored profiles in alphabetical order,
// with the built-in "default" first.
func (s *Store) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM profiles ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := []string{DefaultName}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// SeedPresets saves the built-in preset profiles if they are not already
// present.
func (s *Store) SeedPresets(ctx context.Context) error {
	for _, p := range Presets() {
		var exists int
		err := s.db.QueryRowContext(ctx, `SELECT 1 FROM profiles WHERE name = ?`, p.Name).Scan(&exists)
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return err
		}
		if err := s.Save(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
