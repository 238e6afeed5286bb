// Package sqlite implements a driven.SetStore backed by an existing
// SQLite database. The store never writes: all rows are read once at
// construction and the database is closed before New returns.
//
// Expected schema:
//
//	CREATE TABLE lego_sets (
//	    number         TEXT    NOT NULL,
//	    name           TEXT    NOT NULL,
//	    theme          TEXT    NOT NULL,
//	    subtheme       TEXT,
//	    tags           TEXT,             -- JSON array, NULL = absent
//	    pieces         INTEGER NOT NULL,
//	    packaging_type TEXT    NOT NULL
//	);
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/brickset-cli/internal/core/domain"
	"github.com/custodia-labs/brickset-cli/internal/core/ports/driven"
	"github.com/custodia-labs/brickset-cli/internal/logger"
	"github.com/custodia-labs/brickset-cli/internal/validator"
)

// Ensure Store implements the interface.
var _ driven.SetStore = (*Store)(nil)

// Store is a SQLite-backed, load-once implementation of driven.SetStore.
type Store struct {
	path string
	sets []domain.LegoSet
}

// New loads every row of the lego_sets table from the database at
// path, in rowid order. A missing file, unreadable database, schema
// mismatch or invalid record is a *domain.LoadError.
func New(path string) (*Store, error) {
	// sql.Open defers I/O, and the driver would create an empty
	// database for a bad path instead of failing.
	if _, err := os.Stat(path); err != nil {
		return nil, domain.NewLoadError(path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, domain.NewLoadError(path, err)
	}
	defer db.Close()

	sets, err := loadSets(db)
	if err != nil {
		return nil, domain.NewLoadError(path, err)
	}

	logger.Debug("loaded %d sets from %s", len(sets), path)
	return &Store{path: path, sets: sets}, nil
}

func loadSets(db *sql.DB) ([]domain.LegoSet, error) {
	rows, err := db.Query(`
		SELECT number, name, theme, subtheme, tags, pieces, packaging_type
		FROM lego_sets
		ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("querying lego_sets: %w", err)
	}
	defer rows.Close()

	v := validator.New()

	var sets []domain.LegoSet
	for rows.Next() {
		var (
			set       domain.LegoSet
			subtheme  sql.NullString
			tags      sql.NullString
			packaging string
		)
		if err := rows.Scan(&set.Number, &set.Name, &set.Theme, &subtheme, &tags, &set.Pieces, &packaging); err != nil {
			return nil, fmt.Errorf("scanning row %d: %w", len(sets), err)
		}

		if subtheme.Valid {
			set.Subtheme = &subtheme.String
		}
		if tags.Valid {
			// A stored JSON "null" decodes to nil and still means
			// absent; an empty array stays a present, empty list.
			if err := json.Unmarshal([]byte(tags.String), &set.Tags); err != nil {
				return nil, fmt.Errorf("record %s: decoding tags: %w", set.Number, err)
			}
		}
		set.Packaging = domain.PackagingType(packaging)

		if err := v.Validate(set); err != nil {
			return nil, fmt.Errorf("record %s: %w", set.Number, err)
		}
		sets = append(sets, set)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading lego_sets: %w", err)
	}
	return sets, nil
}

// GetAll returns a deep copy of every record in rowid order.
func (s *Store) GetAll() []domain.LegoSet {
	return domain.CloneSets(s.sets)
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}
