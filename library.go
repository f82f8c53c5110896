package udg

import (
	"crypto/sha1"
	"database/sql"
	"errors"
	"fmt"

	udgimage "github.com/bodgit/udg/image"
	"github.com/bodgit/udg/raster"
	_ "github.com/mattn/go-sqlite3"
)

var (
	// ErrNotFound is returned when a library has no entry with a given name
	ErrNotFound = errors.New("udg: no such entry")

	errEmptyName = errors.New("udg: entry name is empty")
)

// Library is a collection of named images stored in an SQLite database.
// Identical images are only stored once.
type Library struct {
	db *sql.DB
}

// Entry describes a named image in a library
type Entry struct {
	Name          string
	Width, Height int
	Ratio         raster.Ratio
}

// NewLibrary opens the library in file, creating it if necessary
func NewLibrary(file string) (*Library, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS glyph (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL UNIQUE, width INTEGER NOT NULL, height INTEGER NOT NULL, data BLOB NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS entry (id INTEGER PRIMARY KEY NOT NULL, name TEXT NOT NULL UNIQUE, glyph_id INTEGER NOT NULL, ratio REAL NOT NULL, FOREIGN KEY(glyph_id) REFERENCES glyph(id))"); err != nil {
		db.Close()
		return nil, err
	}

	return &Library{
		db: db,
	}, nil
}

// Close closes the underlying database
func (l *Library) Close() error {
	return l.db.Close()
}

func (l *Library) addGlyph(r *raster.Raster) (int64, error) {
	// The ratio belongs to the entry, not the pixels
	b := udgimage.Marshal(r, raster.Normal)
	sha := fmt.Sprintf("%X", sha1.Sum(b))

	var id int64
	switch err := l.db.QueryRow("SELECT id FROM glyph WHERE sha1 = ?", sha).Scan(&id); err {
	case sql.ErrNoRows:
		result, err := l.db.Exec("INSERT INTO glyph (sha1, width, height, data) VALUES (?, ?, ?, ?)", sha, r.Width(), r.Height(), b)
		if err != nil {
			return 0, err
		}
		return result.LastInsertId()
	case nil:
		return id, nil
	default:
		return 0, err
	}
}

func (l *Library) prune() error {
	_, err := l.db.Exec("DELETE FROM glyph WHERE id NOT IN (SELECT glyph_id FROM entry)")
	return err
}

// Add stores r under name, replacing any existing entry with that name
func (l *Library) Add(name string, r *raster.Raster, ratio raster.Ratio) error {
	if name == "" {
		return errEmptyName
	}

	glyph, err := l.addGlyph(r)
	if err != nil {
		return err
	}

	if _, err := l.db.Exec("INSERT OR REPLACE INTO entry (name, glyph_id, ratio) VALUES (?, ?, ?)", name, glyph, float64(raster.NormalizeRatio(float32(ratio)))); err != nil {
		return err
	}

	return l.prune()
}

// Get returns the image stored under name
func (l *Library) Get(name string) (*raster.Raster, raster.Ratio, error) {
	var data []byte
	var ratio float64
	switch err := l.db.QueryRow("SELECT g.data, e.ratio FROM entry AS e JOIN glyph AS g ON e.glyph_id = g.id WHERE e.name = ?", name).Scan(&data, &ratio); err {
	case sql.ErrNoRows:
		return nil, 0, ErrNotFound
	case nil:
		r, _, err := udgimage.Unmarshal(data)
		if err != nil {
			return nil, 0, fmt.Errorf("udg: entry %q: %w", name, err)
		}
		return r, raster.NormalizeRatio(float32(ratio)), nil
	default:
		return nil, 0, err
	}
}

// List returns every entry sorted by name
func (l *Library) List() ([]Entry, error) {
	rows, err := l.db.Query("SELECT e.name, g.width, g.height, e.ratio FROM entry AS e JOIN glyph AS g ON e.glyph_id = g.id ORDER BY e.name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var ratio float64
		if err := rows.Scan(&e.Name, &e.Width, &e.Height, &ratio); err != nil {
			return nil, err
		}
		e.Ratio = raster.NormalizeRatio(float32(ratio))
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Remove deletes the entry stored under name
func (l *Library) Remove(name string) error {
	result, err := l.db.Exec("DELETE FROM entry WHERE name = ?", name)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return l.prune()
}

// Glyphs returns the number of distinct images stored
func (l *Library) Glyphs() (int, error) {
	var n int
	err := l.db.QueryRow("SELECT COUNT(*) FROM glyph").Scan(&n)
	return n, err
}
