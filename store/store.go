package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/katalvlaran/nbpoly/basis"
	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite"
)

// ErrNotFound — the named potential has no rows.
var ErrNotFound = errors.New("store: potential not found")

const schema = `
CREATE TABLE IF NOT EXISTS potential_terms (
	potential  TEXT    NOT NULL,
	seq        INTEGER NOT NULL,
	body_order INTEGER NOT NULL,
	term       TEXT    NOT NULL,
	PRIMARY KEY (potential, seq)
)`

// Store is a SQLite-backed catalogue of potentials. It is safe for
// concurrent use; the underlying pool is pinned to one connection because
// in-memory SQLite databases are per-connection.
type Store struct {
	db *sqlx.DB
}

// Open connects to the SQLite database at path (":memory:" for an
// ephemeral one) and ensures the schema exists.
func Open(path string) (*Store, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("store: create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

type termRow struct {
	Potential string `db:"potential"`
	Seq       int    `db:"seq"`
	BodyOrder int    `db:"body_order"`
	Term      string `db:"term"`
}

// Put stores the potential under name, replacing any previous contents
// atomically. Terms that cannot be serialized (custom dictionaries) fail
// the whole write.
func (s *Store) Put(ctx context.Context, name string, terms []*basis.Term) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM potential_terms WHERE potential = ?`, name); err != nil {
		return fmt.Errorf("store: clear %s: %w", name, err)
	}

	for seq, term := range terms {
		blob, err := yaml.Marshal(term)
		if err != nil {
			return fmt.Errorf("store: term %d of %s: %w", seq, name, err)
		}
		row := termRow{Potential: name, Seq: seq, BodyOrder: term.BodyOrder(), Term: string(blob)}
		if _, err := tx.NamedExecContext(ctx,
			`INSERT INTO potential_terms (potential, seq, body_order, term)
			 VALUES (:potential, :seq, :body_order, :term)`, row); err != nil {
			return fmt.Errorf("store: insert term %d of %s: %w", seq, name, err)
		}
	}

	return tx.Commit()
}

// Get loads the named potential, terms in their Put order.
func (s *Store) Get(ctx context.Context, name string) ([]*basis.Term, error) {
	var rows []termRow
	if err := s.db.SelectContext(ctx, &rows,
		`SELECT potential, seq, body_order, term FROM potential_terms
		 WHERE potential = ? ORDER BY seq`, name); err != nil {
		return nil, fmt.Errorf("store: load %s: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("store: %s: %w", name, ErrNotFound)
	}

	terms := make([]*basis.Term, len(rows))
	for i, row := range rows {
		var t basis.Term
		if err := yaml.Unmarshal([]byte(row.Term), &t); err != nil {
			return nil, fmt.Errorf("store: term %d of %s: %w", row.Seq, name, err)
		}
		terms[i] = &t
	}

	return terms, nil
}

// List returns the stored potential names in lexical order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	var names []string
	if err := s.db.SelectContext(ctx, &names,
		`SELECT DISTINCT potential FROM potential_terms ORDER BY potential`); err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}

	return names, nil
}

// Delete removes the named potential; deleting an absent one is
// ErrNotFound.
func (s *Store) Delete(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM potential_terms WHERE potential = ?`, name)
	if err != nil {
		return fmt.Errorf("store: delete %s: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: delete %s: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("store: %s: %w", name, ErrNotFound)
	}

	return nil
}
