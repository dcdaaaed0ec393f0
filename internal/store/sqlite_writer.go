// Package store persists a populated class registry to SQLite so the
// instantiation stage can consume a built registry out of process.
package store

import (
	"database/sql"
	"fmt"

	"github.com/agentic-research/topoc/internal/classdef"
	_ "modernc.org/sqlite"
)

// SQLiteWriter writes classes, attributes, and value references into a
// SQLite database. Rows keep declaration order through an explicit pos
// column; readers must order by it, not by rowid.
type SQLiteWriter struct {
	db *sql.DB
}

// NewSQLiteWriter opens dbPath and initializes the schema.
func NewSQLiteWriter(dbPath string) (*SQLiteWriter, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}

	// Bulk-insert tuning; the database is rebuilt from scratch on every
	// export, so durability during the write does not matter.
	if _, err := db.Exec("PRAGMA synchronous = OFF"); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec("PRAGMA journal_mode = MEMORY"); err != nil {
		_ = db.Close()
		return nil, err
	}

	schema := `
	CREATE TABLE IF NOT EXISTS classes (
		name TEXT PRIMARY KEY,
		pos INTEGER NOT NULL,
		num_args INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS attributes (
		id INTEGER PRIMARY KEY,
		class_name TEXT NOT NULL REFERENCES classes(name),
		pos INTEGER NOT NULL,
		name TEXT NOT NULL,
		kind INTEGER NOT NULL,
		token_ref TEXT NOT NULL DEFAULT '',
		min INTEGER NOT NULL,
		max INTEGER NOT NULL,
		mask INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_attributes_class ON attributes(class_name, pos);

	CREATE TABLE IF NOT EXISTS value_refs (
		attribute_id INTEGER NOT NULL REFERENCES attributes(id),
		pos INTEGER NOT NULL,
		ref_id TEXT NOT NULL,
		string TEXT NOT NULL,
		value INTEGER NOT NULL,
		resolved INTEGER NOT NULL,
		PRIMARY KEY (attribute_id, pos)
	) WITHOUT ROWID;
	`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLiteWriter{db: db}, nil
}

// Write persists the whole registry in one transaction.
func (w *SQLiteWriter) Write(reg *classdef.Registry) error {
	tx, err := w.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmtClass, err := tx.Prepare(`INSERT OR REPLACE INTO classes (name, pos, num_args) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() { _ = stmtClass.Close() }()

	stmtAttr, err := tx.Prepare(`
		INSERT INTO attributes (class_name, pos, name, kind, token_ref, min, max, mask)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer func() { _ = stmtAttr.Close() }()

	stmtRef, err := tx.Prepare(`
		INSERT INTO value_refs (attribute_id, pos, ref_id, string, value, resolved)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer func() { _ = stmtRef.Close() }()

	for ci, class := range reg.Classes() {
		if _, err := stmtClass.Exec(class.Name, ci, class.NumArgs); err != nil {
			return fmt.Errorf("write class %q: %w", class.Name, err)
		}
		for ai, attr := range class.Attributes {
			res, err := stmtAttr.Exec(class.Name, ai, attr.Name, int(attr.Kind),
				attr.TokenRef, attr.Constraint.Min, attr.Constraint.Max,
				int64(attr.Constraint.Mask))
			if err != nil {
				return fmt.Errorf("write attribute %q of class %q: %w", attr.Name, class.Name, err)
			}
			attrID, err := res.LastInsertId()
			if err != nil {
				return err
			}
			for ri, ref := range attr.Constraint.ValueRefs {
				resolved := 0
				if ref.Resolved() {
					resolved = 1
				}
				if _, err := stmtRef.Exec(attrID, ri, ref.ID, ref.String, ref.Value, resolved); err != nil {
					return fmt.Errorf("write value ref %q of attribute %q: %w", ref.ID, attr.Name, err)
				}
			}
		}
	}

	return tx.Commit()
}

// Close closes the underlying database.
func (w *SQLiteWriter) Close() error {
	return w.db.Close()
}
