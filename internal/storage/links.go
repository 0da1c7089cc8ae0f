// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jeranaias/newsdesk-tui/internal/model"
)

// =============================================================================
// LINK ARCHIVE
// =============================================================================

// LinkArchive persists link analysis results in a local SQLite database.
// Records are append-only; the newest rows come back first.
type LinkArchive struct {
	db *sql.DB
}

const linkSchema = `
CREATE TABLE IF NOT EXISTS link_analyses (
	id               TEXT PRIMARY KEY,
	url              TEXT NOT NULL,
	domain           TEXT NOT NULL DEFAULT '',
	title            TEXT NOT NULL DEFAULT '',
	language         TEXT NOT NULL DEFAULT '',
	content_type     TEXT NOT NULL DEFAULT '',
	city             TEXT NOT NULL DEFAULT '',
	scope            TEXT NOT NULL DEFAULT '',
	monthly_visitors TEXT NOT NULL DEFAULT '',
	confidence       REAL NOT NULL DEFAULT 0,
	analyzed_at      TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_link_analyses_analyzed_at
	ON link_analyses(analyzed_at DESC);
`

// OpenLinkArchive opens (creating if needed) the archive database at path.
func OpenLinkArchive(path string) (*LinkArchive, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(linkSchema); err != nil {
		db.Close()
		return nil, err
	}

	return &LinkArchive{db: db}, nil
}

// Close releases the underlying database handle.
func (a *LinkArchive) Close() error {
	return a.db.Close()
}

// Insert appends one analysis record.
func (a *LinkArchive) Insert(rec model.LinkAnalysis) error {
	_, err := a.db.Exec(
		`INSERT INTO link_analyses
			(id, url, domain, title, language, content_type, city, scope,
			 monthly_visitors, confidence, analyzed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.URL, rec.Domain, rec.Title, rec.Language, rec.ContentType,
		rec.City, rec.Scope, rec.MonthlyVisitors, rec.Confidence,
		rec.AnalyzedAt.UTC().Format(time.RFC3339Nano),
	)
	return err
}

// Recent returns up to limit records, newest first. limit <= 0 returns all.
func (a *LinkArchive) Recent(limit int) ([]model.LinkAnalysis, error) {
	query := `SELECT id, url, domain, title, language, content_type, city,
		scope, monthly_visitors, confidence, analyzed_at
		FROM link_analyses ORDER BY analyzed_at DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := a.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.LinkAnalysis
	for rows.Next() {
		var rec model.LinkAnalysis
		var analyzedAt string
		if err := rows.Scan(
			&rec.ID, &rec.URL, &rec.Domain, &rec.Title, &rec.Language,
			&rec.ContentType, &rec.City, &rec.Scope, &rec.MonthlyVisitors,
			&rec.Confidence, &analyzedAt,
		); err != nil {
			return nil, err
		}
		if ts, err := time.Parse(time.RFC3339Nano, analyzedAt); err == nil {
			rec.AnalyzedAt = ts
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// All returns every record, newest first.
func (a *LinkArchive) All() ([]model.LinkAnalysis, error) {
	return a.Recent(0)
}

// Count returns the number of stored records.
func (a *LinkArchive) Count() (int, error) {
	var n int
	err := a.db.QueryRow(`SELECT COUNT(*) FROM link_analyses`).Scan(&n)
	return n, err
}
