/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package cache persists parse results in an embedded SQLite database so that
// re-running a breakdown over an unchanged script is instant. The cache key is
// derived from the script text and the taxonomy version, so edits to either
// invalidate the entry.
package cache

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	applog "scriptbreakdown/internal/log"
	"scriptbreakdown/internal/screenplay"
	"scriptbreakdown/internal/version"
	"log/slog"

	// Pure-Go SQLite driver (CGO-free)
	_ "modernc.org/sqlite"
)

const (
	FileName = "results.sqlite"

	// schemaVersion tracks the local SQLite schema.
	// Bump this when you perform breaking schema changes.
	schemaVersion = 1
)

// Store is an open result cache.
type Store struct {
	db *sql.DB
}

// Open ensures dir exists, opens (or creates) the database inside it, enables
// WAL mode, and ensures the meta/version/results tables exist.
func Open(dir string) (*Store, error) {
	l := applog.WithOperation(applog.WithComponent("cache"), "open").With(
		slog.String("dir", dir),
	)
	if dir == "" {
		return nil, errors.New("cache dir is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		l.Error("create cache dir failed", slog.Any("err", err))
		return nil, fmt.Errorf("create cache dir: %w", err)
	}

	path := filepath.Join(dir, FileName)
	uriPath := filepath.ToSlash(path)
	dsn := fmt.Sprintf("file:%s?cache=shared&_pragma=busy_timeout(5000)", uriPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		l.Error("sqlite open failed", slog.Any("err", err))
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL;"); err != nil {
		_ = db.Close()
		l.Error("enable WAL failed", slog.Any("err", err))
		return nil, fmt.Errorf("enable WAL: %w", err)
	}

	if err := ensureSchema(ctx, db); err != nil {
		_ = db.Close()
		l.Error("ensure schema failed", slog.Any("err", err))
		return nil, err
	}

	l.Info("cache ready", slog.String("path", path))
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Key derives the deterministic cache key for a script text under a given
// taxonomy version.
func Key(scriptText, taxonomyVersion string) string {
	content := scriptText + "|" + taxonomyVersion
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])[:16]
}

// Get returns the cached document for the given script text and taxonomy
// version. The second return value reports whether an entry was found; a
// corrupt entry is treated as a miss.
func (s *Store) Get(ctx context.Context, scriptText, taxonomyVersion string) (*screenplay.Document, bool) {
	key := Key(scriptText, taxonomyVersion)
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM results WHERE key=?`, key).Scan(&payload)
	if err != nil {
		return nil, false
	}
	var doc screenplay.Document
	if err := json.Unmarshal(payload, &doc); err != nil {
		applog.WithComponent("cache").Warn("discarding corrupt cache entry",
			slog.String("key", key), slog.Any("err", err))
		_, _ = s.db.ExecContext(ctx, `DELETE FROM results WHERE key=?`, key)
		return nil, false
	}
	return &doc, true
}

// Put stores the document under the key derived from scriptText and
// taxonomyVersion, replacing any previous entry.
func (s *Store) Put(ctx context.Context, scriptText, taxonomyVersion string, doc *screenplay.Document) error {
	key := Key(scriptText, taxonomyVersion)
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO results (key, payload, created_at) VALUES(?,?,?)
		 ON CONFLICT(key) DO UPDATE SET payload=excluded.payload, created_at=excluded.created_at`,
		key, payload, now); err != nil {
		return fmt.Errorf("store result: %w", err)
	}
	return nil
}

// Purge removes all cached results.
func (s *Store) Purge(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM results`); err != nil {
		return fmt.Errorf("purge cache: %w", err)
	}
	return nil
}

func ensureSchema(ctx context.Context, db *sql.DB) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS meta (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS version (
			id          INTEGER PRIMARY KEY CHECK(id=1),
			schema      INTEGER NOT NULL,
			app         TEXT,
			created_at  TEXT NOT NULL,
			updated_at  TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS results (
			key        TEXT PRIMARY KEY,
			payload    BLOB NOT NULL,
			created_at TEXT NOT NULL
		);`,
	}
	for _, q := range ddl {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	now := time.Now().UTC().Format(time.RFC3339)
	appv := version.String()
	var curSchema int
	err := db.QueryRowContext(ctx, `SELECT schema FROM version WHERE id=1`).Scan(&curSchema)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err := db.ExecContext(ctx, `INSERT INTO version (id, schema, app, created_at, updated_at) VALUES(1, ?, ?, ?, ?)`, schemaVersion, appv, now, now); err != nil {
			return fmt.Errorf("insert version: %w", err)
		}
	case err != nil:
		return fmt.Errorf("read version: %w", err)
	default:
		if _, err := db.ExecContext(ctx, `UPDATE version SET app=?, updated_at=? WHERE id=1`, appv, now); err != nil {
			return fmt.Errorf("update version: %w", err)
		}
	}
	return nil
}
