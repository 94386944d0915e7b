package interactionlog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/contra-ai/contra/backend/internal/model/interaction"
)

// SQLiteLog stores records in the chat_logs table of a SQLite database.
type SQLiteLog struct {
	db  *sql.DB
	now func() time.Time
}

var _ Log = &SQLiteLog{}

// SQLiteDSNForFile builds a DSN for a database file.
func SQLiteDSNForFile(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errors.New("sqlite interaction log: empty path")
	}
	// WAL for concurrent readers + writer. busy_timeout to avoid transient SQLITE_BUSY.
	return fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000", path), nil
}

// NewSQLiteLog opens dsn and creates the chat_logs table if absent.
func NewSQLiteLog(dsn string) (*SQLiteLog, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, errors.New("sqlite interaction log: empty dsn")
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "sqlite interaction log: open")
	}
	s := &SQLiteLog{db: db, now: time.Now}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteLog) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS chat_logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp_ms INTEGER NOT NULL,
			culture_label TEXT NOT NULL,
			user_input TEXT NOT NULL,
			ai_response TEXT NOT NULL
		);`,
	}
	for _, st := range stmts {
		if _, err := s.db.Exec(st); err != nil {
			return errors.Wrap(err, "sqlite interaction log: migrate")
		}
	}
	return nil
}

// Close releases the database handle.
func (s *SQLiteLog) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Append implements Log.
func (s *SQLiteLog) Append(ctx context.Context, culture, input, response string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO chat_logs (timestamp_ms, culture_label, user_input, ai_response) VALUES (?, ?, ?, ?)`,
		s.now().UTC().UnixMilli(), culture, input, response,
	)
	if err != nil {
		return 0, errors.Wrap(err, "sqlite interaction log: append")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, errors.Wrap(err, "sqlite interaction log: last insert id")
	}
	return id, nil
}

// ListRecent implements Log.
func (s *SQLiteLog) ListRecent(ctx context.Context, limit int) ([]interaction.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, timestamp_ms, culture_label, user_input, ai_response
		FROM chat_logs ORDER BY id DESC LIMIT ?`,
		normalizeLimit(limit),
	)
	if err != nil {
		return nil, errors.Wrap(err, "sqlite interaction log: list")
	}
	defer func() { _ = rows.Close() }()

	out := make([]interaction.Record, 0, normalizeLimit(limit))
	for rows.Next() {
		var (
			rec  interaction.Record
			tsMs int64
		)
		if err := rows.Scan(&rec.ID, &tsMs, &rec.Culture, &rec.Input, &rec.Response); err != nil {
			return nil, errors.Wrap(err, "sqlite interaction log: scan")
		}
		rec.Timestamp = time.UnixMilli(tsMs).UTC()
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "sqlite interaction log: rows")
	}
	return out, nil
}
