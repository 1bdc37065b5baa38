// Package journal keeps a session audit log of store dispatches and
// committed table edits in SQLite. It is write-mostly: nothing in the app
// restores state from it.
package journal

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const MemoryPath = ":memory:"

type Kind string

const (
	KindAction Kind = "action"
	KindEdit   Kind = "edit"
)

type Entry struct {
	ID        string
	SessionID string
	Seq       int64
	Kind      Kind
	Name      string
	Detail    string
	Bank      *float64
	CreatedAt time.Time
}

type Journal struct {
	db        *sql.DB
	sessionID string
	seq       atomic.Int64
	version   atomic.Uint64
	now       func() time.Time
}

// Open opens (or creates) the journal database at path and applies the
// embedded migrations. An empty path or ":memory:" keeps the journal in
// memory for the lifetime of the process.
func Open(path string) (*Journal, error) {
	db, err := openDB(path)
	if err != nil {
		return nil, fmt.Errorf("open journal db: %w", err)
	}
	if err := migrateUp(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate journal: %w", err)
	}
	return &Journal{
		db:        db,
		sessionID: uuid.NewString(),
		now:       func() time.Time { return time.Now().UTC() },
	}, nil
}

func openDB(path string) (*sql.DB, error) {
	path = strings.TrimSpace(path)
	dsn := ":memory:"
	if path != "" && path != MemoryPath {
		dsn = fmt.Sprintf("file:%s?_busy_timeout=5000", path)
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	// one connection: an in-memory database lives and dies with it
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func migrateUp(db *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return err
	}
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return err
	}
	// m.Close would also close db, so only the source is released.
	defer src.Close()

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}

func (j *Journal) SessionID() string { return j.sessionID }

// Version increases by one for every recorded entry.
func (j *Journal) Version() uint64 { return j.version.Load() }

// Record stores e, filling in ID, session, sequence and timestamp.
func (j *Journal) Record(ctx context.Context, e Entry) (Entry, error) {
	e.ID = uuid.NewString()
	e.SessionID = j.sessionID
	e.Seq = j.seq.Add(1)
	e.CreatedAt = j.now()
	var bank sql.NullFloat64
	if e.Bank != nil {
		bank = sql.NullFloat64{Float64: *e.Bank, Valid: true}
	}
	_, err := j.db.ExecContext(ctx, `
	INSERT INTO entries(id, session_id, seq, kind, name, detail, bank, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.SessionID, e.Seq, string(e.Kind), e.Name, e.Detail, bank, e.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return Entry{}, fmt.Errorf("insert journal entry: %w", err)
	}
	j.version.Add(1)
	return e, nil
}

// Recent returns up to limit entries of the current session, newest first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := j.db.QueryContext(ctx, `
	SELECT id, session_id, seq, kind, name, detail, bank, created_at
	FROM entries
	WHERE session_id = ?
	ORDER BY seq DESC
	LIMIT ?
	`, j.sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("query journal: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e       Entry
			kind    string
			bank    sql.NullFloat64
			created string
		)
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Seq, &kind, &e.Name, &e.Detail, &bank, &created); err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		e.Kind = Kind(kind)
		if bank.Valid {
			v := bank.Float64
			e.Bank = &v
		}
		if ts, err := time.Parse(time.RFC3339Nano, created); err == nil {
			e.CreatedAt = ts
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (j *Journal) Close() error {
	if j == nil || j.db == nil {
		return nil
	}
	return j.db.Close()
}
