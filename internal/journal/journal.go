// Package journal appends recorded quiz answers to a SQLite file. It is
// write-only from the quiz's point of view: nothing is read back into a
// running quiz.
package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	entschema "entgo.io/ent/dialect/sql/schema"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// ErrMissingRunID is returned when an answer event has no run ID.
var ErrMissingRunID = errors.New("answer event needs a run ID")

// AnswerEvent is one recorded answer.
type AnswerEvent struct {
	RunID      string
	Page       int
	Seq        int // position in the run's responses
	Question   string
	Answer     string
	RecordedAt time.Time
}

// Journal is an append-only answer log.
type Journal struct {
	db  *sql.DB
	drv *entsql.Driver
}

// Open opens (creating if needed) the journal database at path. It applies
// the SQLite pragmas and migrates the answer_events table.
func Open(path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create journal directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// A single connection serialises writers and keeps pragmas in effect.
	db.SetMaxOpenConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	j := &Journal{db: db, drv: drv}
	if err := j.migrate(context.Background()); err != nil {
		drv.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}
	return j, nil
}

func (j *Journal) migrate(ctx context.Context) error {
	m, err := entschema.NewMigrate(j.drv)
	if err != nil {
		return err
	}
	return m.Create(ctx, answerEventsSchema())
}

// applyPragmas configures SQLite for a single local writer.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// AppendAnswer stores ev under the next journal sequence number. A zero
// RecordedAt is set to now.
func (j *Journal) AppendAnswer(ctx context.Context, ev AnswerEvent) error {
	if ev.RunID == "" {
		return ErrMissingRunID
	}
	if ev.RecordedAt.IsZero() {
		ev.RecordedAt = time.Now()
	}

	tx, err := j.drv.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}

	seq, err := nextSequence(ctx, tx)
	if err != nil {
		tx.Rollback()
		return err
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(answerEventsTable).
		Columns("sequence", "timestamp", "run_id", "page", "seq", "question", "answer").
		Values(seq, ev.RecordedAt.UTC(), ev.RunID, ev.Page, ev.Seq, ev.Question, ev.Answer).
		Query()
	if err := tx.Exec(ctx, query, args, nil); err != nil {
		tx.Rollback()
		return fmt.Errorf("insert answer: %w", err)
	}
	return tx.Commit()
}

func nextSequence(ctx context.Context, tx dialect.Tx) (int64, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select(entsql.Max("sequence")).
		From(entsql.Table(answerEventsTable)).
		Query()

	rows := &entsql.Rows{}
	if err := tx.Query(ctx, query, args, rows); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	defer rows.Close()

	var last sql.NullInt64
	if rows.Next() {
		if err := rows.Scan(&last); err != nil {
			return 0, fmt.Errorf("next sequence: %w", err)
		}
	}
	return last.Int64 + 1, rows.Err()
}

// Answers returns recorded answers in the order they were given, limited
// to runID when it is non-empty. Writes may land out of order, so rows are
// sorted by tap time and then by position in the run.
func (j *Journal) Answers(ctx context.Context, runID string) ([]AnswerEvent, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select("run_id", "page", "seq", "question", "answer", "timestamp").
		From(entsql.Table(answerEventsTable)).
		OrderBy("timestamp", "seq", "sequence")
	if runID != "" {
		sel.Where(entsql.EQ("run_id", runID))
	}
	query, args := sel.Query()

	rows := &entsql.Rows{}
	if err := j.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}
	defer rows.Close()

	var out []AnswerEvent
	for rows.Next() {
		var ev AnswerEvent
		if err := rows.Scan(&ev.RunID, &ev.Page, &ev.Seq, &ev.Question, &ev.Answer, &ev.RecordedAt); err != nil {
			return nil, fmt.Errorf("scan answer row: %w", err)
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}

// Close closes the database.
func (j *Journal) Close() error {
	return j.drv.Close()
}
