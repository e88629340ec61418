package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/FelipeeMaia/pipemania/internal/pipes"
)

// SessionRecord is a journaled game session.
type SessionRecord struct {
	ID        int64
	Variant   string
	Seed      int64
	LayoutID  string
	Options   pipes.Options
	Commands  int
	Rejected  int
	CreatedAt time.Time
}

// Journal records the commands of one session. It implements pipes.Recorder.
type Journal struct {
	store     *Store
	sessionID int64
	seq       int
}

// Verify Store implements pipes.Journal and Journal implements pipes.Recorder.
var (
	_ pipes.Journal  = (*Store)(nil)
	_ pipes.Recorder = (*Journal)(nil)
)

// BeginSession stores the options of a new session and returns its journal.
func (s *Store) BeginSession(variant string, opts pipes.Options) (*Journal, error) {
	data, err := yaml.Marshal(opts)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot encode options: %w", err)
	}

	res, err := s.db.Exec(
		"INSERT INTO sessions (variant, seed, layout_id, options) VALUES (?, ?, ?, ?)",
		variant, opts.Seed, opts.LayoutID, string(data),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot begin session: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return &Journal{store: s, sessionID: id}, nil
}

// Begin implements pipes.Journal.
func (s *Store) Begin(variant string, opts pipes.Options) (pipes.Recorder, error) {
	return s.BeginSession(variant, opts)
}

// SessionID returns the journaled session ID.
func (j *Journal) SessionID() int64 {
	return j.sessionID
}

// Record implements pipes.Recorder. Write failures are logged, never returned.
func (j *Journal) Record(cmd pipes.Command, err error) {
	j.seq++
	if werr := j.Append(j.seq, cmd, pipes.Outcome(err)); werr != nil {
		j.store.logger.Warn("cannot journal command", "session", j.sessionID, "seq", j.seq, "err", werr)
	}
}

// Append writes one command row.
func (j *Journal) Append(seq int, cmd pipes.Command, outcome string) error {
	_, err := j.store.db.Exec(
		`INSERT INTO commands (session_id, seq, op, dx, dy, x, y, seed, outcome)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		j.sessionID, seq, cmd.Op.String(), cmd.DX, cmd.DY, cmd.At.X, cmd.At.Y, cmd.Seed, outcome,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot append command: %w", err)
	}
	return nil
}

const sessionColumns = `
	s.id, s.variant, s.seed, s.layout_id, s.options, s.created_at,
	(SELECT COUNT(*) FROM commands c WHERE c.session_id = s.id),
	(SELECT COUNT(*) FROM commands c WHERE c.session_id = s.id AND c.outcome != 'ok')`

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (SessionRecord, error) {
	var (
		rec       SessionRecord
		options   string
		createdAt any
	)
	if err := row.Scan(&rec.ID, &rec.Variant, &rec.Seed, &rec.LayoutID, &options, &createdAt,
		&rec.Commands, &rec.Rejected); err != nil {
		return rec, err
	}
	if err := yaml.Unmarshal([]byte(options), &rec.Options); err != nil {
		return rec, fmt.Errorf("storage: cannot decode options of session %d: %w", rec.ID, err)
	}
	rec.CreatedAt = parseTime(createdAt)
	return rec, nil
}

// RecentSessions returns the latest sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT`+sessionColumns+`
		 FROM sessions s
		 ORDER BY s.id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		rec, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// SessionByID returns one session. Returns ErrSessionNotFound if it does not exist.
func (s *Store) SessionByID(id int64) (SessionRecord, error) {
	rec, err := scanSession(s.db.QueryRow(
		`SELECT`+sessionColumns+`
		 FROM sessions s
		 WHERE s.id = ?`,
		id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return rec, fmt.Errorf("%w: %d", ErrSessionNotFound, id)
	}
	if err != nil {
		return rec, fmt.Errorf("storage: cannot query session: %w", err)
	}
	return rec, nil
}

// Commands returns the journaled commands of a session in order.
func (s *Store) Commands(sessionID int64) ([]pipes.Entry, error) {
	rows, err := s.db.Query(
		`SELECT seq, op, dx, dy, x, y, seed, outcome
		 FROM commands
		 WHERE session_id = ?
		 ORDER BY seq`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query commands: %w", err)
	}
	defer rows.Close()

	var entries []pipes.Entry
	for rows.Next() {
		var (
			e  pipes.Entry
			op string
		)
		if err := rows.Scan(&e.Seq, &op, &e.Cmd.DX, &e.Cmd.DY, &e.Cmd.At.X, &e.Cmd.At.Y,
			&e.Cmd.Seed, &e.Outcome); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		parsed, ok := pipes.ParseOp(op)
		if !ok {
			return nil, fmt.Errorf("storage: session %d seq %d: unknown op %q", sessionID, e.Seq, op)
		}
		e.Cmd.Op = parsed
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// DeleteSession removes a session and its commands.
func (s *Store) DeleteSession(id int64) error {
	if _, err := s.db.Exec("DELETE FROM commands WHERE session_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete commands: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM sessions WHERE id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete session: %w", err)
	}
	return nil
}
