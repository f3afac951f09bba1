package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/intake/internal/assess"
)

// ErrNotFound is returned when a session id has no row.
var ErrNotFound = errors.New("session not found")

// Status tracks a persisted session's lifecycle.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusArchived   Status = "archived"
)

// SessionInfo is the listing view of a persisted session.
type SessionInfo struct {
	ID        string
	Status    Status
	Answered  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateSession inserts a new session row together with any answers it
// already holds.
func (s *Store) CreateSession(ctx context.Context, sess *assess.Session) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO sessions (id, status, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		sess.ID(), StatusInProgress, sess.CreatedAt(), sess.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	for qid, value := range sess.Answers() {
		if err := upsertAnswer(ctx, tx, sess.ID(), qid, value); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// LoadSession rebuilds a session from its persisted rows.
func (s *Store) LoadSession(ctx context.Context, id string) (*assess.Session, error) {
	var created, updated time.Time
	err := s.db.QueryRowContext(ctx,
		`SELECT created_at, updated_at FROM sessions WHERE id = ?`, id,
	).Scan(&created, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query session: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT question_id, value FROM answers WHERE session_id = ?`, id,
	)
	if err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}
	defer rows.Close()

	answers := make(map[string]string)
	for rows.Next() {
		var qid, value string
		if err := rows.Scan(&qid, &value); err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		answers[qid] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate answers: %w", err)
	}

	return assess.Restore(id, answers, created, updated), nil
}

// SaveAnswer upserts one answer and touches the session's updated_at.
func (s *Store) SaveAnswer(ctx context.Context, sessionID, questionID, value string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := upsertAnswer(ctx, tx, sessionID, questionID, value); err != nil {
		return err
	}
	if err := touchSession(ctx, tx, sessionID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// DeleteAnswer removes one answer. Deleting an answer that was never saved
// is a no-op, matching the engine's Clear semantics.
func (s *Store) DeleteAnswer(ctx context.Context, sessionID, questionID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`DELETE FROM answers WHERE session_id = ? AND question_id = ?`,
		sessionID, questionID,
	)
	if err != nil {
		return fmt.Errorf("delete answer: %w", err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		if err := touchSession(ctx, tx, sessionID); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// SetStatus updates a session's lifecycle status.
func (s *Store) SetStatus(ctx context.Context, id string, status Status) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// ArchiveInProgress marks every in-progress session as archived. Used when
// starting a fresh assessment; archived sessions keep their answers.
func (s *Store) ArchiveInProgress(ctx context.Context) (int, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET status = ?, updated_at = ? WHERE status = ?`,
		StatusArchived, time.Now(), StatusInProgress,
	)
	if err != nil {
		return 0, fmt.Errorf("archive sessions: %w", err)
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

// ListSessions returns all sessions, most recently updated first.
func (s *Store) ListSessions(ctx context.Context) ([]SessionInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.id, s.status, s.created_at, s.updated_at, COUNT(a.question_id)
		FROM sessions s
		LEFT JOIN answers a ON a.session_id = s.id
		GROUP BY s.id
		ORDER BY s.updated_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var infos []SessionInfo
	for rows.Next() {
		var info SessionInfo
		if err := rows.Scan(&info.ID, &info.Status, &info.CreatedAt, &info.UpdatedAt, &info.Answered); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return infos, nil
}

func upsertAnswer(ctx context.Context, tx *sql.Tx, sessionID, questionID, value string) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO answers (session_id, question_id, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (session_id, question_id) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		sessionID, questionID, value, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("upsert answer: %w", err)
	}
	return nil
}

func touchSession(ctx context.Context, tx *sql.Tx, sessionID string) error {
	if _, err := tx.ExecContext(ctx,
		`UPDATE sessions SET updated_at = ? WHERE id = ?`, time.Now(), sessionID,
	); err != nil {
		return fmt.Errorf("touch session: %w", err)
	}
	return nil
}
