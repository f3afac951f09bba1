package assess

import (
	"maps"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/intake/internal/schema"
)

// Session is the mutable in-progress record of one assessment: the answers
// collected so far, keyed by question id. A Session has a single logical
// owner; concurrent mutation from multiple goroutines must be serialized by
// the caller.
type Session struct {
	id      string
	answers map[string]string
	created time.Time
	updated time.Time
}

// NewSession returns an empty session with a fresh id.
func NewSession() *Session {
	now := time.Now()
	return &Session{
		id:      uuid.NewString(),
		answers: make(map[string]string),
		created: now,
		updated: now,
	}
}

// Restore rebuilds a session from persisted state. Used by storage adapters;
// the engine itself never persists anything.
func Restore(id string, answers map[string]string, created, updated time.Time) *Session {
	s := &Session{
		id:      id,
		answers: make(map[string]string, len(answers)),
		created: created,
		updated: updated,
	}
	maps.Copy(s.answers, answers)
	return s
}

// ID returns the session's stable identifier.
func (s *Session) ID() string { return s.id }

// CreatedAt returns when the session was started.
func (s *Session) CreatedAt() time.Time { return s.created }

// UpdatedAt returns when the session was last mutated.
func (s *Session) UpdatedAt() time.Time { return s.updated }

// Answer returns the stored value for a question id, if any. Stored values
// are returned verbatim, including values for currently-inapplicable
// questions.
func (s *Session) Answer(questionID string) (string, bool) {
	v, ok := s.answers[questionID]
	return v, ok
}

// Answers returns a copy of all stored (question id, value) pairs.
func (s *Session) Answers() map[string]string {
	out := make(map[string]string, len(s.answers))
	maps.Copy(out, s.answers)
	return out
}

// Submit records value as the answer to questionID after validating it with
// CheckAnswer. On failure the session is unchanged. Submitting to a
// currently-inapplicable question is allowed: the value is preserved and
// becomes live again if an upstream edit restores applicability.
func (s *Session) Submit(sc *schema.Schema, questionID, value string) error {
	q, ok := sc.Question(questionID)
	if !ok {
		return &AnswerError{Kind: AnswerUnknownQuestion, QuestionID: questionID, Value: value}
	}
	if err := CheckAnswer(q, value); err != nil {
		return err
	}
	s.answers[questionID] = value
	s.updated = time.Now()
	return nil
}

// Clear removes the stored answer for questionID. Clearing an id that was
// never set is a no-op and leaves the session untouched.
func (s *Session) Clear(questionID string) {
	if _, ok := s.answers[questionID]; !ok {
		return
	}
	delete(s.answers, questionID)
	s.updated = time.Now()
}

// answered reports whether the session holds a non-empty answer for the
// question. A whitespace-only free_text value counts as unanswered.
func (s *Session) answered(questionID string) bool {
	v, ok := s.answers[questionID]
	return ok && strings.TrimSpace(v) != ""
}
