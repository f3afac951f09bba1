package assess

import (
	"fmt"
	"strings"
)

// AnswerErrorKind classifies a rejected answer submission.
type AnswerErrorKind string

const (
	// AnswerTypeMismatch means the value's shape does not fit the
	// question's answer type (e.g. an empty value for a single_choice
	// question).
	AnswerTypeMismatch AnswerErrorKind = "type_mismatch"

	// AnswerInvalidChoice means a single_choice value is not one of the
	// question's option labels. Matching is exact and case-sensitive.
	AnswerInvalidChoice AnswerErrorKind = "invalid_choice"

	// AnswerUnknownQuestion means the submission targeted a question id
	// that does not exist in the schema.
	AnswerUnknownQuestion AnswerErrorKind = "unknown_question"
)

// AnswerError reports why a single submission was rejected. The session is
// left untouched on failure; the caller re-prompts for that question.
type AnswerError struct {
	Kind       AnswerErrorKind
	QuestionID string
	Value      string
}

func (e *AnswerError) Error() string {
	switch e.Kind {
	case AnswerTypeMismatch:
		return fmt.Sprintf("question %q: value %q does not match the answer type", e.QuestionID, e.Value)
	case AnswerInvalidChoice:
		return fmt.Sprintf("question %q: %q is not an allowed option", e.QuestionID, e.Value)
	case AnswerUnknownQuestion:
		return fmt.Sprintf("question %q not found in schema", e.QuestionID)
	}
	return fmt.Sprintf("question %q: invalid answer %q", e.QuestionID, e.Value)
}

// CompletenessError lists the applicable required questions that still have
// no non-empty answer. Answering them and retrying recovers; no session
// state is lost.
type CompletenessError struct {
	Missing []string
}

func (e *CompletenessError) Error() string {
	return fmt.Sprintf("required questions unanswered: %s", strings.Join(e.Missing, ", "))
}
