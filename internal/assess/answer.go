package assess

import (
	"slices"
	"strings"

	"github.com/abhisek/intake/internal/schema"
)

// CheckAnswer validates a candidate value against a question's answer type.
// Returns nil if the value is acceptable, or an *AnswerError describing the
// rejection.
//
// free_text accepts any string; emptiness is a completeness concern, not a
// validity one. single_choice requires an exact, case-sensitive match
// against one of the question's option labels — no trimming beyond the
// empty-value check, no fuzzy matching.
func CheckAnswer(q schema.Question, value string) error {
	switch q.Type {
	case schema.AnswerFreeText:
		return nil

	case schema.AnswerSingleChoice:
		if strings.TrimSpace(value) == "" {
			return &AnswerError{Kind: AnswerTypeMismatch, QuestionID: q.ID, Value: value}
		}
		if slices.Contains(q.Options, value) {
			return nil
		}
		return &AnswerError{Kind: AnswerInvalidChoice, QuestionID: q.ID, Value: value}

	default:
		// Unreachable for questions from a loaded schema.
		return &AnswerError{Kind: AnswerTypeMismatch, QuestionID: q.ID, Value: value}
	}
}
