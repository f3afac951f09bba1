package schema

import "fmt"

// ErrorKind classifies a structural problem found while loading a schema.
type ErrorKind string

const (
	KindDuplicateID        ErrorKind = "duplicate_id"
	KindDanglingCondition  ErrorKind = "dangling_condition"
	KindForwardReference   ErrorKind = "forward_reference"
	KindEmptyOptionSet     ErrorKind = "empty_option_set"
	KindDuplicateOption    ErrorKind = "duplicate_option"
	KindEmptySection       ErrorKind = "empty_section"
	KindUnknownAnswerType  ErrorKind = "unknown_answer_type"
	KindUnknownConditionOp ErrorKind = "unknown_condition_op"
)

// Error describes one structural violation in a schema definition.
// Load collects every violation it finds and returns them joined, so callers
// can match individual violations with errors.As.
type Error struct {
	Kind ErrorKind

	// QuestionID is the offending question, or the section id for
	// KindEmptySection.
	QuestionID string

	// Ref carries the referenced question id, option label, or enum value
	// involved in the violation, when there is one.
	Ref string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindDuplicateID:
		return fmt.Sprintf("duplicate question id %q", e.QuestionID)
	case KindDanglingCondition:
		return fmt.Sprintf("question %q: condition references nonexistent question %q", e.QuestionID, e.Ref)
	case KindForwardReference:
		return fmt.Sprintf("question %q: condition references %q, which does not occur earlier", e.QuestionID, e.Ref)
	case KindEmptyOptionSet:
		return fmt.Sprintf("question %q: single_choice question has no options", e.QuestionID)
	case KindDuplicateOption:
		return fmt.Sprintf("question %q: duplicate option %q", e.QuestionID, e.Ref)
	case KindEmptySection:
		return fmt.Sprintf("section %q has no questions", e.QuestionID)
	case KindUnknownAnswerType:
		return fmt.Sprintf("question %q: unknown answer type %q", e.QuestionID, e.Ref)
	case KindUnknownConditionOp:
		return fmt.Sprintf("question %q: unknown condition op %q", e.QuestionID, e.Ref)
	}
	return fmt.Sprintf("schema error %q on question %q", e.Kind, e.QuestionID)
}
