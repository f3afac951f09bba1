package schema

// AnswerType describes how a question is answered.
type AnswerType string

const (
	// AnswerFreeText means the respondent types arbitrary text.
	AnswerFreeText AnswerType = "free_text"

	// AnswerSingleChoice means the respondent picks exactly one of the
	// question's option labels.
	AnswerSingleChoice AnswerType = "single_choice"
)

// ConditionOp is the predicate applied to the answer of the question a
// condition depends on.
type ConditionOp string

const (
	// OpEquals holds when the referenced question carries a non-empty
	// answer exactly equal to Condition.Value.
	OpEquals ConditionOp = "equals"

	// OpAnswered holds when the referenced question carries a non-empty answer.
	OpAnswered ConditionOp = "answered"

	// OpUnanswered holds when the referenced question has no non-empty answer.
	OpUnanswered ConditionOp = "unanswered"
)

// Condition gates a question's applicability on the answer to an earlier
// question. A question with multiple conditions is applicable only when all
// of them hold.
type Condition struct {
	// DependsOn is the id of the question whose answer is inspected.
	// It must occur strictly before the dependent question in traversal
	// order; Load rejects forward and dangling references.
	DependsOn string

	// Op is the predicate applied to the referenced answer.
	Op ConditionOp

	// Value is the literal compared against for OpEquals. Ignored by the
	// other ops.
	Value string
}

// Question is a single questionnaire item.
type Question struct {
	// ID is unique across the whole schema, not just within its section.
	ID string

	// Prompt is the text shown to the respondent.
	Prompt string

	// Type selects the answer validation rules.
	Type AnswerType

	// Options is the ordered, case-sensitive set of allowed answers.
	// Populated only for single_choice questions, and must be non-empty
	// and free of duplicates for them.
	Options []string

	// Required marks the question as mandatory whenever it is applicable.
	Required bool

	// Conditions make the question applicable only while every predicate
	// holds. A question with no conditions is always applicable.
	Conditions []Condition
}

// Section is an ordered, non-empty group of questions with a display title.
type Section struct {
	ID        string
	Title     string
	Questions []Question
}
