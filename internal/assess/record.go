package assess

// Status is a question's resolved state in an assembled record.
type Status string

const (
	// StatusAnswered means the question was applicable and carries a
	// non-empty answer.
	StatusAnswered Status = "answered"

	// StatusSkippedOptional means the question was applicable and
	// optional, and was left blank.
	StatusSkippedOptional Status = "skipped-optional"

	// StatusSkippedInapplicable means the question's conditions did not
	// hold; any stale stored answer is excluded from the record.
	StatusSkippedInapplicable Status = "skipped-inapplicable"
)

// Record is the canonical output of a completed assessment: sections in
// schema order, each question annotated with its resolved status. Field
// order is fixed, so encoding/json serializes a Record deterministically.
type Record []RecordSection

// RecordSection mirrors one schema section in the output.
type RecordSection struct {
	SectionID string           `json:"section_id"`
	Title     string           `json:"title"`
	Questions []RecordQuestion `json:"questions"`
}

// RecordQuestion is one question's resolved entry in the output.
type RecordQuestion struct {
	QuestionID string `json:"question_id"`
	Status     Status `json:"status"`
	Value      string `json:"value,omitempty"`
}

// AnswerValues returns the (question id, value) pairs of every answered
// question in the record. Feeding these into a fresh session reproduces the
// record exactly.
func (r Record) AnswerValues() map[string]string {
	out := make(map[string]string)
	for _, sec := range r {
		for _, q := range sec.Questions {
			if q.Status == StatusAnswered {
				out[q.QuestionID] = q.Value
			}
		}
	}
	return out
}
