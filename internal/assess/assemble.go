package assess

import "github.com/abhisek/intake/internal/schema"

// Assemble renders a completed session into its canonical Record. It first
// runs Completeness and fails with the same *CompletenessError if any
// required-and-applicable question is unanswered — no partial record is ever
// produced. Stale answers to inapplicable questions stay in the session but
// never reach the record.
func Assemble(sc *schema.Schema, sess *Session) (Record, error) {
	if err := Completeness(sc, sess); err != nil {
		return nil, err
	}

	app := Applicability(sc, sess)

	sections := sc.Sections()
	rec := make(Record, 0, len(sections))
	for _, sec := range sections {
		rs := RecordSection{
			SectionID: sec.ID,
			Title:     sec.Title,
			Questions: make([]RecordQuestion, 0, len(sec.Questions)),
		}
		for _, q := range sec.Questions {
			rq := RecordQuestion{QuestionID: q.ID}
			switch {
			case !app[q.ID]:
				rq.Status = StatusSkippedInapplicable
			case sess.answered(q.ID):
				rq.Status = StatusAnswered
				rq.Value, _ = sess.Answer(q.ID)
			default:
				rq.Status = StatusSkippedOptional
			}
			rs.Questions = append(rs.Questions, rq)
		}
		rec = append(rec, rs)
	}
	return rec, nil
}
