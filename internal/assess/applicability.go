package assess

import "github.com/abhisek/intake/internal/schema"

// Applicability evaluates every question's conditions against the current
// session and returns question id -> applicable.
//
// A question with no conditions is always applicable; one with multiple
// conditions is applicable only if all of them hold. Each condition reads
// the raw stored answer of the question it references, so a question's
// applicability depends only on the schema and the answers to its direct
// dependencies — never on answer history, entry order, or anything else in
// the session.
func Applicability(sc *schema.Schema, sess *Session) map[string]bool {
	m := make(map[string]bool, sc.Len())
	sc.Each(func(_ schema.Section, q schema.Question) {
		m[q.ID] = Applicable(sess, q)
	})
	return m
}

// Applicable reports whether a single question's conditions all hold.
func Applicable(sess *Session, q schema.Question) bool {
	for _, c := range q.Conditions {
		if !holds(sess, c) {
			return false
		}
	}
	return true
}

func holds(sess *Session, c schema.Condition) bool {
	switch c.Op {
	case schema.OpEquals:
		v, ok := sess.Answer(c.DependsOn)
		return ok && sess.answered(c.DependsOn) && v == c.Value
	case schema.OpAnswered:
		return sess.answered(c.DependsOn)
	case schema.OpUnanswered:
		return !sess.answered(c.DependsOn)
	}
	return false
}
