package assess

import "github.com/abhisek/intake/internal/schema"

// Completeness reports whether the session satisfies every required question.
// A question is missing iff it is applicable, its required flag is set, and
// the session holds no non-empty answer for it. Optional and inapplicable
// questions never appear in the missing list, answered or not.
//
// Returns nil when nothing is missing, or a *CompletenessError listing the
// missing question ids in traversal order.
func Completeness(sc *schema.Schema, sess *Session) error {
	app := Applicability(sc, sess)

	var missing []string
	sc.Each(func(_ schema.Section, q schema.Question) {
		if q.Required && app[q.ID] && !sess.answered(q.ID) {
			missing = append(missing, q.ID)
		}
	})

	if len(missing) > 0 {
		return &CompletenessError{Missing: missing}
	}
	return nil
}
