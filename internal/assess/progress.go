package assess

import "github.com/abhisek/intake/internal/schema"

// SectionProgress summarizes answering progress for one section. Counts
// consider only currently-applicable questions, so editing an upstream
// answer can shrink or grow a section's totals.
type SectionProgress struct {
	SectionID        string
	Title            string
	Total            int
	Answered         int
	Required         int
	RequiredAnswered int
}

// ProgressSummary is the whole-assessment view used for status output.
type ProgressSummary struct {
	Sections         []SectionProgress
	Total            int
	Answered         int
	Required         int
	RequiredAnswered int

	// MissingRequired lists applicable required questions still
	// unanswered, in traversal order. Empty means Assemble will succeed.
	MissingRequired []string
}

// Complete reports whether every applicable required question is answered.
func (p ProgressSummary) Complete() bool {
	return len(p.MissingRequired) == 0
}

// Progress computes per-section and overall answering progress for the
// session.
func Progress(sc *schema.Schema, sess *Session) ProgressSummary {
	app := Applicability(sc, sess)

	var sum ProgressSummary
	for _, sec := range sc.Sections() {
		sp := SectionProgress{SectionID: sec.ID, Title: sec.Title}
		for _, q := range sec.Questions {
			if !app[q.ID] {
				continue
			}
			sp.Total++
			if q.Required {
				sp.Required++
			}
			if sess.answered(q.ID) {
				sp.Answered++
				if q.Required {
					sp.RequiredAnswered++
				}
			} else if q.Required {
				sum.MissingRequired = append(sum.MissingRequired, q.ID)
			}
		}
		sum.Sections = append(sum.Sections, sp)
		sum.Total += sp.Total
		sum.Answered += sp.Answered
		sum.Required += sp.Required
		sum.RequiredAnswered += sp.RequiredAnswered
	}
	return sum
}
