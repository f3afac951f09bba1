package assess

import (
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/intake/internal/schema"
)

// ReportMeta carries optional header fields for a rendered report.
type ReportMeta struct {
	Title       string
	Assessor    string
	GeneratedAt time.Time
}

// RenderReport renders an assembled Record as a human-readable markdown
// report: one heading per section, one entry per question with its prompt
// and resolved answer. The record drives the content; the schema supplies
// prompts for display only.
func RenderReport(sc *schema.Schema, rec Record, meta ReportMeta) string {
	var b strings.Builder

	title := meta.Title
	if title == "" {
		title = "Assessment Report"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	if !meta.GeneratedAt.IsZero() {
		fmt.Fprintf(&b, "**Date:** %s\n", meta.GeneratedAt.Format("2006-01-02 15:04"))
	}
	if meta.Assessor != "" {
		fmt.Fprintf(&b, "**Assessor:** %s\n", meta.Assessor)
	}
	b.WriteString("\n---\n\n")

	for _, sec := range rec {
		fmt.Fprintf(&b, "## %s\n\n", sec.Title)
		for _, rq := range sec.Questions {
			prompt := rq.QuestionID
			if q, ok := sc.Question(rq.QuestionID); ok && q.Prompt != "" {
				prompt = q.Prompt
			}
			fmt.Fprintf(&b, "### %s\n\n", rq.QuestionID)
			fmt.Fprintf(&b, "**Question:** %s\n\n", prompt)

			switch rq.Status {
			case StatusAnswered:
				fmt.Fprintf(&b, "**Answer:** %s\n\n", rq.Value)
			case StatusSkippedOptional:
				b.WriteString("**Answer:** *not answered (optional)*\n\n")
			case StatusSkippedInapplicable:
				b.WriteString("**Answer:** *not applicable*\n\n")
			}
		}
		b.WriteString("---\n\n")
	}

	return b.String()
}
