package parser

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/abhisek/intake/internal/schema"
)

// Markdown questionnaire grammar, matching the governance-questionnaire
// authoring style:
//
//	## Section 1: General Information
//
//	### Q1.1 - Use case name
//	**Question:** What is the name of the AI use case?
//	**Options:** Yes, No              (presence implies single_choice)
//	**Type:** free_text               (optional; "text"/"choice" accepted)
//	**Required:** true                (default true)
//	**Requires:** Q1.2 equals "Yes"   (zero or more)
var (
	sectionHeadingRe  = regexp.MustCompile(`^Section\s+(\d+):\s+(.+)$`)
	questionHeadingRe = regexp.MustCompile(`^(Q[\w.\-]+)\s+-\s+(.+)$`)
	requiresRe        = regexp.MustCompile(`^(\S+)\s+(equals|answered|unanswered)(?:\s+"(.*)")?$`)
)

// MarkdownParser parses markdown questionnaire documents into sections.
type MarkdownParser struct {
	markdown goldmark.Markdown
}

// NewMarkdownParser returns a parser with a default goldmark instance.
func NewMarkdownParser() *MarkdownParser {
	return &MarkdownParser{markdown: goldmark.New()}
}

// Parse reads a markdown questionnaire and returns its sections. Structural
// validation is left to schema.Load.
func (p *MarkdownParser) Parse(r io.Reader) ([]schema.Section, error) {
	source, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read questionnaire: %w", err)
	}

	doc := p.markdown.Parser().Parse(text.NewReader(source))

	var (
		sections []schema.Section
		sec      *schema.Section
		q        *schema.Question
	)

	flushQuestion := func() {
		if q != nil && sec != nil {
			sec.Questions = append(sec.Questions, *q)
		}
		q = nil
	}
	flushSection := func() {
		flushQuestion()
		if sec != nil {
			sections = append(sections, *sec)
		}
		sec = nil
	}

	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch v := n.(type) {
		case *ast.Heading:
			heading := headingText(v, source)

			if v.Level == 2 {
				flushSection()
				if m := sectionHeadingRe.FindStringSubmatch(heading); m != nil {
					sec = &schema.Section{ID: "S" + m[1], Title: m[2]}
				}
				return ast.WalkSkipChildren, nil
			}

			if v.Level == 3 && sec != nil {
				flushQuestion()
				if m := questionHeadingRe.FindStringSubmatch(heading); m != nil {
					q = &schema.Question{
						ID:       m[1],
						Prompt:   strings.TrimSpace(m[2]),
						Type:     schema.AnswerFreeText,
						Required: true,
					}
				}
				return ast.WalkSkipChildren, nil
			}

			return ast.WalkSkipChildren, nil

		case *ast.Paragraph:
			if q != nil {
				for i := 0; i < v.Lines().Len(); i++ {
					seg := v.Lines().At(i)
					line := strings.TrimSpace(string(seg.Value(source)))
					if err := parseFieldLine(q, line); err != nil {
						return ast.WalkStop, err
					}
				}
			}
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}
	flushSection()

	if len(sections) == 0 {
		return nil, fmt.Errorf("no sections found in questionnaire")
	}
	return sections, nil
}

// parseFieldLine applies one "**Field:** value" line to the current question.
// Unrecognized lines are guidance text and are ignored.
func parseFieldLine(q *schema.Question, line string) error {
	field, value, ok := splitField(line)
	if !ok {
		return nil
	}

	switch field {
	case "Question":
		q.Prompt = value

	case "Options":
		parts := strings.Split(value, ",")
		q.Options = q.Options[:0]
		for _, p := range parts {
			if opt := strings.TrimSpace(p); opt != "" {
				q.Options = append(q.Options, opt)
			}
		}
		q.Type = schema.AnswerSingleChoice

	case "Type":
		switch strings.ToLower(value) {
		case "text", string(schema.AnswerFreeText):
			q.Type = schema.AnswerFreeText
		case "choice", string(schema.AnswerSingleChoice):
			q.Type = schema.AnswerSingleChoice
		default:
			return fmt.Errorf("question %q: unknown type %q", q.ID, value)
		}

	case "Required":
		q.Required = strings.EqualFold(value, "true")

	case "Requires":
		m := requiresRe.FindStringSubmatch(value)
		if m == nil {
			return fmt.Errorf("question %q: malformed condition %q", q.ID, value)
		}
		c := schema.Condition{DependsOn: m[1], Op: schema.ConditionOp(m[2]), Value: m[3]}
		if c.Op != schema.OpEquals && m[3] != "" {
			return fmt.Errorf("question %q: condition op %q takes no value", q.ID, c.Op)
		}
		q.Conditions = append(q.Conditions, c)
	}

	return nil
}

// splitField parses a "**Field:** value" line into its field name and value.
func splitField(line string) (field, value string, ok bool) {
	if !strings.HasPrefix(line, "**") {
		return "", "", false
	}
	rest := line[2:]
	end := strings.Index(rest, ":**")
	if end < 0 {
		return "", "", false
	}
	return rest[:end], strings.TrimSpace(rest[end+len(":**"):]), true
}

// headingText extracts the plain text of a heading node.
func headingText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Segment.Value(source))
		}
	}
	return strings.TrimSpace(buf.String())
}
