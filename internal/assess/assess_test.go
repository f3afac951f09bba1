package assess

import (
	"testing"

	"github.com/abhisek/intake/internal/schema"
)

// testSchema builds the fixture used across the engine tests:
//
//	S1: Q1 single_choice [Yes,No], required
//	    Q2 free_text, required only when Q1 == "Yes"
//	    Q3 free_text, optional
func testSchema(t *testing.T) *schema.Schema {
	t.Helper()
	s, err := schema.Load([]schema.Section{
		{
			ID:    "S1",
			Title: "General",
			Questions: []schema.Question{
				{ID: "Q1", Prompt: "Deployed?", Type: schema.AnswerSingleChoice, Options: []string{"Yes", "No"}, Required: true},
				{
					ID: "Q2", Prompt: "Where?", Type: schema.AnswerFreeText, Required: true,
					Conditions: []schema.Condition{{DependsOn: "Q1", Op: schema.OpEquals, Value: "Yes"}},
				},
				{ID: "Q3", Prompt: "Notes?", Type: schema.AnswerFreeText},
			},
		},
	})
	if err != nil {
		t.Fatalf("load test schema: %v", err)
	}
	return s
}

func mustSubmit(t *testing.T, sc *schema.Schema, sess *Session, qid, value string) {
	t.Helper()
	if err := sess.Submit(sc, qid, value); err != nil {
		t.Fatalf("Submit(%s, %q) error = %v", qid, value, err)
	}
}
