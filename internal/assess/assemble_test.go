package assess

import (
	"bytes"
	"encoding/json"
	"errors"
	"slices"
	"testing"
)

// Scenario: Q1="No" makes Q2 inapplicable, so assembly succeeds immediately.
func TestAssemble_SkipsInapplicable(t *testing.T) {
	sc := testSchema(t)
	sess := NewSession()
	mustSubmit(t, sc, sess, "Q1", "No")

	rec, err := Assemble(sc, sess)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	if len(rec) != 1 || len(rec[0].Questions) != 3 {
		t.Fatalf("record shape = %+v", rec)
	}

	statuses := map[string]Status{}
	for _, rq := range rec[0].Questions {
		statuses[rq.QuestionID] = rq.Status
	}
	if statuses["Q1"] != StatusAnswered {
		t.Errorf("Q1 status = %q, want answered", statuses["Q1"])
	}
	if statuses["Q2"] != StatusSkippedInapplicable {
		t.Errorf("Q2 status = %q, want skipped-inapplicable", statuses["Q2"])
	}
	if statuses["Q3"] != StatusSkippedOptional {
		t.Errorf("Q3 status = %q, want skipped-optional", statuses["Q3"])
	}
}

// Scenario: Q1="Yes" with Q2 unanswered must fail with missing=[Q2].
func TestAssemble_FailsOnMissingRequired(t *testing.T) {
	sc := testSchema(t)
	sess := NewSession()
	mustSubmit(t, sc, sess, "Q1", "Yes")

	rec, err := Assemble(sc, sess)
	if rec != nil {
		t.Error("Assemble() produced a partial record on failure")
	}

	var ce *CompletenessError
	if !errors.As(err, &ce) {
		t.Fatalf("Assemble() error = %v, want *CompletenessError", err)
	}
	if !slices.Equal(ce.Missing, []string{"Q2"}) {
		t.Errorf("missing = %v, want [Q2]", ce.Missing)
	}
}

func TestAssemble_StaleAnswerExcluded(t *testing.T) {
	sc := testSchema(t)
	sess := NewSession()
	mustSubmit(t, sc, sess, "Q1", "Yes")
	mustSubmit(t, sc, sess, "Q2", "stale detail")
	mustSubmit(t, sc, sess, "Q1", "No") // Q2 now inapplicable but preserved

	rec, err := Assemble(sc, sess)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	for _, rq := range rec[0].Questions {
		if rq.QuestionID == "Q2" {
			if rq.Status != StatusSkippedInapplicable {
				t.Errorf("Q2 status = %q, want skipped-inapplicable", rq.Status)
			}
			if rq.Value != "" {
				t.Errorf("Q2 stale value leaked into record: %q", rq.Value)
			}
		}
	}

	// The stale answer is still in the session, just not in the record.
	if v, ok := sess.Answer("Q2"); !ok || v != "stale detail" {
		t.Errorf("stale Q2 answer lost from session: %q, %v", v, ok)
	}
}

// A fully-answered, all-applicable session must round-trip: rebuilding a
// session from the record's answers and re-assembling yields byte-identical
// JSON.
func TestAssemble_RoundTrip(t *testing.T) {
	sc := testSchema(t)
	sess := NewSession()
	mustSubmit(t, sc, sess, "Q1", "Yes")
	mustSubmit(t, sc, sess, "Q2", "eu-west datacenter")
	mustSubmit(t, sc, sess, "Q3", "no notes")

	rec, err := Assemble(sc, sess)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	for _, rq := range rec[0].Questions {
		if rq.Status != StatusAnswered {
			t.Errorf("%s status = %q, want answered", rq.QuestionID, rq.Status)
		}
	}

	first, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal record: %v", err)
	}

	fresh := NewSession()
	for qid, value := range rec.AnswerValues() {
		mustSubmit(t, sc, fresh, qid, value)
	}
	rec2, err := Assemble(sc, fresh)
	if err != nil {
		t.Fatalf("re-assemble: %v", err)
	}
	second, err := json.Marshal(rec2)
	if err != nil {
		t.Fatalf("marshal second record: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Errorf("records differ:\n%s\n%s", first, second)
	}
}

func TestAssemble_ValueMatchesSubmission(t *testing.T) {
	sc := testSchema(t)
	sess := NewSession()
	mustSubmit(t, sc, sess, "Q1", "Yes")
	mustSubmit(t, sc, sess, "Q2", "  padded but non-empty  ")

	rec, err := Assemble(sc, sess)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	for _, rq := range rec[0].Questions {
		if rq.QuestionID == "Q2" && rq.Value != "  padded but non-empty  " {
			t.Errorf("Q2 value = %q, want verbatim submission", rq.Value)
		}
	}
}
