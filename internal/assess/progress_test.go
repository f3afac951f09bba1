package assess

import (
	"slices"
	"testing"
)

func TestProgress_CountsApplicableOnly(t *testing.T) {
	sc := testSchema(t)
	sess := NewSession()
	mustSubmit(t, sc, sess, "Q1", "No")

	p := Progress(sc, sess)
	if p.Total != 2 {
		t.Errorf("Total = %d, want 2 (Q2 inapplicable)", p.Total)
	}
	if p.Answered != 1 || p.RequiredAnswered != 1 {
		t.Errorf("Answered = %d, RequiredAnswered = %d, want 1/1", p.Answered, p.RequiredAnswered)
	}
	if !p.Complete() {
		t.Errorf("Complete() = false, missing = %v", p.MissingRequired)
	}
}

func TestProgress_MissingRequired(t *testing.T) {
	sc := testSchema(t)
	sess := NewSession()
	mustSubmit(t, sc, sess, "Q1", "Yes")

	p := Progress(sc, sess)
	if p.Complete() {
		t.Error("Complete() = true with Q2 unanswered")
	}
	if !slices.Equal(p.MissingRequired, []string{"Q2"}) {
		t.Errorf("MissingRequired = %v, want [Q2]", p.MissingRequired)
	}
	if len(p.Sections) != 1 || p.Sections[0].SectionID != "S1" {
		t.Errorf("Sections = %+v", p.Sections)
	}
}
