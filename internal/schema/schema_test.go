package schema

import "testing"

func validSections() []Section {
	return []Section{
		{
			ID:    "S1",
			Title: "General",
			Questions: []Question{
				{ID: "Q1", Prompt: "Name?", Type: AnswerFreeText, Required: true},
				{ID: "Q2", Prompt: "Classified?", Type: AnswerSingleChoice, Options: []string{"Yes", "No"}, Required: true},
			},
		},
		{
			ID:    "S2",
			Title: "Details",
			Questions: []Question{
				{
					ID: "Q3", Prompt: "Why?", Type: AnswerFreeText, Required: true,
					Conditions: []Condition{{DependsOn: "Q2", Op: OpEquals, Value: "Yes"}},
				},
			},
		},
	}
}

// errorKinds collects every *Error kind from a (possibly joined) load error.
func errorKinds(err error) map[ErrorKind]int {
	kinds := make(map[ErrorKind]int)
	var walk func(error)
	walk = func(e error) {
		if e == nil {
			return
		}
		if se, ok := e.(*Error); ok {
			kinds[se.Kind]++
			return
		}
		switch u := e.(type) {
		case interface{ Unwrap() []error }:
			for _, inner := range u.Unwrap() {
				walk(inner)
			}
		case interface{ Unwrap() error }:
			walk(u.Unwrap())
		}
	}
	walk(err)
	return kinds
}

func TestLoad_Valid(t *testing.T) {
	s, err := Load(validSections())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}

	q, ok := s.Question("Q2")
	if !ok {
		t.Fatal("Question(Q2) not found")
	}
	if len(q.Options) != 2 {
		t.Errorf("Q2 options = %v, want 2 entries", q.Options)
	}

	for i, id := range []string{"Q1", "Q2", "Q3"} {
		pos, ok := s.Position(id)
		if !ok || pos != i {
			t.Errorf("Position(%s) = %d, %v, want %d, true", id, pos, ok, i)
		}
	}
}

func TestLoad_Violations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func([]Section) []Section
		want   ErrorKind
	}{
		{
			name: "duplicate id across sections",
			mutate: func(s []Section) []Section {
				s[1].Questions[0].ID = "Q1"
				s[1].Questions[0].Conditions = nil
				return s
			},
			want: KindDuplicateID,
		},
		{
			name: "dangling condition",
			mutate: func(s []Section) []Section {
				s[1].Questions[0].Conditions[0].DependsOn = "Q99"
				return s
			},
			want: KindDanglingCondition,
		},
		{
			name: "forward reference to later question",
			mutate: func(s []Section) []Section {
				s[0].Questions[0].Conditions = []Condition{{DependsOn: "Q3", Op: OpAnswered}}
				return s
			},
			want: KindForwardReference,
		},
		{
			name: "self reference",
			mutate: func(s []Section) []Section {
				s[1].Questions[0].Conditions[0].DependsOn = "Q3"
				return s
			},
			want: KindForwardReference,
		},
		{
			name: "empty option set",
			mutate: func(s []Section) []Section {
				s[0].Questions[1].Options = nil
				return s
			},
			want: KindEmptyOptionSet,
		},
		{
			name: "duplicate option",
			mutate: func(s []Section) []Section {
				s[0].Questions[1].Options = []string{"Yes", "Yes"}
				return s
			},
			want: KindDuplicateOption,
		},
		{
			name: "empty section",
			mutate: func(s []Section) []Section {
				return append(s, Section{ID: "S3", Title: "Empty"})
			},
			want: KindEmptySection,
		},
		{
			name: "unknown answer type",
			mutate: func(s []Section) []Section {
				s[0].Questions[0].Type = "multi_choice"
				return s
			},
			want: KindUnknownAnswerType,
		},
		{
			name: "unknown condition op",
			mutate: func(s []Section) []Section {
				s[1].Questions[0].Conditions[0].Op = "not_equals"
				return s
			},
			want: KindUnknownConditionOp,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := Load(tc.mutate(validSections()))
			if err == nil {
				t.Fatal("Load() succeeded, want error")
			}
			if s != nil {
				t.Error("Load() returned a schema alongside an error")
			}
			if kinds := errorKinds(err); kinds[tc.want] == 0 {
				t.Errorf("error kinds = %v, want %q present (err: %v)", kinds, tc.want, err)
			}
		})
	}
}

func TestLoad_CollectsAllViolations(t *testing.T) {
	sections := validSections()
	sections[0].Questions[1].Options = nil
	sections[1].Questions[0].Conditions[0].DependsOn = "Q99"
	sections = append(sections, Section{ID: "S3", Title: "No items"})

	_, err := Load(sections)
	if err == nil {
		t.Fatal("Load() succeeded, want error")
	}

	kinds := errorKinds(err)
	for _, want := range []ErrorKind{KindEmptyOptionSet, KindDanglingCondition, KindEmptySection} {
		if kinds[want] == 0 {
			t.Errorf("error kinds = %v, missing %q", kinds, want)
		}
	}
}

func TestLoad_ConditionOnEarlierSectionAllowed(t *testing.T) {
	if _, err := Load(validSections()); err != nil {
		t.Fatalf("condition on earlier section rejected: %v", err)
	}
}

func TestLoad_CopiesInput(t *testing.T) {
	sections := validSections()
	s, err := Load(sections)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Mutating the input after Load must not leak into the schema.
	sections[0].Questions[1].Options[0] = "Maybe"
	sections[0].Questions[0].ID = "QX"

	q, ok := s.Question("Q2")
	if !ok {
		t.Fatal("Question(Q2) not found after input mutation")
	}
	if q.Options[0] != "Yes" {
		t.Errorf("schema options mutated via input: %v", q.Options)
	}
	if _, ok := s.Question("Q1"); !ok {
		t.Error("Question(Q1) lost after input mutation")
	}
}

func TestSchema_Each_TraversalOrder(t *testing.T) {
	s, err := Load(validSections())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	var ids []string
	s.Each(func(_ Section, q Question) {
		ids = append(ids, q.ID)
	})

	want := []string{"Q1", "Q2", "Q3"}
	if len(ids) != len(want) {
		t.Fatalf("Each visited %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("Each order = %v, want %v", ids, want)
			break
		}
	}
}
