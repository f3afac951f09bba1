package schema

import (
	"errors"
	"fmt"
	"slices"
)

// Schema is the immutable definition of one assessment type: an ordered
// sequence of sections with precomputed lookup indices. Build one with Load;
// the zero value is not usable.
type Schema struct {
	sections []Section
	byID     map[string]*Question
	pos      map[string]int // traversal position per question id
	count    int
}

// Load validates a section list and builds the Schema. The input is deep
// copied, so later mutation of the argument cannot affect the loaded schema.
//
// Every structural violation found is reported; the returned error joins one
// *Error per violation. No schema is returned on failure.
func Load(sections []Section) (*Schema, error) {
	sections = cloneSections(sections)

	var errs []error

	s := &Schema{
		sections: sections,
		byID:     make(map[string]*Question),
		pos:      make(map[string]int),
	}

	// First pass: per-question checks and position/id indices.
	pos := 0
	for si := range sections {
		sec := &sections[si]
		if len(sec.Questions) == 0 {
			errs = append(errs, &Error{Kind: KindEmptySection, QuestionID: sec.ID})
		}
		for qi := range sec.Questions {
			q := &sec.Questions[qi]

			if _, dup := s.byID[q.ID]; dup {
				errs = append(errs, &Error{Kind: KindDuplicateID, QuestionID: q.ID})
			} else {
				s.byID[q.ID] = q
				s.pos[q.ID] = pos
			}

			switch q.Type {
			case AnswerFreeText:
				// No option constraints.
			case AnswerSingleChoice:
				if len(q.Options) == 0 {
					errs = append(errs, &Error{Kind: KindEmptyOptionSet, QuestionID: q.ID})
				}
				seen := make(map[string]bool, len(q.Options))
				for _, opt := range q.Options {
					if seen[opt] {
						errs = append(errs, &Error{Kind: KindDuplicateOption, QuestionID: q.ID, Ref: opt})
					}
					seen[opt] = true
				}
			default:
				errs = append(errs, &Error{Kind: KindUnknownAnswerType, QuestionID: q.ID, Ref: string(q.Type)})
			}

			pos++
		}
	}
	s.count = pos

	// Second pass: condition references, now that all positions are known.
	for si := range sections {
		for qi := range sections[si].Questions {
			q := &sections[si].Questions[qi]
			for _, c := range q.Conditions {
				switch c.Op {
				case OpEquals, OpAnswered, OpUnanswered:
				default:
					errs = append(errs, &Error{Kind: KindUnknownConditionOp, QuestionID: q.ID, Ref: string(c.Op)})
				}

				refPos, ok := s.pos[c.DependsOn]
				if !ok {
					errs = append(errs, &Error{Kind: KindDanglingCondition, QuestionID: q.ID, Ref: c.DependsOn})
					continue
				}
				if refPos >= s.pos[q.ID] {
					errs = append(errs, &Error{Kind: KindForwardReference, QuestionID: q.ID, Ref: c.DependsOn})
				}
			}
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("load schema: %w", errors.Join(errs...))
	}
	return s, nil
}

// Sections returns the schema's sections in traversal order.
// The returned slice shares no memory with the schema's internals.
func (s *Schema) Sections() []Section {
	return cloneSections(s.sections)
}

// Question returns the question with the given id.
func (s *Schema) Question(id string) (Question, bool) {
	q, ok := s.byID[id]
	if !ok {
		return Question{}, false
	}
	return cloneQuestion(*q), true
}

// Position returns a question's zero-based traversal position.
func (s *Schema) Position(id string) (int, bool) {
	p, ok := s.pos[id]
	return p, ok
}

// Len returns the total number of questions across all sections.
func (s *Schema) Len() int {
	return s.count
}

// Each calls fn for every question in traversal order, together with the
// section it belongs to.
func (s *Schema) Each(fn func(sec Section, q Question)) {
	for _, sec := range s.sections {
		for _, q := range sec.Questions {
			fn(sec, q)
		}
	}
}

func cloneSections(sections []Section) []Section {
	out := make([]Section, len(sections))
	for i, sec := range sections {
		out[i] = sec
		out[i].Questions = make([]Question, len(sec.Questions))
		for j, q := range sec.Questions {
			out[i].Questions[j] = cloneQuestion(q)
		}
	}
	return out
}

func cloneQuestion(q Question) Question {
	q.Options = slices.Clone(q.Options)
	q.Conditions = slices.Clone(q.Conditions)
	return q
}
