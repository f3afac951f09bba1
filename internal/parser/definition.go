// Package parser turns questionnaire authoring formats into schema sections.
// It is a thin adapter in front of schema.Load: it checks shape, not
// structure — duplicate ids, forward references and the like are the
// loader's job.
package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/intake/internal/schema"
)

// definitionMetaSchema is the JSON Schema every definition document must
// satisfy before decoding. It mirrors the serialized schema shape: an
// ordered list of sections, each with an ordered list of questions.
const definitionMetaSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "minItems": 1,
  "items": {
    "type": "object",
    "required": ["section_id", "title", "questions"],
    "additionalProperties": false,
    "properties": {
      "section_id": {"type": "string", "minLength": 1},
      "title": {"type": "string"},
      "questions": {
        "type": "array",
        "items": {
          "type": "object",
          "required": ["question_id", "prompt", "answer_type"],
          "additionalProperties": false,
          "properties": {
            "question_id": {"type": "string", "minLength": 1},
            "prompt": {"type": "string"},
            "answer_type": {"enum": ["free_text", "single_choice"]},
            "options": {"type": "array", "items": {"type": "string"}},
            "required": {"type": "boolean"},
            "conditions": {
              "type": "array",
              "items": {
                "type": "object",
                "required": ["depends_on", "op"],
                "additionalProperties": false,
                "properties": {
                  "depends_on": {"type": "string", "minLength": 1},
                  "op": {"enum": ["equals", "answered", "unanswered"]},
                  "value": {"type": "string"}
                }
              }
            }
          }
        }
      }
    }
  }
}`

var (
	metaOnce     sync.Once
	metaCompiled *jsonschema.Schema
	metaErr      error
)

// compiledMetaSchema compiles the embedded meta-schema once and caches it.
func compiledMetaSchema() (*jsonschema.Schema, error) {
	metaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(definitionMetaSchema))
		if err != nil {
			metaErr = fmt.Errorf("parse meta-schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://definition.json", doc); err != nil {
			metaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		metaCompiled, metaErr = c.Compile("schema://definition.json")
	})
	return metaCompiled, metaErr
}

type fileSection struct {
	SectionID string         `yaml:"section_id"`
	Title     string         `yaml:"title"`
	Questions []fileQuestion `yaml:"questions"`
}

type fileQuestion struct {
	QuestionID string          `yaml:"question_id"`
	Prompt     string          `yaml:"prompt"`
	AnswerType string          `yaml:"answer_type"`
	Options    []string        `yaml:"options"`
	Required   bool            `yaml:"required"`
	Conditions []fileCondition `yaml:"conditions"`
}

type fileCondition struct {
	DependsOn string `yaml:"depends_on"`
	Op        string `yaml:"op"`
	Value     string `yaml:"value"`
}

// ParseDefinition reads a YAML or JSON schema definition document and
// returns its sections. JSON is a YAML subset, so one decoder covers both.
// The document is validated against the embedded meta-schema before
// decoding; shape violations fail here, structural violations fail later in
// schema.Load.
func ParseDefinition(r io.Reader) ([]schema.Section, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read definition: %w", err)
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse definition: %w", err)
	}

	// The validator expects a JSON-shaped value; round-trip through
	// encoding/json to normalize YAML types.
	jsonBytes, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("normalize definition: %w", err)
	}
	var normalized any
	if err := json.Unmarshal(jsonBytes, &normalized); err != nil {
		return nil, fmt.Errorf("normalize definition: %w", err)
	}

	compiled, err := compiledMetaSchema()
	if err != nil {
		return nil, err
	}
	if err := compiled.Validate(normalized); err != nil {
		return nil, fmt.Errorf("definition does not match expected shape: %w", err)
	}

	var sections []fileSection
	if err := yaml.Unmarshal(data, &sections); err != nil {
		return nil, fmt.Errorf("decode definition: %w", err)
	}

	out := make([]schema.Section, 0, len(sections))
	for _, fs := range sections {
		sec := schema.Section{ID: fs.SectionID, Title: fs.Title}
		for _, fq := range fs.Questions {
			q := schema.Question{
				ID:       fq.QuestionID,
				Prompt:   fq.Prompt,
				Type:     schema.AnswerType(fq.AnswerType),
				Options:  fq.Options,
				Required: fq.Required,
			}
			for _, fc := range fq.Conditions {
				q.Conditions = append(q.Conditions, schema.Condition{
					DependsOn: fc.DependsOn,
					Op:        schema.ConditionOp(fc.Op),
					Value:     fc.Value,
				})
			}
			sec.Questions = append(sec.Questions, q)
		}
		out = append(out, sec)
	}
	return out, nil
}
