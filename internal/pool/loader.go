package pool

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// poolSchema validates bulk-import documents before any question is
// ingested, so a malformed pool never partially loads.
const poolSchema = `{
  "type": "object",
  "required": ["questions"],
  "properties": {
    "questions": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "text", "topic"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "text": {"type": "string", "minLength": 1},
          "tags": {"type": "array", "items": {"type": "string"}},
          "topic": {"type": "string", "minLength": 1},
          "subtopic": {"type": "string"},
          "branch": {"type": "string"},
          "difficulty": {"type": "integer", "minimum": 0}
        }
      }
    }
  }
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func importSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var parsed any
		if err := json.Unmarshal([]byte(poolSchema), &parsed); err != nil {
			compileErr = fmt.Errorf("parse pool schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://question-pool.json", parsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://question-pool.json")
	})
	return compiledSchema, compileErr
}

type importDoc struct {
	Questions []importQuestion `json:"questions"`
}

type importQuestion struct {
	ID         string   `json:"id"`
	Text       string   `json:"text"`
	Tags       []string `json:"tags"`
	Topic      string   `json:"topic"`
	Subtopic   string   `json:"subtopic"`
	Branch     string   `json:"branch"`
	Difficulty int      `json:"difficulty"`
}

// ImportResult summarizes one bulk import.
type ImportResult struct {
	Total      int
	Ingested   int
	Duplicates int
}

// ImportAll reads a question-pool JSON document, validates it against
// the pool schema, and ingests every question. Duplicates are counted
// and skipped, matching the ingest contract; any other failure aborts.
func (i *Index) ImportAll(ctx context.Context, r io.Reader) (ImportResult, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return ImportResult{}, fmt.Errorf("read pool document: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return ImportResult{}, fmt.Errorf("invalid JSON: %w", err)
	}
	schema, err := importSchema()
	if err != nil {
		return ImportResult{}, err
	}
	if err := schema.Validate(parsed); err != nil {
		return ImportResult{}, fmt.Errorf("pool document rejected: %w", err)
	}

	var doc importDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return ImportResult{}, fmt.Errorf("decode pool document: %w", err)
	}

	res := ImportResult{Total: len(doc.Questions)}
	for _, iq := range doc.Questions {
		q := Question{
			ID:         iq.ID,
			Text:       iq.Text,
			Tags:       iq.Tags,
			Topic:      iq.Topic,
			Subtopic:   iq.Subtopic,
			Branch:     iq.Branch,
			Difficulty: iq.Difficulty,
		}
		err := i.Ingest(ctx, q)
		switch err.(type) {
		case nil:
			res.Ingested++
		case *ErrDuplicateQuestion:
			res.Duplicates++
		default:
			return res, fmt.Errorf("ingest %s: %w", iq.ID, err)
		}
	}
	return res, nil
}
