package pool

import (
	"context"
	"strings"
	"testing"
)

const validPool = `{
  "questions": [
    {"id": "q1", "text": "What is 2+2?", "tags": ["math", "easy"], "topic": "math", "difficulty": 1},
    {"id": "q2", "text": "Capital of France?", "tags": ["capitals"], "topic": "geography", "subtopic": "europe"},
    {"id": "q3", "text": "what is 2+2", "tags": ["Easy", "Math"], "topic": "math"}
  ]
}`

func TestImportAll_IngestsAndCountsDuplicates(t *testing.T) {
	idx := NewIndex(nil, nil)

	res, err := idx.ImportAll(context.Background(), strings.NewReader(validPool))
	if err != nil {
		t.Fatalf("ImportAll: %v", err)
	}
	if res.Total != 3 || res.Ingested != 2 || res.Duplicates != 1 {
		t.Errorf("result = %+v, want total 3, ingested 2, duplicates 1", res)
	}
	if idx.Len() != 2 {
		t.Errorf("pool size = %d, want 2", idx.Len())
	}

	geo, ok := idx.Get("q2")
	if !ok {
		t.Fatal("q2 missing")
	}
	if geo.Subtopic != "europe" {
		t.Errorf("subtopic = %q, want europe", geo.Subtopic)
	}
}

func TestImportAll_RejectsInvalidDocument(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", "not json at all"},
		{"missing questions key", `{"items": []}`},
		{"question without topic", `{"questions": [{"id": "q1", "text": "hi"}]}`},
		{"empty id", `{"questions": [{"id": "", "text": "hi", "topic": "science"}]}`},
		{"negative difficulty", `{"questions": [{"id": "q1", "text": "hi", "topic": "science", "difficulty": -1}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := NewIndex(nil, nil)
			if _, err := idx.ImportAll(context.Background(), strings.NewReader(tt.doc)); err == nil {
				t.Error("invalid document accepted")
			}
			if idx.Len() != 0 {
				t.Error("invalid document partially ingested")
			}
		})
	}
}

func TestImportAll_Idempotent(t *testing.T) {
	idx := NewIndex(nil, nil)

	if _, err := idx.ImportAll(context.Background(), strings.NewReader(validPool)); err != nil {
		t.Fatalf("first import: %v", err)
	}
	res, err := idx.ImportAll(context.Background(), strings.NewReader(validPool))
	if err != nil {
		t.Fatalf("second import: %v", err)
	}
	if res.Ingested != 0 {
		t.Errorf("second import ingested %d, want 0", res.Ingested)
	}
	if idx.Len() != 2 {
		t.Errorf("pool size = %d after re-import, want 2", idx.Len())
	}
}
