package fingerprint

import (
	"errors"
	"testing"
)

func TestCanonical_CaseWhitespacePunctuation(t *testing.T) {
	a, err := Canonical("What is 2+2?", []string{"math", "easy"})
	if err != nil {
		t.Fatalf("Canonical: %v", err)
	}
	b, err := Canonical("what is 2+2", []string{"Easy", "Math"})
	if err != nil {
		t.Fatalf("Canonical: %v", err)
	}
	if a != b {
		t.Errorf("canonical forms differ:\n%q\n%q", a, b)
	}

	c, err := Canonical("What is 2+3?", []string{"math", "easy"})
	if err != nil {
		t.Fatalf("Canonical: %v", err)
	}
	if a == c {
		t.Error("different questions produced equal canonical forms")
	}
}

func TestNew_MatchesCanonicalEquality(t *testing.T) {
	a, err := New("  The   FIRST president?  ", []string{"history"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b, err := New("the first president", []string{"History"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if a != b {
		t.Errorf("digests differ: %s vs %s", a, b)
	}
	if len(a) != 64 {
		t.Errorf("digest length = %d, want 64 hex chars", len(a))
	}
}

func TestCanonical_EmptyText(t *testing.T) {
	tests := []string{"", "   ", "?!.,"}
	for _, text := range tests {
		if _, err := Canonical(text, []string{"tag"}); !errors.Is(err, ErrInvalidQuestion) {
			t.Errorf("Canonical(%q) error = %v, want ErrInvalidQuestion", text, err)
		}
	}
}

func TestCanonical_EmptyTags(t *testing.T) {
	a, err := Canonical("capital of France", nil)
	if err != nil {
		t.Fatalf("Canonical with nil tags: %v", err)
	}
	b, err := Canonical("capital of France", []string{})
	if err != nil {
		t.Fatalf("Canonical with empty tags: %v", err)
	}
	if a != b {
		t.Error("nil and empty tag lists should canonicalize identically")
	}

	// Blank tags are dropped, not errors.
	c, err := Canonical("capital of France", []string{"  ", ""})
	if err != nil {
		t.Fatalf("Canonical with blank tags: %v", err)
	}
	if a != c {
		t.Error("blank tags should be ignored")
	}
}

func TestCanonical_TagOrderIndependence(t *testing.T) {
	a, _ := Canonical("q", []string{"b", "a", "c"})
	b, _ := Canonical("q", []string{"c", "b", "a"})
	if a != b {
		t.Error("tag order should not affect the canonical form")
	}
}

func TestCanonical_ControlCharactersCannotForgeSeparators(t *testing.T) {
	// Control runes are stripped, so text containing the internal
	// separators cannot collide with a different text/tag split.
	a, err := Canonical("a\x1eb", nil)
	if err != nil {
		t.Fatalf("Canonical: %v", err)
	}
	b, err := Canonical("a", []string{"b\x1e"})
	if err != nil {
		t.Fatalf("Canonical: %v", err)
	}
	if a == b {
		t.Error("distinct questions collided via embedded separator")
	}

	c, err := Canonical("a\x1fb", []string{"t1\x1ft2"})
	if err != nil {
		t.Fatalf("Canonical: %v", err)
	}
	d, err := Canonical("ab", []string{"t1t2"})
	if err != nil {
		t.Fatalf("Canonical: %v", err)
	}
	if c != d {
		t.Errorf("control runes must be dropped:\n%q\n%q", c, d)
	}
}
