// Package pool indexes the available questions and answers candidate
// queries for the feed assembler. The index holds no per-user state;
// callers pass the full exclusion set on every query.
package pool

// Question is an ingested trivia question. Immutable once in the index.
type Question struct {
	ID         string
	Text       string
	Tags       []string
	Topic      string
	Subtopic   string
	Branch     string
	Difficulty int

	// Fingerprint is the dedup digest. Computed at ingestion when empty.
	Fingerprint string

	// Seq is the insertion order, assigned by the index. It is the
	// deterministic tie-break in feed ranking.
	Seq int64
}
