// Package fingerprint derives stable dedup keys from question content.
//
// Two questions fingerprint equal iff their canonical forms are equal:
// text is compared case-, punctuation- and whitespace-insensitively,
// tags are compared as a case-insensitive set.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"sort"
	"strings"
	"unicode"
)

// ErrInvalidQuestion indicates the input cannot produce a fingerprint.
var ErrInvalidQuestion = errors.New("invalid question: empty text")

// Separators are control characters. Normalization drops every control
// rune from text and tags, so they cannot occur in either segment.
const (
	tagSep     = "\x1f"
	segmentSep = "\x1e"
)

// Canonical returns the canonical fingerprint string for a question.
// The text is lower-cased, stripped of punctuation, whitespace-collapsed
// and trimmed; tags are lower-cased, sorted and joined. An empty tag
// list yields an empty tag segment, which is valid.
func Canonical(text string, tags []string) (string, error) {
	norm := normalizeText(text)
	if norm == "" {
		return "", ErrInvalidQuestion
	}

	normTags := make([]string, 0, len(tags))
	for _, t := range tags {
		t = dropControl(strings.ToLower(strings.TrimSpace(t)))
		if t != "" {
			normTags = append(normTags, t)
		}
	}
	sort.Strings(normTags)

	return norm + segmentSep + strings.Join(normTags, tagSep), nil
}

// New returns a compact hex digest of the canonical form, suitable for
// a unique column. Equality semantics match Canonical.
func New(text string, tags []string) (string, error) {
	canonical, err := Canonical(text, tags)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(sum[:]), nil
}

// dropControl removes control runes, keeping the separator guarantee
// for tag segments.
func dropControl(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// normalizeText lower-cases, drops punctuation, symbols and control
// runes, and collapses runs of whitespace to single spaces.
func normalizeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	space := false
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsSpace(r):
			space = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r) || unicode.IsControl(r):
			// Dropped entirely; "2+2" and "22" differ only if the
			// digits differ, matching punctuation-insensitive equality.
		default:
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(r)
		}
	}
	return b.String()
}
