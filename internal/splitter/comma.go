package splitter

import (
	"context"
	"strings"

	"sublingo/internal/nlp"
)

// commaWindow is how many tokens on each side of a comma are inspected.
const commaWindow = 9

// CommaSplitter cuts sentences at commas whose right-hand side is
// independently grammatical (contains a subject and a verb) and whose both
// sides carry at least minPhraseLength non-punctuation tokens.
type CommaSplitter struct {
	annotator       nlp.Annotator
	minPhraseLength int
}

// NewCommaSplitter creates a comma splitter.
func NewCommaSplitter(annotator nlp.Annotator, minPhraseLength int) *CommaSplitter {
	return &CommaSplitter{annotator: annotator, minPhraseLength: minPhraseLength}
}

// Split processes every sentence and returns the expanded list plus the
// number of cuts performed. Sentences with no permitted cut pass through
// unchanged; empty sentences are skipped.
func (s *CommaSplitter) Split(ctx context.Context, sentences []string) ([]string, int, error) {
	var out []string
	splits := 0

	for _, sent := range sentences {
		sent = strings.TrimSpace(sent)
		if sent == "" {
			continue
		}

		parts, err := s.splitOne(ctx, sent)
		if err != nil {
			return nil, 0, err
		}
		if len(parts) > 1 {
			splits += len(parts) - 1
			out = append(out, parts...)
		} else {
			out = append(out, sent)
		}
	}

	return out, splits, nil
}

func (s *CommaSplitter) splitOne(ctx context.Context, sent string) ([]string, error) {
	doc, err := annotate(ctx, s.annotator, sent)
	if err != nil {
		return nil, err
	}

	var parts []string
	start := 0

	for i, tok := range doc.tokens {
		if tok.Text != "," && tok.Text != "，" {
			continue
		}
		if !s.commaSplittable(doc, start, i) {
			continue
		}

		if part := doc.slice(start, i); part != "" {
			parts = append(parts, part)
		}
		// The comma itself is dropped; scanning continues after it.
		start = i + 1
	}

	if start < len(doc.tokens) {
		if part := doc.slice(start, len(doc.tokens)); part != "" {
			parts = append(parts, part)
		}
	}

	if len(parts) > 1 {
		return parts, nil
	}
	return []string{sent}, nil
}

// commaSplittable applies the grammatical and length preconditions for a cut
// at the comma token at index i.
func (s *CommaSplitter) commaSplittable(doc *document, start, i int) bool {
	left := doc.tokens[max(start, i-commaWindow):i]
	right := doc.tokens[i+1 : min(len(doc.tokens), i+commaWindow+1)]

	if !hasSubjectAndVerb(right) {
		return false
	}

	leftWords := 0
	for _, t := range left {
		if !t.IsPunct() {
			leftWords++
		}
	}

	// Right side counts contiguous non-punctuation tokens only.
	rightWords := 0
	for _, t := range right {
		if t.IsPunct() {
			break
		}
		rightWords++
	}

	return leftWords >= s.minPhraseLength && rightWords >= s.minPhraseLength
}

// hasSubjectAndVerb reports whether the phrase contains both a
// subject-capable token and a verb or auxiliary.
func hasSubjectAndVerb(phrase []nlp.Token) bool {
	hasSubject := false
	hasVerb := false
	for _, t := range phrase {
		if t.Dep == nlp.DepNsubj || t.Dep == nlp.DepNsubjPass || t.POS == nlp.POSPron {
			hasSubject = true
		}
		if t.POS == nlp.POSVerb || t.POS == nlp.POSAux {
			hasVerb = true
		}
	}
	return hasSubject && hasVerb
}
