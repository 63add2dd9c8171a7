package splitter

import (
	"context"
	"log/slog"
	"strings"

	"sublingo/internal/nlp"
)

// standalonePunct is the set of punctuation-only sentences that get merged
// onto the previous output line instead of standing alone. CJK tokenizers
// occasionally emit these as separate sentences.
var standalonePunct = map[string]bool{
	",": true, ".": true,
	"，": true, // ，
	"。": true, // 。
	"？": true, // ？
	"！": true, // ！
}

// MarkSplitter splits raw joined text into sentences at annotator-reported
// sentence boundaries, merging continuation fragments (leading or trailing
// dashes and ellipses) back onto the sentence in progress.
type MarkSplitter struct {
	annotator nlp.Annotator
	joiner    string
}

// NewMarkSplitter creates a mark splitter using the given language joiner.
func NewMarkSplitter(annotator nlp.Annotator, joiner string) *MarkSplitter {
	return &MarkSplitter{annotator: annotator, joiner: joiner}
}

// Split divides text into sentences. If the annotator reports no sentence
// boundary at all, the whole input is returned as a single sentence.
func (s *MarkSplitter) Split(ctx context.Context, text string) ([]string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	doc, err := annotate(ctx, s.annotator, text)
	if err != nil {
		return nil, err
	}

	spans := sentenceSpans(doc.tokens)
	if len(spans) == 0 {
		slog.Warn("sentence boundary detection not available, returning input unsplit")
		return []string{text}, nil
	}

	var sentences []string
	var current []string

	for _, span := range spans {
		sent := doc.slice(span[0], span[1])
		if sent == "" {
			continue
		}

		if len(current) > 0 && isContinuation(current[len(current)-1], sent) {
			current = append(current, sent)
			continue
		}

		if len(current) > 0 {
			sentences = append(sentences, strings.Join(current, s.joiner))
			current = current[:0]
		}
		current = append(current, sent)
	}
	if len(current) > 0 {
		sentences = append(sentences, strings.Join(current, s.joiner))
	}

	return mergeStandalonePunct(sentences), nil
}

// sentenceSpans groups tokens into [start, end) index pairs using the
// annotator's sentence-end flags. Returns nil when no token is flagged.
func sentenceSpans(tokens []nlp.Token) [][2]int {
	var spans [][2]int
	start := 0
	flagged := false

	for i, tok := range tokens {
		if !tok.SentEnd {
			continue
		}
		flagged = true
		spans = append(spans, [2]int{start, i + 1})
		start = i + 1
	}
	if !flagged {
		return nil
	}
	if start < len(tokens) {
		spans = append(spans, [2]int{start, len(tokens)})
	}
	return spans
}

// isContinuation reports whether next belongs to the sentence ending in prev.
func isContinuation(prev, next string) bool {
	return strings.HasPrefix(next, "-") ||
		strings.HasPrefix(next, "...") ||
		strings.HasPrefix(next, "…") ||
		strings.HasSuffix(prev, "-") ||
		strings.HasSuffix(prev, "...") ||
		strings.HasSuffix(prev, "…")
}

// mergeStandalonePunct appends punctuation-only sentences to the previous one.
func mergeStandalonePunct(sentences []string) []string {
	var out []string
	for _, sent := range sentences {
		if len(out) > 0 && standalonePunct[sent] {
			out[len(out)-1] += sent
			continue
		}
		out = append(out, sent)
	}
	return out
}
