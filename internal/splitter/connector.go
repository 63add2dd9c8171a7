package splitter

import (
	"context"
	"strings"

	"sublingo/internal/nlp"
)

// ConnectorSplitter cuts sentences before connector words (subordinating and
// coordinating conjunctions) when enough non-punctuation context exists on
// both sides. A cut invalidates token offsets, so the remainder is
// re-annotated and re-scanned; the worklist terminates because every cut
// moves at least contextWords tokens into the output.
type ConnectorSplitter struct {
	annotator    nlp.Annotator
	language     string
	contextWords int
}

// NewConnectorSplitter creates a connector splitter for the given language.
func NewConnectorSplitter(annotator nlp.Annotator, language string, contextWords int) *ConnectorSplitter {
	if len(language) > 2 {
		language = language[:2]
	}
	return &ConnectorSplitter{annotator: annotator, language: language, contextWords: contextWords}
}

// Split processes every sentence to a fixed point and returns the expanded
// list plus the number of cuts performed.
func (s *ConnectorSplitter) Split(ctx context.Context, sentences []string) ([]string, int, error) {
	var out []string
	splits := 0

	for _, sent := range sentences {
		frag := strings.TrimSpace(sent)
		if frag == "" {
			continue
		}

		for frag != "" {
			doc, err := annotate(ctx, s.annotator, frag)
			if err != nil {
				return nil, 0, err
			}

			cut := s.findCut(doc)
			if cut <= 0 {
				out = append(out, frag)
				break
			}

			if left := doc.slice(0, cut); left != "" {
				out = append(out, left)
				splits++
			}
			frag = doc.slice(cut, len(doc.tokens))
		}
	}

	return out, splits, nil
}

// findCut returns the index of the first token a cut is permitted before, or
// -1 when the fragment has no permissible cut.
func (s *ConnectorSplitter) findCut(doc *document) int {
	n := len(doc.tokens)
	for i, tok := range doc.tokens {
		if !splitBeforeConnector(s.language, tok) {
			continue
		}
		// A following contraction pins this token in place.
		if i+1 < n && contractions[doc.tokens[i+1].Text] {
			continue
		}

		left := doc.tokens[max(0, i-s.contextWords):i]
		right := doc.tokens[i+1 : min(n, i+s.contextWords+1)]
		if countNonPunct(left) >= s.contextWords && countNonPunct(right) >= s.contextWords {
			return i
		}
	}
	return -1
}

func countNonPunct(tokens []nlp.Token) int {
	count := 0
	for _, t := range tokens {
		if !t.IsPunct() {
			count++
		}
	}
	return count
}
