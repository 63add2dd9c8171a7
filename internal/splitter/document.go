package splitter

import (
	"context"
	"fmt"
	"strings"

	"sublingo/internal/nlp"
)

// document pairs a text with its annotation so splitters can cut the original
// text by token span instead of re-joining token strings.
type document struct {
	text   string
	tokens []nlp.Token
}

func annotate(ctx context.Context, a nlp.Annotator, text string) (*document, error) {
	tokens, err := a.Annotate(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("annotate: %w", err)
	}
	return &document{text: text, tokens: tokens}, nil
}

// slice returns the trimmed source text covered by tokens [i, j).
func (d *document) slice(i, j int) string {
	if i < 0 || j > len(d.tokens) || i >= j {
		return ""
	}
	return strings.TrimSpace(d.text[d.tokens[i].Start:d.tokens[j-1].End])
}

// joinTokens concatenates token texts with the language joiner.
func joinTokens(tokens []nlp.Token, joiner string) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.Text
	}
	return strings.TrimSpace(strings.Join(parts, joiner))
}
