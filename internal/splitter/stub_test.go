package splitter

import (
	"context"
	"strings"
	"unicode"

	"sublingo/internal/nlp"
)

// lexEntry carries the grammatical annotation a stub token gets.
type lexEntry struct {
	pos     string
	dep     string
	headPOS string
}

// stubAnnotator is a deterministic test annotator. It tokenizes on spaces,
// peels leading/trailing punctuation into PUNCT tokens, marks sentence ends
// on . ! ? 。 ！ ？, and looks up POS/dep annotations in a fixed lexicon
// (default NOUN).
type stubAnnotator struct {
	lexicon map[string]lexEntry
	// noBoundaries simulates a backend without sentence segmentation.
	noBoundaries bool
}

func (s *stubAnnotator) Annotate(_ context.Context, text string) ([]nlp.Token, error) {
	var tokens []nlp.Token

	offset := 0
	for _, field := range strings.Split(text, " ") {
		if field == "" {
			offset++
			continue
		}
		start := offset
		offset += len(field) + 1

		tokens = append(tokens, s.tokenizeField(field, start)...)
	}

	if !s.noBoundaries && len(tokens) > 0 {
		// Ensure the stream ends on a sentence boundary like spaCy does.
		tokens[len(tokens)-1].SentEnd = true
	}
	return tokens, nil
}

func (s *stubAnnotator) tokenizeField(field string, start int) []nlp.Token {
	var tokens []nlp.Token

	// Peel trailing punctuation (handles "home," and "late.").
	word := field
	var trailing []rune
	for len(word) > 0 {
		runes := []rune(word)
		last := runes[len(runes)-1]
		if !isStubPunct(last) {
			break
		}
		trailing = append([]rune{last}, trailing...)
		word = string(runes[:len(runes)-1])
	}

	if word != "" {
		entry := s.lookup(word)
		tokens = append(tokens, nlp.Token{
			Text:    word,
			Start:   start,
			End:     start + len(word),
			POS:     entry.pos,
			Dep:     entry.dep,
			HeadPOS: entry.headPOS,
		})
	}

	punctStart := start + len(word)
	for _, r := range trailing {
		tok := nlp.Token{
			Text:  string(r),
			Start: punctStart,
			End:   punctStart + len(string(r)),
			POS:   nlp.POSPunct,
		}
		if !s.noBoundaries && isSentenceEndRune(r) {
			tok.SentEnd = true
		}
		punctStart = tok.End
		tokens = append(tokens, tok)
	}
	return tokens
}

func (s *stubAnnotator) lookup(word string) lexEntry {
	if s.lexicon != nil {
		if entry, ok := s.lexicon[strings.ToLower(word)]; ok {
			return entry
		}
	}
	return lexEntry{pos: nlp.POSNoun}
}

func isStubPunct(r rune) bool {
	return unicode.IsPunct(r) && r != '\'' && r != '-'
}

func isSentenceEndRune(r rune) bool {
	switch r {
	case '.', '!', '?', '。', '！', '？':
		return true
	}
	return false
}

// englishLexicon covers the words used across the splitter tests.
var englishLexicon = map[string]lexEntry{
	"i":        {pos: nlp.POSPron, dep: nlp.DepNsubj},
	"she":      {pos: nlp.POSPron, dep: nlp.DepNsubj},
	"he":       {pos: nlp.POSPron, dep: nlp.DepNsubj},
	"it":       {pos: nlp.POSPron, dep: nlp.DepNsubj},
	"they":     {pos: nlp.POSPron, dep: nlp.DepNsubj},
	"team":     {pos: nlp.POSNoun, dep: nlp.DepNsubj},
	"went":     {pos: nlp.POSVerb},
	"stayed":   {pos: nlp.POSVerb},
	"was":      {pos: nlp.POSAux},
	"finished": {pos: nlp.POSVerb, dep: nlp.DepRoot},
	"needed":   {pos: nlp.POSVerb},
	"said":     {pos: nlp.POSVerb, dep: nlp.DepRoot},
	"knew":     {pos: nlp.POSVerb, dep: nlp.DepRoot},
	"and":      {pos: nlp.POSNoun, dep: "cc"},
	"because":  {pos: nlp.POSNoun, dep: nlp.DepMark, headPOS: nlp.POSVerb},
	"that":     {pos: nlp.POSNoun, dep: nlp.DepMark, headPOS: nlp.POSVerb},
}

func newStub() *stubAnnotator {
	return &stubAnnotator{lexicon: englishLexicon}
}
