package subtitle

import (
	"log/slog"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const (
	// ambiguousFloor is the lowest fuzzy similarity accepted as a match;
	// below it the sentence is treated as unlocatable.
	ambiguousFloor = 0.7

	// fuzzyHorizon bounds how far past the cursor the fuzzy scan looks,
	// in bytes of normalized text.
	fuzzyHorizon = 1000
)

// AlignStats summarizes alignment quality for one document.
type AlignStats struct {
	Matched int
	Fuzzy   int
	Misses  int
	Skipped int
}

// Aligner locates sentences inside the character-normalized concatenation of
// ASR words and recovers their time spans. It owns a monotonic cursor, so
// sentences must be fed in transcript order; feeding them out of order is a
// precondition violation, not a recoverable error.
type Aligner struct {
	words  []Word
	clean  string
	wordAt []int
	pos    int

	defaultDuration float64
	minSimilarity   float64
	stats           AlignStats
}

// NewAligner indexes the word stream for alignment. defaultDuration is the
// length of placeholder segments; minSimilarity is the fuzzy-match quality
// below which a match is logged as ambiguous.
func NewAligner(words []Word, defaultDuration, minSimilarity float64) *Aligner {
	var b strings.Builder
	var wordAt []int

	for idx, w := range words {
		cw := normalizeForMatch(w.Text)
		b.WriteString(cw)
		for i := 0; i < len(cw); i++ {
			wordAt = append(wordAt, idx)
		}
	}

	return &Aligner{
		words:           words,
		clean:           b.String(),
		wordAt:          wordAt,
		defaultDuration: defaultDuration,
		minSimilarity:   minSimilarity,
	}
}

// Align maps each sentence pair to a time span. Unlocatable sentences become
// placeholder segments with degraded confidence; empty sentences are skipped.
func (a *Aligner) Align(pairs []SentencePair) []Segment {
	var segments []Segment

	for _, pair := range pairs {
		clean := normalizeForMatch(pair.Source)
		if clean == "" {
			a.stats.Skipped++
			continue
		}

		seg, ok := a.locate(clean)
		if !ok {
			slog.Warn("no timestamp match, emitting placeholder", "sentence", truncate(pair.Source, 50))
			prevEnd := 0.0
			if len(segments) > 0 {
				prevEnd = segments[len(segments)-1].End
			}
			seg = Segment{
				Start:      prevEnd,
				End:        prevEnd + a.defaultDuration,
				Confidence: 0.5,
			}
			a.stats.Misses++
		}

		seg.Index = len(segments)
		seg.Duration = seg.End - seg.Start
		seg.SourceText = pair.Source
		seg.TranslatedText = pair.Translation
		segments = append(segments, seg)
	}

	return segments
}

// Stats returns alignment quality counters accumulated so far.
func (a *Aligner) Stats() AlignStats {
	return a.stats
}

// locate finds clean in the normalized ASR text at or after the cursor and
// advances the cursor on success.
func (a *Aligner) locate(clean string) (Segment, bool) {
	if rel := strings.Index(a.clean[a.pos:], clean); rel >= 0 {
		s := a.pos + rel
		seg := a.spanSegment(s, len(clean), 1.0)
		a.pos = s + len(clean)
		a.stats.Matched++
		return seg, true
	}

	s, ratio := a.fuzzyScan(clean)
	if s < 0 || ratio < ambiguousFloor {
		return Segment{}, false
	}
	if ratio < a.minSimilarity {
		slog.Warn("ambiguous timestamp match", "similarity", ratio)
	}
	seg := a.spanSegment(s, len(clean), ratio)
	a.pos = s + len(clean)
	a.stats.Fuzzy++
	return seg, true
}

func (a *Aligner) spanSegment(start, length int, confidence float64) Segment {
	first := a.words[a.wordAt[start]]
	last := a.words[a.wordAt[start+length-1]]
	return Segment{
		Start:      first.Start,
		End:        last.End,
		Confidence: confidence,
	}
}

// fuzzyScan slides a window of len(clean) bytes from the cursor and returns
// the offset with the highest positional byte similarity. The byte-wise
// comparison is an approximation but deterministic and cheap.
func (a *Aligner) fuzzyScan(clean string) (int, float64) {
	n := len(clean)
	limit := len(a.clean) - n
	if horizon := a.pos + fuzzyHorizon; horizon < limit {
		limit = horizon
	}

	bestPos, bestRatio := -1, 0.0
	for s := a.pos; s <= limit; s++ {
		match := 0
		for k := 0; k < n; k++ {
			if a.clean[s+k] == clean[k] {
				match++
			}
		}
		if ratio := float64(match) / float64(n); ratio > bestRatio {
			bestRatio = ratio
			bestPos = s
		}
	}
	return bestPos, bestRatio
}

// normalizeForMatch lowercases text, folds full-width variants via NFKC, and
// strips everything except letters and digits.
func normalizeForMatch(text string) string {
	var b strings.Builder
	for _, r := range norm.NFKC.String(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
