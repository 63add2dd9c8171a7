package subtitle

import (
	"log/slog"
	"strings"
	"unicode/utf8"
)

// splitPenalty is the confidence multiplier applied to each half of a split
// segment; repeated splits compound it.
const splitPenalty = 0.8

// splitBoundaryRunes are acceptable cut characters near the midpoint.
var splitBoundaryRunes = map[rune]bool{
	' ': true, ',': true, '.': true, '!': true, '?': true, ';': true,
	'。': true, '，': true, '！': true, '？': true, '；': true,
}

// LengthSplitter flags and splits segments whose display weight exceeds the
// configured maximum. Source length is counted in characters; the translation
// is weighted by DisplayWeight and scaled by the target-language multiplier.
type LengthSplitter struct {
	MaxLength        int
	TargetMultiplier float64
}

// Overlong reports whether the segment exceeds the display budget.
func (s *LengthSplitter) Overlong(seg Segment) bool {
	if utf8.RuneCountInString(seg.SourceText) > s.MaxLength {
		return true
	}
	return DisplayWeight(seg.TranslatedText)*s.TargetMultiplier > float64(s.MaxLength)
}

// Apply splits every overlong segment near its character midpoint, walking
// outward to a space or punctuation boundary. Halves are re-checked so
// repeated splits compound the confidence penalty. Returns the new segment
// list and the number of splits performed.
func (s *LengthSplitter) Apply(segments []Segment) ([]Segment, int) {
	var out []Segment
	splits := 0

	for _, seg := range segments {
		expanded, n := s.expand(seg)
		out = append(out, expanded...)
		splits += n
	}

	Reindex(out)
	return out, splits
}

func (s *LengthSplitter) expand(seg Segment) ([]Segment, int) {
	if !s.Overlong(seg) {
		return []Segment{seg}, 0
	}

	first, second, ok := s.splitOnce(seg)
	if !ok {
		// No usable cut point; keep the segment but flag it for review.
		seg.NeedsSplit = true
		slog.Warn("overlong segment could not be split", "index", seg.Index, "source_len", utf8.RuneCountInString(seg.SourceText))
		return []Segment{seg}, 0
	}

	left, ln := s.expand(first)
	right, rn := s.expand(second)
	return append(left, right...), 1 + ln + rn
}

// splitOnce cuts a segment into two. Time is divided proportionally to the
// character count of the two source halves.
func (s *LengthSplitter) splitOnce(seg Segment) (Segment, Segment, bool) {
	srcRunes := []rune(seg.SourceText)
	transRunes := []rune(seg.TranslatedText)

	srcCut := findSplitPoint(srcRunes)
	transCut := findSplitPoint(transRunes)

	srcA, srcB := splitRunes(srcRunes, srcCut)
	transA, transB := splitRunes(transRunes, transCut)

	// A cut that empties one half of a present text would fabricate
	// segments with no content on that side and a zero-length time share.
	if seg.SourceText != "" && (srcA == "" || srcB == "") {
		return Segment{}, Segment{}, false
	}
	if seg.TranslatedText != "" && (transA == "" || transB == "") {
		return Segment{}, Segment{}, false
	}

	ratio := splitRatio(srcA, srcB, transA, transB)
	mid := seg.Start + seg.Duration*ratio
	confidence := seg.Confidence * splitPenalty

	first := Segment{
		Start:          seg.Start,
		End:            mid,
		Duration:       mid - seg.Start,
		SourceText:     srcA,
		TranslatedText: transA,
		Confidence:     confidence,
	}
	second := Segment{
		Start:          mid,
		End:            seg.End,
		Duration:       seg.End - mid,
		SourceText:     srcB,
		TranslatedText: transB,
		Confidence:     confidence,
	}
	return first, second, true
}

// splitRatio derives the time share of the first half from character counts,
// preferring the source text and falling back to the translation.
func splitRatio(srcA, srcB, transA, transB string) float64 {
	total := utf8.RuneCountInString(srcA) + utf8.RuneCountInString(srcB)
	first := utf8.RuneCountInString(srcA)
	if total == 0 {
		total = utf8.RuneCountInString(transA) + utf8.RuneCountInString(transB)
		first = utf8.RuneCountInString(transA)
	}
	if total == 0 {
		return 0.5
	}
	return float64(first) / float64(total)
}

// findSplitPoint searches outward from the midpoint (at most 20 characters,
// clipped to a quarter of the text) for a boundary rune, returning the rune
// index to cut at. Falls back to the midpoint itself.
func findSplitPoint(runes []rune) int {
	n := len(runes)
	mid := n / 2
	if mid <= 0 || mid >= n {
		return mid
	}

	searchRange := n / 4
	if searchRange > 20 {
		searchRange = 20
	}

	for i := mid; i < mid+searchRange && i < n; i++ {
		if splitBoundaryRunes[runes[i]] {
			return i + 1
		}
	}
	for i := mid; i > mid-searchRange && i > 0; i-- {
		if splitBoundaryRunes[runes[i]] {
			return i + 1
		}
	}
	return mid
}

func splitRunes(runes []rune, cut int) (string, string) {
	if cut < 0 {
		cut = 0
	}
	if cut > len(runes) {
		cut = len(runes)
	}
	return strings.TrimSpace(string(runes[:cut])), strings.TrimSpace(string(runes[cut:]))
}
