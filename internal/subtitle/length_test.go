package subtitle

import (
	"math"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestLengthSplitter_ShortSegmentUnchanged(t *testing.T) {
	s := &LengthSplitter{MaxLength: 50, TargetMultiplier: 1.2}

	segments := []Segment{{SourceText: "short enough", TranslatedText: "够短", Start: 0, End: 2, Duration: 2, Confidence: 1.0}}
	got, splits := s.Apply(segments)
	if splits != 0 || len(got) != 1 {
		t.Fatalf("expected passthrough, got %d segments, %d splits", len(got), splits)
	}
	if got[0] != segments[0] {
		t.Errorf("segment changed: %+v", got[0])
	}
}

func TestLengthSplitter_SplitsOverlongSource(t *testing.T) {
	s := &LengthSplitter{MaxLength: 50, TargetMultiplier: 1.2}

	source := strings.TrimSpace(strings.Repeat("word ", 18)) // 89 chars
	segments := []Segment{{
		SourceText: source,
		Start:      0,
		End:        9,
		Duration:   9,
		Confidence: 1.0,
	}}

	got, splits := s.Apply(segments)
	if splits != 1 {
		t.Fatalf("splits = %d, want 1", splits)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(got))
	}

	for i, seg := range got {
		if n := utf8.RuneCountInString(seg.SourceText); n > 50 {
			t.Errorf("segment %d still overlong: %d chars", i, n)
		}
		if math.Abs(seg.Confidence-0.8) > 1e-9 {
			t.Errorf("segment %d confidence = %v, want 0.8", i, seg.Confidence)
		}
		if seg.Index != i {
			t.Errorf("segment %d has index %d", i, seg.Index)
		}
	}

	// The split point is a word boundary and time is shared proportionally.
	if got[0].Start != 0 || got[1].End != 9 {
		t.Errorf("outer bounds changed: [%v, %v]", got[0].Start, got[1].End)
	}
	if got[0].End != got[1].Start {
		t.Errorf("halves not contiguous: %v vs %v", got[0].End, got[1].Start)
	}
	if math.Abs(got[0].End-4.5) > 1e-9 {
		t.Errorf("midpoint = %v, want 4.5", got[0].End)
	}
	if strings.Contains(got[0].SourceText, "  ") || strings.HasSuffix(got[0].SourceText, " ") {
		t.Errorf("first half not trimmed: %q", got[0].SourceText)
	}
}

func TestLengthSplitter_TranslationWeightTriggersSplit(t *testing.T) {
	s := &LengthSplitter{MaxLength: 20, TargetMultiplier: 1.2}

	// 12 ideographs weigh 21, scaled to 25.2, over the budget of 20.
	segments := []Segment{{
		SourceText:     "hi there my friend",
		TranslatedText: strings.Repeat("字", 6) + "。" + strings.Repeat("字", 5),
		Start:          0,
		End:            4,
		Duration:       4,
		Confidence:     1.0,
	}}

	got, splits := s.Apply(segments)
	if splits < 1 {
		t.Fatalf("expected at least one split, got %d", splits)
	}
	for i, seg := range got {
		if s.Overlong(seg) {
			t.Errorf("segment %d still overlong: %+v", i, seg)
		}
		if seg.End <= seg.Start {
			t.Errorf("segment %d has no duration: [%v, %v]", i, seg.Start, seg.End)
		}
		if seg.SourceText == "" || seg.TranslatedText == "" {
			t.Errorf("segment %d lost text: %+v", i, seg)
		}
	}
}

func TestLengthSplitter_SingleCharSourceFlagged(t *testing.T) {
	s := &LengthSplitter{MaxLength: 20, TargetMultiplier: 1.2}

	// The source cannot be halved, so the segment is flagged rather than
	// shredded into empty zero-duration pieces.
	segments := []Segment{{
		SourceText:     "嗨",
		TranslatedText: strings.Repeat("字", 30),
		Start:          0,
		End:            5,
		Duration:       5,
		Confidence:     1.0,
	}}

	got, splits := s.Apply(segments)
	if splits != 0 {
		t.Errorf("splits = %d, want 0", splits)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 segment, got %d: %+v", len(got), got)
	}

	seg := got[0]
	if !seg.NeedsSplit {
		t.Error("segment should be flagged for review")
	}
	if seg.SourceText != "嗨" || seg.Start != 0 || seg.End != 5 {
		t.Errorf("segment content changed: %+v", seg)
	}
}

func TestLengthSplitter_FlagsUnsplittable(t *testing.T) {
	s := &LengthSplitter{MaxLength: 1, TargetMultiplier: 1.2}

	segments := []Segment{{TranslatedText: "你", Start: 0, End: 1, Duration: 1, Confidence: 1.0}}
	got, splits := s.Apply(segments)
	if splits != 0 {
		t.Errorf("splits = %d, want 0", splits)
	}
	if len(got) != 1 || !got[0].NeedsSplit {
		t.Fatalf("expected segment flagged for review, got %+v", got)
	}
}

func TestFindSplitPoint(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"ab", 1},                    // no boundary, midpoint fallback
		{"aaaa bbbb", 5},             // space right of midpoint
		{"word, and more words", 15}, // first boundary at or after midpoint
	}
	for _, tt := range tests {
		if got := findSplitPoint([]rune(tt.text)); got != tt.want {
			t.Errorf("findSplitPoint(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}
