package splitter

import (
	"context"
	"testing"
)

func TestCommaSplitter_SplitsIndependentClauses(t *testing.T) {
	s := NewCommaSplitter(newStub(), 3)

	got, splits, err := s.Split(context.Background(), []string{
		"I went home, and she stayed, because it was late.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"I went home", "and she stayed", "because it was late."}
	if len(got) != len(want) {
		t.Fatalf("got %d parts %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("part %d = %q, want %q", i, got[i], want[i])
		}
	}
	if splits != 2 {
		t.Errorf("splits = %d, want 2", splits)
	}
}

func TestCommaSplitter_NoVerbAfterCommaNoSplit(t *testing.T) {
	s := NewCommaSplitter(newStub(), 3)

	input := "The red house, the big yard, the old tree."
	got, splits, err := s.Split(context.Background(), []string{input})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != input {
		t.Errorf("expected no split, got %v", got)
	}
	if splits != 0 {
		t.Errorf("splits = %d, want 0", splits)
	}
}

func TestCommaSplitter_ShortSideBlocksSplit(t *testing.T) {
	// Left side has only two words; the cut must not happen.
	s := NewCommaSplitter(newStub(), 3)

	input := "She stayed, because it was late."
	got, _, err := s.Split(context.Background(), []string{input})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != input {
		t.Errorf("expected no split, got %v", got)
	}
}

func TestCommaSplitter_SkipsEmptySentences(t *testing.T) {
	s := NewCommaSplitter(newStub(), 3)

	got, _, err := s.Split(context.Background(), []string{"", "  ", "I went home."})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != "I went home." {
		t.Errorf("expected empties dropped, got %v", got)
	}
}
